package feedtab

import "fmt"

// Format labels the kind of content a post carries.
type Format string

// Post formats, in the order the classifier tests for them.
const (
	FormatPoll           Format = "Poll"
	FormatRepost         Format = "Repost"
	FormatRepostWithCopy Format = "Repost with copy"
	FormatArticle        Format = "LinkedIn Article"
	FormatCarousel       Format = "Carousel"
	FormatLink           Format = "Link"
	FormatVideo          Format = "Video"
	FormatImage          Format = "Image"
	FormatImages         Format = "Image(s)"
	FormatText           Format = "Text"
)

// Comment interaction types that do not name another member.
const (
	CommentOnOwnPost = "Direct comment on their own post"
	CommentOnPost    = "Direct comment on post"
)

// ReplyTo returns the interaction type of a reply to name's comment.
func ReplyTo(name string) string {
	return "Reply to " + name
}

// CommentOn returns the interaction type of a comment on author's post.
func CommentOn(author string) string {
	return fmt.Sprintf("Direct comment on %s's post", author)
}

// Post is one row of a posts feed.
type Post struct {
	Caption  string `json:"caption"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Day      string `json:"day"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Shares   int    `json:"shares"`
	Format   Format `json:"format"`
	URL      string `json:"url"`
}

// Comment is one row of a comments feed.
type Comment struct {
	Comment      string `json:"comment"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Day          string `json:"day"`
	Likes        int    `json:"likes"`
	Type         string `json:"type"`
	InResponseTo string `json:"in_response_to"`
	URL          string `json:"url"`
}

// Column names per mode, in output order.
var (
	PostColumns    = []string{"caption", "date", "time", "day", "likes", "comments", "shares", "format", "url"}
	CommentColumns = []string{"comment", "date", "time", "day", "likes", "type", "in_response_to", "url"}
)

// Result holds the records extracted from one document.
// Only the slice matching Mode is populated.
type Result struct {
	Mode     Mode
	Posts    []*Post
	Comments []*Comment
}

// Len returns the number of records.
func (r *Result) Len() int {
	if r.Mode == ModeComments {
		return len(r.Comments)
	}
	return len(r.Posts)
}

// Columns returns the column names for the result's mode.
func (r *Result) Columns() []string {
	if r.Mode == ModeComments {
		return CommentColumns
	}
	return PostColumns
}

// Rows returns the records as cell values in Columns order.
func (r *Result) Rows() [][]any {
	rows := make([][]any, 0, r.Len())
	if r.Mode == ModeComments {
		for _, c := range r.Comments {
			rows = append(rows, []any{c.Comment, c.Date, c.Time, c.Day, c.Likes, c.Type, c.InResponseTo, c.URL})
		}
		return rows
	}
	for _, p := range r.Posts {
		rows = append(rows, []any{p.Caption, p.Date, p.Time, p.Day, p.Likes, p.Comments, p.Shares, string(p.Format), p.URL})
	}
	return rows
}
