package extract

import (
	"strings"
	"time"

	"github.com/fwojciec/feedtab"
)

// CommentExtractor builds one Comment per comment-bearing feed update.
//
// A block on a comments activity page shows the commented post together
// with its comment thread. The commenter's own comment is found among the
// nested comment entities by author name.
type CommentExtractor struct {
	cfg   Config
	likes *LikesExtractor
}

// NewCommentExtractor creates a CommentExtractor for cfg.
func NewCommentExtractor(cfg Config, likes *LikesExtractor) *CommentExtractor {
	return &CommentExtractor{cfg: cfg, likes: likes}
}

// Extract builds the Comment for block. ok is false when the block's header
// does not announce a comment or reply.
func (x *CommentExtractor) Extract(block feedtab.Node, now time.Time) (c *feedtab.Comment, ok bool) {
	header := block.SelectOne(x.cfg.HeaderSelector)
	headerText := text(header)
	lower := strings.ToLower(headerText)
	if !strings.Contains(lower, "commented on") && !strings.Contains(lower, "replied to") {
		return nil, false
	}

	commenter := text(header.SelectOne("a"))
	link := updateURL(x.cfg, block)
	date, clock, day := feedtab.Stamp(link, now)

	reply := replyRe.FindStringSubmatch(headerText)

	c = &feedtab.Comment{
		Date: date,
		Time: clock,
		Day:  day,
		URL:  link,
	}

	// Replies render after the comment they answer, so a reply is the
	// commenter's last entity in the thread and a direct comment the first.
	if entity := x.entityBy(block, commenter, reply != nil); entity != nil {
		c.Comment = text(entity.SelectOne(x.cfg.CommentContentSelector))
		c.Likes = x.likes.Extract(entity)
	}

	if reply != nil {
		target := strings.TrimSpace(reply[1])
		c.Type = feedtab.ReplyTo(target)
		if parent := x.entityBy(block, target, false); parent != nil {
			c.InResponseTo = text(parent.SelectOne(x.cfg.CommentContentSelector))
		}
		return c, true
	}

	switch author := x.postAuthor(block); {
	case author == "":
		c.Type = feedtab.CommentOnPost
	case strings.EqualFold(author, commenter):
		c.Type = feedtab.CommentOnOwnPost
	default:
		c.Type = feedtab.CommentOn(author)
	}
	c.InResponseTo = text(block.SelectOne(x.cfg.DescriptionSelector))
	return c, true
}

// entityBy returns the first (or last) comment entity authored by name.
func (x *CommentExtractor) entityBy(block feedtab.Node, name string, last bool) feedtab.Node {
	if name == "" {
		return nil
	}
	var found feedtab.Node
	for _, e := range block.Select(x.cfg.CommentEntitySelector) {
		if !strings.EqualFold(text(e.SelectOne(x.cfg.CommentAuthorSelector)), name) {
			continue
		}
		if !last {
			return e
		}
		found = e
	}
	return found
}

// postAuthor reads the author of the commented post from the control menu
// trigger, labelled "Open control menu for post by <author>".
func (x *CommentExtractor) postAuthor(block feedtab.Node) string {
	trigger := block.SelectOne(x.cfg.ControlMenuSelector)
	if trigger == nil {
		return ""
	}
	label, _ := trigger.Attr("aria-label")
	m := postByRe.FindStringSubmatch(label)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
