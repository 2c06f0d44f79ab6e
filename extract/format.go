package extract

import (
	"net/url"
	"strings"

	"github.com/fwojciec/feedtab"
)

// FormatInput is what a format rule sees of a post block.
type FormatInput struct {
	Block   feedtab.Node
	Caption string
	// Text is the block's flattened text, lowercased.
	Text string
}

// FormatRule labels a block when Match reports true.
type FormatRule struct {
	Name  string
	Match func(in FormatInput) (feedtab.Format, bool)
}

// FormatClassifier labels post blocks with the first matching rule.
type FormatClassifier struct {
	cfg   Config
	rules []FormatRule
}

// NewFormatClassifier creates a FormatClassifier for cfg.
//
// Rule order matters: a repost that adds commentary and embeds a document
// is a "Repost with copy", not a "Carousel".
func NewFormatClassifier(cfg Config) *FormatClassifier {
	c := &FormatClassifier{cfg: cfg}
	c.rules = []FormatRule{
		{Name: "poll", Match: c.poll},
		{Name: "repost", Match: c.repost},
		{Name: "repost-with-copy", Match: c.repostWithCopy},
		{Name: "article", Match: c.article},
		{Name: "carousel", Match: c.carousel},
		{Name: "link", Match: c.link},
		{Name: "video", Match: c.video},
		{Name: "image", Match: c.images},
	}
	return c
}

// Rules returns the rules in evaluation order.
func (c *FormatClassifier) Rules() []FormatRule {
	return c.rules
}

// Classify returns the format of block. Blocks no rule matches are Text.
func (c *FormatClassifier) Classify(block feedtab.Node, caption string) feedtab.Format {
	in := FormatInput{
		Block:   block,
		Caption: caption,
		Text:    strings.ToLower(block.Text(" ", true)),
	}
	for _, r := range c.rules {
		if f, ok := r.Match(in); ok {
			return f
		}
	}
	return feedtab.FormatText
}

func (c *FormatClassifier) poll(in FormatInput) (feedtab.Format, bool) {
	return feedtab.FormatPoll, containsAny(in.Text, c.cfg.PollMarkers)
}

func (c *FormatClassifier) repost(in FormatInput) (feedtab.Format, bool) {
	header := strings.ToLower(text(in.Block.SelectOne(c.cfg.HeaderSelector)))
	return feedtab.FormatRepost, strings.Contains(header, "reposted this")
}

func (c *FormatClassifier) repostWithCopy(in FormatInput) (feedtab.Format, bool) {
	return feedtab.FormatRepostWithCopy, len(in.Block.Select(c.cfg.ActorMetaSelector)) > 1
}

func (c *FormatClassifier) article(in FormatInput) (feedtab.Format, bool) {
	for _, u := range append(c.previewLinks(in.Block), c.links(in.Block)...) {
		if c.internal(u) && strings.Contains(u.Path, c.cfg.ArticlePathMarker) {
			return feedtab.FormatArticle, true
		}
	}
	return "", false
}

// previewLinks returns the targets of the block's article preview cards. A
// card may carry its target as its own href rather than a nested anchor.
func (c *FormatClassifier) previewLinks(block feedtab.Node) []*url.URL {
	if c.cfg.ArticleSelector == "" {
		return nil
	}
	base, _ := url.Parse(c.cfg.BaseURL)
	var out []*url.URL
	for _, p := range block.Select(c.cfg.ArticleSelector) {
		if href, ok := p.Attr("href"); ok {
			if u := resolve(base, href); u != nil {
				out = append(out, u)
			}
		}
	}
	return out
}

func (c *FormatClassifier) carousel(in FormatInput) (feedtab.Format, bool) {
	return feedtab.FormatCarousel, containsAny(in.Text, c.cfg.DocumentMarkers) || c.hasDocument(in.Block)
}

func (c *FormatClassifier) link(in FormatInput) (feedtab.Format, bool) {
	if c.hasVideo(in.Block) || c.hasDocument(in.Block) {
		return "", false
	}
	for _, u := range c.links(in.Block) {
		if !c.internal(u) {
			return feedtab.FormatLink, true
		}
	}
	return "", false
}

func (c *FormatClassifier) video(in FormatInput) (feedtab.Format, bool) {
	return feedtab.FormatVideo, c.hasVideo(in.Block)
}

func (c *FormatClassifier) images(in FormatInput) (feedtab.Format, bool) {
	var n int
	for _, img := range in.Block.Select(c.cfg.ImageSelector) {
		if within(img, c.cfg.ImageExcludeClasses) {
			continue
		}
		n++
	}
	switch {
	case n == 1:
		return feedtab.FormatImage, true
	case n > 1:
		return feedtab.FormatImages, true
	}
	return "", false
}

func (c *FormatClassifier) hasVideo(block feedtab.Node) bool {
	return block.SelectOne(c.cfg.VideoSelector) != nil
}

func (c *FormatClassifier) hasDocument(block feedtab.Node) bool {
	return block.SelectOne(c.cfg.DocumentSelector) != nil
}

// links returns the absolute http(s) links of block. Relative links in a
// saved page point back at the platform and are resolved against BaseURL.
func (c *FormatClassifier) links(block feedtab.Node) []*url.URL {
	base, _ := url.Parse(c.cfg.BaseURL)
	var out []*url.URL
	for _, a := range block.Select("a[href]") {
		href, _ := a.Attr("href")
		u := resolve(base, href)
		if u == nil {
			continue
		}
		out = append(out, u)
	}
	return out
}

// internal reports whether u points at the platform's own domain.
func (c *FormatClassifier) internal(u *url.URL) bool {
	host := strings.ToLower(u.Hostname())
	return host == c.cfg.Domain || strings.HasSuffix(host, "."+c.cfg.Domain)
}

// resolve parses href against base and keeps only http(s) URLs.
func resolve(base *url.URL, href string) *url.URL {
	href = strings.TrimSpace(href)
	if href == "" {
		return nil
	}
	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}
	u := ref
	if base != nil {
		u = base.ResolveReference(ref)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}
	if u.Host == "" {
		return nil
	}
	return u
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
