package extract

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/feedtab"
)

// PostExtractor builds one Post per feed update block.
type PostExtractor struct {
	cfg     Config
	likes   *LikesExtractor
	formats *FormatClassifier
}

// NewPostExtractor creates a PostExtractor for cfg.
func NewPostExtractor(cfg Config, likes *LikesExtractor, formats *FormatClassifier) *PostExtractor {
	return &PostExtractor{cfg: cfg, likes: likes, formats: formats}
}

// Extract builds the Post for block. now supplies the date of posts whose
// URL carries no identifier.
func (x *PostExtractor) Extract(block feedtab.Node, now time.Time) *feedtab.Post {
	caption := x.caption(block)
	link := updateURL(x.cfg, block)
	date, clock, day := feedtab.Stamp(link, now)
	flat := block.Text(" ", true)

	comments, _ := submatchCount(commentsRe, flat)
	shares, _ := submatchCount(sharesRe, flat)

	return &feedtab.Post{
		Caption:  caption,
		Date:     date,
		Time:     clock,
		Day:      day,
		Likes:    x.likes.Extract(block),
		Comments: comments,
		Shares:   shares,
		Format:   x.formats.Classify(block, caption),
		URL:      link,
	}
}

func (x *PostExtractor) caption(block feedtab.Node) string {
	var parts []string
	for _, span := range block.Select(x.cfg.CaptionSelector) {
		if within(span, x.cfg.CaptionExcludeClasses) {
			continue
		}
		if s := text(span); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// updateURL returns the canonical URL of the update a block renders: built
// from the activity URN when present, otherwise the first link that points
// at a single update. Returns "" when neither exists.
func updateURL(cfg Config, block feedtab.Node) string {
	if urn, ok := block.Attr(cfg.URNAttr); ok {
		if id, ok := feedtab.ExtractID(urn); ok {
			return fmt.Sprintf(cfg.UpdateURLFormat, id)
		}
	}
	for _, n := range block.Select("[" + cfg.URNAttr + "]") {
		urn, _ := n.Attr(cfg.URNAttr)
		if !strings.Contains(urn, "activity") {
			continue
		}
		if id, ok := feedtab.ExtractID(urn); ok {
			return fmt.Sprintf(cfg.UpdateURLFormat, id)
		}
	}

	base, _ := url.Parse(cfg.BaseURL)
	for _, a := range block.Select("a[href]") {
		href, _ := a.Attr("href")
		u := resolve(base, href)
		if u == nil {
			continue
		}
		for _, m := range cfg.UpdatePathMarkers {
			if strings.Contains(u.Path, m) {
				return u.String()
			}
		}
	}
	return ""
}
