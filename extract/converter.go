package extract

import (
	"time"

	"github.com/fwojciec/feedtab"
)

var _ feedtab.Converter = (*Converter)(nil)

// Converter extracts the records of one activity feed document.
// It holds no per-document state and is safe for concurrent use.
type Converter struct {
	parser   feedtab.DocumentParser
	detector feedtab.ModeDetector
	cfg      Config
	now      func() time.Time

	posts    *PostExtractor
	comments *CommentExtractor
}

// Option configures a Converter.
type Option func(*Converter)

// WithConfig replaces the default LinkedIn configuration.
func WithConfig(cfg Config) Option {
	return func(c *Converter) {
		c.cfg = cfg
	}
}

// WithDetector sets the detector used when no mode is given.
// Defaults to feedtab.Detector.
func WithDetector(d feedtab.ModeDetector) Option {
	return func(c *Converter) {
		c.detector = d
	}
}

// WithClock sets the source of the fallback date for records whose URL
// carries no identifier. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.now = now
	}
}

// NewConverter creates a Converter that parses documents with parser.
func NewConverter(parser feedtab.DocumentParser, opts ...Option) *Converter {
	c := &Converter{
		parser:   parser,
		detector: feedtab.Detector{},
		cfg:      DefaultConfig(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	likes := NewLikesExtractor(c.cfg)
	c.posts = NewPostExtractor(c.cfg, likes, NewFormatClassifier(c.cfg))
	c.comments = NewCommentExtractor(c.cfg, likes)
	return c
}

// Convert extracts records from html in the given mode, detecting the mode
// when it is feedtab.ModeAuto. Comments sharing text and date are reported
// once. Returns ENOTFOUND when the document yields no records.
func (c *Converter) Convert(html string, mode feedtab.Mode) (*feedtab.Result, error) {
	if mode == feedtab.ModeAuto {
		mode = c.detector.DetectMode(html)
	}
	if mode != feedtab.ModePosts && mode != feedtab.ModeComments {
		return nil, feedtab.Errorf(feedtab.EINVALID, "unknown mode %q", mode)
	}

	root, err := c.parser.Parse(html)
	if err != nil {
		return nil, err
	}

	now := c.now()
	res := &feedtab.Result{Mode: mode}
	for _, block := range root.Select(c.cfg.BlockSelector) {
		if mode == feedtab.ModeComments {
			if cm, ok := c.comments.Extract(block, now); ok {
				res.Comments = append(res.Comments, cm)
			}
			continue
		}
		res.Posts = append(res.Posts, c.posts.Extract(block, now))
	}

	if mode == feedtab.ModeComments {
		res.Comments = DedupComments(res.Comments)
	}

	if res.Len() == 0 {
		return nil, feedtab.Errorf(feedtab.ENOTFOUND, "no data found – did you save the full page?")
	}
	return res, nil
}
