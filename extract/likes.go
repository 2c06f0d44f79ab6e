package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/feedtab"
)

// LikesStrategy finds a reaction count on a content block. ok is false when
// the strategy finds nothing and the next one should be tried.
type LikesStrategy struct {
	Name string
	Find func(block feedtab.Node) (n int, ok bool)
}

// LikesExtractor reads the reaction count of a post or comment by trying
// strategies in a fixed order. LinkedIn renders the count as an accessible
// label, a textual summary, or a bare icon cluster followed by digits,
// depending on the page.
type LikesExtractor struct {
	cfg        Config
	clusterRe  *regexp.Regexp
	strategies []LikesStrategy
}

// NewLikesExtractor creates a LikesExtractor for cfg.
func NewLikesExtractor(cfg Config) *LikesExtractor {
	e := &LikesExtractor{
		cfg: cfg,
		clusterRe: regexp.MustCompile(`(?i)(?:(?:` + strings.Join(quoteAll(cfg.ReactionKeywords), "|") +
			`)\s+)+(` + numPattern + `)`),
	}
	e.strategies = []LikesStrategy{
		{Name: "aria-label", Find: e.fromAriaLabel},
		{Name: "social-counts", Find: e.fromSocialCounts},
		{Name: "reaction-cluster", Find: e.fromReactionCluster},
		{Name: "trailing-counter", Find: e.fromTrailingCounter},
	}
	return e
}

// Strategies returns the strategies in the order Extract tries them.
func (e *LikesExtractor) Strategies() []LikesStrategy {
	return e.strategies
}

// Extract returns the reaction count of block, or 0 when no strategy finds one.
func (e *LikesExtractor) Extract(block feedtab.Node) int {
	if block == nil {
		return 0
	}
	for _, s := range e.strategies {
		if n, ok := s.Find(block); ok {
			return n
		}
	}
	return 0
}

func (e *LikesExtractor) fromAriaLabel(block feedtab.Node) (int, bool) {
	for _, n := range block.Select("[aria-label]") {
		label, _ := n.Attr("aria-label")
		if !strings.Contains(strings.ToLower(label), "reaction") {
			continue
		}
		if v, ok := firstNumber(label); ok {
			return v, true
		}
		if v, ok := firstNumber(text(n)); ok {
			return v, true
		}
	}
	return 0, false
}

func (e *LikesExtractor) fromSocialCounts(block feedtab.Node) (int, bool) {
	s := text(block.SelectOne(e.cfg.ReactionCountSelector))
	if s == "" {
		return 0, false
	}
	if v, ok := submatchCount(othersRe, s); ok {
		return v, true
	}
	return firstNumber(s)
}

func (e *LikesExtractor) fromReactionCluster(block feedtab.Node) (int, bool) {
	for _, s := range block.Strings() {
		if v, ok := submatchCount(e.clusterRe, s); ok {
			return v, true
		}
	}
	return 0, false
}

func (e *LikesExtractor) fromTrailingCounter(block feedtab.Node) (int, bool) {
	return submatchCount(trailingRe, block.Text(" ", true))
}

func quoteAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = regexp.QuoteMeta(w)
	}
	return out
}
