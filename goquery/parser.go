// Package goquery implements feedtab.Node and feedtab.DocumentParser on top
// of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/feedtab"
)

var _ feedtab.DocumentParser = (*Parser)(nil)

// Parser parses HTML documents into feedtab.Node trees.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html and returns the document root.
func (p *Parser) Parse(html string) (feedtab.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, feedtab.Errorf(feedtab.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Node{sel: doc.Selection}, nil
}
