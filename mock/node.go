package mock

import "github.com/fwojciec/feedtab"

var _ feedtab.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of feedtab.DocumentParser.
type DocumentParser struct {
	ParseFn func(html string) (feedtab.Node, error)
}

func (p *DocumentParser) Parse(html string) (feedtab.Node, error) {
	return p.ParseFn(html)
}
