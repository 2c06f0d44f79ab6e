package feedtab

// Node is a read-only view of one element in a parsed markup tree.
// Extraction code depends on this interface only, so heuristics can be
// exercised against any tree that answers CSS selectors.
type Node interface {
	// Select returns all descendants matching the CSS selector, in document order.
	Select(selector string) []Node

	// SelectOne returns the first descendant matching the selector, or nil.
	SelectOne(selector string) Node

	// Text returns the text content of the node. When strip is true every
	// string leaf has its whitespace collapsed, empty leaves are dropped,
	// and the remaining leaves are joined with sep. When strip is false
	// the raw concatenated text is returned and sep is ignored.
	Text(sep string, strip bool) string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Closest returns the nearest ancestor (excluding the node itself)
	// for which match returns true, or nil.
	Closest(match func(Node) bool) Node

	// Strings returns the trimmed, non-empty string leaves under the node
	// in document order.
	Strings() []string
}

// DocumentParser parses markup text into a tree of Nodes.
type DocumentParser interface {
	// Parse returns the document root.
	// Returns EINVALID if the markup cannot be read.
	Parse(html string) (Node, error)
}
