package feedtab

// Converter turns one saved activity feed document into records.
type Converter interface {
	// Convert extracts records from html. When mode is ModeAuto the mode
	// is detected from the document.
	// Returns ENOTFOUND if no records could be extracted.
	Convert(html string, mode Mode) (*Result, error)
}
