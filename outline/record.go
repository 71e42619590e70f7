package outline

// Line is one visually distinct text line plus the font and position
// metadata the classifiers need. Lines are produced once by a Source and
// are read-only from the pipeline's point of view.
type Line struct {
	// Text is the raw line text, leading/trailing whitespace trimmed.
	Text string

	// Page is the 1-based page number the line appears on.
	Page int

	// Index is the line's position within its page (0-based, top to bottom).
	Index int

	// AvgFontSize is the average glyph size of the line.
	AvgFontSize float64

	// Bold reports whether any glyph run on the line uses a bold-weight font.
	Bold bool

	// VerticalPos is the line's normalized top offset on the page
	// (0 = top edge, 1 = bottom edge).
	VerticalPos float64
}

// Candidate is a line tentatively assigned a hierarchy level. Candidates are
// created by the line aggregator; the validator and the precision filter may
// rewrite the level in place or drop the candidate, but never create new ones.
type Candidate struct {
	// Level is the assigned hierarchy level.
	Level Level `json:"level"`

	// Text is the cleaned display text (numbering marker and table-of-contents
	// formatting stripped).
	Text string `json:"text"`

	// Page is the 1-based page number.
	Page int `json:"page"`

	// RawText is the line text before cleaning. Pattern checks downstream of
	// the aggregator run against RawText, since Text has its marker removed.
	RawText string `json:"-"`

	// FontRatio is the line's average glyph size divided by the document
	// median glyph size.
	FontRatio float64 `json:"-"`

	// remove flags the candidate for deletion at the end of validation.
	remove bool
}

// Result is the externally visible artifact of an extraction: a single title
// string and the ordered outline. The outline contains only H1-H6 entries;
// the title never appears in the body except as an intentionally recurring
// H1 section header.
type Result struct {
	Title   string      `json:"title"`
	Outline []Candidate `json:"outline"`
}
