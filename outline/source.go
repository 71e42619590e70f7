package outline

// Page holds everything the pipeline consumes from one document page: the
// ordered line records and the raw glyph sizes observed on the page (used
// for the document-wide median).
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Lines are the page's text lines in reading order (top to bottom).
	Lines []Line

	// FontSizes are all glyph sizes observed on the page, in no particular
	// order. They feed the document-wide median computation.
	FontSizes []float64
}

// Source supplies per-page line records to the Extractor. Implementations
// wrap whatever produces styled text lines; the reader package provides a
// PDF-backed Source. Page extraction errors are per-page recoverable: the
// Extractor logs them and continues with the remaining pages.
type Source interface {
	// Name identifies the document (typically the file stem). It is used as
	// the last-resort fallback title for degraded documents.
	Name() string

	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page returns the records for the given 1-based page number.
	Page(n int) (*Page, error)
}
