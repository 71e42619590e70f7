// Package outliner provides a fluent API for extracting a leveled document
// outline (title plus H1-H6 headings) from PDF files.
//
// Basic usage:
//
//	result, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	result, err := outliner.Open("spec.pdf").
//	    BulletHeadings().
//	    Logger(logger).
//	    Outline()
//
// For advanced use cases, the lower-level outline and reader packages are
// also available: outline runs the classification pipeline over any
// outline.Source, and reader turns a PDF into one.
package outliner

import (
	"github.com/tsawler/outliner/outline"
	"github.com/tsawler/outliner/reader"
)

// Open prepares an extraction Pipeline for a PDF file. The file is opened
// lazily when a terminal operation such as Outline() runs.
//
// Example:
//
//	result, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Pipeline {
	return &Pipeline{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource prepares a Pipeline over an already-built page source. This is
// useful for non-PDF inputs or tests; the caller keeps ownership of the
// source's lifecycle.
func FromSource(src outline.Source) *Pipeline {
	return &Pipeline{
		source:  src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := outliner.Must(outliner.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Outline runs the pipeline and returns the document title and outline.
func (p *Pipeline) Outline() (*outline.Result, error) {
	src := p.source
	if src == nil {
		r, err := reader.OpenWithConfig(p.filename, p.options.reader)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		src = r
	}

	extractor := outline.NewExtractorWithConfig(p.options.extract)
	return extractor.Extract(src)
}
