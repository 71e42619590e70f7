// Package reader adapts a PDF text layer into the page records the outline
// package consumes. It opens a document, walks its pages, and groups the
// styled text fragments of each page into visual lines with per-line
// average glyph size, a boldness vote, and a normalized vertical position.
//
// Only the embedded text layer is read; scanned image-only PDFs yield no
// line records and degrade upstream.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/outline"
)

// Config holds line-grouping parameters.
type Config struct {
	// RowTolerance is the maximum vertical distance (points) between
	// fragments grouped into the same line. Default: 2.0.
	RowTolerance float64

	// SpaceGapFactor decides word boundaries: a horizontal gap wider than
	// SpaceGapFactor times the font size inserts a space. Default: 0.2.
	SpaceGapFactor float64
}

// DefaultConfig returns sensible grouping defaults.
func DefaultConfig() Config {
	return Config{
		RowTolerance:   2.0,
		SpaceGapFactor: 0.2,
	}
}

// Reader is a PDF-backed outline.Source.
type Reader struct {
	file   *os.File
	pdf    *pdf.Reader
	name   string
	config Config
}

// Open opens a PDF file with default grouping configuration. The returned
// Reader must be closed when done.
func Open(path string) (*Reader, error) {
	return OpenWithConfig(path, DefaultConfig())
}

// OpenWithConfig opens a PDF file with custom grouping configuration.
func OpenWithConfig(path string, config Config) (*Reader, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Reader{file: f, pdf: r, name: name, config: config}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Name returns the document's file stem.
func (r *Reader) Name() string {
	return r.name
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Page extracts the line records for the given 1-based page number. The
// underlying parser panics on some malformed content streams; that is
// converted to an error here so a bad page stays a per-page failure.
func (r *Reader) Page(n int) (page *outline.Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			page = nil
			err = fmt.Errorf("parsing page %d: %v", n, rec)
		}
	}()

	p := r.pdf.Page(n)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d: missing page object", n)
	}

	texts := p.Content().Text
	lines, sizes := r.config.groupLines(texts, n)
	return &outline.Page{Number: n, Lines: lines, FontSizes: sizes}, nil
}

// groupLines assembles raw text fragments into visual lines. Fragments are
// sorted top to bottom (PDF Y grows upward), split into rows wherever the
// vertical gap exceeds the row tolerance, and joined left to right with
// spaces inserted at word-sized horizontal gaps.
func (c Config) groupLines(texts []pdf.Text, pageNum int) ([]outline.Line, []float64) {
	sizes := make([]float64, 0, len(texts))
	frags := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" && t.S != " " {
			continue
		}
		if t.FontSize > 0 {
			sizes = append(sizes, t.FontSize)
		}
		frags = append(frags, t)
	}
	if len(frags) == 0 {
		return nil, sizes
	}

	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].Y != frags[j].Y {
			return frags[i].Y > frags[j].Y
		}
		return frags[i].X < frags[j].X
	})

	// Vertical extent of the page content, for normalized line positions.
	top, bottom := frags[0].Y, frags[0].Y
	for _, t := range frags {
		if t.Y > top {
			top = t.Y
		}
		if t.Y < bottom {
			bottom = t.Y
		}
	}
	extent := top - bottom

	var lines []outline.Line
	row := []pdf.Text{frags[0]}
	rowY := frags[0].Y
	flush := func() {
		if line, ok := c.buildLine(row, rowY, top, extent, pageNum, len(lines)); ok {
			lines = append(lines, line)
		}
	}
	for _, t := range frags[1:] {
		if rowY-t.Y > c.RowTolerance {
			flush()
			row = row[:0]
			rowY = t.Y
		}
		row = append(row, t)
	}
	flush()

	return lines, sizes
}

// buildLine joins one row of fragments into a line record.
func (c Config) buildLine(row []pdf.Text, rowY, top, extent float64, pageNum, index int) (outline.Line, bool) {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

	var sb strings.Builder
	var sizeSum float64
	bold := false
	for i, t := range row {
		if i > 0 {
			prev := row[i-1]
			gap := t.X - (prev.X + prev.W)
			if gap > c.SpaceGapFactor*t.FontSize && !strings.HasSuffix(sb.String(), " ") {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(t.S)
		sizeSum += t.FontSize
		if outline.IsBoldFont(t.Font) {
			bold = true
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return outline.Line{}, false
	}

	vert := 0.0
	if extent > 0 {
		vert = (top - rowY) / extent
	}
	return outline.Line{
		Text:        text,
		Page:        pageNum,
		Index:       index,
		AvgFontSize: sizeSum / float64(len(row)),
		Bold:        bold,
		VerticalPos: vert,
	}, true
}
