package outline

import (
	"regexp"
	"strings"
)

const months = `(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`

// defaultIncludeRes are strong heading signals kept unconditionally.
var defaultIncludeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d+\.\s+(introduction|overview|background|summary|conclusion)`),
	regexp.MustCompile(`(?i)^(table of contents|acknowledgements|references)$`),
	regexp.MustCompile(`(?i)^revision history$`),
	regexp.MustCompile(`^\d+\.\d+\s+[A-Z][a-z]`),
	regexp.MustCompile(`(?i)^appendix\s+[a-z]\b`),
	regexp.MustCompile(`(?i)^phase\s+[ivx]+\b`),
}

// defaultExcludeRes are document furniture: revision-log rows, version and
// date strings, page footers, disclaimer openers.
var defaultExcludeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d+\.\d+\s+\d+\s+` + months),
	regexp.MustCompile(`(?i)^version\s+\d+(\.\d+)?\b`),
	regexp.MustCompile(`(?i)^\d{1,2}\s+` + months + `\s+\d{4}`),
	regexp.MustCompile(`(?i)page\s+\d+\s+of\s+\d+`),
	regexp.MustCompile(`(?i)^initial version$`),
	regexp.MustCompile(`(?i)^this (document|page|overview|section)\b`),
	regexp.MustCompile(`(?i)^(copyright\b|©|all rights reserved)`),
}

var numericLeadRe = regexp.MustCompile(`^\d+\.`)

// FilterConfig holds the precision filter's rule sets and length bounds.
type FilterConfig struct {
	// Include rules keep a candidate unconditionally; inclusion takes
	// precedence over exclusion.
	Include []*regexp.Regexp

	// Exclude rules drop a candidate unless an include rule matched.
	Exclude []*regexp.Regexp

	// MinLength and MaxLength bound the text length of any heading.
	// Defaults: 2 and 150.
	MinLength int
	MaxLength int

	// H1MinLength is the extra minimum for H1 entries. Default: 3.
	H1MinLength int
}

// DefaultFilterConfig returns the curated default rule sets.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Include:     defaultIncludeRes,
		Exclude:     defaultExcludeRes,
		MinLength:   2,
		MaxLength:   150,
		H1MinLength: 3,
	}
}

// PrecisionFilter removes false-positive headings that survived scoring and
// validation. Each candidate is judged independently; decisions follow a
// fixed order with inclusion first, so a text matching both rule sets is
// kept.
type PrecisionFilter struct {
	config FilterConfig
}

// NewPrecisionFilter creates a filter with the default rule sets.
func NewPrecisionFilter() *PrecisionFilter {
	return &PrecisionFilter{config: DefaultFilterConfig()}
}

// NewPrecisionFilterWithConfig creates a filter with custom rules.
func NewPrecisionFilterWithConfig(config FilterConfig) *PrecisionFilter {
	return &PrecisionFilter{config: config}
}

// Apply returns the candidates that pass IsValid, preserving order.
func (f *PrecisionFilter) Apply(outline []Candidate) []Candidate {
	kept := outline[:0]
	for _, c := range outline {
		if f.IsValid(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

// IsValid judges one candidate. Rules run against the raw line text, which
// still carries its numbering marker.
func (f *PrecisionFilter) IsValid(c Candidate) bool {
	text := strings.TrimSpace(c.RawText)

	for _, re := range f.config.Include {
		if re.MatchString(text) {
			return true
		}
	}
	for _, re := range f.config.Exclude {
		if re.MatchString(text) {
			return false
		}
	}

	if len(text) < f.config.MinLength || len(text) > f.config.MaxLength {
		return false
	}
	if c.Level == LevelH1 && len(text) < f.config.H1MinLength {
		return false
	}

	if numericLeadRe.MatchString(text) {
		return true
	}
	if strings.HasSuffix(text, ":") && len(text) > 5 {
		return true
	}
	if c.FontRatio > 0 && c.FontRatio < 1.0 {
		return false
	}
	return true
}
