package outline

import (
	"regexp"
	"strings"
)

// AggregatorConfig holds configuration for the line aggregator.
type AggregatorConfig struct {
	// TitleKeywords is the document-type vocabulary used to recognize title
	// lines and title continuations on the opening page.
	TitleKeywords []string

	// SectionNames are canonical section headings forced to H1 when a line
	// contains one and no numbering marker matched.
	SectionNames []string

	// MinLineLength is the minimum cleaned-text length for a candidate.
	// Default: 2.
	MinLineLength int

	// TitleWindow is how many lines from the top of each page are considered
	// for title detection while no title has been accepted. Default: 5.
	TitleWindow int

	// TitleLookahead is how many lines after an accepted title line may be
	// concatenated as title continuations. Default: 5.
	TitleLookahead int
}

// DefaultAggregatorConfig returns sensible default configuration.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		TitleKeywords: []string{
			"report", "proposal", "request", "overview", "introduction",
			"guide", "manual", "handbook", "specification", "syllabus",
			"application", "form", "agreement", "plan", "policy", "summary",
		},
		SectionNames: []string{
			"introduction", "overview", "references", "table of contents",
			"acknowledgements", "revision history", "conclusion",
		},
		MinLineLength:  2,
		TitleWindow:    5,
		TitleLookahead: 5,
	}
}

var (
	// Dot leaders running into a trailing page number ("Overview ...... 8").
	dotLeaderRe = regexp.MustCompile(`\.{3,}\s*\d+\s*$`)

	// A line whose only digits are a trailing bare number ("Introduction 6").
	bareTrailingNumRe = regexp.MustCompile(`^[^0-9]*\d+\s*$`)

	// A wide whitespace gap before a trailing number (tab-aligned contents).
	wideGapNumRe = regexp.MustCompile(`\s{5,}\d+\s*$`)

	trailingPageNumRe = regexp.MustCompile(`\s+\d+\s*$`)
	multiSpaceRe      = regexp.MustCompile(`\s+`)
)

// listMarkers are the lead glyphs that mark a list item rather than a
// heading. Lines starting with one never become candidates.
var listMarkers = []string{"-", "–", "—", "•", "■", "◦", "○", "●"}

// Aggregator consumes per-page line records and emits the draft ordered
// sequence of heading candidates plus the resolved document title.
type Aggregator struct {
	config   AggregatorConfig
	patterns *PatternClassifier
	signals  *SignalDetector
}

// NewAggregator creates an aggregator with default configuration and
// default pattern/signal detectors.
func NewAggregator() *Aggregator {
	return NewAggregatorWithConfig(DefaultAggregatorConfig(), nil, nil)
}

// NewAggregatorWithConfig creates an aggregator with custom configuration.
// Nil detectors fall back to defaults.
func NewAggregatorWithConfig(config AggregatorConfig, patterns *PatternClassifier, signals *SignalDetector) *Aggregator {
	if patterns == nil {
		patterns = NewPatternClassifier()
	}
	if signals == nil {
		signals = NewSignalDetector()
	}
	return &Aggregator{config: config, patterns: patterns, signals: signals}
}

// Scan is the mutable aggregation context for one document: the one-shot
// title state, the cross-page duplicate seen-set and the previous heading
// level are threaded through it explicitly, so independent documents never
// interfere and a scan can run per worker in a parallel design.
type Scan struct {
	agg    *Aggregator
	median float64

	title      string
	titleFound bool
	seen       map[string]bool
	prevLevel  Level
	candidates []Candidate
}

// NewScan starts a scan context for one document. median is the
// document-wide median glyph size and must be positive.
func (a *Aggregator) NewScan(median float64) *Scan {
	return &Scan{
		agg:    a,
		median: median,
		seen:   make(map[string]bool),
	}
}

// Title returns the resolved document title, or "" when none was detected.
func (s *Scan) Title() string {
	return s.title
}

// Candidates returns the draft candidates accumulated so far, in source
// reading order.
func (s *Scan) Candidates() []Candidate {
	return s.candidates
}

// ProcessPage classifies one page's lines in order, appending accepted
// candidates to the scan. Pages must be fed in document order: title
// detection and duplicate suppression both depend on it.
func (s *Scan) ProcessPage(page *Page) {
	cfg := s.agg.config
	skipUntil := -1 // lines consumed as title continuations

	for i, line := range page.Lines {
		if i <= skipUntil {
			continue
		}
		text := strings.TrimSpace(line.Text)
		if len(text) < cfg.MinLineLength {
			continue
		}
		ratio := line.AvgFontSize / s.median

		patternLevel := s.agg.patterns.DetectLevel(text)
		fromPattern := patternLevel != LevelNone

		// Title detection: one-shot, within each page's top lines until a
		// title is accepted. A line with a numbering marker is a section
		// heading, never a title.
		if !s.titleFound && !fromPattern && i < cfg.TitleWindow {
			if s.agg.isTitleLine(text, ratio, line.Bold, i) {
				title := text
				for j := i + 1; j < len(page.Lines) && j <= i+cfg.TitleLookahead; j++ {
					next := strings.TrimSpace(page.Lines[j].Text)
					if !s.agg.continuesTitle(next) {
						break
					}
					title += " " + next
					skipUntil = j
				}
				s.title = title
				s.titleFound = true
				s.prevLevel = LevelTitle
				continue
			}
		}

		level := patternLevel
		if !fromPattern {
			if s.agg.isSectionName(text) {
				level = LevelH1
			} else {
				level = s.agg.signals.DetectLevel(Signals{
					FontRatio:     ratio,
					Bold:          line.Bold,
					PreviousLevel: s.prevLevel,
					VerticalPos:   line.VerticalPos,
				})
			}
		}
		if level == LevelNone {
			continue
		}

		// List items are never headings unless an explicit marker policy
		// classified them.
		if !fromPattern && isListLine(text) {
			continue
		}
		if isTOCEntry(text) {
			continue
		}

		var cleaned string
		if fromPattern {
			cleaned = s.agg.patterns.Strip(text)
		} else {
			cleaned = cleanTOCFormatting(text)
		}
		if len(cleaned) < cfg.MinLineLength {
			continue
		}

		// The title slot is taken; an oversized body line is still a top
		// level heading.
		if level == LevelTitle {
			level = LevelH1
		}

		// Duplicate suppression by cleaned text. An H1 matching the document
		// title is the one sanctioned repeat: section headers that recur on
		// every page.
		recurringH1 := level == LevelH1 && s.titleFound && cleaned == s.title
		if s.seen[cleaned] && !recurringH1 {
			continue
		}
		s.seen[cleaned] = true

		s.candidates = append(s.candidates, Candidate{
			Level:     level,
			Text:      cleaned,
			RawText:   text,
			Page:      page.Number,
			FontRatio: ratio,
		})
		s.prevLevel = level
	}
}

// isTitleLine scores a top-of-page line as a potential document title.
func (a *Aggregator) isTitleLine(text string, ratio float64, bold bool, index int) bool {
	lower := strings.ToLower(text)
	for _, kw := range a.config.TitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	if bold && ratio > 1.1 {
		return true
	}
	if ratio > 1.3 && index == 0 {
		return true
	}
	if ratio > 1.2 && index < 3 && len(text) > 10 {
		return true
	}
	return false
}

// continuesTitle reports whether a short following line extends the title
// (same-topic keyword continuation). A line with a numbering marker is a
// section heading and ends the title.
func (a *Aggregator) continuesTitle(next string) bool {
	if len(next) <= 5 || len(next) >= 50 {
		return false
	}
	if a.patterns.DetectLevel(next) != LevelNone {
		return false
	}
	lower := strings.ToLower(next)
	for _, kw := range a.config.TitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isSectionName reports whether the line names a canonical document section.
func (a *Aggregator) isSectionName(text string) bool {
	lower := strings.ToLower(text)
	for _, name := range a.config.SectionNames {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

// isListLine reports whether the line starts with a list-item glyph.
func isListLine(text string) bool {
	for _, m := range listMarkers {
		if strings.HasPrefix(text, m) {
			return true
		}
	}
	return false
}

// isTOCEntry reports whether a line looks like a table-of-contents row
// rather than heading text on its actual page.
func isTOCEntry(text string) bool {
	if dotLeaderRe.MatchString(text) {
		return true
	}
	if bareTrailingNumRe.MatchString(text) && !dotted1Re.MatchString(text) {
		return true
	}
	if wideGapNumRe.MatchString(text) {
		return true
	}
	return false
}

// cleanTOCFormatting strips trailing dot leaders and page numbers and
// collapses runs of whitespace.
func cleanTOCFormatting(text string) string {
	cleaned := dotLeaderRe.ReplaceAllString(text, "")
	cleaned = trailingPageNumRe.ReplaceAllString(cleaned, "")
	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
