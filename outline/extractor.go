package outline

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Config holds orchestrator configuration, including every sub-detector's
// configuration so a caller can tune the whole pipeline from one place.
type Config struct {
	// Logger receives per-page failures and phase transitions. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Pattern, Signal, Aggregator and Filter configure the pipeline stages.
	Pattern    PatternConfig
	Signal     SignalConfig
	Aggregator AggregatorConfig
	Filter     FilterConfig

	// LargeDocPages is the page count above which the tighter large-document
	// budget applies. Default: 50.
	LargeDocPages int

	// LargeDocBudget and SmallDocBudget bound wall-clock time during the
	// scan before the extractor downgrades to fast sampling extraction.
	// Defaults: 5s and 8s.
	LargeDocBudget time.Duration
	SmallDocBudget time.Duration

	// FastBudget bounds the fast sampling extraction itself. Default: 8s.
	FastBudget time.Duration

	// FormDetection empties the outline of documents whose title and body
	// indicate a fill-in form (forms have fields, not sections). Default:
	// true.
	FormDetection bool
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Pattern:        DefaultPatternConfig(),
		Signal:         DefaultSignalConfig(),
		Aggregator:     DefaultAggregatorConfig(),
		Filter:         DefaultFilterConfig(),
		LargeDocPages:  50,
		LargeDocBudget: 5 * time.Second,
		SmallDocBudget: 8 * time.Second,
		FastBudget:     8 * time.Second,
		FormDetection:  true,
	}
}

// Extractor sequences the extraction pipeline over a Source: scan pages
// into heading candidates, validate the hierarchy, filter false positives,
// resolve the title. The scan self-polls a wall-clock budget at page
// boundaries; when exceeded, the extractor abandons full-fidelity analysis
// for a reduced sampling strategy instead of failing.
//
// An Extractor is stateless between documents and safe to reuse; all
// per-document state lives in the scan context.
type Extractor struct {
	config     Config
	logger     *slog.Logger
	patterns   *PatternClassifier
	aggregator *Aggregator
	validator  *HierarchyValidator
	filter     *PrecisionFilter

	now func() time.Time
}

// NewExtractor creates an extractor with default configuration.
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(DefaultConfig())
}

// NewExtractorWithConfig creates an extractor with custom configuration.
func NewExtractorWithConfig(config Config) *Extractor {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	patterns := NewPatternClassifierWithConfig(config.Pattern)
	signals := NewSignalDetectorWithConfig(config.Signal)
	return &Extractor{
		config:     config,
		logger:     logger,
		patterns:   patterns,
		aggregator: NewAggregatorWithConfig(config.Aggregator, patterns, signals),
		validator:  NewHierarchyValidatorWithConfig(config.Pattern),
		filter:     NewPrecisionFilterWithConfig(config.Filter),
		now:        time.Now,
	}
}

// Extract runs the full pipeline over one document and returns its title
// and outline. Per-page extraction failures are logged and skipped. A
// document with no glyph-size data anywhere degrades to an empty outline
// titled by the source name.
func (e *Extractor) Extract(src Source) (*Result, error) {
	start := e.now()
	pageCount := src.PageCount()
	if pageCount == 0 {
		e.logger.Warn("document has no pages", "document", src.Name())
		return &Result{Title: src.Name(), Outline: []Candidate{}}, nil
	}

	// Scan phase 1: materialize pages and collect glyph sizes for the
	// document-wide median.
	var pages []*Page
	var sizes []float64
	for n := 1; n <= pageCount; n++ {
		if e.budgetExceeded(start, pageCount) {
			return e.fastExtract(src, start), nil
		}
		page, err := src.Page(n)
		if err != nil {
			e.logger.Warn("page extraction failed", "document", src.Name(), "page", n, "error", err)
			continue
		}
		pages = append(pages, page)
		sizes = append(sizes, page.FontSizes...)
	}
	if len(sizes) == 0 {
		e.logger.Warn("no font size data, returning empty outline", "document", src.Name())
		return &Result{Title: src.Name(), Outline: []Candidate{}}, nil
	}
	median := medianOf(sizes)

	// Scan phase 2: classify lines page by page, still under budget.
	scan := e.aggregator.NewScan(median)
	for _, page := range pages {
		if e.budgetExceeded(start, pageCount) {
			return e.fastExtract(src, start), nil
		}
		scan.ProcessPage(page)
	}

	result := &Result{Title: scan.Title(), Outline: scan.Candidates()}

	if e.config.FormDetection && isFormDocument(result.Title, pages) {
		e.logger.Info("form document detected, emptying outline", "document", src.Name())
		result.Outline = []Candidate{}
		return result, nil
	}

	result.Outline = e.validator.Validate(result.Outline)
	result.Outline = e.filter.Apply(result.Outline)

	e.resolveTitle(result, src.Name())

	e.logger.Info("extraction complete",
		"document", src.Name(),
		"pages", pageCount,
		"headings", len(result.Outline),
		"elapsed", e.now().Sub(start))
	return result, nil
}

// budgetExceeded is the cooperative self-poll at page boundaries. Larger
// documents get the tighter budget: they are the ones that can run away.
func (e *Extractor) budgetExceeded(start time.Time, pageCount int) bool {
	budget := e.config.SmallDocBudget
	if pageCount > e.config.LargeDocPages {
		budget = e.config.LargeDocBudget
	}
	return e.now().Sub(start) > budget
}

// resolveTitle fills an empty title from the outline (first H1, else first
// entry, removed from the body), drops non-H1 body entries that duplicate
// the title, and falls back to the source name as a last resort.
func (e *Extractor) resolveTitle(result *Result, fallback string) {
	if result.Title == "" && len(result.Outline) > 0 {
		idx := 0
		for i, c := range result.Outline {
			if c.Level == LevelH1 {
				idx = i
				break
			}
		}
		result.Title = result.Outline[idx].Text
		result.Outline = append(result.Outline[:idx], result.Outline[idx+1:]...)
	}

	if result.Title != "" {
		kept := result.Outline[:0]
		for _, c := range result.Outline {
			if c.Text == result.Title && c.Level != LevelH1 {
				continue
			}
			kept = append(kept, c)
		}
		result.Outline = kept
	}

	if result.Title == "" {
		result.Title = fallback
	}
	if result.Outline == nil {
		result.Outline = []Candidate{}
	}
}

// fastExtract is the reduced-fidelity strategy for documents that blow the
// scan budget: sample a subset of pages (always including the first and
// last), apply only the pattern classifier and a short-line heuristic, and
// skip validation and filtering entirely.
func (e *Extractor) fastExtract(src Source, start time.Time) *Result {
	pageCount := src.PageCount()
	e.logger.Warn("time budget exceeded, switching to fast extraction",
		"document", src.Name(), "pages", pageCount)

	result := &Result{Outline: []Candidate{}}

	if first, err := src.Page(1); err == nil {
		for i, line := range first.Lines {
			if i >= e.config.Aggregator.TitleWindow {
				break
			}
			if text := strings.TrimSpace(line.Text); text != "" {
				result.Title = text
				break
			}
		}
	}
	if result.Title == "" {
		result.Title = src.Name()
	}

	seen := make(map[string]bool)
	for _, n := range samplePages(pageCount) {
		if e.now().Sub(start) > e.config.FastBudget {
			e.logger.Warn("fast extraction budget reached", "document", src.Name())
			break
		}
		page, err := src.Page(n)
		if err != nil {
			continue
		}
		for _, line := range page.Lines {
			text := strings.TrimSpace(line.Text)
			if len(text) < 2 || seen[text] || text == result.Title || e.config.Pattern.listItem(text) {
				continue
			}
			level := e.patterns.DetectLevel(text)
			if level == LevelNone && len(text) <= 30 {
				level = LevelH3
			}
			if level == LevelNone {
				continue
			}
			result.Outline = append(result.Outline, Candidate{
				Level:   level,
				Text:    text,
				RawText: text,
				Page:    page.Number,
			})
			seen[text] = true
		}
	}
	return result
}

// samplePages picks the 1-based pages the fast strategy reads: everything
// for small documents, a stepped sample for larger ones, first and last
// always included.
func samplePages(pageCount int) []int {
	var step int
	switch {
	case pageCount <= 10:
		step = 1
	case pageCount <= 50:
		step = max(2, pageCount/20)
	default:
		step = max(5, pageCount/30)
	}

	var pages []int
	for n := 1; n <= pageCount; n += step {
		pages = append(pages, n)
	}
	if len(pages) > 0 && pages[len(pages)-1] != pageCount {
		pages = append(pages, pageCount)
	}
	return pages
}

// medianOf returns the median of the values (mean of the two middle values
// for even counts). The input is not modified.
func medianOf(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Form-document detection: a title from form vocabulary plus several
// enumerated-field patterns in the body means fields, not sections.
var formTitleKeywords = []string{
	"application", "form", "request", "registration", "enrollment",
	"survey", "questionnaire",
}

var formFieldRes = []*regexp.Regexp{
	regexp.MustCompile(`\d+\.\s*[a-z]`),
	regexp.MustCompile(`name\s+of\s+the`),
	regexp.MustCompile(`signature\s+of`),
	regexp.MustCompile(`amount\s+of`),
	regexp.MustCompile(`whether\s+`),
	regexp.MustCompile(`declare\s+that`),
	regexp.MustCompile(`undertake\s+to`),
}

func isFormDocument(title string, pages []*Page) bool {
	lowerTitle := strings.ToLower(title)
	match := false
	for _, kw := range formTitleKeywords {
		if strings.Contains(lowerTitle, kw) {
			match = true
			break
		}
	}
	if !match {
		return false
	}

	var sb strings.Builder
	for _, page := range pages {
		for _, line := range page.Lines {
			sb.WriteString(strings.ToLower(line.Text))
			sb.WriteByte('\n')
		}
	}
	body := sb.String()

	count := 0
	for _, re := range formFieldRes {
		if re.MatchString(body) {
			count++
		}
	}
	return count >= 3
}
