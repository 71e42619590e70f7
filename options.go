package outliner

import (
	"log/slog"
	"time"

	"github.com/tsawler/outliner/outline"
	"github.com/tsawler/outliner/reader"
)

// Pipeline is a fluently configurable extraction run over one document.
// Configuration methods return the Pipeline for chaining; Outline() is the
// terminal operation.
type Pipeline struct {
	filename string
	source   outline.Source
	options  pipelineOptions
}

// pipelineOptions holds the full configuration for a run.
type pipelineOptions struct {
	extract outline.Config
	reader  reader.Config
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		extract: outline.DefaultConfig(),
		reader:  reader.DefaultConfig(),
	}
}

// Logger routes the pipeline's page-failure and phase-transition logs to
// the given logger instead of slog.Default().
func (p *Pipeline) Logger(logger *slog.Logger) *Pipeline {
	p.options.extract.Logger = logger
	return p
}

// BulletHeadings treats bullet-glyph markers as H2 headings. Off by
// default: bullets are usually list items.
func (p *Pipeline) BulletHeadings() *Pipeline {
	p.options.extract.Pattern.BulletHeadings = true
	return p
}

// DashHeadings treats dash markers as H3 headings. Off by default.
func (p *Pipeline) DashHeadings() *Pipeline {
	p.options.extract.Pattern.DashHeadings = true
	return p
}

// AsteriskHeadings treats a leading asterisk as an H5 heading. Off by
// default.
func (p *Pipeline) AsteriskHeadings() *Pipeline {
	p.options.extract.Pattern.AsteriskHeadings = true
	return p
}

// TimeBudget overrides the wall-clock budgets that trigger the fast
// sampling fallback: small applies to documents up to the large-document
// page threshold, large to anything beyond it.
func (p *Pipeline) TimeBudget(small, large time.Duration) *Pipeline {
	p.options.extract.SmallDocBudget = small
	p.options.extract.LargeDocBudget = large
	return p
}

// NoFormDetection disables the form-document check that empties the
// outline of fill-in forms.
func (p *Pipeline) NoFormDetection() *Pipeline {
	p.options.extract.FormDetection = false
	return p
}

// Config replaces the whole extraction configuration. Later fluent calls
// still apply on top of it.
func (p *Pipeline) Config(config outline.Config) *Pipeline {
	p.options.extract = config
	return p
}

// ReaderConfig replaces the PDF line-grouping configuration.
func (p *Pipeline) ReaderConfig(config reader.Config) *Pipeline {
	p.options.reader = config
	return p
}
