package outline

// Signals carries the per-line evidence the signal-based detector scores
// when no explicit numbering marker decided the level.
type Signals struct {
	// FontRatio is the line's average glyph size divided by the document
	// median glyph size.
	FontRatio float64

	// Bold reports whether the line uses a bold-weight font.
	Bold bool

	// PatternLevel is the level assigned by the pattern classifier, or
	// LevelNone. A pattern level always wins over size-based scoring.
	PatternLevel Level

	// PreviousLevel is the level of the most recently accepted heading, or
	// LevelNone when there is none. It drives the continuation rule.
	PreviousLevel Level

	// VerticalPos is the line's normalized top offset on the page (0..1).
	// Negative means unknown.
	VerticalPos float64
}

// SignalConfig holds the thresholds and boosts for signal-based detection.
type SignalConfig struct {
	// MinRatios maps each level to the minimum effective font-size ratio
	// that classifies a line at that level.
	// Default: TITLE=1.50, H1=1.30, H2=1.15, H3=1.05, H4=1.02, H5=1.01, H6=1.00.
	MinRatios map[Level]float64

	// TopRegion is the fraction of the page height counted as "top of page".
	// Default: 0.2.
	TopRegion float64

	// PositionBoost is added to the font ratio for lines in the top region.
	// Default: 0.1.
	PositionBoost float64

	// BoldBoost is added to the font ratio for bold lines. Default: 0.15.
	BoldBoost float64

	// ContinuationSlack relaxes the next-deeper level's minimum ratio when
	// continuing an established hierarchy. Default: 0.9.
	ContinuationSlack float64
}

// DefaultSignalConfig returns the default thresholds and boosts.
func DefaultSignalConfig() SignalConfig {
	return SignalConfig{
		MinRatios: map[Level]float64{
			LevelTitle: 1.50,
			LevelH1:    1.30,
			LevelH2:    1.15,
			LevelH3:    1.05,
			LevelH4:    1.02,
			LevelH5:    1.01,
			LevelH6:    1.00,
		},
		TopRegion:         0.2,
		PositionBoost:     0.1,
		BoldBoost:         0.15,
		ContinuationSlack: 0.9,
	}
}

// SignalDetector derives a heading level from font-size ratio, boldness,
// page position and the previously assigned level.
type SignalDetector struct {
	config SignalConfig
}

// NewSignalDetector creates a detector with default configuration.
func NewSignalDetector() *SignalDetector {
	return &SignalDetector{config: DefaultSignalConfig()}
}

// NewSignalDetectorWithConfig creates a detector with custom configuration.
func NewSignalDetectorWithConfig(config SignalConfig) *SignalDetector {
	return &SignalDetector{config: config}
}

// DetectLevel classifies a line from its signals. An explicit pattern level
// is returned unchanged. Otherwise the font ratio is boosted for top-of-page
// position and boldness, the continuation rule is tried first (one depth
// below the previous heading, at a relaxed threshold, so a document whose
// absolute ratios drift can still continue a consistent hierarchy), and
// finally the fixed descending threshold ladder decides. H6 via the ladder
// additionally requires boldness. LevelNone means the line is not a heading.
func (d *SignalDetector) DetectLevel(sig Signals) Level {
	if sig.PatternLevel != LevelNone {
		return sig.PatternLevel
	}

	effective := sig.FontRatio
	if sig.VerticalPos >= 0 && sig.VerticalPos < d.config.TopRegion {
		effective += d.config.PositionBoost
	}
	if sig.Bold {
		effective += d.config.BoldBoost
	}

	// Continuation: classify exactly one depth below the previous heading
	// when the line is at least body-sized. Nothing nests below H6.
	if sig.PreviousLevel != LevelNone && sig.PreviousLevel < LevelH6 && effective >= 1.0 {
		next := sig.PreviousLevel.Deeper()
		if min, ok := d.config.MinRatios[next]; ok && effective >= min*d.config.ContinuationSlack {
			return next
		}
	}

	for level := LevelTitle; level <= LevelH6; level++ {
		min, ok := d.config.MinRatios[level]
		if !ok || effective < min {
			continue
		}
		if level == LevelH6 && !sig.Bold {
			continue
		}
		return level
	}
	return LevelNone
}
