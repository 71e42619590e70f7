// Package outline classifies styled text lines into a leveled document
// outline (title plus H1-H6 headings) and repairs the result into a
// structurally consistent hierarchy.
//
// The package is organized as a pipeline of small, independently testable
// detectors: a pattern classifier for explicit numbering markers, a
// signal-based level detector for font-size/boldness/position scoring, a
// line aggregator that walks page records and emits heading candidates, a
// hierarchy validator that repairs skipped depths and over-nesting, and a
// precision filter that removes document furniture. The Extractor sequences
// all of them under a wall-clock budget.
package outline

import "encoding/json"

// Level represents a position in the document hierarchy. LevelTitle is the
// document title (depth 0); LevelH1 through LevelH6 are body heading levels
// in increasing nesting depth. LevelNone marks a line that is not a heading.
type Level int

const (
	LevelNone Level = iota
	LevelTitle
	LevelH1
	LevelH2
	LevelH3
	LevelH4
	LevelH5
	LevelH6
)

// Depth returns the nesting depth of the level: 0 for LevelTitle, 1 for
// LevelH1, up to 6 for LevelH6. Depth of LevelNone is -1.
func (l Level) Depth() int {
	return int(l) - int(LevelTitle)
}

// IsHeading reports whether the level is a body heading (H1-H6).
func (l Level) IsHeading() bool {
	return l >= LevelH1 && l <= LevelH6
}

// Deeper returns the level one nesting step below this one. Deepening past
// LevelH6 stays at LevelH6.
func (l Level) Deeper() Level {
	if l >= LevelH6 {
		return LevelH6
	}
	return l + 1
}

// Shallower returns the level one nesting step above this one. LevelH1 and
// LevelTitle are returned unchanged.
func (l Level) Shallower() Level {
	if l <= LevelH1 {
		return l
	}
	return l - 1
}

// String returns the conventional name of the level ("TITLE", "H1" ... "H6").
func (l Level) String() string {
	switch l {
	case LevelTitle:
		return "TITLE"
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelH4:
		return "H4"
	case LevelH5:
		return "H5"
	case LevelH6:
		return "H6"
	default:
		return "NONE"
	}
}

// ParseLevel converts a level name ("H1" ... "H6", "TITLE") back to a Level.
// Unknown names parse as LevelNone.
func ParseLevel(s string) Level {
	switch s {
	case "TITLE":
		return LevelTitle
	case "H1":
		return LevelH1
	case "H2":
		return LevelH2
	case "H3":
		return LevelH3
	case "H4":
		return LevelH4
	case "H5":
		return LevelH5
	case "H6":
		return LevelH6
	default:
		return LevelNone
	}
}

// MarshalJSON encodes the level as its conventional name.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its conventional name.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = ParseLevel(s)
	return nil
}
