package outline

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// markerRule recognizes one textual numbering/marker convention. Rules are
// evaluated in table order; the first match wins, so precedence is explicit
// in the table rather than buried in control flow. match returns the length
// of the marker (including its trailing separator) or -1.
type markerRule struct {
	name   string
	level  Level
	policy bool // false: recognized for stripping but never yields a level
	match  func(string) int
}

// PatternConfig holds the marker-policy switches. The bullet, dash and
// asterisk conventions are legitimate list markers far more often than they
// are headings, so all three default to off; documents that genuinely use
// them as heading markers can opt in.
type PatternConfig struct {
	// BulletHeadings treats bullet-glyph prefixes (•, ■, ◦, ○, ●) as H2.
	BulletHeadings bool

	// DashHeadings treats dash prefixes (-, –, —) as H3.
	DashHeadings bool

	// AsteriskHeadings treats a leading asterisk as H5.
	AsteriskHeadings bool
}

// DefaultPatternConfig returns the default marker policy (bullet, dash and
// asterisk conventions disabled).
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{}
}

// listItem reports whether the text is a list item under this marker policy:
// a line led by a list glyph whose marker convention is not enabled as a
// heading form.
func (c PatternConfig) listItem(text string) bool {
	if !isListLine(text) {
		return false
	}
	if c.BulletHeadings && bulletRe.MatchString(text) {
		return false
	}
	if c.DashHeadings && dashRe.MatchString(text) {
		return false
	}
	return true
}

var (
	dotted6Re = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+\.\d+\.\d+\s+`)
	dotted5Re = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+\.\d+\s+`)
	dotted4Re = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+\s+`)
	dotted3Re = regexp.MustCompile(`^\d+\.\d+\.\d+\s+`)
	dotted2Re = regexp.MustCompile(`^\d+\.\d+\s+`)
	dotted1Re = regexp.MustCompile(`^\d+\.\s+`)

	romanSimpleRe = regexp.MustCompile(`^[IVX]+\.\s+`)
	// Full-form roman numerals. RE2 has no lookahead, so the numeral is a
	// capture group checked for non-emptiness after matching.
	romanFullRe = regexp.MustCompile(`^(M*(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3}))\.\s+`)

	upperLetterRe   = regexp.MustCompile(`^[A-Z]\.\s+`)
	letterDigitRe   = regexp.MustCompile(`^[A-Za-z]\d+\.\s+`)
	bulletRe        = regexp.MustCompile(`^[•■◦○●]\s+`)
	dashRe          = regexp.MustCompile(`^[-–—]\s+`)
	parenAlnumRe    = regexp.MustCompile(`^\([A-Za-z0-9]+\)\s+`)
	bracketNumRe    = regexp.MustCompile(`^\[\d+\]\s+`)
	lowerParenRe    = regexp.MustCompile(`^[a-z]\)\s+`)
	romanLowParenRe = regexp.MustCompile(`^[ivx]+\)\s+`)
	asteriskRe      = regexp.MustCompile(`^\*\s+`)

	// Western numeric prefix, used for the mixed Western/CJK special case.
	westernPrefixRe = regexp.MustCompile(`^\d+(\.\d+)*\s*`)

	// CJK numeral marker at the very start of the text (一、 二. 三 ...).
	cjkNumberRe = regexp.MustCompile(`^[一二三四五六七八九十百千]+[、.\s]`)
)

func regexMatch(re *regexp.Regexp) func(string) int {
	return func(s string) int {
		if m := re.FindString(s); m != "" {
			return len(m)
		}
		return -1
	}
}

func romanFullMatch(s string) int {
	m := romanFullRe.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		return -1
	}
	return len(m[0])
}

// PatternClassifier maps explicit numbering markers to exact levels and
// strips recognized markers from display text. Precedence is the table
// order below; note that a single lowercase letter marker, including the
// ambiguous "i)", is classified H5, while only an unambiguous multi-letter
// lowercase roman marker ("ii)", "iv)") reaches the H6 rule.
type PatternClassifier struct {
	rules []markerRule
}

// NewPatternClassifier creates a classifier with the default marker policy.
func NewPatternClassifier() *PatternClassifier {
	return NewPatternClassifierWithConfig(DefaultPatternConfig())
}

// NewPatternClassifierWithConfig creates a classifier with a custom marker
// policy.
func NewPatternClassifierWithConfig(config PatternConfig) *PatternClassifier {
	return &PatternClassifier{rules: []markerRule{
		{name: "dotted-6", level: LevelH6, policy: true, match: regexMatch(dotted6Re)},
		{name: "dotted-5", level: LevelH5, policy: true, match: regexMatch(dotted5Re)},
		{name: "dotted-4", level: LevelH4, policy: true, match: regexMatch(dotted4Re)},
		{name: "dotted-3", level: LevelH3, policy: true, match: regexMatch(dotted3Re)},
		{name: "dotted-2", level: LevelH2, policy: true, match: regexMatch(dotted2Re)},
		{name: "dotted-1", level: LevelH1, policy: true, match: regexMatch(dotted1Re)},
		{name: "roman", level: LevelH1, policy: true, match: regexMatch(romanSimpleRe)},
		{name: "roman-full", level: LevelH1, policy: true, match: romanFullMatch},
		{name: "upper-letter", level: LevelH2, policy: true, match: regexMatch(upperLetterRe)},
		{name: "letter-digit", level: LevelH3, policy: true, match: regexMatch(letterDigitRe)},
		{name: "bullet", level: LevelH2, policy: config.BulletHeadings, match: regexMatch(bulletRe)},
		{name: "dash", level: LevelH3, policy: config.DashHeadings, match: regexMatch(dashRe)},
		{name: "paren-alnum", level: LevelH2, policy: true, match: regexMatch(parenAlnumRe)},
		{name: "bracket-num", level: LevelH2, policy: true, match: regexMatch(bracketNumRe)},
		{name: "lower-paren", level: LevelH5, policy: true, match: regexMatch(lowerParenRe)},
		{name: "roman-lower-paren", level: LevelH6, policy: true, match: regexMatch(romanLowParenRe)},
		{name: "asterisk", level: LevelH5, policy: config.AsteriskHeadings, match: regexMatch(asteriskRe)},
	}}
}

// DetectLevel returns the level implied by the text's numbering marker, or
// LevelNone when no policy-enabled marker matches. Fullwidth ASCII digits
// and punctuation are folded to their halfwidth forms first, so markers in
// CJK typography ("１．") hit the same rules.
func (c *PatternClassifier) DetectLevel(text string) Level {
	text = foldWidth(strings.TrimSpace(text))
	for _, rule := range c.rules {
		if !rule.policy {
			continue
		}
		if rule.match(text) > 0 {
			return rule.level
		}
	}
	return LevelNone
}

// Strip removes the recognized marker from the text, trimming surrounding
// whitespace. Stripping covers every rule in the table regardless of marker
// policy (cleaning is orthogonal to level assignment), plus two CJK cases:
// a Western numeric prefix followed by CJK text loses only the Western
// portion, preserving the CJK numbering marker behind it, and a standalone
// CJK numeral marker is removed when it opens the text. Strip is idempotent
// on its own output for marker-led headings.
func (c *PatternClassifier) Strip(text string) string {
	text = foldWidth(strings.TrimSpace(text))

	if m := westernPrefixRe.FindString(text); m != "" {
		rest := text[len(m):]
		if containsCJK(rest) {
			return strings.TrimSpace(rest)
		}
	}

	for _, rule := range c.rules {
		if n := rule.match(text); n > 0 {
			return strings.TrimSpace(text[n:])
		}
	}

	if m := cjkNumberRe.FindString(text); m != "" {
		return strings.TrimSpace(text[len(m):])
	}

	return text
}

// foldWidth normalizes fullwidth ASCII variants to their canonical
// halfwidth forms. Pure-ASCII text is returned unchanged without allocating.
func foldWidth(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	return width.Fold.String(s)
}

// containsCJK reports whether the string contains any CJK character.
func containsCJK(s string) bool {
	for _, r := range s {
		if r >= 0x3000 {
			return true
		}
	}
	return false
}
