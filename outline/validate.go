package outline

import "regexp"

var (
	// Two-segment numeric prefix with heading text behind it ("4.1 Student
	// Portal"). Deeper prefixes do not match: "1.2.3" has no whitespace
	// after the second segment.
	twoSegSectionRe = regexp.MustCompile(`^\d+\.\d+\s+\w`)

	// Bare two-segment numeric prefix, used for the H1/H1/H2 demotion check.
	twoSegPrefixRe = regexp.MustCompile(`^\d+\.\d+`)
)

// HierarchyValidator repairs a draft candidate sequence into a structurally
// consistent hierarchy. It runs three passes in order, each mutating levels
// in place and preserving source order:
//
//  1. local pattern-forced corrections (and flagging list items for removal),
//  2. skipped-depth repair, clamping any jump deeper than one step,
//  3. global consistency: numbered-H1 demotion and collapse of excessive
//     nesting.
//
// Candidates flagged for removal are deleted only after all passes finish.
type HierarchyValidator struct {
	markers PatternConfig
}

// NewHierarchyValidator creates a validator with the default marker policy.
func NewHierarchyValidator() *HierarchyValidator {
	return NewHierarchyValidatorWithConfig(DefaultPatternConfig())
}

// NewHierarchyValidatorWithConfig creates a validator that honors a custom
// marker policy: entries led by a policy-enabled heading marker are kept.
func NewHierarchyValidatorWithConfig(markers PatternConfig) *HierarchyValidator {
	return &HierarchyValidator{markers: markers}
}

// Validate repairs the draft sequence and returns it with flagged entries
// removed. Pattern checks run against RawText, since the cleaned display
// text has its numbering marker stripped.
func (v *HierarchyValidator) Validate(outline []Candidate) []Candidate {
	if len(outline) == 0 {
		return outline
	}

	v.forcePatternLevels(outline)
	v.repairSkippedDepths(outline)
	v.enforceConsistency(outline)

	kept := outline[:0]
	for _, c := range outline {
		if !c.remove {
			kept = append(kept, c)
		}
	}
	return kept
}

// forcePatternLevels applies local, pattern-driven corrections: a
// two-segment numeric prefix always means H2 regardless of how the line was
// scored; lowercase letter and lowercase roman sub-list markers directly
// under H4/H5 take the next depth; bullet or dash led entries are list
// items, not headings, and are flagged for removal — unless the marker
// policy enables that convention as a heading form.
func (v *HierarchyValidator) forcePatternLevels(outline []Candidate) {
	for i := range outline {
		raw := outline[i].RawText

		switch {
		case twoSegSectionRe.MatchString(raw):
			outline[i].Level = LevelH2
		case i > 0 && outline[i-1].Level == LevelH4 && lowerParenRe.MatchString(raw):
			outline[i].Level = LevelH5
		case i > 0 && outline[i-1].Level == LevelH5 && romanLowParenRe.MatchString(raw):
			outline[i].Level = LevelH6
		}

		if v.markers.listItem(raw) {
			outline[i].remove = true
		}
	}
}

// repairSkippedDepths clamps every entry that sits more than one depth
// below its predecessor to exactly one depth below it. Violations are
// collected against the incoming levels first and applied afterwards; the
// pass only rewrites levels, so application order cannot change the result.
func (v *HierarchyValidator) repairSkippedDepths(outline []Candidate) {
	type correction struct {
		index int
		level Level
	}
	var corrections []correction

	for i := 1; i < len(outline); i++ {
		if outline[i].Level.Depth() > outline[i-1].Level.Depth()+1 {
			corrections = append(corrections, correction{i, outline[i-1].Level.Deeper()})
		}
	}
	for _, c := range corrections {
		outline[c.index].Level = c.level
	}
}

// enforceConsistency applies document-wide structural fixes.
func (v *HierarchyValidator) enforceConsistency(outline []Candidate) {
	if len(outline) < 3 {
		return
	}

	// An H1 wedged between an H1 and an H2 that carries a two-segment
	// numeric prefix is a subsection the earlier scoring overshot.
	for i := 1; i < len(outline)-1; i++ {
		if outline[i-1].Level == LevelH1 && outline[i].Level == LevelH1 &&
			outline[i+1].Level == LevelH2 && twoSegPrefixRe.MatchString(outline[i].RawText) {
			outline[i].Level = LevelH2
		}
	}

	// Collapse excessive nesting: when the two deepest levels in use hold
	// more entries than the two shallowest, the deepest level is
	// fragmentation rather than structure; promote it one step.
	counts := make(map[Level]int)
	for _, c := range outline {
		if c.Level.IsHeading() {
			counts[c.Level]++
		}
	}
	var present []Level
	for level := LevelH1; level <= LevelH6; level++ {
		if counts[level] > 0 {
			present = append(present, level)
		}
	}
	if len(present) < 2 {
		return
	}
	deepest := present[len(present)-1]
	deepCount := counts[deepest] + counts[present[len(present)-2]]
	shallowCount := counts[present[0]] + counts[present[1]]
	if deepCount > shallowCount {
		for i := range outline {
			if outline[i].Level == deepest {
				outline[i].Level = outline[i].Level.Shallower()
			}
		}
	}
}
