package outline

import "testing"

func levelsOf(outline []Candidate) []Level {
	levels := make([]Level, len(outline))
	for i, c := range outline {
		levels[i] = c.Level
	}
	return levels
}

func TestValidate_RepairsSkippedDepth(t *testing.T) {
	v := NewHierarchyValidator()

	got := v.Validate([]Candidate{
		{Level: LevelH1, Text: "Overview", RawText: "1. Overview"},
		{Level: LevelH3, Text: "Detail", RawText: "Detail heading"},
	})

	if len(got) != 2 || got[0].Level != LevelH1 || got[1].Level != LevelH2 {
		t.Errorf("Expected [H1 H2], got %v", levelsOf(got))
	}
}

// Violations are detected against the incoming levels and applied afterwards:
// H1/H3/H5 repairs to H1/H2/H4, not the H1/H2/H3 a sequential rewrite would
// produce.
func TestValidate_SkippedDepthComputeThenApply(t *testing.T) {
	v := NewHierarchyValidator()

	got := v.Validate([]Candidate{
		{Level: LevelH1, Text: "Alpha", RawText: "Alpha"},
		{Level: LevelH3, Text: "Beta", RawText: "Beta"},
		{Level: LevelH5, Text: "Gamma", RawText: "Gamma"},
	})

	want := []Level{LevelH1, LevelH2, LevelH4}
	for i, w := range want {
		if got[i].Level != w {
			t.Errorf("entry %d = %v, want %v", i, got[i].Level, w)
		}
	}
}

func TestValidate_ForcesTwoSegmentPrefixToH2(t *testing.T) {
	v := NewHierarchyValidator()

	got := v.Validate([]Candidate{
		{Level: LevelH1, Text: "Student Portal", RawText: "4.1 Student Portal"},
	})

	if len(got) != 1 || got[0].Level != LevelH2 {
		t.Errorf("Expected [H2], got %v", levelsOf(got))
	}
}

func TestValidate_SubListMarkersUnderDeepHeadings(t *testing.T) {
	v := NewHierarchyValidator()

	got := v.Validate([]Candidate{
		{Level: LevelH4, Text: "Deep Topic", RawText: "Some Deep Topic"},
		{Level: LevelH2, Text: "Option", RawText: "a) Option"},
		{Level: LevelH2, Text: "Item", RawText: "ii) Item"},
	})

	want := []Level{LevelH4, LevelH5, LevelH6}
	for i, w := range want {
		if got[i].Level != w {
			t.Errorf("entry %d = %v, want %v", i, got[i].Level, w)
		}
	}
}

// List items flagged in the first pass still participate in depth repair and
// are deleted only after all passes.
func TestValidate_RemovesListItems(t *testing.T) {
	v := NewHierarchyValidator()

	got := v.Validate([]Candidate{
		{Level: LevelH1, Text: "Introduction", RawText: "1. Introduction"},
		{Level: LevelH2, Text: "bullet item", RawText: "• bullet item"},
		{Level: LevelH2, Text: "Background", RawText: "1.1 Background"},
	})

	if len(got) != 2 {
		t.Fatalf("Expected 2 entries after list removal, got %d", len(got))
	}
	if got[0].Text != "Introduction" || got[1].Text != "Background" {
		t.Errorf("Expected list item removed, got %v", got)
	}
}

// A marker convention enabled as a heading form survives validation; with
// the default policy the same entries are removed as list items.
func TestValidate_KeepsPolicyEnabledMarkers(t *testing.T) {
	entries := func() []Candidate {
		return []Candidate{
			{Level: LevelH1, Text: "Components", RawText: "1. Components"},
			{Level: LevelH2, Text: "Buttons", RawText: "• Buttons"},
			{Level: LevelH3, Text: "Links", RawText: "- Links"},
		}
	}

	enabled := NewHierarchyValidatorWithConfig(PatternConfig{
		BulletHeadings: true,
		DashHeadings:   true,
	})
	got := enabled.Validate(entries())
	if len(got) != 3 {
		t.Fatalf("Expected all entries kept under enabled policy, got %d: %v", len(got), got)
	}
	if got[1].Text != "Buttons" || got[2].Text != "Links" {
		t.Errorf("Expected marker entries kept, got %v", got)
	}

	got = NewHierarchyValidator().Validate(entries())
	if len(got) != 1 || got[0].Text != "Components" {
		t.Errorf("Expected marker entries removed under default policy, got %v", got)
	}
}

func TestValidate_DemotesNumberedH1BetweenH1AndH2(t *testing.T) {
	v := NewHierarchyValidator()

	got := v.Validate([]Candidate{
		{Level: LevelH1, Text: "Overview", RawText: "1. Overview"},
		{Level: LevelH1, Text: "Goals", RawText: "2.1. Goals"},
		{Level: LevelH2, Text: "Later", RawText: "2.2 Later"},
	})

	want := []Level{LevelH1, LevelH2, LevelH2}
	for i, w := range want {
		if got[i].Level != w {
			t.Errorf("entry %d = %v, want %v", i, got[i].Level, w)
		}
	}
}

// When the two deepest levels in use outnumber the two shallowest, the
// deepest level is fragmentation; its entries are promoted one step.
func TestValidate_CollapsesExcessiveNesting(t *testing.T) {
	v := NewHierarchyValidator()

	got := v.Validate([]Candidate{
		{Level: LevelH1, Text: "Alpha", RawText: "Alpha"},
		{Level: LevelH2, Text: "Beta", RawText: "Beta"},
		{Level: LevelH3, Text: "Gamma", RawText: "Gamma"},
		{Level: LevelH4, Text: "Delta", RawText: "Delta"},
		{Level: LevelH5, Text: "Epsilon", RawText: "Epsilon"},
		{Level: LevelH5, Text: "Zeta", RawText: "Zeta"},
		{Level: LevelH6, Text: "Eta", RawText: "Eta"},
		{Level: LevelH6, Text: "Theta", RawText: "Theta"},
		{Level: LevelH6, Text: "Iota", RawText: "Iota"},
	})

	for i := 6; i < 9; i++ {
		if got[i].Level != LevelH5 {
			t.Errorf("entry %d = %v, want H5 after collapse", i, got[i].Level)
		}
	}
	if got[4].Level != LevelH5 || got[5].Level != LevelH5 {
		t.Errorf("existing H5 entries should be untouched, got %v", levelsOf(got))
	}
}

func TestValidate_NoSkippedDepthsAfterward(t *testing.T) {
	v := NewHierarchyValidator()

	got := v.Validate([]Candidate{
		{Level: LevelH1, Text: "One", RawText: "One"},
		{Level: LevelH4, Text: "Two", RawText: "Two"},
		{Level: LevelH2, Text: "Three", RawText: "Three"},
		{Level: LevelH6, Text: "Four", RawText: "Four"},
	})

	for i := 1; i < len(got); i++ {
		if got[i].Level.Depth() > got[i-1].Level.Depth()+1 {
			t.Errorf("skipped depth at %d: %v after %v", i, got[i].Level, got[i-1].Level)
		}
	}
}

func TestValidate_Empty(t *testing.T) {
	v := NewHierarchyValidator()
	if got := v.Validate(nil); len(got) != 0 {
		t.Errorf("Expected empty result, got %v", got)
	}
}
