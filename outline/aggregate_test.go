package outline

import "testing"

func TestScan_NumberedHeadings(t *testing.T) {
	scan := NewAggregator().NewScan(10)
	scan.ProcessPage(&Page{
		Number: 1,
		Lines: []Line{
			{Text: "1. Introduction", AvgFontSize: 13, VerticalPos: 0.1},
			{Text: "1.1 Background", AvgFontSize: 11, VerticalPos: 0.3},
			{Text: "1.1.1 Detail", AvgFontSize: 10, VerticalPos: 0.5},
		},
	})

	got := scan.Candidates()
	want := []struct {
		level Level
		text  string
	}{
		{LevelH1, "Introduction"},
		{LevelH2, "Background"},
		{LevelH3, "Detail"},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d candidates, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Level != w.level || got[i].Text != w.text {
			t.Errorf("candidate %d = %v %q, want %v %q", i, got[i].Level, got[i].Text, w.level, w.text)
		}
		if got[i].Page != 1 {
			t.Errorf("candidate %d page = %d, want 1", i, got[i].Page)
		}
	}

	// A numbering marker makes a line a section heading, never the title,
	// even when its text carries a title keyword.
	if scan.Title() != "" {
		t.Errorf("Expected no title, got %q", scan.Title())
	}
}

func TestScan_TitleDetectionWithContinuation(t *testing.T) {
	scan := NewAggregator().NewScan(10)
	scan.ProcessPage(&Page{
		Number: 1,
		Lines: []Line{
			{Text: "Software Requirements", AvgFontSize: 14, Bold: true, VerticalPos: 0.05},
			{Text: "Specification Overview", AvgFontSize: 12, VerticalPos: 0.1},
			{Text: "for the Fleet System", AvgFontSize: 10, VerticalPos: 0.15},
		},
	})

	want := "Software Requirements Specification Overview"
	if scan.Title() != want {
		t.Errorf("Title = %q, want %q", scan.Title(), want)
	}
	// The continuation line was consumed, and the trailing byline is not a
	// heading; no candidates remain.
	if len(scan.Candidates()) != 0 {
		t.Errorf("Expected no candidates, got %v", scan.Candidates())
	}
}

func TestScan_TOCEntriesExcluded(t *testing.T) {
	scan := NewAggregator().NewScan(10)
	scan.ProcessPage(&Page{
		Number: 1,
		Lines:  []Line{{Text: "Fleet Management Plan", AvgFontSize: 14, Bold: true, VerticalPos: 0.05}},
	})
	scan.ProcessPage(&Page{
		Number: 2,
		Lines: []Line{
			{Text: "Table of Contents", AvgFontSize: 10, VerticalPos: 0.05},
			{Text: "Revision History ......... 6", AvgFontSize: 10, VerticalPos: 0.2},
			{Text: "Introduction 8", AvgFontSize: 10, VerticalPos: 0.3},
			{Text: "Overview          12", AvgFontSize: 10, VerticalPos: 0.4},
		},
	})

	if scan.Title() != "Fleet Management Plan" {
		t.Fatalf("Title = %q, want %q", scan.Title(), "Fleet Management Plan")
	}
	got := scan.Candidates()
	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d: %v", len(got), got)
	}
	if got[0].Level != LevelH1 || got[0].Text != "Table of Contents" {
		t.Errorf("candidate = %v %q, want H1 \"Table of Contents\"", got[0].Level, got[0].Text)
	}
}

func TestScan_DuplicateSuppression(t *testing.T) {
	agg := NewAggregator()
	scan := agg.NewScan(10)
	page := &Page{
		Number: 1,
		Lines:  []Line{{Text: "1. Introduction", AvgFontSize: 12, VerticalPos: 0.1}},
	}
	scan.ProcessPage(page)
	page.Number = 2
	scan.ProcessPage(page)

	if got := len(scan.Candidates()); got != 1 {
		t.Errorf("Expected 1 candidate after duplicate page, got %d", got)
	}
}

// An H1 whose text matches the document title is the one sanctioned repeat:
// a section header recurring on every page.
func TestScan_RecurringTitleHeading(t *testing.T) {
	scan := NewAggregator().NewScan(10)
	scan.ProcessPage(&Page{
		Number: 1,
		Lines:  []Line{{Text: "Company Overview", AvgFontSize: 13, VerticalPos: 0.05}},
	})
	if scan.Title() != "Company Overview" {
		t.Fatalf("Title = %q, want %q", scan.Title(), "Company Overview")
	}

	for p := 2; p <= 3; p++ {
		scan.ProcessPage(&Page{
			Number: p,
			Lines:  []Line{{Text: "Company Overview", AvgFontSize: 10, VerticalPos: 0.05}},
		})
	}

	got := scan.Candidates()
	if len(got) != 2 {
		t.Fatalf("Expected the recurring heading on both pages, got %d candidates", len(got))
	}
	for i, c := range got {
		if c.Level != LevelH1 || c.Text != "Company Overview" {
			t.Errorf("candidate %d = %v %q, want H1 \"Company Overview\"", i, c.Level, c.Text)
		}
	}
}

func TestScan_ListLinesExcluded(t *testing.T) {
	scan := NewAggregator().NewScan(10)
	scan.ProcessPage(&Page{
		Number: 3,
		Lines: []Line{
			{Text: "• First point in heading-sized type", AvgFontSize: 11.5, VerticalPos: 0.4},
			{Text: "- Dashed follow-up item", AvgFontSize: 11.5, VerticalPos: 0.5},
		},
	})

	if got := len(scan.Candidates()); got != 0 {
		t.Errorf("Expected list lines to be excluded, got %d candidates", got)
	}
}

// A mid-document line scoring at title size lands at the top heading level;
// the title slot is taken.
func TestScan_OversizedBodyLineBecomesH1(t *testing.T) {
	scan := NewAggregator().NewScan(10)
	lines := []Line{
		{Text: "Lorem ipsum dolor sit amet", AvgFontSize: 10, VerticalPos: 0.3},
		{Text: "consectetur adipiscing elit", AvgFontSize: 10, VerticalPos: 0.35},
		{Text: "sed do eiusmod tempor incididunt", AvgFontSize: 10, VerticalPos: 0.4},
		{Text: "ut labore et dolore magna", AvgFontSize: 10, VerticalPos: 0.45},
		{Text: "quis nostrud exercitation ullamco", AvgFontSize: 10, VerticalPos: 0.5},
		{Text: "Massive Banner Text", AvgFontSize: 16, VerticalPos: 0.55},
	}
	scan.ProcessPage(&Page{Number: 4, Lines: lines})

	got := scan.Candidates()
	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d: %v", len(got), got)
	}
	if got[0].Level != LevelH1 || got[0].Text != "Massive Banner Text" {
		t.Errorf("candidate = %v %q, want H1 \"Massive Banner Text\"", got[0].Level, got[0].Text)
	}
}

func TestScan_ShortLinesSkipped(t *testing.T) {
	scan := NewAggregator().NewScan(10)
	scan.ProcessPage(&Page{
		Number: 1,
		Lines:  []Line{{Text: "Z", AvgFontSize: 16, VerticalPos: 0.5}},
	})

	if got := len(scan.Candidates()); got != 0 {
		t.Errorf("Expected single-character line to be skipped, got %d candidates", got)
	}
}
