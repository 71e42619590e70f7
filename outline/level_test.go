package outline

import (
	"encoding/json"
	"testing"
)

func TestLevelDepth(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelTitle, 0},
		{LevelH1, 1},
		{LevelH3, 3},
		{LevelH6, 6},
		{LevelNone, -1},
	}

	for _, tt := range tests {
		if got := tt.level.Depth(); got != tt.want {
			t.Errorf("%v.Depth() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelDeeperShallowerClamped(t *testing.T) {
	if got := LevelH1.Deeper(); got != LevelH2 {
		t.Errorf("H1.Deeper() = %v, want H2", got)
	}
	if got := LevelH6.Deeper(); got != LevelH6 {
		t.Errorf("H6.Deeper() = %v, want H6", got)
	}
	if got := LevelH3.Shallower(); got != LevelH2 {
		t.Errorf("H3.Shallower() = %v, want H2", got)
	}
	if got := LevelH1.Shallower(); got != LevelH1 {
		t.Errorf("H1.Shallower() = %v, want H1", got)
	}
	if got := LevelTitle.Shallower(); got != LevelTitle {
		t.Errorf("TITLE.Shallower() = %v, want TITLE", got)
	}
}

func TestLevelStringRoundTrip(t *testing.T) {
	for level := LevelTitle; level <= LevelH6; level++ {
		if got := ParseLevel(level.String()); got != level {
			t.Errorf("ParseLevel(%q) = %v, want %v", level.String(), got, level)
		}
	}
	if got := ParseLevel("H9"); got != LevelNone {
		t.Errorf("ParseLevel(\"H9\") = %v, want LevelNone", got)
	}
}

func TestLevelJSON(t *testing.T) {
	data, err := json.Marshal(LevelH2)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"H2"` {
		t.Errorf("Marshal(H2) = %s, want \"H2\"", data)
	}

	var level Level
	if err := json.Unmarshal([]byte(`"TITLE"`), &level); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if level != LevelTitle {
		t.Errorf("Unmarshal(\"TITLE\") = %v, want LevelTitle", level)
	}
}

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"Arial-Bold", true},
		{"Arial-BoldMT", true},
		{"HelveticaNeue-Heavy", true},
		{"Futura-Demi", true},
		{"SomeFont-Black", true},
		{"Roboto-Medium", true},
		{"MS-PGothic", true},
		{"SimHei", true},
		{"Arial-Regular", false},
		{"Times-Italic", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsBoldFont(tt.font); got != tt.want {
			t.Errorf("IsBoldFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}
