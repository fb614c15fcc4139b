package heatmap

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildGrid_MondayAlignment(t *testing.T) {
	// 2024-01-03 is a Wednesday; with Monday week start the grid must begin
	// two days earlier, on Monday 2024-01-01.
	opts := NewOptions(nil, date(2024, time.January, 3), date(2024, time.January, 7))
	opts.WeekStart = 1

	g := BuildGrid(opts)
	if len(g.Cells) == 0 {
		t.Fatal("expected cells")
	}
	first := g.Cells[0]
	if !first.Date.Equal(date(2024, time.January, 1)) {
		t.Errorf("aligned start = %s, want 2024-01-01", first.Date.Format(DateFormat))
	}
	if !first.Padding {
		t.Error("cell before the requested start must be padding")
	}
	if first.Date.Weekday() != time.Monday {
		t.Errorf("aligned start weekday = %s, want Monday", first.Date.Weekday())
	}
}

func TestBuildGrid_SundayAlignment(t *testing.T) {
	// 2024-01-01 is a Monday; with Sunday week start the grid begins on
	// Sunday 2023-12-31.
	opts := NewOptions(nil, date(2024, time.January, 1), date(2024, time.January, 1))

	g := BuildGrid(opts)
	if len(g.Cells) != 2 {
		t.Fatalf("got %d cells, want 2 (one padding + one visible)", len(g.Cells))
	}
	if !g.Cells[0].Padding || g.Cells[1].Padding {
		t.Error("expected exactly the first cell to be padding")
	}
}

func TestBuildGrid_WeeksIsCeilOfDays(t *testing.T) {
	tests := []struct {
		start, end time.Time
		weeks      int
	}{
		// 2024-01-07 is a Sunday, so no padding is added
		{date(2024, time.January, 7), date(2024, time.January, 13), 1},  // 7 days
		{date(2024, time.January, 7), date(2024, time.January, 14), 2},  // 8 days
		{date(2024, time.January, 7), date(2024, time.February, 3), 4},  // 28 days
		{date(2024, time.January, 7), date(2024, time.February, 4), 5},  // 29 days
	}
	for _, tt := range tests {
		g := BuildGrid(NewOptions(nil, tt.start, tt.end))
		if g.Weeks != tt.weeks {
			t.Errorf("range %s..%s: weeks = %d, want %d",
				tt.start.Format(DateFormat), tt.end.Format(DateFormat), g.Weeks, tt.weeks)
		}
		if len(g.Cells) > g.Weeks*7 {
			t.Errorf("more cells (%d) than grid slots (%d)", len(g.Cells), g.Weeks*7)
		}
	}
}

func TestBuildGrid_InvertedRangeYieldsNoCells(t *testing.T) {
	opts := NewOptions(nil, date(2024, time.February, 1), date(2024, time.January, 1))
	g := BuildGrid(opts)
	if len(g.Cells) != 0 {
		t.Errorf("got %d cells for inverted range, want 0", len(g.Cells))
	}
	if g.Weeks != 0 {
		t.Errorf("weeks = %d, want 0", g.Weeks)
	}
}

func TestBuildGrid_MonthLabelsChronologicalAndDistinct(t *testing.T) {
	opts := NewOptions(nil, date(2024, time.January, 15), date(2024, time.March, 5))
	g := BuildGrid(opts)

	want := []string{"Jan", "Feb", "Mar"}
	if len(g.MonthLabels) != len(want) {
		t.Fatalf("got %d month labels, want %d", len(g.MonthLabels), len(want))
	}
	prevX := -1
	for i, ml := range g.MonthLabels {
		if ml.Text != want[i] {
			t.Errorf("label %d = %q, want %q", i, ml.Text, want[i])
		}
		if ml.X <= prevX && i > 0 {
			t.Errorf("label %q at x=%d not after previous x=%d", ml.Text, ml.X, prevX)
		}
		prevX = ml.X
	}
}

func TestBuildGrid_PaddingExcludedFromMonthLabels(t *testing.T) {
	// 2024-02-01 is a Thursday; the padding cells belong to January and
	// must not produce a January label.
	opts := NewOptions(nil, date(2024, time.February, 1), date(2024, time.February, 10))
	g := BuildGrid(opts)

	if len(g.MonthLabels) != 1 || g.MonthLabels[0].Text != "Feb" {
		t.Fatalf("got labels %v, want single Feb", g.MonthLabels)
	}
}

func TestBuildGrid_CountsAndMaxCount(t *testing.T) {
	data := map[string]int{"2024-01-01": 5}
	opts := NewOptions(data, date(2024, time.January, 1), date(2024, time.January, 1))
	g := BuildGrid(opts)

	if g.MaxCount != 5 {
		t.Errorf("max count = %d, want 5", g.MaxCount)
	}
	var visible *Cell
	for i := range g.Cells {
		if !g.Cells[i].Padding {
			visible = &g.Cells[i]
		}
	}
	if visible == nil {
		t.Fatal("no visible cell")
	}
	if visible.Count != 5 {
		t.Errorf("visible cell count = %d, want 5", visible.Count)
	}
}

func TestBuildGrid_EmptyDataFloorsMaxCount(t *testing.T) {
	opts := NewOptions(nil, date(2024, time.January, 1), date(2024, time.January, 31))
	g := BuildGrid(opts)

	if g.MaxCount != 1 {
		t.Errorf("max count = %d, want floor of 1", g.MaxCount)
	}
	for _, c := range g.Cells {
		if c.Count != 0 {
			t.Errorf("cell %s count = %d, want 0", c.Date.Format(DateFormat), c.Count)
		}
	}
}

func TestBuildGrid_CellOffsets(t *testing.T) {
	opts := NewOptions(nil, date(2024, time.January, 7), date(2024, time.January, 20))
	step := opts.CellSize + opts.CellSpacing

	g := BuildGrid(opts)
	for i, c := range g.Cells {
		if c.WeekIndex != i/7 || c.DayIndex != i%7 {
			t.Fatalf("cell %d indices = (%d,%d), want (%d,%d)", i, c.WeekIndex, c.DayIndex, i/7, i%7)
		}
		if c.X != c.WeekIndex*step || c.Y != c.DayIndex*step {
			t.Fatalf("cell %d offsets = (%d,%d), want (%d,%d)", i, c.X, c.Y, c.WeekIndex*step, c.DayIndex*step)
		}
	}
}

func TestBuildGrid_CanvasDimensions(t *testing.T) {
	opts := NewOptions(nil, date(2024, time.January, 7), date(2024, time.January, 20))
	step := opts.CellSize + opts.CellSpacing

	g := BuildGrid(opts)
	if want := g.Weeks*step + 50; g.Width != want {
		t.Errorf("width = %d, want %d", g.Width, want)
	}
	if want := 7*step + 20; g.Height != want {
		t.Errorf("height = %d, want %d", g.Height, want)
	}
}
