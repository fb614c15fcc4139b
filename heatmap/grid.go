package heatmap

import "time"

// Fixed margins reserved for the weekday label column and month label row.
const (
	weekdayColWidth = 50
	monthRowHeight  = 20
)

// Cell is one day square of the grid with its computed canvas offsets.
// Offsets are relative to the cell area; rendering adds the label margins.
type Cell struct {
	Date      time.Time
	Count     int
	WeekIndex int
	DayIndex  int
	X, Y      int
	// Padding marks alignment cells before the requested start date.
	// They are drawn but never contribute a month label.
	Padding bool
}

// MonthLabel is the abbreviation of a month at its first visible column.
type MonthLabel struct {
	Text string
	X    int
}

// Grid is the computed layout for one rendering pass.
type Grid struct {
	Cells       []Cell
	MonthLabels []MonthLabel
	Weeks       int
	MaxCount    int // max over all data values, floored at 1
	Width       int // canvas width incl. weekday label column
	Height      int // canvas height incl. month label row
}

// BuildGrid computes the aligned day grid, month labels and canvas
// dimensions for the given options. An end date before the aligned start
// yields a grid with no cells.
func BuildGrid(opts *Options) *Grid {
	o := opts.normalized()
	step := o.CellSize + o.CellSpacing

	start := truncateToMidnight(o.StartDate)
	end := truncateToMidnight(o.EndDate)

	// shift back so the first column begins on the configured weekday
	back := (int(start.Weekday()) - o.WeekStart + 7) % 7
	aligned := start.AddDate(0, 0, -back)

	totalDays := daysBetween(aligned, end) + 1
	if totalDays < 0 {
		totalDays = 0
	}
	weeks := (totalDays + 6) / 7

	g := &Grid{
		Cells:    make([]Cell, 0, totalDays),
		Weeks:    weeks,
		MaxCount: 1,
		Width:    weeks*step + weekdayColWidth,
		Height:   7*step + monthRowHeight,
	}

	for _, v := range o.Data {
		if v > g.MaxCount {
			g.MaxCount = v
		}
	}

	seenMonths := make(map[int]bool)
	for i := 0; i < totalDays; i++ {
		date := aligned.AddDate(0, 0, i)
		cell := Cell{
			Date:      date,
			Count:     o.Data[date.Format(DateFormat)],
			WeekIndex: i / 7,
			DayIndex:  i % 7,
			X:         (i / 7) * step,
			Y:         (i % 7) * step,
			Padding:   date.Before(start),
		}
		if !cell.Padding {
			key := date.Year()*12 + int(date.Month())
			if !seenMonths[key] {
				seenMonths[key] = true
				g.MonthLabels = append(g.MonthLabels, MonthLabel{
					Text: date.Format("Jan"),
					X:    cell.X,
				})
			}
		}
		g.Cells = append(g.Cells, cell)
	}

	return g
}

// daysBetween returns the whole-day difference between two midnights.
func daysBetween(from, to time.Time) int {
	hours := to.Sub(from).Hours()
	if hours < 0 {
		return -int((-hours + 12) / 24)
	}
	return int((hours + 12) / 24)
}

// truncateToMidnight zeroes the time component.
func truncateToMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
