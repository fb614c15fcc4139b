// Package heatmap generates GitHub-like calendar activity heatmaps as SVG strings.
package heatmap

import (
	"fmt"
	"strconv"
	"time"
)

// DateFormat is the key format of the Data map.
const DateFormat = "2006-01-02"

// Cell shape kinds.
const (
	CellRect   = "rect"
	CellCircle = "circle"
)

// TooltipFunc formats the hover text for a single day.
type TooltipFunc func(date time.Time, count int) string

// Options configures a heatmap rendering. Data, StartDate and EndDate are
// required; every other field has a usable default filled in by NewOptions.
type Options struct {
	Data      map[string]int // ISO date ("2006-01-02") -> count
	StartDate time.Time
	EndDate   time.Time

	BaseColor   string // hex color for max intensity
	CellSize    int    // edge length / diameter (px)
	CellSpacing int    // gap between cells (px)
	WeekStart   int    // 0 = Sunday, 1 = Monday
	Width       string // container width, numeric px or CSS length
	Scrollable  bool   // allow horizontal overflow scrolling
	CellType    string // CellRect or CellCircle

	Tooltip           TooltipFunc // nil uses DefaultTooltip
	MonthLabelColor   string
	WeekdayLabelColor string

	// Hover, when non-nil and active, adds a floating tooltip overlay
	// anchored at the stored pointer coordinates.
	Hover *HoverState
}

// NewOptions returns Options for the given data and range with all defaults set.
func NewOptions(data map[string]int, start, end time.Time) *Options {
	return &Options{
		Data:              data,
		StartDate:         start,
		EndDate:           end,
		BaseColor:         "#239a3b",
		CellSize:          14,
		CellSpacing:       4,
		WeekStart:         0,
		Width:             "100%",
		Scrollable:        true,
		CellType:          CellRect,
		MonthLabelColor:   "#000",
		WeekdayLabelColor: "#000",
	}
}

// normalized fills zero-valued fields so that a hand-built Options behaves
// like one from NewOptions. Scrollable is left as given since false is a
// meaningful setting.
func (o *Options) normalized() *Options {
	n := *o
	if n.BaseColor == "" {
		n.BaseColor = "#239a3b"
	}
	if n.CellSize == 0 {
		n.CellSize = 14
	}
	if n.CellSpacing == 0 {
		n.CellSpacing = 4
	}
	if n.Width == "" {
		n.Width = "100%"
	}
	if n.CellType == "" {
		n.CellType = CellRect
	}
	if n.MonthLabelColor == "" {
		n.MonthLabelColor = "#000"
	}
	if n.WeekdayLabelColor == "" {
		n.WeekdayLabelColor = "#000"
	}
	return &n
}

// tooltipText formats the hover text for one cell, falling back to
// DefaultTooltip when no custom formatter is configured.
func (o *Options) tooltipText(date time.Time, count int) string {
	if o.Tooltip != nil {
		return o.Tooltip(date, count)
	}
	return DefaultTooltip(date, count)
}

// DefaultTooltip renders "<count> event(s) on <Mon dd>" with correct
// pluralization for counts other than one.
func DefaultTooltip(date time.Time, count int) string {
	noun := "events"
	if count == 1 {
		noun = "event"
	}
	return fmt.Sprintf("%d %s on %s", count, noun, date.Format("Jan 02"))
}

// cssWidth turns a bare number into a pixel length and passes CSS lengths
// through unchanged.
func cssWidth(w string) string {
	if _, err := strconv.Atoi(w); err == nil {
		return w + "px"
	}
	return w
}
