// Package model provides value objects for API parameter validation.
package model

import (
	"fmt"
	"strings"
	"time"
)

// DateRange is the inclusive from/to window of a graph or record query.
type DateRange struct {
	from time.Time
	to   time.Time
}

// NewDateRange parses the from/to query parameters. Empty strings default to
// the latest week plus the preceding 52 weeks, mirroring the familiar
// one-year contribution graph.
func NewDateRange(fromStr, toStr string) (*DateRange, error) {
	var fromTime, toTime time.Time
	var err error

	if fromStr != "" {
		fromTime, err = parseDateTime(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from parameter, use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
		}
	} else {
		fromTime, _ = defaultDateRange()
	}

	if toStr != "" {
		toTime, err = parseDateTime(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to parameter, use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
		}
	} else {
		_, toTime = defaultDateRange()
	}

	return &DateRange{
		from: beginOfDay(fromTime),
		to:   endOfDay(toTime),
	}, nil
}

// From returns the start of the range.
func (d *DateRange) From() time.Time {
	return d.from
}

// To returns the end of the range.
func (d *DateRange) To() time.Time {
	return d.to
}

// defaultDateRange covers the latest week plus 52 weeks of history.
func defaultDateRange() (time.Time, time.Time) {
	now := time.Now()
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	return weekStart.AddDate(0, 0, -52*7), now
}

func beginOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, t.Location())
}

func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unable to parse date")
}

// Tags is a comma-separated tag filter.
type Tags struct {
	values []string
}

// NewTags splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func NewTags(tagsStr string) *Tags {
	if tagsStr == "" {
		return &Tags{}
	}
	var values []string
	for _, tag := range strings.Split(tagsStr, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			values = append(values, tag)
		}
	}
	return &Tags{values: values}
}

// Values returns the tag list.
func (t *Tags) Values() []string {
	return t.values
}

// IsEmpty reports whether no tags were given.
func (t *Tags) IsEmpty() bool {
	return len(t.values) == 0
}

// Timestamp is an optional RFC3339 timestamp parameter defaulting to now.
type Timestamp struct {
	value time.Time
}

// NewTimestamp parses an RFC3339 timestamp, using the current time for an
// empty string.
func NewTimestamp(s string) (*Timestamp, error) {
	if s == "" {
		return &Timestamp{value: time.Now()}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid datetime format, use ISO8601 format (YYYY-MM-DDThh:mm:ssZ)")
	}
	return &Timestamp{value: t}, nil
}

// Time returns the time value.
func (t *Timestamp) Time() time.Time {
	return t.value
}

// Value is a positive record value parameter defaulting to 1.
type Value struct {
	value int
}

// NewValue validates an optional record value.
func NewValue(val *int) (*Value, error) {
	if val == nil {
		return &Value{value: 1}, nil
	}
	if *val < 1 {
		return nil, fmt.Errorf("value must be a positive integer greater than 0")
	}
	return &Value{value: *val}, nil
}

// Int returns the integer value.
func (v *Value) Int() int {
	return v.value
}

// WeekStart selects the weekday that begins each grid column.
type WeekStart int

// NewWeekStart parses the week_start parameter: "" or "0" for Sunday,
// "1" for Monday.
func NewWeekStart(s string) (WeekStart, error) {
	switch s {
	case "", "0":
		return 0, nil
	case "1":
		return 1, nil
	}
	return 0, fmt.Errorf("week_start must be 0 (Sunday) or 1 (Monday)")
}
