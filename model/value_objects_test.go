package model

import (
	"testing"
	"time"
)

func TestNewDateRange(t *testing.T) {
	dr, err := NewDateRange("2025-01-01", "2025-03-31")
	if err != nil {
		t.Fatalf("Failed to create date range: %v", err)
	}
	if dr.From().Hour() != 0 {
		t.Error("Expected from to be normalized to the beginning of the day")
	}
	if dr.To().Hour() != 23 {
		t.Error("Expected to to be normalized to the end of the day")
	}

	if _, err := NewDateRange("not-a-date", ""); err == nil {
		t.Error("Expected error for malformed from, got nil")
	}
	if _, err := NewDateRange("", "also-bad"); err == nil {
		t.Error("Expected error for malformed to, got nil")
	}

	// empty parameters default to roughly the past year
	dr, err = NewDateRange("", "")
	if err != nil {
		t.Fatalf("Failed to create default date range: %v", err)
	}
	span := dr.To().Sub(dr.From())
	if span < 52*7*24*time.Hour || span > 54*7*24*time.Hour {
		t.Errorf("Expected a default span around 53 weeks, got %v", span)
	}
}

func TestNewTags(t *testing.T) {
	tags := NewTags("run, swim,,bike ")
	want := []string{"run", "swim", "bike"}
	got := tags.Values()
	if len(got) != len(want) {
		t.Fatalf("Expected %d tags, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tag %d = %q, want %q", i, got[i], want[i])
		}
	}

	if !NewTags("").IsEmpty() {
		t.Error("Expected empty input to produce empty tags")
	}
}

func TestNewTimestamp(t *testing.T) {
	ts, err := NewTimestamp("2025-05-21T14:30:00Z")
	if err != nil {
		t.Fatalf("Failed to parse timestamp: %v", err)
	}
	if ts.Time().Year() != 2025 {
		t.Errorf("Unexpected year %d", ts.Time().Year())
	}

	ts, err = NewTimestamp("")
	if err != nil {
		t.Fatalf("Empty timestamp must default to now: %v", err)
	}
	if time.Since(ts.Time()) > time.Minute {
		t.Error("Default timestamp is not close to now")
	}

	if _, err := NewTimestamp("2025-05-21"); err == nil {
		t.Error("Expected error for date without time, got nil")
	}
}

func TestNewValue(t *testing.T) {
	v, err := NewValue(nil)
	if err != nil || v.Int() != 1 {
		t.Errorf("Expected default value 1, got %v, %v", v, err)
	}

	three := 3
	v, err = NewValue(&three)
	if err != nil || v.Int() != 3 {
		t.Errorf("Expected value 3, got %v, %v", v, err)
	}

	zero := 0
	if _, err := NewValue(&zero); err == nil {
		t.Error("Expected error for zero value, got nil")
	}
}

func TestNewWeekStart(t *testing.T) {
	for input, want := range map[string]WeekStart{"": 0, "0": 0, "1": 1} {
		got, err := NewWeekStart(input)
		if err != nil || got != want {
			t.Errorf("NewWeekStart(%q) = %v, %v; want %v", input, got, err, want)
		}
	}
	if _, err := NewWeekStart("2"); err == nil {
		t.Error("Expected error for unsupported week start, got nil")
	}
}
