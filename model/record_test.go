package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewRecord(t *testing.T) {
	timestamp := time.Date(2025, 5, 21, 14, 30, 0, 0, time.Local)

	record, err := NewRecord(timestamp, "exercise", 1, nil)
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	if record.ID == uuid.Nil {
		t.Error("Expected ID to be generated, got Nil UUID")
	}
	if !record.Timestamp.Equal(timestamp) {
		t.Errorf("Expected Timestamp to be %v, got %v", timestamp, record.Timestamp)
	}
	if record.Project != "exercise" {
		t.Errorf("Expected project to be exercise, got %s", record.Project)
	}
	if record.Tags == nil {
		t.Error("Expected tags to default to an empty slice")
	}
}

func TestRecordValidate(t *testing.T) {
	ts := time.Date(2025, 5, 21, 14, 30, 0, 0, time.Local)

	if _, err := LoadRecord(uuid.New(), ts, "exercise", 1, []string{"run"}); err != nil {
		t.Fatalf("Failed to create valid record: %v", err)
	}

	if _, err := LoadRecord(uuid.Nil, ts, "exercise", 1, nil); err == nil {
		t.Error("Expected error for empty ID, got nil")
	}
	if _, err := NewRecord(time.Time{}, "exercise", 1, nil); err == nil {
		t.Error("Expected error for zero timestamp, got nil")
	}
	if _, err := NewRecord(ts, "", 1, nil); err == nil {
		t.Error("Expected error for empty project, got nil")
	}
	if _, err := NewRecord(ts, "exercise", 0, nil); err == nil {
		t.Error("Expected error for zero value, got nil")
	}
	if _, err := NewRecord(ts, "exercise", 1, []string{"has space"}); err == nil {
		t.Error("Expected error for tag with space, got nil")
	}
}
