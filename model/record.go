package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is a single activity entry counted into the heatmap of its project.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Project   string    `json:"project"`
	Value     int       `json:"value"`
	Timestamp time.Time `json:"timestamp"`
	Tags      []string  `json:"tags"`
}

// NewRecord creates a Record with a generated ID.
func NewRecord(timestamp time.Time, project string, value int, tags []string) (*Record, error) {
	if tags == nil {
		tags = []string{}
	}
	rec := &Record{
		ID:        uuid.New(),
		Project:   project,
		Value:     value,
		Timestamp: timestamp,
		Tags:      tags,
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// LoadRecord rebuilds a Record loaded from storage. The ID is required.
func LoadRecord(id uuid.UUID, timestamp time.Time, project string, value int, tags []string) (*Record, error) {
	if id == uuid.Nil {
		return nil, NewValidationError("id is required for loaded record")
	}
	if tags == nil {
		tags = []string{}
	}
	rec := &Record{
		ID:        id,
		Project:   project,
		Value:     value,
		Timestamp: timestamp,
		Tags:      tags,
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Validate checks the record fields.
func (r *Record) Validate() error {
	if r.Timestamp.IsZero() {
		return NewValidationError("timestamp is required")
	}
	if r.Project == "" {
		return NewValidationError("project is required")
	}
	if r.Value < 1 {
		return NewValidationError("value must be a positive integer")
	}
	for _, tag := range r.Tags {
		if tag == "" {
			return NewValidationError("tag cannot be empty")
		}
		// tags travel comma-separated in query strings
		if strings.ContainsAny(tag, ", ") {
			return NewValidationError("tag cannot contain commas or spaces")
		}
	}
	return nil
}
