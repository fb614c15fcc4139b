package model

import (
	"strings"
	"time"
)

// Project groups activity records under one heatmap.
type Project struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProject creates a Project with fresh timestamps.
func NewProject(name, description string) (*Project, error) {
	now := time.Now()
	p := &Project{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadProject rebuilds a Project loaded from storage.
func LoadProject(name, description string, createdAt, updatedAt time.Time) (*Project, error) {
	p := &Project{
		Name:        name,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the project fields.
func (p *Project) Validate() error {
	if p.Name == "" {
		return NewValidationError("name is required")
	}
	// the name appears in URL paths
	if strings.ContainsAny(p.Name, "/ ") {
		return NewValidationError("name cannot contain slashes or spaces")
	}
	if p.CreatedAt.IsZero() {
		return NewValidationError("created_at is required")
	}
	if p.UpdatedAt.IsZero() {
		return NewValidationError("updated_at is required")
	}
	return nil
}
