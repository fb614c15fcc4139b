// Package store persists projects and activity records.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/mtsk/calheat/model"
)

// RecordStore stores and retrieves activity records.
type RecordStore interface {
	// CreateRecord inserts a new record with its tags.
	CreateRecord(ctx context.Context, record *model.Record) error
	// GetRecord fetches one record by ID.
	GetRecord(ctx context.Context, id uuid.UUID) (*model.Record, error)
	// DeleteRecord removes one record by ID.
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	// CountsByDay sums record values per calendar day (UTC) for a project
	// within [from, to], optionally restricted to records carrying all of
	// the given tags. Keys use the "2006-01-02" format.
	CountsByDay(ctx context.Context, project string, from, to time.Time, tags []string) (map[string]int, error)
}

// ProjectStore stores and retrieves projects.
type ProjectStore interface {
	CreateProject(ctx context.Context, project *model.Project) error
	GetProject(ctx context.Context, name string) (*model.Project, error)
	UpdateProject(ctx context.Context, project *model.Project) error
	// DeleteProject removes a project together with its records and tags.
	DeleteProject(ctx context.Context, name string) error
	ListProjects(ctx context.Context) ([]*model.Project, error)
}

// Store is the full persistence surface of the application.
type Store interface {
	RecordStore
	ProjectStore
	Close() error
}

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database under dataDir and
// applies migrations via the given function.
func NewSQLiteStore(dataDir string, migrate func(*sql.DB) error) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "calheat.db")
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("sqlite store opened")
	return &SQLiteStore{conn: conn}, nil
}

// Close closes the underlying connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// CreateProject inserts a new project.
func (s *SQLiteStore) CreateProject(ctx context.Context, project *model.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO projects (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		project.Name, project.Description,
		project.CreatedAt.UTC().Format(time.RFC3339),
		project.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetProject fetches a project by name.
func (s *SQLiteStore) GetProject(ctx context.Context, name string) (*model.Project, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT name, description, created_at, updated_at FROM projects WHERE name = ?`, name)

	var pname, description, createdAt, updatedAt string
	if err := row.Scan(&pname, &description, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrProjectNotFound
		}
		return nil, err
	}

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	updated, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return model.LoadProject(pname, description, created, updated)
}

// UpdateProject rewrites the description and updated_at of a project.
func (s *SQLiteStore) UpdateProject(ctx context.Context, project *model.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	result, err := s.conn.ExecContext(ctx,
		`UPDATE projects SET description = ?, updated_at = ? WHERE name = ?`,
		project.Description, project.UpdatedAt.UTC().Format(time.RFC3339), project.Name)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

// DeleteProject removes the project with its records and tags.
func (s *SQLiteStore) DeleteProject(ctx context.Context, name string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM tags WHERE record_id IN (SELECT id FROM records WHERE project = ?)`, name); err != nil {
		return fmt.Errorf("failed to delete tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE project = ?`, name); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrProjectNotFound
	}

	return tx.Commit()
}

// ListProjects returns all projects ordered by name.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]*model.Project, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT name, description, created_at, updated_at FROM projects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*model.Project{}
	for rows.Next() {
		var name, description, createdAt, updatedAt string
		if err := rows.Scan(&name, &description, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		created, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		updated, err := time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}
		project, err := model.LoadProject(name, description, created, updated)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// CreateRecord inserts a record and its tags in one transaction.
func (s *SQLiteStore) CreateRecord(ctx context.Context, record *model.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if _, err := s.GetProject(ctx, record.Project); err != nil {
		return err
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO records (id, project, value, timestamp) VALUES (?, ?, ?, ?)`,
		record.ID.String(), record.Project, record.Value,
		record.Timestamp.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	for _, tag := range record.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tags (record_id, tag) VALUES (?, ?)`, record.ID.String(), tag); err != nil {
			return fmt.Errorf("failed to create tag %s: %w", tag, err)
		}
	}

	return tx.Commit()
}

// GetRecord fetches one record with its tags.
func (s *SQLiteStore) GetRecord(ctx context.Context, id uuid.UUID) (*model.Record, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, project, value, timestamp FROM records WHERE id = ?`, id.String())

	var idStr, project, timestamp string
	var value int
	if err := row.Scan(&idStr, &project, &value, &timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrRecordNotFound
		}
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, `SELECT tag FROM tags WHERE record_id = ? ORDER BY tag`, idStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse record id: %w", err)
	}
	return model.LoadRecord(parsed, ts, project, value, tags)
}

// DeleteRecord removes a record and its tags.
func (s *SQLiteStore) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE record_id = ?`, id.String()); err != nil {
		return fmt.Errorf("failed to delete tags: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrRecordNotFound
	}

	return tx.Commit()
}

// CountsByDay aggregates record values per UTC calendar day. RFC3339 UTC
// strings compare lexicographically in timestamp order, so the range filter
// works directly on the stored text.
func (s *SQLiteStore) CountsByDay(ctx context.Context, project string, from, to time.Time, tags []string) (map[string]int, error) {
	query := `SELECT substr(timestamp, 1, 10) AS day, SUM(value)
		FROM records
		WHERE project = ? AND timestamp >= ? AND timestamp <= ?`
	args := []any{
		project,
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	}
	// a record must carry every requested tag
	for _, tag := range tags {
		query += ` AND EXISTS (SELECT 1 FROM tags WHERE tags.record_id = records.id AND tags.tag = ?)`
		args = append(args, tag)
	}
	query += ` GROUP BY day`

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate records: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var sum int
		if err := rows.Scan(&day, &sum); err != nil {
			return nil, err
		}
		counts[day] = sum
	}
	return counts, rows.Err()
}
