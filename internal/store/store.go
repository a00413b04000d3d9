// Package store provides PostgreSQL persistence for import runs,
// business records and import artifacts.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateImportRun creates a new import run record and returns its ID
func (s *Store) CreateImportRun(ctx context.Context, businessID uuid.UUID, startURL string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO import_runs (business_id, start_url, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		businessID, startURL,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create import run: %w", err)
	}
	return id, nil
}

// CompleteImportRun marks an import run as completed
func (s *Store) CompleteImportRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE import_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete import run: %w", err)
	}
	return nil
}

// SaveArtifact stores a JSON artifact for an import run. Artifacts are
// keyed by (run, step) so re-running a step overwrites its output.
func (s *Store) SaveArtifact(ctx context.Context, runID uuid.UUID, step string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO import_artifacts (run_id, step, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, step) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, step, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", step, err)
	}
	return nil
}

// GetArtifact retrieves a JSON artifact by run ID and step
func (s *Store) GetArtifact(ctx context.Context, runID uuid.UUID, step string) ([]byte, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM import_artifacts WHERE run_id = $1 AND step = $2`,
		runID, step,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", step, err)
	}
	return content, nil
}

// ImportRun represents an import run record
type ImportRun struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	StartURL    string    `json:"start_url"`
	Status      string    `json:"status"`
	CreatedAt   string    `json:"created_at"`
	CompletedAt *string   `json:"completed_at,omitempty"`
}

// GetImportRun retrieves an import run by ID
func (s *Store) GetImportRun(ctx context.Context, runID uuid.UUID) (*ImportRun, error) {
	var run ImportRun
	err := s.pool.QueryRow(ctx,
		`SELECT id, business_id, start_url, status, created_at::text, completed_at::text
		 FROM import_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.BusinessID, &run.StartURL, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get import run: %w", err)
	}
	return &run, nil
}

// ListImportRuns retrieves recent import runs for a business
func (s *Store) ListImportRuns(ctx context.Context, businessID uuid.UUID, limit int) ([]ImportRun, error) {
	if limit == 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, business_id, start_url, status, created_at::text, completed_at::text
		 FROM import_runs WHERE business_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		businessID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list import runs: %w", err)
	}
	defer rows.Close()

	var runs []ImportRun
	for rows.Next() {
		var run ImportRun
		if err := rows.Scan(&run.ID, &run.BusinessID, &run.StartURL, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
