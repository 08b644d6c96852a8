package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/project-estimator/internal/types"
)

// ProjectRow is the storage representation of a completed project.
// The semantic id (ProjectData.ID) lives in a separate column from the
// row uuid so external identifiers survive re-imports.
type ProjectRow struct {
	RowID          uuid.UUID
	ProjectID      string
	Name           string
	ActualHours    float64
	EstimatedHours float64
	Requirements   []string
	CompletedAt    time.Time
	CreatedAt      time.Time
}

// SaveProject stores a completed project outcome and returns the row id.
func (db *DB) SaveProject(ctx context.Context, p types.ProjectData) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO completed_projects (project_id, name, actual_hours, estimated_hours, requirements, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		p.ID, p.Name, p.ActualHours, p.EstimatedHours, p.Requirements, p.CompletedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save project: %w", err)
	}
	return id, nil
}

// RecentProjects loads the most recently completed projects, newest
// last so they can be appended to a ledger in chronological order.
func (db *DB) RecentProjects(ctx context.Context, limit int) ([]types.ProjectData, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT project_id, name, actual_hours, estimated_hours, requirements, completed_at
		 FROM (
		     SELECT * FROM completed_projects ORDER BY completed_at DESC LIMIT $1
		 ) recent
		 ORDER BY completed_at ASC`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []types.ProjectData
	for rows.Next() {
		var p types.ProjectData
		if err := rows.Scan(&p.ID, &p.Name, &p.ActualHours, &p.EstimatedHours, &p.Requirements, &p.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	return projects, nil
}

// DeleteProject removes a stored project by its semantic id.
func (db *DB) DeleteProject(ctx context.Context, projectID string) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM completed_projects WHERE project_id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s not found", projectID)
	}
	return nil
}
