package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListProjects retrieves all projects for a student, newest first.
func (db *DB) ListProjects(ctx context.Context, studentID uuid.UUID) ([]Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, student_id, title, COALESCE(link, ''), COALESCE(tags, '[]'),
		        COALESCE(description, ''), created_at
		 FROM student_projects WHERE student_id = $1
		 ORDER BY created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.StudentID, &p.Title, &p.Link, &p.Tags, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// CreateProject inserts a portfolio project.
func (db *DB) CreateProject(ctx context.Context, studentID uuid.UUID, title, link string, tags []string, description string) (*Project, error) {
	var p Project
	err := db.pool.QueryRow(ctx,
		`INSERT INTO student_projects (student_id, title, link, tags, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, student_id, title, COALESCE(link, ''), COALESCE(tags, '[]'),
		           COALESCE(description, ''), created_at`,
		studentID, title, link, StringArray(tags), description,
	).Scan(&p.ID, &p.StudentID, &p.Title, &p.Link, &p.Tags, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &p, nil
}

// UpdateProject replaces a project's editable fields. Returns nil when the
// project does not exist.
func (db *DB) UpdateProject(ctx context.Context, projectID uuid.UUID, title, link string, tags []string, description string) (*Project, error) {
	var p Project
	err := db.pool.QueryRow(ctx,
		`UPDATE student_projects
		 SET title = $2, link = $3, tags = $4, description = $5
		 WHERE id = $1
		 RETURNING id, student_id, title, COALESCE(link, ''), COALESCE(tags, '[]'),
		           COALESCE(description, ''), created_at`,
		projectID, title, link, StringArray(tags), description,
	).Scan(&p.ID, &p.StudentID, &p.Title, &p.Link, &p.Tags, &p.Description, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &p, nil
}

// DeleteProject removes a project by ID. Returns false when no row matched.
func (db *DB) DeleteProject(ctx context.Context, projectID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM student_projects WHERE id = $1`, projectID)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
