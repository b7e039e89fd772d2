package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SaveAppliedJob records a posting a student saved. Returns ErrDuplicate
// when the student already saved that URL.
func (db *DB) SaveAppliedJob(ctx context.Context, job AppliedJob) (*AppliedJob, error) {
	var saved AppliedJob
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applied_jobs (student_id, job_title, company_name, job_url, location, posted_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, student_id, job_title, COALESCE(company_name, ''), job_url,
		           COALESCE(location, ''), COALESCE(posted_date, ''), created_at`,
		job.StudentID, job.JobTitle, job.CompanyName, job.JobURL, job.Location, job.PostedDate,
	).Scan(&saved.ID, &saved.StudentID, &saved.JobTitle, &saved.CompanyName, &saved.JobURL,
		&saved.Location, &saved.PostedDate, &saved.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save applied job: %w", err)
	}
	return &saved, nil
}

// ListAppliedJobs retrieves all saved postings for a student, newest first.
func (db *DB) ListAppliedJobs(ctx context.Context, studentID uuid.UUID) ([]AppliedJob, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, student_id, job_title, COALESCE(company_name, ''), job_url,
		        COALESCE(location, ''), COALESCE(posted_date, ''), created_at
		 FROM applied_jobs WHERE student_id = $1
		 ORDER BY created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applied jobs: %w", err)
	}
	defer rows.Close()

	jobs := []AppliedJob{}
	for rows.Next() {
		var j AppliedJob
		if err := rows.Scan(&j.ID, &j.StudentID, &j.JobTitle, &j.CompanyName, &j.JobURL,
			&j.Location, &j.PostedDate, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan applied job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// DeleteAppliedJob removes a saved posting. Returns false when no row matched.
func (db *DB) DeleteAppliedJob(ctx context.Context, jobID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM applied_jobs WHERE id = $1`, jobID)
	if err != nil {
		return false, fmt.Errorf("failed to delete applied job: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
