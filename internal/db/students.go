package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const studentColumns = `id, full_name, email, password_hash, COALESCE(roll_number, ''),
	COALESCE(current_year, ''), COALESCE(current_semester, ''), COALESCE(semester_gpas, '{}'),
	COALESCE(resume_url, ''), COALESCE(profile_image_url, ''), COALESCE(leetcode_handle, ''),
	created_at, updated_at`

func scanStudent(row pgx.Row) (*Student, error) {
	var s Student
	err := row.Scan(&s.ID, &s.FullName, &s.Email, &s.PasswordHash, &s.RollNumber,
		&s.CurrentYear, &s.CurrentSemester, &s.SemesterGPAs,
		&s.ResumeURL, &s.ProfileImageURL, &s.LeetCodeHandle,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateStudent inserts a new student account. Returns ErrDuplicate when the
// email is already registered.
func (db *DB) CreateStudent(ctx context.Context, fullName, email, passwordHash string) (*Student, error) {
	student, err := scanStudent(db.pool.QueryRow(ctx,
		`INSERT INTO students (full_name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING `+studentColumns,
		fullName, email, passwordHash,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return student, nil
}

// GetStudentByID retrieves a student by UUID. Returns nil when not found.
func (db *DB) GetStudentByID(ctx context.Context, id uuid.UUID) (*Student, error) {
	student, err := scanStudent(db.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// GetStudentByEmail retrieves a student by email. Returns nil when not found.
func (db *DB) GetStudentByEmail(ctx context.Context, email string) (*Student, error) {
	student, err := scanStudent(db.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE email = $1`, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// PlacementUpdate holds the mutable placement-profile fields. Empty strings
// and nil maps leave the stored value unchanged.
type PlacementUpdate struct {
	RollNumber      string
	CurrentYear     string
	CurrentSemester string
	SemesterGPAs    GPAMap
	ResumeURL       string
	ProfileImageURL string
	LeetCodeHandle  string
}

// UpdatePlacement applies a placement-profile update and returns the
// refreshed student row. Returns nil when the student does not exist.
func (db *DB) UpdatePlacement(ctx context.Context, id uuid.UUID, update PlacementUpdate) (*Student, error) {
	student, err := scanStudent(db.pool.QueryRow(ctx,
		`UPDATE students SET
			roll_number = COALESCE(NULLIF($2, ''), roll_number),
			current_year = COALESCE(NULLIF($3, ''), current_year),
			current_semester = COALESCE(NULLIF($4, ''), current_semester),
			semester_gpas = CASE WHEN $5::jsonb = '{}'::jsonb THEN semester_gpas ELSE $5::jsonb END,
			resume_url = COALESCE(NULLIF($6, ''), resume_url),
			profile_image_url = COALESCE(NULLIF($7, ''), profile_image_url),
			leetcode_handle = COALESCE(NULLIF($8, ''), leetcode_handle),
			updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+studentColumns,
		id, update.RollNumber, update.CurrentYear, update.CurrentSemester,
		update.SemesterGPAs, update.ResumeURL, update.ProfileImageURL, update.LeetCodeHandle,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update placement profile: %w", err)
	}
	return student, nil
}
