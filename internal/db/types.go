package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Student represents a student account with placement-profile fields.
type Student struct {
	ID              uuid.UUID          `json:"id"`
	FullName        string             `json:"full_name"`
	Email           string             `json:"email"`
	PasswordHash    string             `json:"-"` // Never serialize to JSON
	RollNumber      string             `json:"roll_number,omitempty"`
	CurrentYear     string             `json:"current_year,omitempty"`
	CurrentSemester string             `json:"current_semester,omitempty"`
	SemesterGPAs    GPAMap             `json:"semester_gpas,omitempty"`
	ResumeURL       string             `json:"resume_url,omitempty"`
	ProfileImageURL string             `json:"profile_image_url,omitempty"`
	LeetCodeHandle  string             `json:"leetcode_handle,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// Project represents a student-submitted portfolio project.
type Project struct {
	ID          uuid.UUID   `json:"id"`
	StudentID   uuid.UUID   `json:"student_id"`
	Title       string      `json:"title"`
	Link        string      `json:"link,omitempty"`
	Tags        StringArray `json:"tags"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// AppliedJob represents a posting a student saved or applied to.
type AppliedJob struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"student_id"`
	JobTitle    string    `json:"job_title"`
	CompanyName string    `json:"company_name,omitempty"`
	JobURL      string    `json:"job_url"`
	Location    string    `json:"location,omitempty"`
	PostedDate  string    `json:"posted_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// GPAMap handles the JSONB semester-to-GPA mapping
type GPAMap map[string]string

// Scan implements the Scanner interface for GPAMap
func (m *GPAMap) Scan(src interface{}) error {
	if src == nil {
		*m = GPAMap{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, m)
}

// Value implements the Valuer interface for GPAMap
func (m GPAMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
