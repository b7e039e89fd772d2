package server

// SignupRequest is the account-creation payload.
type SignupRequest struct {
	FullName string `json:"FullName" validate:"required,min=2"`
	Email    string `json:"Email" validate:"required,email"`
	Password string `json:"Password" validate:"required,min=8"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"Email" validate:"required,email"`
	Password string `json:"Password" validate:"required"`
}

// PlacementRequest carries the mutable placement-profile fields.
type PlacementRequest struct {
	RollNumber      string            `json:"roll_number"`
	CurrentYear     string            `json:"current_year"`
	CurrentSemester string            `json:"current_semester"`
	SemesterGPAs    map[string]string `json:"semester_gpas"`
	ResumeURL       string            `json:"resume_url" validate:"omitempty,url"`
	ProfileImageURL string            `json:"profile_image_url" validate:"omitempty,url"`
	LeetCodeHandle  string            `json:"leetcode_handle"`
}

// ProjectRequest is the portfolio-project payload.
type ProjectRequest struct {
	StudentID   string   `json:"studentId" validate:"required,uuid"`
	Title       string   `json:"title" validate:"required"`
	Link        string   `json:"link" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

// ProjectUpdateRequest carries a project's editable fields.
type ProjectUpdateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Link        string   `json:"link" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

// AppliedJobRequest records a posting a student saved.
type AppliedJobRequest struct {
	StudentID   string `json:"student_id" validate:"required,uuid"`
	JobTitle    string `json:"job_title" validate:"required"`
	CompanyName string `json:"company_name"`
	JobURL      string `json:"job_url" validate:"required,url"`
	Location    string `json:"location"`
	PostedDate  string `json:"posted_date"`
}

// FullAnalysisRequest triggers the whole pipeline.
type FullAnalysisRequest struct {
	LeetCodeUsername string `json:"leetcodeUsername"`
	ResumeURL        string `json:"resumeUrl" validate:"required,url"`
}

// TargetCompanyRequest triggers the one-shot company comparison.
type TargetCompanyRequest struct {
	LeetCodeUsername string `json:"leetcodeUsername"`
	ResumeURL        string `json:"resumeUrl" validate:"required,url"`
	CompanyName      string `json:"companyName" validate:"required"`
}
