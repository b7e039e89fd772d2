package analysis

import "github.com/jonathan/career-compass/internal/jobsearch"

// CandidateProfile is the model's structured read of a candidate, built from
// resume text and optional coding stats. Constructed fresh per request.
type CandidateProfile struct {
	CandidateSummary  string              `json:"candidate_summary"`
	Skills            map[string][]string `json:"skills"`
	SuggestedJobRoles []string            `json:"suggested_job_roles"`
	LeetCodeLevel     string              `json:"leetcode_level"`
}

// EnrichedJob is a posting annotated with model-inferred requirements.
type EnrichedJob struct {
	jobsearch.Job
	RequiredSkills    []string `json:"tech_stack"`
	ExperienceSummary string   `json:"experience_summary"`
}

// JobAnalysis is the per-posting section of a gap report.
type JobAnalysis struct {
	Company         string   `json:"company"`
	Role            string   `json:"role"`
	JobURL          string   `json:"job_url"`
	MatchPercentage string   `json:"match_percentage"`
	MissingSkills   []string `json:"missing_skills"`
	ActionPlan      string   `json:"action_plan"`
}

// GapReport compares the candidate against every enriched posting.
type GapReport struct {
	OverallAnalysis string        `json:"overall_analysis"`
	JobAnalyses     []JobAnalysis `json:"job_analyses"`
}

// RoadmapStep is one stage of a company-fit preparation plan.
type RoadmapStep struct {
	Step   string `json:"step"`
	Action string `json:"action"`
}

// CompanyFit is the one-shot comparison against a catalog company.
type CompanyFit struct {
	MatchPercentage string        `json:"match_percentage"`
	MissingSkills   []string      `json:"missing_skills"`
	Advice          string        `json:"advice"`
	Roadmap         []RoadmapStep `json:"roadmap"`
}

// FullAnalysisResult is the assembled output of the full pipeline. Report is
// nil when job discovery came up empty; Message then explains why.
type FullAnalysisResult struct {
	Profile        *CandidateProfile `json:"user_summary"`
	JobsFoundCount int               `json:"jobs_found_count"`
	Message        string            `json:"message,omitempty"`
	Report         *GapReport        `json:"report"`
}
