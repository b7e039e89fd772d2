package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfile = `{
	"candidate_summary": "Backend-leaning new grad with strong fundamentals.",
	"skills": {
		"Languages and Databases": ["Go", "PostgreSQL"],
		"Frameworks": ["Gin"],
		"Tools and Technologies": ["Docker"]
	},
	"suggested_job_roles": ["Backend Engineer", "Software Engineer"],
	"leetcode_level": "Intermediate"
}`

const validGapReport = `{
	"overall_analysis": "Solid foundation with cloud gaps.",
	"job_analyses": [
		{
			"company": "Acme",
			"role": "Backend Engineer",
			"job_url": "https://jobs.example/1",
			"match_percentage": "72%",
			"missing_skills": ["Kubernetes"],
			"action_plan": "Ship a small service on a managed cluster."
		}
	]
}`

// TestValidateProfile_Valid tests a conforming profile document
func TestValidateProfile_Valid(t *testing.T) {
	assert.NoError(t, ValidateProfile(validProfile))
}

// TestValidateProfile_MissingRequired tests field-path reporting on a bad document
func TestValidateProfile_MissingRequired(t *testing.T) {
	err := ValidateProfile(`{"candidate_summary": "x"}`)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.NotEmpty(t, vErr.Errors)
	assert.Contains(t, err.Error(), "validation failed")
}

// TestValidateProfile_WrongTypes tests type enforcement
func TestValidateProfile_WrongTypes(t *testing.T) {
	err := ValidateProfile(`{
		"candidate_summary": "x",
		"skills": {"Languages": "not-an-array"},
		"suggested_job_roles": "not-an-array",
		"leetcode_level": "Beginner"
	}`)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
}

// TestValidateGapReport_Valid tests a conforming gap report
func TestValidateGapReport_Valid(t *testing.T) {
	assert.NoError(t, ValidateGapReport(validGapReport))
}

// TestValidateGapReport_EmptyJobList tests that zero analyses are still valid
func TestValidateGapReport_EmptyJobList(t *testing.T) {
	assert.NoError(t, ValidateGapReport(`{"overall_analysis": "n/a", "job_analyses": []}`))
}

// TestValidateGapReport_NumericPercentage tests that the match percentage
// must be the display string the prompts request, not a number
func TestValidateGapReport_NumericPercentage(t *testing.T) {
	err := ValidateGapReport(`{
		"overall_analysis": "x",
		"job_analyses": [{
			"company": "Acme",
			"role": "SWE",
			"match_percentage": 140,
			"missing_skills": [],
			"action_plan": "y"
		}]
	}`)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
}

// TestValidateJSONString_BadSchema tests the schema-load error path
func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": "not-a-real-type"}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
}
