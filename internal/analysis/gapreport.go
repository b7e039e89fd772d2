package analysis

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/prompts"
	"github.com/jonathan/career-compass/internal/schemas"
)

// SynthesizeGapReport compares the candidate against every enriched posting
// in one model call. The response must be a pure JSON document after
// code-fence trimming; the synthesis succeeds or fails atomically.
func (p *Pipeline) SynthesizeGapReport(ctx context.Context, profile *CandidateProfile, jobs []EnrichedJob) (*GapReport, error) {
	log.Printf("[analysis] generating gap report across %d jobs", len(jobs))

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, &ReportSynthesisError{Message: "failed to encode candidate profile", Cause: err}
	}
	jobsJSON, err := json.Marshal(jobs)
	if err != nil {
		return nil, &ReportSynthesisError{Message: "failed to encode job list", Cause: err}
	}

	system := prompts.MustGet(promptFile, "gap-report")
	user := prompts.Format(prompts.MustGet(promptFile, "gap-report-user"), map[string]string{
		"Profile": string(profileJSON),
		"Jobs":    string(jobsJSON),
	})

	raw, err := p.llm.Chat(ctx, system, user)
	if err != nil {
		return nil, &ReportSynthesisError{Message: "model call failed", Cause: err}
	}

	doc := llm.CleanJSONBlock(raw)

	if err := schemas.ValidateGapReport(doc); err != nil {
		return nil, &ReportSynthesisError{
			Message: "report failed schema validation",
			Excerpt: llm.Excerpt(raw),
			Cause:   err,
		}
	}

	var report GapReport
	if err := json.Unmarshal([]byte(doc), &report); err != nil {
		return nil, &ReportSynthesisError{
			Message: "report is not valid JSON",
			Excerpt: llm.Excerpt(raw),
			Cause:   err,
		}
	}
	return &report, nil
}
