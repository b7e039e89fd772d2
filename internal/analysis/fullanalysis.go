package analysis

import (
	"context"
	"log"
)

// NoJobsMessage is returned when discovery finds nothing to analyze.
const NoJobsMessage = "No relevant jobs found to analyze."

// RunFullAnalysis executes the whole pipeline: profile synthesis, job
// discovery, per-job skill extraction, and gap-report synthesis. When
// discovery yields no postings the run short-circuits and the result carries
// the profile with a nil report.
func (p *Pipeline) RunFullAnalysis(ctx context.Context, handle, resumeURL string) (*FullAnalysisResult, error) {
	profile, err := p.SynthesizeProfile(ctx, handle, resumeURL)
	if err != nil {
		return nil, err
	}

	roles := profile.SuggestedJobRoles
	if len(roles) == 0 {
		roles = []string{DefaultRole}
	}

	jobs := p.jobs.FetchForRoles(ctx, roles)
	if len(jobs) == 0 {
		log.Printf("[analysis] no jobs discovered, returning profile only")
		return &FullAnalysisResult{
			Profile: profile,
			Message: NoJobsMessage,
		}, nil
	}

	enriched, skipped := p.ExtractJobSkills(ctx, jobs)
	if skipped > 0 {
		log.Printf("[analysis] %d of %d jobs skipped during skill extraction", skipped, len(jobs))
	}

	report, err := p.SynthesizeGapReport(ctx, profile, enriched)
	if err != nil {
		return nil, err
	}

	return &FullAnalysisResult{
		Profile:        profile,
		JobsFoundCount: len(enriched),
		Report:         report,
	}, nil
}
