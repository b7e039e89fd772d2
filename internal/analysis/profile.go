package analysis

import (
	"context"
	"encoding/json"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/leetcode"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/prompts"
	"github.com/jonathan/career-compass/internal/schemas"
)

// SynthesizeProfile builds a CandidateProfile from the resume at resumeURL
// and the coding stats for handle. The two fetches run concurrently; a
// resume failure aborts, missing coding stats only downgrade the prompt.
func (p *Pipeline) SynthesizeProfile(ctx context.Context, handle, resumeURL string) (*CandidateProfile, error) {
	log.Printf("[analysis] synthesizing profile for handle %q", handle)

	var (
		resumeText string
		stats      *leetcode.Stats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resumeText, err = p.resumes.ExtractText(gctx, resumeURL)
		return err
	})
	g.Go(func() error {
		stats = p.stats.Fetch(gctx, handle)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return p.runProfileAnalysis(ctx, resumeText, stats)
}

// AnalyzeResumeText builds a CandidateProfile from already-extracted resume
// text, without coding stats. Used for direct file uploads.
func (p *Pipeline) AnalyzeResumeText(ctx context.Context, resumeText string) (*CandidateProfile, error) {
	return p.runProfileAnalysis(ctx, resumeText, nil)
}

// runProfileAnalysis issues the single profile-synthesis model call. The
// instruction template adapts to whether coding stats are present.
func (p *Pipeline) runProfileAnalysis(ctx context.Context, resumeText string, stats *leetcode.Stats) (*CandidateProfile, error) {
	system := prompts.MustGet(promptFile, "profile-resume-only")
	user := prompts.Format(prompts.MustGet(promptFile, "profile-user-resume-only"), map[string]string{
		"ResumeText": resumeText,
	})

	if stats != nil && stats.Available() {
		statsJSON, err := json.Marshal(stats)
		if err != nil {
			return nil, &llm.ResponseFormatError{Message: "failed to encode coding stats", Cause: err}
		}
		system = prompts.MustGet(promptFile, "profile-with-stats")
		user = prompts.Format(prompts.MustGet(promptFile, "profile-user-with-stats"), map[string]string{
			"ResumeText": resumeText,
			"Stats":      string(statsJSON),
		})
	}

	raw, err := p.llm.Chat(ctx, system, user)
	if err != nil {
		return nil, err
	}

	return parseProfile(raw)
}

// parseProfile extracts the first JSON object from raw model output and
// validates it against the profile schema.
func parseProfile(raw string) (*CandidateProfile, error) {
	doc, err := llm.ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateProfile(doc); err != nil {
		return nil, &llm.ResponseFormatError{
			Message: "profile failed schema validation",
			Excerpt: llm.Excerpt(raw),
			Cause:   err,
		}
	}

	var profile CandidateProfile
	if err := json.Unmarshal([]byte(doc), &profile); err != nil {
		return nil, &llm.ResponseFormatError{
			Message: "profile is not valid JSON",
			Excerpt: llm.Excerpt(raw),
			Cause:   err,
		}
	}
	return &profile, nil
}
