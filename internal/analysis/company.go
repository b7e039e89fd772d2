package analysis

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/prompts"
)

// RunTargetCompanyAnalysis compares the candidate against one catalog
// company. The catalog lookup happens before any model call, so an unknown
// company never spends provider budget.
func (p *Pipeline) RunTargetCompanyAnalysis(ctx context.Context, handle, resumeURL, companyName string) (*CompanyFit, error) {
	target, err := catalog.Lookup(companyName)
	if err != nil {
		return nil, err
	}
	log.Printf("[analysis] target-company analysis for %s", companyName)

	profile, err := p.SynthesizeProfile(ctx, handle, resumeURL)
	if err != nil {
		return nil, err
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, &llm.ResponseFormatError{Message: "failed to encode candidate profile", Cause: err}
	}
	targetJSON, err := json.Marshal(target)
	if err != nil {
		return nil, &llm.ResponseFormatError{Message: "failed to encode company target", Cause: err}
	}

	system := prompts.Format(prompts.MustGet(promptFile, "company-fit"), map[string]string{
		"Company": target.Company,
		"Role":    target.Role,
	})
	user := prompts.Format(prompts.MustGet(promptFile, "company-fit-user"), map[string]string{
		"Profile": string(profileJSON),
		"Target":  string(targetJSON),
	})

	raw, err := p.llm.Chat(ctx, system, user)
	if err != nil {
		return nil, err
	}

	doc, err := llm.ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var fit CompanyFit
	if err := json.Unmarshal([]byte(doc), &fit); err != nil {
		return nil, &llm.ResponseFormatError{
			Message: "company fit response is not valid JSON",
			Excerpt: llm.Excerpt(raw),
			Cause:   err,
		}
	}
	return &fit, nil
}
