package analysis

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/career-compass/internal/jobsearch"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/prompts"
)

// jobSkills is the wire shape of one per-job extraction response.
type jobSkills struct {
	RequiredSkills    []string `json:"required_skills"`
	ExperienceSummary string   `json:"experience_summary"`
}

// ExtractJobSkills asks the model for required skills per posting. The loop
// is strictly sequential and applies the per-job delay after every posting,
// including failed ones. A posting whose call or parse fails is logged and
// excluded; the method itself never fails. Returns the enriched postings in
// input order and the number skipped.
func (p *Pipeline) ExtractJobSkills(ctx context.Context, jobs []jobsearch.Job) ([]EnrichedJob, int) {
	log.Printf("[analysis] extracting skill requirements for %d jobs", len(jobs))

	enriched := make([]EnrichedJob, 0, len(jobs))
	skipped := 0

	for _, job := range jobs {
		skills, err := p.extractOneJob(ctx, job)
		if err != nil {
			log.Printf("[analysis] skipping %s at %s: %v", job.Position, job.Company, err)
			skipped++
			p.sleep(ctx)
			continue
		}

		enriched = append(enriched, EnrichedJob{
			Job:               job,
			RequiredSkills:    skills.RequiredSkills,
			ExperienceSummary: skills.ExperienceSummary,
		})
		p.sleep(ctx)
	}

	return enriched, skipped
}

// extractOneJob issues one model call for one posting and parses the first
// JSON object out of the response.
func (p *Pipeline) extractOneJob(ctx context.Context, job jobsearch.Job) (*jobSkills, error) {
	system := prompts.Format(prompts.MustGet(promptFile, "job-skills"), map[string]string{
		"JobURL":  job.JobURL,
		"Role":    job.Position,
		"Company": job.Company,
	})
	user := prompts.MustGet(promptFile, "job-skills-user")

	raw, err := p.llm.Chat(ctx, system, user)
	if err != nil {
		return nil, err
	}

	doc, err := llm.ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var skills jobSkills
	if err := json.Unmarshal([]byte(doc), &skills); err != nil {
		return nil, &llm.ResponseFormatError{
			Message: "job skills response is not valid JSON",
			Excerpt: llm.Excerpt(raw),
			Cause:   err,
		}
	}
	return &skills, nil
}
