// Package analysis implements the career-analysis pipeline: profile
// synthesis, job discovery, per-job skill extraction, and gap-report or
// company-fit synthesis.
//
// Each pipeline stage depends on the prior stage's output, so stages run
// strictly in order. The only internal concurrency is the resume-text and
// coding-stats fan-in inside profile synthesis.
package analysis

import (
	"context"
	"time"

	"github.com/jonathan/career-compass/internal/jobsearch"
	"github.com/jonathan/career-compass/internal/leetcode"
	"github.com/jonathan/career-compass/internal/llm"
)

// promptFile names the embedded template file the pipeline reads from.
const promptFile = "analysis.json"

// DefaultJobDelay spaces consecutive per-job model calls to stay within
// provider rate limits.
const DefaultJobDelay = 1500 * time.Millisecond

// DefaultRole is searched when a profile suggests no roles.
const DefaultRole = "Software Engineer"

// ResumeReader turns a resume reference into bounded plain text.
type ResumeReader interface {
	ExtractText(ctx context.Context, resumeURL string) (string, error)
}

// StatsFetcher returns coding stats for a handle, degrading to a sentinel on
// every failure path.
type StatsFetcher interface {
	Fetch(ctx context.Context, handle string) *leetcode.Stats
}

// JobFinder discovers postings for a set of suggested roles.
type JobFinder interface {
	FetchForRoles(ctx context.Context, roles []string) []jobsearch.Job
}

// Pipeline wires the stages together. Construct with New.
type Pipeline struct {
	llm      llm.Client
	resumes  ResumeReader
	stats    StatsFetcher
	jobs     JobFinder
	jobDelay time.Duration
}

// Config carries the pipeline's collaborators. JobDelay zero means
// DefaultJobDelay; tests pass a negative value to disable the delay.
type Config struct {
	LLM      llm.Client
	Resumes  ResumeReader
	Stats    StatsFetcher
	Jobs     JobFinder
	JobDelay time.Duration
}

// New creates a Pipeline from cfg.
func New(cfg Config) *Pipeline {
	if cfg.JobDelay == 0 {
		cfg.JobDelay = DefaultJobDelay
	}
	return &Pipeline{
		llm:      cfg.LLM,
		resumes:  cfg.Resumes,
		stats:    cfg.Stats,
		jobs:     cfg.Jobs,
		jobDelay: cfg.JobDelay,
	}
}

// sleep waits the per-job delay, returning early when ctx is done.
func (p *Pipeline) sleep(ctx context.Context) {
	if p.jobDelay <= 0 {
		return
	}
	select {
	case <-time.After(p.jobDelay):
	case <-ctx.Done():
	}
}
