package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/analysis"
	"github.com/jonathan/career-compass/internal/books"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/jobsearch"
	"github.com/jonathan/career-compass/internal/leetcode"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/resume"
	"github.com/jonathan/career-compass/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for accounts, placement profiles, and the career-analysis pipeline.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.LLMAPIKey == "" {
		return fmt.Errorf("no LLM API key configured (set LLM_API_KEY or a provider-specific variable)")
	}

	// Config-only constructors run first so a misconfiguration cannot
	// leak an already-open client or pool.
	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return err
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	llmClient, err := llm.NewClient(ctx, llmConfig(cfg), cfg.LLMAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		llmClient.Close()
		return err
	}

	jobs := jobsearch.NewClient(jobsearch.Config{
		Location:   cfg.JobSearchLocation,
		RoleDelay:  cfg.JobSearchDelay,
		UseBrowser: cfg.JobSearchBrowser,
	})

	pipeline := analysis.New(analysis.Config{
		LLM:      llmClient,
		Resumes:  resume.NewExtractor(cfg.StorageToken, nil),
		Stats:    leetcode.NewClient("", nil),
		Jobs:     jobs,
		JobDelay: cfg.SkillCallDelay,
	})

	srv := server.New(server.Config{
		Port:      cfg.Port,
		Store:     store,
		Analyzer:  pipeline,
		Stats:     leetcode.NewClient("", nil),
		Books:     books.NewClient("", nil),
		Jobs:      jobs,
		Passwords: passwords,
		JWT:       server.NewJWTService(jwtConfig),
	})
	srv.SetStoreCloser(func() {
		store.Close()
		llmClient.Close()
	})

	return srv.Start()
}

// llmConfig builds the provider configuration from the environment, starting
// from the provider's defaults.
func llmConfig(cfg *config.Config) *llm.Config {
	var base *llm.Config
	switch llm.Provider(cfg.LLMProvider) {
	case llm.ProviderGemini:
		base = llm.DefaultGeminiConfig()
	case llm.ProviderPerplexity, "":
		base = llm.DefaultPerplexityConfig()
	default:
		// Unknown providers surface through NewClient's validation.
		base = llm.DefaultPerplexityConfig()
		base.Provider = llm.Provider(cfg.LLMProvider)
	}

	if cfg.LLMModel != "" {
		base.Model = cfg.LLMModel
	}
	if cfg.LLMBaseURL != "" {
		base.BaseURL = cfg.LLMBaseURL
	}
	if cfg.LLMTimeout > 0 {
		base.Timeout = cfg.LLMTimeout
	}
	return base
}
