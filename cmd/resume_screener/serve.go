package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/hexaview/resume-screener/internal/analyzer"
	"github.com/hexaview/resume-screener/internal/cache"
	"github.com/hexaview/resume-screener/internal/config"
	"github.com/hexaview/resume-screener/internal/db"
	"github.com/hexaview/resume-screener/internal/llm"
	"github.com/hexaview/resume-screener/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the job catalog, resume analysis, and screening test endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	ctx := cmd.Context()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	ready, err := database.SchemaInitialized(ctx)
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	if !ready {
		return fmt.Errorf("database schema not initialized, run 'resume_screener init-db' first")
	}

	resumeAnalyzer, cleanup := buildAnalyzer(ctx)
	defer cleanup()

	srv, err := server.New(cfg, database, cache.New(cfg.RedisURL), resumeAnalyzer)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// buildAnalyzer wires an AI client when credentials are available and falls
// back to heuristic-only analysis when they are not.
func buildAnalyzer(ctx context.Context) (*analyzer.Analyzer, func()) {
	llmConfig := llm.FromEnv()
	if llmConfig.APIKey == "" {
		log.Println("[SERVE] no AI credentials configured, using heuristic analysis only")
		return analyzer.New(nil), func() {}
	}

	client, err := llm.NewClient(ctx, llmConfig)
	if err != nil {
		log.Printf("[SERVE] failed to create AI client, using heuristic analysis only: %v", err)
		return analyzer.New(nil), func() {}
	}

	log.Printf("[SERVE] AI analysis enabled via %s", llmConfig.Provider)
	return analyzer.New(client), func() { client.Close() }
}
