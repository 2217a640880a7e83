package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-recommender/internal/refresh"
	"github.com/jonathan/job-recommender/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveNoRefresh  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating and fetching job recommendations.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by environment variables)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveNoRefresh, "no-refresh", false, "Disable the periodic background refresh")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	rt, err := buildRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.close()

	srv, err := server.New(server.Config{Port: cfg.Port, JWTSecret: cfg.JWTSecret}, rt.service, rt.store)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if !serveNoRefresh {
		refresher := refresh.New(rt.store, rt.service, cfg.RefreshHours)
		if err := refresher.Start(ctx); err != nil {
			return fmt.Errorf("failed to start refresh scheduler: %w", err)
		}
		defer refresher.Stop()
	}

	return srv.Start()
}
