package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-recommender/internal/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the recommendation pipeline once and print the results",
	Long: `Runs the full pipeline for a single user: profile extraction -> query planning -> job search -> fit scoring -> assembly.

Results are printed as JSON and persisted to the database. Use --source to pick
between the user's profile bio and their active resume.`,
	RunE: runRecommendCmd,
}

var (
	recommendConfigPath string
	recommendUserID     string
	recommendSource     string
	recommendForce      bool
)

func init() {
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to config.json file (values can be overridden by environment variables)")
	recommendCmd.Flags().StringVarP(&recommendUserID, "user-id", "u", "", "User ID to generate recommendations for (required)")
	recommendCmd.Flags().StringVarP(&recommendSource, "source", "s", string(store.KindBio), "Text source: bio or resume")
	recommendCmd.Flags().BoolVar(&recommendForce, "force", false, "Bypass cached recommendations and regenerate")

	_ = recommendCmd.MarkFlagRequired("user-id")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommendCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(recommendConfigPath)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(recommendUserID)
	if err != nil {
		return fmt.Errorf("invalid user-id format: %w", err)
	}

	rt, err := buildRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.close()

	var result any
	switch store.RecommendationKind(recommendSource) {
	case store.KindBio:
		result, err = rt.service.FromBio(ctx, userID, recommendForce)
	case store.KindResume:
		result, err = rt.service.FromResume(ctx, userID, recommendForce)
	default:
		return fmt.Errorf("--source must be %q or %q", store.KindBio, store.KindResume)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
