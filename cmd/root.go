// Package cmd wires the generation pipeline into an operational CLI.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/deathnote2501/fia-v3.0-sub000/internal/llm"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/platform/logger"
	"github.com/deathnote2501/fia-v3.0-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "fia",
	Short: "AI training platform generation pipeline",
	Long:  "fia generates personalized training plans from source documents and serves their slides lazily, one model call per slide.",
}

func Execute() error {
	// .env is a local convenience; absence is the normal production case.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FIA_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner identifier (default FIA_LEARNER_ID)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(slideCmd)
	rootCmd.AddCommand(modifyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FIA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLearner returns the learner ID from --learner or FIA_LEARNER_ID.
func resolveLearner(cmd *cobra.Command) (string, error) {
	if l, _ := cmd.Flags().GetString("learner"); l != "" {
		return l, nil
	}
	if l := os.Getenv("FIA_LEARNER_ID"); l != "" {
		return l, nil
	}
	return "", fmt.Errorf("no learner: pass --learner or set FIA_LEARNER_ID")
}

// newLogger builds the operational logger; FIA_LOG_MODE selects the encoder.
func newLogger() (*logger.Logger, error) {
	return logger.New(os.Getenv("FIA_LOG_MODE"))
}

// buildProvider assembles the configured provider with its middleware chain.
// FIA_* variables win; bare API-key variables are probed as a fallback.
func buildProvider(ctx context.Context, eventRepo store.EventRepo) (llm.Provider, *llm.CacheManager, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, eventRepo)
}
