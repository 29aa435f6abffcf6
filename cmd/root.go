package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takumif/aiact-explorer/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "aiact",
	Short: "Browser-based explorer and editor for EU AI Act article datasets",
	Long: `aiact manages a structured dataset of EU AI Act articles: bilingual
text, requirements, cross-references and editorial metadata. It serves a
browser viewer/editor over a REST and WebSocket API, derives slide decks
for presentation export, and exposes the collection to AI agents via MCP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".aiact.yml", "config file path")
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
