package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/takumif/aiact-explorer/internal/articles"
	"github.com/takumif/aiact-explorer/internal/dataset"
	mcpserver "github.com/takumif/aiact-explorer/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing article search and slide derivation tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store := articles.NewStore(cfg.Author)
		dataset.Bootstrap(store, cfg.DatasetPath, cfg.DatasetURL)

		mcpserver.Version = Version
		fmt.Fprintf(os.Stderr, "aiact MCP server started on stdio (articles=%d)\n", len(store.Articles()))

		srv := mcpserver.NewServer(store)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
