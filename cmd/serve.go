package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/takumif/aiact-explorer/internal/articles"
	"github.com/takumif/aiact-explorer/internal/audit"
	"github.com/takumif/aiact-explorer/internal/dataset"
	"github.com/takumif/aiact-explorer/internal/db"
	"github.com/takumif/aiact-explorer/internal/server"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the article explorer HTTP server",
	Long: `Starts the explorer server: REST API for the browser viewer/editor,
WebSocket state-change notifications, slide deck export, and the edit
history. The dataset file is loaded at startup; when it is missing the
default dataset URL is fetched, and when that fails too the server starts
with an empty collection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "aiact.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		history := audit.NewStore(database)

		store := articles.NewStore(cfg.Author)
		store.Subscribe(audit.Recorder(history, cfg.Author))

		dataset.Bootstrap(store, cfg.DatasetPath, cfg.DatasetURL)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.CORSAllowAll,
		}, store, history)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveWatch {
			go func() {
				if err := dataset.Watch(ctx, store, cfg.DatasetPath); err != nil && !errors.Is(err, context.Canceled) {
					fmt.Fprintf(os.Stderr, "Warning: dataset watch stopped: %v\n", err)
				}
			}()
		}

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured port")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the dataset file when it changes on disk")
	rootCmd.AddCommand(serveCmd)
}
