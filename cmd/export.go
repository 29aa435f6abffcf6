package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takumif/aiact-explorer/internal/articles"
	"github.com/takumif/aiact-explorer/internal/dataset"
	"github.com/takumif/aiact-explorer/internal/progress"
	"github.com/takumif/aiact-explorer/internal/slides"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the slide deck as a standalone HTML document",
	Long: `Derives the slide sequence from the dataset (title, body and
requirements slides per article) and writes it as a self-contained
paginated HTML file suitable for printing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportOutput != "" {
			cfg.OutputDir = exportOutput
		}

		store := articles.NewStore(cfg.Author)
		dataset.Bootstrap(store, cfg.DatasetPath, cfg.DatasetURL)

		arts := store.Articles()
		if len(arts) == 0 {
			return fmt.Errorf("the collection is empty, nothing to export")
		}

		reporter := progress.NewReporter()
		reporter.Start(len(arts))
		var deck []slides.Slide
		for i, a := range arts {
			deck = append(deck, slides.BuildDeck([]articles.Article{a})...)
			reporter.Update(i+1, a.ArticleNumber)
		}
		reporter.Finish()

		path, err := slides.NewExporter("").WriteFile(cfg.OutputDir, deck)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d slides to %s\n", len(deck), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "override output directory (defaults to the configured output_dir)")
	rootCmd.AddCommand(exportCmd)
}
