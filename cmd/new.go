package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/takumif/aiact-explorer/internal/articles"
	"github.com/takumif/aiact-explorer/internal/dataset"
)

var newCmd = &cobra.Command{
	Use:   "new [article-number]",
	Short: "Add a new article to the dataset",
	Long: `Adds a draft article to the dataset file. The article number (for
example "24条") can be given as an argument or entered interactively; the
article id is derived from its digits and must not collide with an
existing article.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store := articles.NewStore(cfg.Author)
		if err := dataset.LoadFile(store, cfg.DatasetPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading dataset: %w", err)
		}

		var number string
		if len(args) == 1 {
			number = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "新しい条文番号（例: 24条）",
				Validate: func(s string) error {
					if s == "" {
						return errors.New("article number is required")
					}
					return nil
				},
			}
			number, err = prompt.Run()
			if err != nil {
				return fmt.Errorf("reading article number: %w", err)
			}
		}

		a, err := store.AddArticle(number)
		if err != nil {
			if errors.Is(err, articles.ErrDuplicateID) {
				return fmt.Errorf("an article with that number already exists")
			}
			return err
		}

		if err := dataset.SaveFile(store, cfg.DatasetPath); err != nil {
			return fmt.Errorf("saving dataset: %w", err)
		}

		fmt.Printf("Added %s (%s) to %s\n", a.ArticleNumber, a.ArticleID, cfg.DatasetPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
