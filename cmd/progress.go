package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/studydeck/internal/completion"
	"github.com/ziadkadry99/studydeck/internal/db"
	"github.com/ziadkadry99/studydeck/internal/pages"
)

var progressReset string

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "List learners and their module completion",
	Long:  `Lists every learner (browser session) with stored completion and their progress. Use --reset to clear one learner's completed modules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := completion.NewStore(db.NewKV(database))
		ctx := cmd.Context()

		if progressReset != "" {
			if err := store.Reset(ctx, progressReset); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Cleared completion for %s\n", progressReset)
			return nil
		}

		users, err := store.Users(ctx)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Fprintf(os.Stderr, "No learner progress stored in %s\n", database.Path())
			return nil
		}

		for _, u := range users {
			done, err := store.Load(ctx, u)
			if err != nil {
				return err
			}
			p := pages.ComputeProgress(c, done)
			fmt.Printf("%-36s  %3d%%  %d of %d modules\n", u, p.Percent, p.Completed, p.Total)
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().StringVar(&progressReset, "reset", "", "learner id whose completed modules are cleared")
	rootCmd.AddCommand(progressCmd)
}
