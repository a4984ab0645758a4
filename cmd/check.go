package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/progress"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every catalog document exists and is a readable PDF",
	Long: `Checks each module, resource, practice and glossary document against the
materials directory, reporting missing or unreadable files and PDFs in the
directory that the catalog never references.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	reports, err := catalog.Inspect(cmd.Context(), cfg.MaterialsDir, c.Records(), progress.NewReporter())
	if err != nil {
		return fmt.Errorf("inspecting materials: %w", err)
	}

	problems := 0
	for _, r := range reports {
		switch {
		case !r.OK():
			problems++
			fmt.Fprintf(os.Stderr, "  FAIL %-40s %s\n", r.Record.Title, r.Err)
		case verbose:
			fmt.Fprintf(os.Stderr, "  ok   %-40s %d pages, %d bytes\n", r.Record.Title, r.Pages, r.Size)
		}
	}

	files, err := catalog.Discover(cfg.MaterialsDir, cfg.Include, cfg.Exclude)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not scan %s: %v\n", cfg.MaterialsDir, err)
	}
	for _, f := range c.Unreferenced(files) {
		fmt.Fprintf(os.Stderr, "  note %s is not in the catalog\n", f)
	}

	fmt.Fprintf(os.Stderr, "\nChecked %d documents, %d problem(s)\n", len(reports), problems)
	if problems > 0 {
		return fmt.Errorf("%d document(s) failed the check", problems)
	}
	return nil
}
