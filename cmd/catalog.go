package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catalogExport string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the training catalog",
	Long:  `Prints the modules, resources and glossary terms studydeck serves. Use --export to write the catalog as YAML for editing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		if catalogExport != "" {
			if err := c.Save(catalogExport); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Catalog written to %s\n", catalogExport)
			return nil
		}

		fmt.Printf("%s\n\nModules:\n", c.Name)
		for _, m := range c.Modules {
			fmt.Printf("  %2d  %s\n", m.ID, m.Title)
		}
		for _, g := range c.Grouped() {
			if len(g.Records) == 0 {
				continue
			}
			fmt.Printf("\n%s:\n", g.Category.Label())
			for _, r := range g.Records {
				fmt.Printf("  %-12s %s\n", r.ID, r.Title)
			}
		}
		fmt.Printf("\nPractice: %s\nGlossary: %s (%d terms)\n", c.Practice.Title, c.Glossary.Title, len(c.Terms))
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogExport, "export", "", "write the catalog to this YAML file instead of printing it")
	rootCmd.AddCommand(catalogCmd)
}
