package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ziadkadry99/studydeck/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize studydeck configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure where your training PDFs live and generates a .studydeck.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
