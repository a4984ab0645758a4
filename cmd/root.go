package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "studydeck",
	Short: "Self-hosted reader for PDF training materials",
	Long: `studydeck serves a library of PDF training materials as a small web app:
numbered modules with completion tracking, study resources, practice
questions and a searchable glossary, all read through a shared document
viewer with page, zoom and rotation controls.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".studydeck.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
