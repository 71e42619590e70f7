package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Extract leveled document outlines from PDF files",
	Long: `Outliner classifies the text lines of a PDF into a document outline:
a title plus H1-H6 headings, repaired into a consistent hierarchy.

Heading detection combines explicit numbering markers (1., 1.2, A., (1), a))
with font-size, boldness and page-position signals; a validation pass fixes
skipped depths and over-nesting, and a precision filter drops page footers,
revision-log rows and other document furniture.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
		return loadSettings(cfgFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./outliner.yaml)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(batchCmd())
}
