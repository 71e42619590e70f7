package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner"
)

func batchCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Extract outlines for every PDF in a directory",
		Long: `Batch processes every *.pdf in the input directory, writing one
<stem>.json per document to the output directory. Failures are isolated:
a document that cannot be processed is logged and skipped, and the batch
continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = args[0]
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			entries, err := os.ReadDir(args[0])
			if err != nil {
				return fmt.Errorf("reading input directory: %w", err)
			}

			var processed, failed int
			for _, entry := range entries {
				if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
					continue
				}
				path := filepath.Join(args[0], entry.Name())
				if err := extractOne(path, out); err != nil {
					slog.Error("document failed", "path", path, "error", err)
					failed++
					continue
				}
				processed++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d document(s), %d failed\n", processed, failed)
			if processed == 0 && failed > 0 {
				return fmt.Errorf("all %d document(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default: input directory)")
	return cmd
}

func extractOne(path, outDir string) error {
	result, err := outliner.Open(path).Config(extractConfig()).Outline()
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	target := filepath.Join(outDir, stem+".json")
	return os.WriteFile(target, append(encoded, '\n'), 0o644)
}
