package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner"
)

func extractCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "extract <pdf>",
		Short: "Extract the outline of a single PDF as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := outliner.Open(args[0]).Config(extractConfig()).Outline()
			if err != nil {
				return fmt.Errorf("extracting %s: %w", args[0], err)
			}

			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}
			return os.WriteFile(out, append(encoded, '\n'), 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
