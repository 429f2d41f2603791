package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/towel42-com/diff-match-patch/dmp"
)

var applyCmd = &cobra.Command{
	Use:   "apply <patchfile> <textfile>",
	Short: "Apply a patch set (as produced by 'dmptool patch') to a text file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		patchText, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		text, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[1], err)
		}

		patches, err := dmp.PatchFromText(string(patchText))
		if err != nil {
			return fmt.Errorf("parsing patch: %w", err)
		}

		result, applied := cfg.PatchApply(patches, string(text))
		for i, ok := range applied {
			if !ok {
				fmt.Fprintf(os.Stderr, "dmptool: patch %d did not apply cleanly\n", i)
			}
		}
		fmt.Print(result)
		return nil
	},
}
