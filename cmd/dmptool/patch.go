package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/towel42-com/diff-match-patch/dmp"
)

var patchCmd = &cobra.Command{
	Use:   "patch <file1> <file2>",
	Short: "Build a patch set from file1 to file2 and print it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text1, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		text2, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[1], err)
		}

		patches := cfg.PatchMake(string(text1), string(text2))
		fmt.Print(dmp.PatchToText(patches))
		return nil
	},
}
