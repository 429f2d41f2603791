package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/towel42-com/diff-match-patch/dmp"
)

var diffSemantic bool
var diffPretty string

var diffCmd = &cobra.Command{
	Use:   "diff <file1> <file2>",
	Short: "Diff two files and print the result",
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

		diffs := cfg.DiffMain(string(text1), string(text2), true)
		if diffSemantic {
			diffs = dmp.DiffCleanupSemantic(diffs)
		}

		switch diffPretty {
		case "console":
			fmt.Println(dmp.DiffPrettyConsole(diffs))
		case "html":
			fmt.Println(dmp.DiffPrettyHtml(diffs))
		case "delta":
			fmt.Println(dmp.DiffToDelta(diffs))
		default:
			return fmt.Errorf("unknown --pretty value %q (want console, html, or delta)", diffPretty)
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffSemantic, "semantic", true, "run DiffCleanupSemantic before rendering")
	diffCmd.Flags().StringVar(&diffPretty, "pretty", "console", "render format: console, html, or delta")
}
