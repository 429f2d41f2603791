// Command dmptool is a thin CLI harness over package dmp: it exercises
// diffing, patch construction, and patch application from the shell
// without embedding any algorithmic logic of its own.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/towel42-com/diff-match-patch/dmp"
)

var cfg = dmp.NewConfig()

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	rootCmd := &cobra.Command{
		Use:          "dmptool [command]",
		Short:        "Diff, fuzzy-match, and patch text from the command line",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&cfg.DiffTimeout, "diff-timeout", cfg.DiffTimeout, "diff time budget in seconds (0 = unlimited)")
	flags.IntVar(&cfg.DiffEditCost, "diff-edit-cost", cfg.DiffEditCost, "cost threshold for DiffCleanupEfficiency")
	flags.Float64Var(&cfg.MatchThreshold, "match-threshold", cfg.MatchThreshold, "bitap match acceptance threshold [0,1]")
	flags.IntVar(&cfg.MatchDistance, "match-distance", cfg.MatchDistance, "bitap positional drift penalty")
	flags.Float64Var(&cfg.PatchDeleteThreshold, "patch-delete-threshold", cfg.PatchDeleteThreshold, "levenshtein fraction tolerated on a big delete")
	flags.IntVar(&cfg.PatchMargin, "patch-margin", cfg.PatchMargin, "context runes kept around each hunk")
	flags.IntVar(&cfg.MatchMaxBits, "match-max-bits", cfg.MatchMaxBits, "max pattern length for bitap / hunk size for splitMax")

	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(selftestCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
