package dmp

import "regexp"

// Precompiled boundary-detection patterns used by the semantic cleanup
// passes. Together with patchHeaderRegex in patch_text.go, these are the
// only package-level mutable-looking state in dmp, and they are read-only
// after init, so they impose no cross-call
// constraints (see spec.md §5).
var (
	nonAlphaNumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespaceRegex      = regexp.MustCompile(`\s`)
	linebreakRegex       = regexp.MustCompile(`[\r\n]`)
	blanklineEndRegex    = regexp.MustCompile(`\n\r?\n$`)
	blanklineStartRegex  = regexp.MustCompile(`^\r?\n\r?\n`)
)
