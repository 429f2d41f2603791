package dmp

import "strings"

// ANSI SGR codes used by DiffPrettyConsole.
const (
	ansiReset     = "\x1b[0m"
	ansiGreenBg   = "\x1b[42m"
	ansiRedBg     = "\x1b[41m"
	ansiUnderline = "\x1b[4m"
)

// DiffPrettyConsole renders a diff list for a terminal: insertions on a
// green background, deletions on a red background and underlined, and
// equalities plain. It is intended as a human-readable companion to
// DiffPrettyHtml for CLI output.
func DiffPrettyConsole(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			b.WriteString(ansiGreenBg)
			b.WriteString(d.Text)
			b.WriteString(ansiReset)
		case DiffDelete:
			b.WriteString(ansiRedBg)
			b.WriteString(ansiUnderline)
			b.WriteString(d.Text)
			b.WriteString(ansiReset)
		case DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
