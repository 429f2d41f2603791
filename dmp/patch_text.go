package dmp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var patchHeaderRegex = regexp.MustCompile(`^@@ -(\d+),?(\d*) \+(\d+),?(\d*) @@$`)

// String renders a patch in the classic unified-diff-flavored format:
// "@@ -start1,length1 +start2,length2 @@" followed by one line per diff,
// prefixed with ' ', '-', or '+' and percent-encoded the same way
// DiffToDelta encodes insertions.
func (p Patch) String() string {
	var coords1, coords2 string
	switch {
	case p.Length1 == 0:
		coords1 = fmt.Sprintf("%d,0", p.Start1)
	case p.Length1 == 1:
		coords1 = strconv.Itoa(p.Start1 + 1)
	default:
		coords1 = fmt.Sprintf("%d,%d", p.Start1+1, p.Length1)
	}
	switch {
	case p.Length2 == 0:
		coords2 = fmt.Sprintf("%d,0", p.Start2)
	case p.Length2 == 1:
		coords2 = strconv.Itoa(p.Start2 + 1)
	default:
		coords2 = fmt.Sprintf("%d,%d", p.Start2+1, p.Length2)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@@ -%s +%s @@\n", coords1, coords2)

	for _, d := range p.Diffs {
		switch d.Type {
		case DiffInsert:
			b.WriteByte('+')
			b.WriteString(percentEncode(d.Text))
		case DiffDelete:
			b.WriteByte('-')
			b.WriteString(percentEncode(d.Text))
		case DiffEqual:
			b.WriteByte(' ')
			b.WriteString(percentEncode(d.Text))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// PatchToText renders a list of patches as the concatenation of their
// String() forms, the standard serialization for storage or transport.
func PatchToText(patches []Patch) string {
	var b strings.Builder
	for _, p := range patches {
		b.WriteString(p.String())
	}
	return b.String()
}

// PatchFromText parses a patch list out of text produced by PatchToText,
// returning an error wrapping ErrMalformedPatchText on the first line that
// doesn't fit the hunk-header or diff-line grammar.
func PatchFromText(text string) ([]Patch, error) {
	var patches []Patch
	if len(text) == 0 {
		return patches, nil
	}
	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) {
		if lines[i] == "" {
			i++
			continue
		}
		m := patchHeaderRegex.FindStringSubmatch(lines[i])
		if m == nil {
			return nil, fmt.Errorf("%w: invalid hunk header: %q", ErrMalformedPatchText, lines[i])
		}

		var p Patch
		p.Start1, _ = strconv.Atoi(m[1])
		switch m[2] {
		case "":
			p.Start1--
			p.Length1 = 1
		case "0":
			p.Length1 = 0
		default:
			p.Start1--
			p.Length1, _ = strconv.Atoi(m[2])
		}

		p.Start2, _ = strconv.Atoi(m[3])
		switch m[4] {
		case "":
			p.Start2--
			p.Length2 = 1
		case "0":
			p.Length2 = 0
		default:
			p.Start2--
			p.Length2, _ = strconv.Atoi(m[4])
		}
		i++

		for i < len(lines) {
			if len(lines[i]) == 0 {
				i++
				continue
			}
			tag := lines[i][0]
			if tag == '@' {
				break
			}
			line, err := percentDecode(lines[i][1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedPatchText, err)
			}
			switch tag {
			case '-':
				p.Diffs = append(p.Diffs, Diff{DiffDelete, line})
			case '+':
				p.Diffs = append(p.Diffs, Diff{DiffInsert, line})
			case ' ':
				p.Diffs = append(p.Diffs, Diff{DiffEqual, line})
			default:
				return nil, fmt.Errorf("%w: invalid diff line prefix %q", ErrMalformedPatchText, string(tag))
			}
			i++
		}
		patches = append(patches, p)
	}
	return patches, nil
}
