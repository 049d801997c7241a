// Package compare produces a textual diff between two rendered
// assessment reports, used to review how a re-assessment moved.
package compare

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a diff-match-patch text diff from before to after.
// Both inputs are normalized first so CRLF and trailing whitespace
// never show up as changes. Returns "" when the reports are identical.
func Diff(before, after string) string {
	normBefore := normalize(before)
	normAfter := normalize(after)
	if normBefore == normAfter {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(normBefore, normAfter, false)
	patches := dmp.PatchMake(normBefore, diffs)
	return dmp.PatchToText(patches)
}

// normalize trims trailing whitespace from each line and converts CRLF to LF.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
