package rlebitmap

import (
	"regexp"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func runsAsRunes(in RleBitmap) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		out[i] = rune(r)
	}
	return out
}

// checkBitmap fails t with a pretty diff if got != want, in the same
// style as byteset_test.go's runForEachTests: render both sides as runes
// and let diffmatchpatch highlight exactly where they diverge.
func checkBitmap(t *testing.T, got, want RleBitmap) {
	t.Helper()
	if got.Equal(want) {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(runsAsRunes(want), runsAsRunes(got), false)
	pretty := dmp.DiffPrettyText(diffs)
	nl := regexp.MustCompile(`(?m)^`)
	pretty = nl.ReplaceAllLiteralString(pretty, "\t")
	t.Errorf("%s: wrong output:\n%s\n(want %s, got %s)", t.Name(), pretty, want, got)
}

func mustBitmap(t *testing.T, runs ...uint64) RleBitmap {
	t.Helper()
	b, err := New(runs...)
	if err != nil {
		t.Fatalf("%s: New(%v): %v", t.Name(), runs, err)
	}
	return b
}
