package ignore_test

import (
	"testing"

	"github.com/temirov/ctxbundle/internal/ignore"
)

func TestMatchGlob(t *testing.T) {
	testCases := []struct {
		name     string
		pattern  string
		value    string
		expected bool
	}{
		{name: "anchored file at root", pattern: "*/a.txt", value: "./a.txt", expected: true},
		{name: "anchored file nested", pattern: "*/a.txt", value: "./docs/a.txt", expected: true},
		{name: "anchored suffix only", pattern: "*/a.txt", value: "./ba.txt", expected: false},
		{name: "star crosses separators", pattern: "*.go", value: "cmd/app/main.go", expected: true},
		{name: "question mark", pattern: "?.go", value: "a.go", expected: true},
		{name: "question mark single rune", pattern: "?.go", value: "ab.go", expected: false},
		{name: "question mark multibyte", pattern: "?x", value: "éx", expected: true},
		{name: "class member", pattern: "[abc].txt", value: "b.txt", expected: true},
		{name: "class bang negation", pattern: "[!abc].txt", value: "b.txt", expected: false},
		{name: "class caret negation", pattern: "[^a-c].txt", value: "d.txt", expected: true},
		{name: "class range", pattern: "file[0-9]", value: "file7", expected: true},
		{name: "class leading bracket", pattern: "[]a]", value: "]", expected: true},
		{name: "unterminated class is literal", pattern: "[a-", value: "[a-", expected: true},
		{name: "escaped star", pattern: `\*`, value: "*", expected: true},
		{name: "escaped star is literal", pattern: `\*`, value: "a", expected: false},
		{name: "several stars", pattern: "a*b*c", value: "axxbyyc", expected: true},
		{name: "several stars mismatch", pattern: "a*b*c", value: "axxbyy", expected: false},
		{name: "star matches empty", pattern: "*", value: "", expected: true},
		{name: "empty pattern", pattern: "", value: "", expected: true},
		{name: "empty pattern mismatch", pattern: "", value: "a", expected: false},
		{name: "trailing star", pattern: "*/secret*", value: "./secret.txt.bak", expected: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if actual := ignore.MatchGlob(testCase.pattern, testCase.value); actual != testCase.expected {
				t.Fatalf("MatchGlob(%q, %q) = %v, expected %v", testCase.pattern, testCase.value, actual, testCase.expected)
			}
		})
	}
}
