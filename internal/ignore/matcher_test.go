package ignore_test

import (
	"testing"

	"github.com/temirov/ctxbundle/internal/ignore"
)

func TestDefaultMatcherBuiltInPatterns(t *testing.T) {
	matcher := ignore.DefaultMatcher(nil)
	testCases := []struct {
		path     string
		expected bool
	}{
		{path: ".git/config", expected: true},
		{path: "vendor/lib/.git/HEAD", expected: true},
		{path: ".gitignore", expected: true},
		{path: ".terragrunt-cache/abc/main.tf", expected: true},
		{path: "assets/logo.png", expected: true},
		{path: "release.tar.gz", expected: true},
		{path: ".DS_Store", expected: true},
		{path: "pkg/__pycache__/mod.cpython-312.pyc", expected: true},
		{path: "go.sum", expected: true},
		{path: "web/package-lock.json", expected: true},
		{path: "web/node_modules/react/index.js", expected: true},
		{path: "dist/app.js", expected: true},
		{path: ".venv/bin/activate", expected: true},
		{path: ".cache/state.json", expected: true},
		{path: "main.go", expected: false},
		{path: "notgo.sum", expected: false},
		{path: "build.go", expected: false},
		{path: "about/readme.md", expected: false},
		{path: "docs/guide.md", expected: false},
	}
	for _, testCase := range testCases {
		if actual := matcher.Excluded(testCase.path); actual != testCase.expected {
			t.Fatalf("Excluded(%q) = %v, expected %v", testCase.path, actual, testCase.expected)
		}
	}
}

func TestMatcherGitIgnorePatterns(t *testing.T) {
	base := ignore.DefaultMatcher(nil)
	matcher := base.WithGitIgnore([]string{"secret.txt", "*.log", "  tmp  ", ""})

	testCases := []struct {
		path     string
		expected bool
	}{
		{path: "secret.txt", expected: true},
		{path: "secret.txt.bak", expected: true},
		{path: "nested/secret.txt", expected: true},
		{path: "public.txt", expected: false},
		{path: "logs/app.log", expected: true},
		{path: "tmp/scratch.md", expected: true},
		{path: "src/template.go", expected: false},
	}
	for _, testCase := range testCases {
		if actual := matcher.Excluded(testCase.path); actual != testCase.expected {
			t.Fatalf("Excluded(%q) = %v, expected %v", testCase.path, actual, testCase.expected)
		}
	}
	if base.Excluded("secret.txt") {
		t.Fatalf("WithGitIgnore modified the base matcher")
	}
}

func TestMatcherExtraPatterns(t *testing.T) {
	matcher := ignore.DefaultMatcher([]string{"fixtures/*", "*.golden"})
	if !matcher.Excluded("testdata/fixtures/input.json") {
		t.Fatalf("expected fixtures content to be excluded")
	}
	if !matcher.Excluded("out.golden") {
		t.Fatalf("expected golden file to be excluded")
	}
	if matcher.Excluded("fixtures.go") {
		t.Fatalf("fixtures.go must not be excluded")
	}
}

func TestMatcherExcludesSubtree(t *testing.T) {
	matcher := ignore.DefaultMatcher(nil).WithGitIgnore([]string{"tmp", "notes.md"})
	testCases := []struct {
		directory string
		expected  bool
	}{
		{directory: "node_modules", expected: true},
		{directory: "web/node_modules", expected: true},
		{directory: ".git", expected: true},
		{directory: "build", expected: true},
		{directory: "tmp", expected: true},
		{directory: "src", expected: false},
		{directory: "dist_tools", expected: false},
		{directory: ".", expected: false},
		{directory: "", expected: false},
	}
	for _, testCase := range testCases {
		if actual := matcher.ExcludesSubtree(testCase.directory); actual != testCase.expected {
			t.Fatalf("ExcludesSubtree(%q) = %v, expected %v", testCase.directory, actual, testCase.expected)
		}
	}
}

func TestExcludedHelper(t *testing.T) {
	patterns := ignore.Patterns(ignore.OriginGitIgnore, []string{"secret"})
	if !ignore.Excluded("config/secret.env", patterns) {
		t.Fatalf("expected secret.env to be excluded")
	}
	if ignore.Excluded("config/public.env", patterns) {
		t.Fatalf("public.env must not be excluded")
	}
}

func TestBuiltInPatternsCarryOrigin(t *testing.T) {
	patterns := ignore.BuiltInPatterns()
	if len(patterns) == 0 {
		t.Fatalf("expected built-in patterns")
	}
	for _, pattern := range patterns {
		if pattern.Origin != ignore.OriginBuiltIn {
			t.Fatalf("pattern %q has origin %q", pattern.Text, pattern.Origin)
		}
	}
}
