// Package ignore decides which paths are left out of a bundle.
//
// Patterns are shell globs matched against root-relative paths of the form "./dir/file".
// Built-in and extra patterns are anchored as "*/pattern"; patterns read from a .gitignore
// are anchored as "*/pattern*". Gitignore negation, anchoring and directory-only syntax are
// not interpreted: every line is a plain glob.
package ignore

import (
	"strings"

	"github.com/temirov/ctxbundle/internal/utils"
)

// Origin identifies where a pattern came from.
type Origin string

const (
	// OriginBuiltIn marks the fixed patterns that are always active.
	OriginBuiltIn Origin = "builtin"
	// OriginExtra marks patterns supplied through flags or configuration.
	OriginExtra Origin = "extra"
	// OriginGitIgnore marks patterns read from a root .gitignore.
	OriginGitIgnore Origin = "gitignore"
)

const (
	anchorPrefix      = "*/"
	gitIgnoreSuffix   = "*"
	directorySuffix   = "/"
	prefixPathSegment = "."
)

// Pattern is one exclusion pattern and its origin.
type Pattern struct {
	Text   string
	Origin Origin
}

// glob returns the anchored glob used to test paths.
func (pattern Pattern) glob() string {
	if pattern.Origin == OriginGitIgnore {
		// "*/pattern*" also covers the "*/pattern" form.
		return anchorPrefix + pattern.Text + gitIgnoreSuffix
	}
	return anchorPrefix + pattern.Text
}

// Matcher is an immutable set of exclusion patterns.
type Matcher struct {
	patterns []Pattern
	globs    []string
}

// NewMatcher builds a Matcher from patterns, dropping blanks and duplicates of the same origin.
func NewMatcher(patterns ...Pattern) Matcher {
	seen := make(map[Pattern]struct{}, len(patterns))
	matcher := Matcher{}
	for _, pattern := range patterns {
		pattern.Text = strings.TrimSpace(pattern.Text)
		if pattern.Text == "" {
			continue
		}
		if _, duplicate := seen[pattern]; duplicate {
			continue
		}
		seen[pattern] = struct{}{}
		matcher.patterns = append(matcher.patterns, pattern)
		matcher.globs = append(matcher.globs, pattern.glob())
	}
	return matcher
}

// DefaultMatcher returns a Matcher holding the built-in patterns plus the provided extra patterns.
func DefaultMatcher(extraPatterns []string) Matcher {
	return NewMatcher(append(BuiltInPatterns(), Patterns(OriginExtra, extraPatterns)...)...)
}

// Patterns wraps raw pattern strings with an origin.
func Patterns(origin Origin, texts []string) []Pattern {
	patterns := make([]Pattern, 0, len(texts))
	for _, text := range texts {
		patterns = append(patterns, Pattern{Text: text, Origin: origin})
	}
	return patterns
}

// WithGitIgnore returns a copy of the matcher extended with gitignore-derived patterns.
// The receiver is left untouched so one base matcher can serve several roots.
func (matcher Matcher) WithGitIgnore(lines []string) Matcher {
	combined := make([]Pattern, 0, len(matcher.patterns)+len(lines))
	combined = append(combined, matcher.patterns...)
	combined = append(combined, Patterns(OriginGitIgnore, lines)...)
	return NewMatcher(combined...)
}

// Excluded reports whether the root-relative path is matched by any pattern.
func (matcher Matcher) Excluded(relativePath string) bool {
	matchPath := utils.MatchPath(relativePath)
	for _, glob := range matcher.globs {
		if MatchGlob(glob, matchPath) {
			return true
		}
	}
	return false
}

// ExcludesSubtree reports whether every path below the root-relative directory is excluded.
// This holds when a pattern ending in a star matches the directory path with a trailing
// slash: the star absorbs any deeper suffix, so the directory need not be visited.
func (matcher Matcher) ExcludesSubtree(relativeDirectory string) bool {
	matchPath := utils.MatchPath(relativeDirectory)
	if matchPath == prefixPathSegment {
		return false
	}
	directoryPath := matchPath + directorySuffix
	for _, glob := range matcher.globs {
		if !strings.HasSuffix(glob, gitIgnoreSuffix) || strings.HasSuffix(glob, `\`+gitIgnoreSuffix) {
			continue
		}
		if MatchGlob(glob, directoryPath) {
			return true
		}
	}
	return false
}

// Excluded reports whether path is excluded by any of patterns. It is a convenience
// wrapper around NewMatcher for one-off checks.
func Excluded(relativePath string, patterns []Pattern) bool {
	return NewMatcher(patterns...).Excluded(relativePath)
}
