// Package utils contains general helper functions used across the bundle tool.
package utils

import (
	"path/filepath"
	"strings"
)

// File and directory names with special meaning during traversal.
const (
	// GitIgnoreFileName is the name of the Git ignore file read at each root.
	GitIgnoreFileName = ".gitignore"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// PrunedDirectoryName is the Terraform working directory that is never descended into.
	PrunedDirectoryName = ".terraform"
	// ConfigFileName is the name of the application configuration file.
	ConfigFileName = "config.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding global configuration.
	GlobalConfigDirectoryName = ".ctxbundle"
	// DefaultOutputDirectoryName is the directory under the user's home receiving bundles.
	DefaultOutputDirectoryName = "ctxbundle"
)

const pathSegmentSeparator = "/"

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// RelativePathOrSelf calculates the forward-slash path of fullPath relative to root.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// MatchPath converts a root-relative path into the form exclusion patterns are matched against:
// forward slashes with a leading "./", the way `find .` prints paths from inside the root.
func MatchPath(relativePath string) string {
	normalized := strings.ReplaceAll(filepath.ToSlash(relativePath), "\\", pathSegmentSeparator)
	normalized = strings.TrimPrefix(normalized, "./")
	if normalized == "" || normalized == "." {
		return "."
	}
	return "." + pathSegmentSeparator + normalized
}
