// Package config loads exclusion patterns from ignore files and application defaults from config.yaml.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/ctxbundle/internal/utils"
)

const (
	commentPrefix          = "#"
	errorLoadIgnoreFormat  = "loading %s from %s: %w"
	errorScanIgnoreFormat  = "scanning %s: %w"
	warningCloseFileFormat = "Warning: failed to close %s: %v\n"
)

// LoadIgnoreFilePatterns reads ignoreFilePath and returns one pattern per meaningful line.
// Blank lines and lines starting with '#' are skipped and surrounding whitespace is trimmed.
// No other ignore-file syntax is interpreted. A missing file yields no patterns and no error.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil {
			fmt.Fprintf(os.Stderr, warningCloseFileFormat, ignoreFilePath, closeError)
		}
	}()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, fmt.Errorf(errorScanIgnoreFormat, ignoreFilePath, scanError)
	}
	return utils.DeduplicatePatterns(ignorePatterns), nil
}

// LoadRootGitIgnorePatterns returns the patterns of the .gitignore located directly in
// rootDirectoryPath. Nested .gitignore files are not consulted.
func LoadRootGitIgnorePatterns(rootDirectoryPath string) ([]string, error) {
	gitIgnoreFilePath := filepath.Join(rootDirectoryPath, utils.GitIgnoreFileName)
	patterns, loadError := LoadIgnoreFilePatterns(gitIgnoreFilePath)
	if loadError != nil {
		return nil, fmt.Errorf(errorLoadIgnoreFormat, utils.GitIgnoreFileName, rootDirectoryPath, loadError)
	}
	return patterns, nil
}
