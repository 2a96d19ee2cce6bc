// Package commands contains the file-selection pipeline behind the bundle command.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/ctxbundle/internal/ignore"
	"github.com/temirov/ctxbundle/internal/types"
	"github.com/temirov/ctxbundle/internal/utils"
)

const (
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	errorWalkRootFormat     = "walking %s: %w"

	messageAccessPath        = "skipping inaccessible path"
	messagePrunedDirectory   = "pruned directory"
	messageExcludedDirectory = "skipped excluded directory"
	messageExcludedFile      = "skipped excluded file"
	messageIrregularFile     = "skipped non-regular file"

	logFieldPath = "path"
)

// FileVisitor receives each FileCandidate that survives exclusion filtering.
type FileVisitor func(types.FileCandidate) error

// WalkRoot enumerates the regular files below rootPath in lexical order and calls visitor
// for every file the matcher does not exclude. A symlinked root is resolved first; links
// below the root are not followed. Directories named utils.PrunedDirectoryName
// are never entered. Inaccessible entries below the root are logged and skipped; an
// inaccessible root is returned as an error.
func WalkRoot(rootPath string, matcher ignore.Matcher, logger *zap.Logger, visitor FileVisitor) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	cleanedRootPath := filepath.Clean(absoluteRootPath)
	// WalkDir does not follow a symlinked root; walk its target instead.
	if resolvedRootPath, resolveErr := filepath.EvalSymlinks(cleanedRootPath); resolveErr == nil {
		cleanedRootPath = resolvedRootPath
	}

	walkErr := filepath.WalkDir(cleanedRootPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			if walkedPath == cleanedRootPath {
				return accessError
			}
			logger.Warn(messageAccessPath, zap.String(logFieldPath, walkedPath), zap.Error(accessError))
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relativePath := utils.RelativePathOrSelf(walkedPath, cleanedRootPath)
		if relativePath == "." {
			return nil
		}

		if directoryEntry.IsDir() {
			if directoryEntry.Name() == utils.PrunedDirectoryName {
				logger.Debug(messagePrunedDirectory, zap.String(logFieldPath, walkedPath))
				return filepath.SkipDir
			}
			if matcher.ExcludesSubtree(relativePath) {
				logger.Debug(messageExcludedDirectory, zap.String(logFieldPath, walkedPath))
				return filepath.SkipDir
			}
			return nil
		}

		if !directoryEntry.Type().IsRegular() {
			logger.Debug(messageIrregularFile, zap.String(logFieldPath, walkedPath))
			return nil
		}
		if matcher.Excluded(relativePath) {
			logger.Debug(messageExcludedFile, zap.String(logFieldPath, walkedPath))
			return nil
		}

		return visitor(types.FileCandidate{Path: walkedPath, RelativePath: relativePath})
	})
	if walkErr != nil {
		return fmt.Errorf(errorWalkRootFormat, rootPath, walkErr)
	}
	return nil
}

// isMissing reports errors caused by a path that no longer exists.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
