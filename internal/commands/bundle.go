package commands

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/ctxbundle/internal/config"
	"github.com/temirov/ctxbundle/internal/ignore"
	"github.com/temirov/ctxbundle/internal/output"
	"github.com/temirov/ctxbundle/internal/types"
	"github.com/temirov/ctxbundle/internal/utils"
)

const (
	messageGitIgnoreUnreadable = "ignoring unreadable .gitignore"
	messageGitIgnoreLoaded     = "loaded .gitignore patterns"
	messageBinarySkipped       = "skipping binary file"
	messageFileVanished        = "skipping file that no longer exists"
	messageFileUnreadable      = "skipping unreadable file"
	messageExplicitMissing     = "skipping missing file"
	messageExplicitDirectory   = "skipping directory given as file"
	messageExplicitIrregular   = "skipping non-regular file"

	logFieldMimeType = "mimeType"
	logFieldPatterns = "patterns"
	logFieldReason   = "reason"
	logFieldMode     = "mode"
)

// BundleOptions describes one bundle run.
type BundleOptions struct {
	// Roots are directories to traverse, in order. They must already exist.
	Roots []string
	// Files are explicit files appended after the roots. Missing files are skipped with a warning.
	Files []string
	// Matcher holds the patterns active for every root.
	Matcher ignore.Matcher
	// UseGitignore extends the matcher of each root with the patterns of its .gitignore.
	UseGitignore bool
	// OutputPath is the bundle being written; it is never bundled into itself.
	OutputPath string
	Logger     *zap.Logger
}

// Bundler runs candidates through classification and emission, one file at a time.
type Bundler struct {
	emitter    *output.Emitter
	logger     *zap.Logger
	summary    types.BundleSummary
	outputPath string
	outputInfo os.FileInfo
}

// NewBundler returns a Bundler writing the document to writer.
func NewBundler(writer io.Writer, logger *zap.Logger) *Bundler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bundler{emitter: output.NewEmitter(writer), logger: logger}
}

// WriteBundle traverses every root, then every explicit file, writing accepted files to writer.
// Per-file problems are logged and skipped; only a failing writer or an inaccessible root
// aborts the run.
func WriteBundle(writer io.Writer, options BundleOptions) (types.BundleSummary, error) {
	bundler := NewBundler(writer, options.Logger)
	bundler.SetOutputPath(options.OutputPath)
	for _, rootPath := range options.Roots {
		if err := bundler.AddRoot(rootPath, options.Matcher, options.UseGitignore); err != nil {
			return bundler.Summary(), err
		}
	}
	for _, filePath := range options.Files {
		if err := bundler.AddFile(filePath); err != nil {
			return bundler.Summary(), err
		}
	}
	return bundler.Summary(), nil
}

// SetOutputPath records the bundle destination so traversal never reads it back, whichever
// path (symlinked or not) leads to it.
func (bundler *Bundler) SetOutputPath(outputPath string) {
	bundler.outputPath = ""
	bundler.outputInfo = nil
	if outputPath == "" {
		return
	}
	absolutePath, absoluteErr := filepath.Abs(outputPath)
	if absoluteErr != nil {
		absolutePath = outputPath
	}
	bundler.outputPath = filepath.Clean(absolutePath)
	if outputInfo, statErr := os.Stat(bundler.outputPath); statErr == nil {
		bundler.outputInfo = outputInfo
	}
}

// isOutput reports whether candidate is the bundle being written.
func (bundler *Bundler) isOutput(candidate types.FileCandidate) bool {
	if bundler.outputPath == "" {
		return false
	}
	if filepath.Clean(candidate.Path) == bundler.outputPath {
		return true
	}
	if bundler.outputInfo == nil {
		return false
	}
	candidateInfo, statErr := os.Stat(candidate.Path)
	return statErr == nil && os.SameFile(candidateInfo, bundler.outputInfo)
}

// AddRoot walks rootPath and emits every accepted file below it. The root's .gitignore
// patterns apply to this root only.
func (bundler *Bundler) AddRoot(rootPath string, baseMatcher ignore.Matcher, useGitignore bool) error {
	matcher := baseMatcher
	if useGitignore {
		gitIgnorePatterns, loadErr := config.LoadRootGitIgnorePatterns(rootPath)
		if loadErr != nil {
			bundler.logger.Warn(messageGitIgnoreUnreadable, zap.String(logFieldPath, rootPath), zap.Error(loadErr))
		} else if len(gitIgnorePatterns) > 0 {
			bundler.logger.Debug(messageGitIgnoreLoaded, zap.String(logFieldPath, rootPath), zap.Strings(logFieldPatterns, gitIgnorePatterns))
			matcher = baseMatcher.WithGitIgnore(gitIgnorePatterns)
		}
	}
	return WalkRoot(rootPath, matcher, bundler.logger, bundler.Process)
}

// AddFile emits an explicit file. Exclusion patterns do not apply to explicit files,
// but binary content is still skipped.
func (bundler *Bundler) AddFile(filePath string) error {
	fileInfo, statErr := os.Stat(filePath)
	if statErr != nil {
		bundler.summary.SkippedOnError++
		if isMissing(statErr) {
			bundler.logger.Warn(messageExplicitMissing, zap.String(logFieldPath, filePath))
			return nil
		}
		bundler.logger.Warn(messageFileUnreadable, zap.String(logFieldPath, filePath), zap.Error(statErr))
		return nil
	}
	if fileInfo.IsDir() {
		bundler.summary.SkippedOnError++
		bundler.logger.Warn(messageExplicitDirectory, zap.String(logFieldPath, filePath))
		return nil
	}
	if !fileInfo.Mode().IsRegular() {
		bundler.summary.SkippedOnError++
		bundler.logger.Warn(messageExplicitIrregular, zap.String(logFieldPath, filePath), zap.Stringer(logFieldMode, fileInfo.Mode()))
		return nil
	}
	absolutePath, absoluteErr := filepath.Abs(filePath)
	if absoluteErr != nil {
		absolutePath = filePath
	}
	return bundler.Process(types.FileCandidate{Path: absolutePath, RelativePath: filepath.ToSlash(filePath)})
}

// Process classifies one candidate and emits it when it holds text. Only emitter
// failures are returned.
func (bundler *Bundler) Process(candidate types.FileCandidate) error {
	if bundler.isOutput(candidate) {
		return nil
	}
	isBinary, sniffErr := utils.IsFileBinary(candidate.Path)
	if sniffErr != nil {
		bundler.skipOnError(candidate, sniffErr)
		return nil
	}
	if isBinary {
		bundler.summary.SkippedBinary++
		bundler.logger.Info(messageBinarySkipped,
			zap.String(logFieldPath, candidate.Path),
			zap.String(logFieldReason, string(types.SkipReasonBinary)),
			zap.String(logFieldMimeType, utils.DetectMimeType(candidate.Path)),
		)
		return nil
	}

	// #nosec G304
	content, readErr := os.ReadFile(candidate.Path)
	if readErr != nil {
		bundler.skipOnError(candidate, readErr)
		return nil
	}

	entry := types.EmittedEntry{
		TagName: utils.SanitizeTagName(filepath.Base(candidate.Path)),
		Path:    candidate.Path,
		Content: content,
	}
	return bundler.emitter.Emit(entry)
}

// Summary reports the entries and bytes written so far along with skip counts.
func (bundler *Bundler) Summary() types.BundleSummary {
	summary := bundler.summary
	summary.Entries = bundler.emitter.Entries()
	summary.Bytes = bundler.emitter.BytesWritten()
	return summary
}

func (bundler *Bundler) skipOnError(candidate types.FileCandidate, err error) {
	bundler.summary.SkippedOnError++
	if isMissing(err) {
		bundler.logger.Warn(messageFileVanished,
			zap.String(logFieldPath, candidate.Path),
			zap.String(logFieldReason, string(types.SkipReasonMissing)),
		)
		return
	}
	bundler.logger.Warn(messageFileUnreadable,
		zap.String(logFieldPath, candidate.Path),
		zap.String(logFieldReason, string(types.SkipReasonUnreadable)),
		zap.Error(err),
	)
}
