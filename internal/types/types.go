// Package types defines the data structures shared by the ctxbundle packages.
package types

// ValidatedPath is an absolute folder path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
}

// FileCandidate is a file discovered during traversal. It only lives for the duration of a walk.
type FileCandidate struct {
	// Path is the absolute path of the file.
	Path string
	// RelativePath is the forward-slash path below the traversal root, or the
	// path as given for explicit files.
	RelativePath string
}

// EmittedEntry is one tagged block of the bundle.
type EmittedEntry struct {
	TagName string
	Path    string
	Content []byte
}

// SkipReason explains why a candidate did not reach the bundle.
type SkipReason string

const (
	SkipReasonBinary     SkipReason = "binary"
	SkipReasonUnreadable SkipReason = "unreadable"
	SkipReasonMissing    SkipReason = "missing"
)

// BundleSummary captures aggregate information about a finished bundle.
type BundleSummary struct {
	OutputPath     string
	Entries        int
	SkippedBinary  int
	SkippedOnError int
	Bytes          int64
	Tokens         int
	Model          string
}
