// Package walker handles directory traversal and file processing
package walker

// WalkFunc is the callback invoked for every file that survives filtering.
// path is the file's path rooted at the walk argument; content is nil when
// err is non-nil. Walk-level errors for a single file arrive through err so
// the caller can report them inline without aborting the traversal.
type WalkFunc func(path string, content []byte, err error) error

// SkippedReason clarifies why a file/directory was not processed.
type SkippedReason string

const (
	ReasonIgnoredRule      SkippedReason = "Ignored (Pattern/Blacklist Rule)"
	ReasonSkippedPermError SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedPathError SkippedReason = "Skipped (Path Calculation Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
	IsDir  bool
}
