package walker

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Walk traverses the directory tree rooted at rootDir sequentially, in the
// deterministic order filepath.WalkDir provides. Directories the matcher
// excludes are pruned before descent, so their contents are never visited;
// excluded files are skipped. Every surviving file is read in full and
// handed to walkFn. Walk returns the skipped items and any error that
// aborted the traversal; per-file problems are delivered through walkFn
// instead of aborting.
func Walk(rootDir string, matcher Matcher, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	var skipped []SkippedItem
	track := func(path string, reason SkippedReason, isDir bool) {
		skipped = append(skipped, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
	}

	options.Logger.Debug("walker.Walk started. Root: %s", rootDir)

	walkErr := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		isDir := d != nil && d.IsDir()

		if err != nil {
			if path == rootDir {
				// An unwalkable root dumps nothing, matching the renderer's
				// defensive base case.
				options.Logger.Warn("Walker: cannot walk root %q: %v", path, err)
				return nil
			}
			reason := ReasonSkippedWalkError
			if os.IsPermission(err) {
				reason = ReasonSkippedPermError
			}
			options.Logger.Warn("Walker: walk error for %q: %v", path, err)
			track(path, reason, isDir)
			if isDir {
				if reason == ReasonSkippedPermError {
					return filepath.SkipDir
				}
				return nil
			}
			// Surface the failure inline rather than dropping the file
			return walkFn(path, nil, err)
		}

		// Skip the root itself
		if path == rootDir {
			return nil
		}

		if matcher != nil && matcher.ShouldIgnore(d.Name(), path, isDir) {
			options.Logger.Debug("Walker: ignored %q by matcher rules", path)
			track(path, ReasonIgnoredRule, isDir)
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		if isDir {
			options.Logger.Debug("Walker: descending into directory %q", path)
			return nil
		}

		options.Logger.Debug("Walker: reading file %q", path)
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			options.Logger.Warn("Walker: failed to read %q: %v", path, readErr)
			return walkFn(path, nil, readErr)
		}
		return walkFn(path, content, nil)
	})

	return skipped, walkErr
}

// Matcher is the filtering interface Walk consumes. *ignore.Matcher
// satisfies it; a nil Matcher disables filtering.
type Matcher interface {
	ShouldIgnore(name, path string, isDir bool) bool
}
