package ignore

import (
	"path/filepath"
	"strings"
)

// ShouldIgnore reports whether the entry with the given bare name and path
// should be excluded. Pattern rules are checked first, then the blacklist,
// then repository .gitignore rules when loaded. The blacklist applies even
// when no patterns are set.
func (m *Matcher) ShouldIgnore(name, path string, isDir bool) bool {
	if m == nil {
		return false
	}
	if path == "" || path == "." {
		return false // Never ignore the root itself
	}

	// Pattern rules: a pattern excludes when it matches the bare name or
	// the path. Patterns are pre-anchored, so matching starts at the
	// beginning of the candidate string.
	for _, re := range m.patterns {
		if re.MatchString(name) || re.MatchString(path) {
			m.logger.Debug("ignore.ShouldIgnore: Ignored %q (pattern %s)", path, re.String())
			return true
		}
	}

	// Blacklist: exclude when the absolute path's basename equals an entry,
	// or the absolute path sits under a blacklisted absolute path.
	absPath, err := filepath.Abs(path)
	if err == nil {
		base := filepath.Base(absPath)
		for i, entry := range m.blacklist {
			if base == entry || strings.HasPrefix(absPath, m.blacklistAbs[i]) {
				m.logger.Debug("ignore.ShouldIgnore: Ignored %q (blacklist entry %q)", path, entry)
				return true
			}
		}
	}

	if err == nil && m.repoIgnore != nil && m.matchesRepoIgnore(absPath, path) {
		return true
	}

	m.logger.Debug("ignore.ShouldIgnore: Path %q NOT ignored by any rule", path)
	return false
}

// matchesRepoIgnore delegates to the gitignore library. The library
// resolves its argument to an absolute path, so only entries under the
// matcher root are handed to it.
func (m *Matcher) matchesRepoIgnore(absPath, path string) (result bool) {
	relativePath, relErr := filepath.Rel(m.rootDir, absPath)
	if relErr != nil || strings.HasPrefix(relativePath, "..") {
		return false
	}

	// The library has panicked on odd inputs before; treat a panic as
	// "cannot determine" and do not ignore.
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("PANIC recovered in gitignore library for path %q: %v", path, r)
			result = false
		}
	}()

	// Match does the hierarchical .gitignore lookup; the promoted
	// Ignore/Include shortcuts only consult the repository's own empty
	// pattern set and never match.
	match := m.repoIgnore.Match(absPath)
	if match == nil {
		return false
	}
	if match.Ignore() {
		m.logger.Debug("ignore.ShouldIgnore: Path %q ignored by repository rules", path)
		return true
	}
	if match.Include() {
		m.logger.Debug("ignore.ShouldIgnore: Path %q explicitly included by negation rule", path)
	}
	return false
}
