// Package ignore provides file/directory pattern matching for exclusion
//
// Exclusion combines three rule sources: an ordered list of regular
// expression patterns matched against both the bare entry name and the
// entry path, a literal blacklist of names/paths that is always enforced,
// and (optionally) repository .gitignore rules. It uses the functional
// options pattern for configuration.
package ignore

import (
	"fmt"
	"regexp"
)

// DefaultPatterns is the stock ignore pattern set. Patterns use prefix-match
// semantics: a match must begin at the start of the name or path.
var DefaultPatterns = []string{
	`.*\.git(ignore)?$`, // .git and .gitignore
	`.*\.ipynb$`,        // Jupyter notebooks
	`^LICENSE$`,         // LICENSE file
	`\.env$`,            // .env files
	`__pycache__$`,      // __pycache__ directories
	`.*\.pyc$`,          // compiled Python
	`.*\.out$`,          // output files
	`test-results\.json$`,
	`.*\.sum$`, // checksum files
	`\.terraform\.lock\.hcl$`,
	`\.terraform`, // .terraform directories
}

// DefaultBlacklist names entries that are never considered, regardless of
// which ignore patterns are active.
var DefaultBlacklist = []string{
	".git",         // entire .git folder
	"node_modules", // common for JavaScript projects
	"__pycache__",  // common for Python projects
}

// CompilePatterns compiles raw patterns with a leading anchor so matching
// starts at the beginning of the candidate string, the prefix-match
// semantics the pattern set was written for. A malformed pattern is a
// configuration defect and fails compilation outright.
func CompilePatterns(raw []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(raw))
	for _, pattern := range raw {
		re, err := regexp.Compile(`^(?:` + pattern + `)`)
		if err != nil {
			return nil, fmt.Errorf("ignore: invalid pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// IsIgnored is a convenience function to check if an entry should be ignored
func IsIgnored(matcher *Matcher, name, path string, isDir bool) bool {
	if matcher == nil {
		return false
	}
	return matcher.ShouldIgnore(name, path, isDir)
}
