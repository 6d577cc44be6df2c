package ignore

import (
	"regexp"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/bethropolis/treedump/internal/utils"
)

// Matcher determines whether a file or directory should be ignored
type Matcher struct {
	// Regex patterns, matched against both name and path. May be empty,
	// in which case only the blacklist (and gitignore rules, if loaded)
	// applies.
	patterns []*regexp.Regexp

	// Literal blacklist entries and their absolute forms, resolved once
	// at construction. The blacklist is enforced unconditionally.
	blacklist    []string
	blacklistAbs []string

	// Repository .gitignore rules, nil unless requested
	repoIgnore gitignore.GitIgnore

	rootDir      string
	useGitignore bool
	logger       utils.Logger
}
