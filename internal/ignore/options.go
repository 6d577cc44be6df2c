package ignore

import (
	"regexp"

	"github.com/bethropolis/treedump/internal/utils"
)

// Option functions for configuration
type Option func(*Matcher)

// WithPatterns sets the compiled ignore patterns. Passing nil disables
// pattern matching entirely; the blacklist still applies.
func WithPatterns(patterns []*regexp.Regexp) Option {
	return func(m *Matcher) {
		m.patterns = patterns
	}
}

// WithBlacklist replaces the default blacklist.
func WithBlacklist(entries []string) Option {
	return func(m *Matcher) {
		m.blacklist = entries
	}
}

// WithGitignore enables repository .gitignore rules.
func WithGitignore(enabled bool) Option {
	return func(m *Matcher) {
		m.useGitignore = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}
