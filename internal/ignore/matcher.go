package ignore

import (
	"fmt"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/bethropolis/treedump/internal/utils"
)

// New creates and initializes a Matcher rooted at rootDir.
func New(rootDir string, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	matcher := &Matcher{
		rootDir:   absRootDir,
		blacklist: DefaultBlacklist,
		logger:    utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	if err := matcher.init(); err != nil {
		return nil, err
	}

	return matcher, nil
}

// init resolves the blacklist and loads repository ignore rules when asked.
func (m *Matcher) init() error {
	m.logger.Debug("ignore.New: Initializing for root: %s", m.rootDir)
	m.logger.Debug("ignore.New: %d patterns, %d blacklist entries, gitignore=%v",
		len(m.patterns), len(m.blacklist), m.useGitignore)

	// Blacklist entries resolve against the working directory, matching the
	// absolute-prefix check in ShouldIgnore.
	m.blacklistAbs = make([]string, 0, len(m.blacklist))
	for _, entry := range m.blacklist {
		abs, err := filepath.Abs(entry)
		if err != nil {
			return fmt.Errorf("ignore: failed to resolve blacklist entry '%s': %w", entry, err)
		}
		m.blacklistAbs = append(m.blacklistAbs, abs)
	}

	if !m.useGitignore {
		return nil
	}

	// Load .gitignore files recursively; this matches git's actual behavior
	repoMatcher, repoErr := gitignore.NewRepository(m.rootDir)
	if repoErr != nil {
		m.logger.Warn("ignore.New: Error loading repository ignores from '%s': %v", m.rootDir, repoErr)
		return fmt.Errorf("ignore: failed to load repository ignores: %w", repoErr)
	}
	if repoMatcher == nil {
		m.logger.Warn("ignore.New: No .gitignore files found under '%s'. Continuing without repo rules.", m.rootDir)
		return nil
	}

	m.repoIgnore = repoMatcher
	m.logger.Debug("ignore.New: Successfully loaded repository ignores.")
	return nil
}
