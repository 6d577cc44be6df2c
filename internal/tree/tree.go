// Package tree renders a directory as connector-prefixed ASCII art
package tree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"

	"github.com/bethropolis/treedump/internal/ignore"
	"github.com/bethropolis/treedump/internal/stats"
	"github.com/bethropolis/treedump/internal/utils"
)

// Connectors for the conventional ASCII tree layout.
const (
	branchConnector = "├── "
	cornerConnector = "└── "
	branchIndent    = "│   "
	cornerIndent    = "    "
)

// Renderer prints a sorted, filtered directory tree and accumulates the
// total line count of the files it annotates.
type Renderer struct {
	out        io.Writer
	matcher    *ignore.Matcher
	showCounts bool
	useColors  bool
	logger     utils.Logger
}

// Option is a functional option for configuring the Renderer
type Option func(*Renderer)

// WithCounts enables per-file line-count/type annotations.
func WithCounts(enabled bool) Option {
	return func(r *Renderer) {
		r.showCounts = enabled
	}
}

// WithColors enables colored directory names.
func WithColors(enabled bool) Option {
	return func(r *Renderer) {
		r.useColors = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger utils.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Renderer writing to out, filtering entries through matcher.
// A nil matcher disables filtering.
func New(out io.Writer, matcher *ignore.Matcher, opts ...Option) *Renderer {
	r := &Renderer{
		out:     out,
		matcher: matcher,
		logger:  utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render walks dir recursively and prints the tree. It returns the sum of
// line counts over all annotated text files in the subtree. A path that is
// not a directory renders nothing and contributes 0.
func (r *Renderer) Render(dir string) int64 {
	return r.render(dir, "")
}

func (r *Renderer) render(dir, prefix string) int64 {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return 0
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Warn("tree: could not list %q: %v", dir, err)
		return 0
	}

	// os.ReadDir sorts by filename, but the ordering is a documented output
	// guarantee here, so it is enforced rather than assumed.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	kept := entries[:0]
	for _, entry := range entries {
		if ignore.IsIgnored(r.matcher, entry.Name(), filepath.Join(dir, entry.Name()), entry.IsDir()) {
			continue
		}
		kept = append(kept, entry)
	}

	var totalLines int64
	for i, entry := range kept {
		connector, indent := branchConnector, branchIndent
		if i == len(kept)-1 {
			connector, indent = cornerConnector, cornerIndent
		}

		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			fmt.Fprintf(r.out, "%s%s%s/\n", prefix, connector, r.dirName(entry.Name()))
			totalLines += r.render(path, prefix+indent)
			continue
		}

		annotation := ""
		if r.showCounts {
			count := stats.CountLines(path)
			if count.IsText() {
				annotation = fmt.Sprintf(" (%d lines)", count.Lines)
				totalLines += count.Lines
			} else {
				annotation = fmt.Sprintf(" (%s)", count.TypeName)
			}
		}
		fmt.Fprintf(r.out, "%s%s%s%s\n", prefix, connector, entry.Name(), annotation)
	}

	return totalLines
}

func (r *Renderer) dirName(name string) string {
	if r.useColors {
		return color.New(color.FgBlue, color.Bold).Sprint(name)
	}
	return name
}
