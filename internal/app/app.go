// Package app wires configuration, filtering, rendering and dumping together
package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"

	"github.com/bethropolis/treedump/internal/config"
	"github.com/bethropolis/treedump/internal/ignore"
	"github.com/bethropolis/treedump/internal/logger"
	"github.com/bethropolis/treedump/internal/printer"
	"github.com/bethropolis/treedump/internal/tree"
	"github.com/bethropolis/treedump/internal/walker"
)

var errNotUTF8 = errors.New("file is not valid UTF-8 text")

// App encapsulates one run of the tool: a mode, a filter and a report stream.
type App struct {
	cfg        *config.Config
	log        *logger.Logger
	out        io.Writer
	outputFile *os.File
	clipBuf    *bytes.Buffer
}

// New creates an App instance. The report stream goes to stdout unless an
// output file was configured; diagnostics always go to the stderr logger.
func New(cfg *config.Config, stdout io.Writer) (*App, error) {
	cfg.DetectColors()

	// Configure color globally
	color.NoColor = !cfg.UseColors

	out := stdout
	var outputFile *os.File
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("app: failed to create output file: %w", err)
		}
		outputFile = file
		out = file
	}

	log := logger.New(os.Stderr, cfg.UseColors)
	switch {
	case cfg.Verbose:
		log.WithLevel(logger.LevelDebug)
	case cfg.Quiet:
		log.WithLevel(logger.LevelWarn)
	default:
		log.WithLevel(logger.ParseLevel(cfg.LogLevel))
	}

	app := &App{
		cfg:        cfg,
		log:        log,
		out:        out,
		outputFile: outputFile,
	}

	if cfg.CopyToClipboard {
		// Buffer a second copy of the report for the clipboard
		app.clipBuf = &bytes.Buffer{}
		app.out = io.MultiWriter(out, app.clipBuf)
	}

	return app, nil
}

// Close releases the output file, if one was opened.
func (a *App) Close() {
	if a.outputFile != nil {
		a.outputFile.Close()
	}
}

// Run executes the selected mode and returns the process exit code.
func (a *App) Run() int {
	startTime := time.Now()

	a.log.Debug("Mode: structure=%v structure-all=%v", a.cfg.StructureOnly, a.cfg.StructureAll)
	a.log.Debug("Directory: %s", a.cfg.RootDir)
	a.log.Debug("Color output: %v", a.cfg.UseColors)

	if info, err := os.Stat(a.cfg.RootDir); err != nil {
		a.log.Warn("Root directory '%s' is not accessible: %v", a.cfg.RootDir, err)
	} else if !info.IsDir() {
		a.log.Warn("Specified path '%s' is not a directory.", a.cfg.RootDir)
	}

	matcher, err := a.buildMatcher()
	if err != nil {
		a.log.Error("Error initializing ignore rules: %v", err)
		return 1
	}

	switch {
	case a.cfg.StructureAll:
		a.renderTree("Directory structure (no ignore_patterns applied):", matcher)
	case a.cfg.StructureOnly:
		a.renderTree("Directory structure (subject to ignore_patterns):", matcher)
	default:
		a.renderTree("Directory structure (subject to ignore_patterns):", matcher)
		fmt.Fprintf(a.out, "\nFile contents:\n\n")
		if code := a.dumpContents(matcher); code != 0 {
			return code
		}
	}

	if a.clipBuf != nil {
		if err := clipboard.WriteAll(a.clipBuf.String()); err != nil {
			a.log.Warn("Could not copy report to clipboard: %v", err)
		} else {
			a.log.Info("Copied %d bytes to clipboard.", a.clipBuf.Len())
		}
	}

	a.log.Info("Done in %v.", time.Since(startTime).Round(time.Millisecond))
	return 0
}

// buildMatcher assembles the filter for the selected mode. In structure-all
// mode the pattern set and repository rules are absent, but the blacklist
// inside the matcher still applies.
func (a *App) buildMatcher() (*ignore.Matcher, error) {
	opts := []ignore.Option{ignore.WithLogger(a.log)}

	if a.cfg.StructureAll {
		return ignore.New(a.cfg.RootDir, opts...)
	}

	raw := append([]string{}, ignore.DefaultPatterns...)
	if a.cfg.CustomIgnore != "" {
		custom := strings.Split(a.cfg.CustomIgnore, ",")
		for _, pattern := range custom {
			if trimmed := strings.TrimSpace(pattern); trimmed != "" {
				raw = append(raw, trimmed)
			}
		}
		a.log.Info("Using %d custom ignore patterns.", len(raw)-len(ignore.DefaultPatterns))
	}

	patterns, err := ignore.CompilePatterns(raw)
	if err != nil {
		return nil, err
	}

	opts = append(opts, ignore.WithPatterns(patterns), ignore.WithGitignore(a.cfg.UseGitignore))
	return ignore.New(a.cfg.RootDir, opts...)
}

// renderTree prints the header, the tree and the accumulated total.
func (a *App) renderTree(header string, matcher *ignore.Matcher) {
	fmt.Fprintf(a.out, "%s\n\n", header)

	r := tree.New(a.out, matcher,
		tree.WithCounts(true),
		tree.WithColors(a.cfg.UseColors),
		tree.WithLogger(a.log),
	)
	total := r.Render(a.cfg.RootDir)

	fmt.Fprintf(a.out, "\nTotal lines in readable files: %d\n", total)
}

// dumpContents walks the tree and prints every readable file's content.
// Per-file failures become inline error lines; only a broken traversal is
// fatal.
func (a *App) dumpContents(matcher *ignore.Matcher) int {
	p := printer.New().WithOutput(a.out).WithColors(a.cfg.UseColors)

	printFunc := func(path string, content []byte, err error) error {
		if err != nil {
			p.PrintError(path, err)
			return nil
		}
		if !utf8.Valid(content) {
			p.PrintError(path, errNotUTF8)
			return nil
		}
		p.PrintFile(path, content)
		return nil
	}

	a.log.Info("Scanning directory: %s", a.cfg.RootDir)
	skipped, err := walker.Walk(a.cfg.RootDir, matcher, printFunc, walker.WithLogger(a.log))
	if err != nil {
		a.log.Error("Critical error during directory walk: %v", err)
		return 1
	}

	a.log.Info("Found and processed %d files.", p.Count())
	for _, item := range skipped {
		a.log.Debug("Skipped %s [%s]", item.Path, item.Reason)
	}
	return 0
}
