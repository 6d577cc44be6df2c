// Package printer handles dump-mode output formatting
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes file contents and inline error lines to the report stream.
type Printer struct {
	out       io.Writer
	useColors bool
	count     int64
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		out: os.Stdout,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.out = w
	return p
}

// WithColors enables or disables colored file headers
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// PrintFile writes the file's path followed by its full content.
func (p *Printer) PrintFile(path string, content []byte) {
	p.count++

	header := path
	if p.useColors {
		header = color.CyanString(path)
	}
	fmt.Fprintf(p.out, "%s:\n%s\n", header, content)
}

// PrintError writes an inline error line for a file that could not be
// read. The traversal is expected to continue afterwards.
func (p *Printer) PrintError(path string, err error) {
	fmt.Fprintf(p.out, "Error reading %s: %v\n", path, err)
}

// Count returns the number of files printed
func (p *Printer) Count() int64 {
	return p.count
}
