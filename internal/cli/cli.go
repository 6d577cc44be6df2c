// Package cli defines the command surface and maps it onto the app
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bethropolis/treedump/internal/app"
	"github.com/bethropolis/treedump/internal/config"
)

// Execute parses args, runs the selected mode and returns the process exit
// code. All report output and usage errors go to stdout.
func Execute(args []string, stdout io.Writer) int {
	cfg := config.New()
	exitCode := 0

	cmd := newRootCommand(cfg, stdout, &exitCode)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	return exitCode
}

func newRootCommand(cfg *config.Config, stdout io.Writer, exitCode *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treedump [folder_path]",
		Short: "Print a directory tree and file contents as one text stream",
		Long: `treedump walks a directory tree and prints an ASCII tree of its structure
with per-file line counts, optionally followed by the full textual contents
of every non-ignored file.`,
		Example: `  treedump /path/to/directory
  treedump /path/to/directory --structure
  treedump /path/to/directory --structure-all
  treedump --help-only`,
		Version:       cfg.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			*exitCode = run(cmd, cfg, args, stdout)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&cfg.StructureOnly, "structure", false, "print the structure only, subject to ignore patterns")
	flags.BoolVar(&cfg.StructureAll, "structure-all", false, "print the structure only, without applying ignore patterns")
	flags.BoolVar(&cfg.HelpOnly, "help-only", false, "display this help information")
	flags.StringVar(&cfg.CustomIgnore, "ignore", "", "additional ignore patterns (comma-separated regular expressions)")
	flags.BoolVar(&cfg.UseGitignore, "use-gitignore", false, "also honor repository .gitignore files")
	flags.StringVarP(&cfg.OutputFile, "output", "o", "", "write the report to a file instead of stdout")
	flags.BoolVarP(&cfg.CopyToClipboard, "copy", "c", false, "also copy the report to the system clipboard")
	flags.BoolVar(&cfg.Verbose, "verbose", false, "enable verbose logging (DEBUG, WARN, ERROR)")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress INFO messages (only show WARN, ERROR)")
	flags.StringVar(&cfg.LogLevel, "log-level", "INFO", "set the logging level (DEBUG, INFO, WARN, ERROR)")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "disable color output")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, args []string, stdout io.Writer) int {
	if cfg.HelpOnly {
		cmd.Help()
		return 0
	}
	if len(args) == 0 {
		fmt.Fprintln(stdout, "Error: folder_path is required unless --help-only is used.")
		cmd.Help()
		return 1
	}
	if cfg.StructureOnly && cfg.StructureAll {
		fmt.Fprintln(stdout, "Error: Cannot use --structure and --structure-all at the same time.")
		return 1
	}

	cfg.RootDir = args[0]

	application, err := app.New(cfg, stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	defer application.Close()

	return application.Run()
}
