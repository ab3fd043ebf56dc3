package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/tagweaver/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the configuration given
// on the command line (unset values stay empty so a project file can fill
// them), a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tagweaver", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
tagweaver - expands custom markup elements into the files they name.

Usage:
  tagweaver --in=<path> [options]

Every file under the input directory becomes a tag named after the file
(nav.html -> <nav>). Each occurrence of <nav> in other files is replaced by
the content of nav.html, and the result is written to the output directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	inFlag := flagSet.String("in", "", "Input directory (required unless set in the config file).")
	outFlag := flagSet.String("out", "", "Output directory. Defaults to a 'build' directory next to the input.")
	configFlag := flagSet.String("config", "", "Path to an HCL project file.")
	graphFlag := flagSet.String("graph", "", "Write the dependency graph as HCL to this path.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' (default) or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info' (default), 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	if *inFlag == "" && *configFlag == "" {
		return nil, false, &ExitError{Code: 2, Message: "input directory not specified, use --in=<path>"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "" && logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config := &app.Config{
		InputPath:  *inFlag,
		OutputPath: *outFlag,
		ConfigPath: *configFlag,
		GraphPath:  *graphFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}
	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
