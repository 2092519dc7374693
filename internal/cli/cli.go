package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/pkgplan/internal/app"
	"github.com/specialistvlad/pkgplan/internal/plan"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pkgplan", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pkgplan - Turns a package descriptor into a validated build plan.

Usage:
  pkgplan [options] [DESCRIPTOR_PATH]

Arguments:
  DESCRIPTOR_PATH
    Path to a descriptor file (.hcl, .yaml, .yml) or a directory containing one.

Options:
`)
		flagSet.PrintDefaults()
	}

	descriptorFlag := flagSet.String("descriptor", "", "Path to the descriptor file or directory.")
	dFlag := flagSet.String("d", "", "Path to the descriptor file or directory (shorthand).")
	rootFlag := flagSet.String("root", "", "Package root. Defaults to the descriptor's directory.")
	formatFlag := flagSet.String("format", "text", "Plan output format. Options: 'text', 'json' or 'yaml'.")
	outputFlag := flagSet.String("output", "", "Write the plan atomically to this file instead of stdout.")
	oFlag := flagSet.String("o", "", "Write the plan to this file (shorthand).")
	schemaFlag := flagSet.Bool("schema", false, "Print the JSON schema of the YAML descriptor and exit.")
	watchFlag := flagSet.Bool("watch", false, "Re-plan whenever the descriptor or sources change.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server in watch mode. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: "+strings.Join(app.LogFormats, ", ")+".")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: "+strings.Join(app.LogLevels, ", ")+".")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := firstNonEmpty(*descriptorFlag, *dFlag)
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Descriptor path determined.", "path", path)

	if path == "" && !*schemaFlag {
		slog.Debug("No descriptor path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format, err := plan.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'text', 'json' or 'yaml'"}
	}

	logFormat, err := app.ParseLogFormat(*logFormatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be one of " + strings.Join(app.LogFormats, ", ")}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, err := app.ParseLogLevel(logLevel); err != nil || logLevel == "" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be one of " + strings.Join(app.LogLevels, ", ")}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DescriptorPath:  path,
		Root:            *rootFlag,
		Format:          format,
		OutputPath:      firstNonEmpty(*outputFlag, *oFlag),
		Schema:          *schemaFlag,
		Watch:           *watchFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
