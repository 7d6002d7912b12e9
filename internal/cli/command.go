// Package cli implements the jsontable command: it reads a JSON or YAML
// document from a file, an inline string, or stdin and prints it as a table.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bjaus/jsontable"
)

const appName = "jsontable"

// Version is set at build time.
var Version = "dev"

type options struct {
	configFile string
	data       string
	verbose    bool
}

// NewCommand returns the root command. Errors returned by Execute are
// *Error values; see [ExitCode].
func NewCommand() *cobra.Command {
	opts := &options{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   appName + " [file]",
		Short: "Convert nested JSON into CSV or Markdown tables",
		Long: `jsontable flattens nested JSON into a table. Nested object fields become
grouped multi-row headers and arrays unroll into repeated rows.

Input comes from the file argument, the --data flag, or stdin ("-" or no
argument). YAML input is accepted with --input-format=yaml or a .yaml/.yml
file.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &Error{Code: ExitUsage, Err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return classify(run(cmd, v, opts, args))
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &Error{Code: ExitUsage, Err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default $HOME/.jsontable/jsontable.yaml)")
	flags.StringVar(&opts.data, "data", "", "inline JSON document instead of a file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log conversion details (debug level)")
	flags.StringP("format", "f", string(jsontable.CSV), "output format: "+formatNames())
	flags.String("input-format", "auto", "input format: json, yaml, or auto")
	flags.StringP("output", "o", "", "write to file instead of stdout")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "console", "log format: console or json")
	flags.String("delimiter", "", `custom cell delimiter, e.g. ";" or "\t" (overrides --format)`)
	flags.String("quote", "", "custom quote wrapping cells that need escaping")
	flags.String("header-separator", "", "custom character repeated on a line after the header")
	flags.Bool("pad", false, "pad custom output cells to column width")

	for key, name := range map[string]string{
		"format":                  "format",
		"input-format":            "input-format",
		"output":                  "output",
		"log-level":               "log-level",
		"log-format":              "log-format",
		"render.delimiter":        "delimiter",
		"render.quote":            "quote",
		"render.header-separator": "header-separator",
		"render.pad":              "pad",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	cmd.AddCommand(versionCommand())
	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, Version)
			return err
		},
	}
}

func run(cmd *cobra.Command, v *viper.Viper, opts *options, args []string) error {
	cfg, err := Load(v, opts.configFile)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.ConfigFile != "" {
		log.Debug("loaded config", zap.String("file", cfg.ConfigFile))
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}

	src, data, err := readInput(cmd.InOrStdin(), opts.data, args)
	if err != nil {
		return err
	}
	log.Debug("read input", zap.String("source", src), zap.Int("bytes", len(data)))

	doc, err := decode(data, inputFormat(cfg.InputFormat, src))
	if err != nil {
		log.Debug("decode failed", zap.String("source", src), zap.Error(err))
		return err
	}

	records := jsontable.Records(doc)
	out := jsontable.Render(records, params)
	log.Debug("rendered table",
		zap.String("format", cfg.Format),
		zap.Bool("custom", cfg.Custom()),
		zap.Int("records", len(records)),
		zap.Int("bytes", len(out)),
	)

	return writeOutput(cmd.OutOrStdout(), cfg.Output, out)
}

// readInput returns a description of the input source and its contents.
func readInput(stdin io.Reader, inline string, args []string) (string, []byte, error) {
	switch {
	case inline != "" && len(args) > 0:
		return "", nil, usageError("--data and a file argument are mutually exclusive")
	case inline != "":
		return "inline", []byte(inline), nil
	case len(args) == 0 || args[0] == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "stdin", data, nil
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", nil, usageError("read input: %v", err)
		}
		return args[0], data, nil
	}
}

// inputFormat resolves "auto" from the file extension of src.
func inputFormat(configured, src string) string {
	if configured != "auto" && configured != "" {
		return configured
	}
	switch strings.ToLower(filepath.Ext(src)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func decode(data []byte, format string) (jsontable.Value, error) {
	switch format {
	case "json":
		return jsontable.Decode(bytes.NewReader(data))
	case "yaml":
		return jsontable.DecodeYAML(bytes.NewReader(data))
	default:
		return nil, usageError("input format %q: want json, yaml, or auto", format)
	}
}

func writeOutput(stdout io.Writer, path, out string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func formatNames() string {
	names := make([]string, 0, len(jsontable.Formats()))
	for _, f := range jsontable.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
