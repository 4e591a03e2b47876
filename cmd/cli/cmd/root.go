// Package cmd provides the CLI commands for unitconv.
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"unitconv/core/catalog"
	"unitconv/core/engine"
	"unitconv/core/output"
	"unitconv/core/ui"
	"unitconv/internal/config"
	"unitconv/internal/logging"
)

const version = "1.0.0"

// errConversionFailed signals that at least one conversion reported an
// error. The error itself has already been rendered.
var errConversionFailed = stderrors.New("conversion failed")

// options holds the global flags
type options struct {
	cfgFile string
	verbose bool
	format  string
	noColor bool
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "unitconv <value><unit> ... =|to <unit>[:<precision>]",
		Short: "Convert measurements between units",
		Long: `unitconv converts a measurement, or several summed together, into another unit
of the same kind.

The precision is a number of decimal places (default 2) or "*" for the maximum.

Examples:
  unitconv 5ft 10in = m
  unitconv "1gal 2qt 1pt to l"
  unitconv 32°F = °C
  unitconv 1yd 2ft 4.7in = cm:3
  unitconv units --family volume`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runConvert(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.unitconv.hcl or $HOME/.unitconv.json)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newUnitsCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newConfigCommand())
	return rootCmd
}

// Execute runs the CLI with the given arguments
func Execute(args []string) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(normalizeArgs(args))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	logging.Sync()
	if err != nil && !stderrors.Is(err, errConversionFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

var negativeValue = regexp.MustCompile(`^-[0-9.]`)

// normalizeArgs stops flag parsing at the first negative value, so that
// "unitconv -5ft = m" is read as an expression rather than as flags.
func normalizeArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if negativeValue.MatchString(a) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func initConfig(cmd *cobra.Command, opts *options) error {
	path := opts.cfgFile
	if path == "" {
		path = config.Discover()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = opts.format
	}
	if opts.noColor {
		cfg.Output.NoColor = true
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	config.Set(cfg)

	if err := logging.Initialize(*cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// newEngine creates an engine from the global configuration
func newEngine() *engine.Engine {
	cfg := engine.DefaultConfig()
	if p := config.Get().Precision; p != nil {
		cfg.DefaultPrecision = output.Precision(*p)
	}
	return engine.New(catalog.Default(), cfg)
}

// render writes reports with the configured formatter
func render(w io.Writer, reports []*output.Report) error {
	cfg := config.Get()
	formatter, err := output.NewFormatter(cfg.Output.Format, cfg.Output.NoColor || !ui.IsTerminal(w))
	if err != nil {
		return err
	}
	if err := formatter.Render(w, reports); err != nil {
		return err
	}
	for _, r := range reports {
		if r.Failed() {
			return errConversionFailed
		}
	}
	return nil
}

func runConvert(w io.Writer, line string) error {
	outcome, err := newEngine().ConvertExpression(line)
	if outcome == nil {
		return render(w, []*output.Report{output.NewReport(line, nil, nil, err)})
	}
	return render(w, []*output.Report{output.NewReport(line, outcome.Results, outcome.Warnings, err)})
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "unitconv version %s\n", version)
		},
	}
}
