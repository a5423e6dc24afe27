// Command tsg is a thin CLI shell over the tsg graph engine: parse,
// validate, traverse, analyze and project TSG documents to downstream
// formats (§spec.md 6).
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsgeco/tsg-go/internal/config"
)

// exitCode classifies a command failure per §spec.md 6: 1 usage error, 2
// parse/validation error, 3 I/O error. A nil or unwrapped error defaults
// to 1, matching cobra's own usage-error behavior.
type exitCode int

const (
	exitUsage      exitCode = 1
	exitValidation exitCode = 2
	exitIO         exitCode = 3
)

// cliError carries the exit code a failure should produce, alongside the
// diagnostic cobra prints to stderr.
type cliError struct {
	code exitCode
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...interface{}) error {
	return &cliError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

func validationError(err error) error {
	return &cliError{code: exitValidation, err: err}
}

func ioError(err error) error {
	return &cliError{code: exitIO, err: err}
}

var (
	flagVerbose  bool
	flagQuiet    bool
	flagConfig   string
	flagGenerate string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tsg",
	Short: "Transcript Segment Graph toolkit",
	Long: `tsg parses, validates, analyzes and converts Transcript Segment
Graph (TSG) documents: a line-oriented, tab-delimited interchange format
for transcript-assembly graphs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return validationError(err)
		}
		cfg = loaded

		level := slog.LevelInfo
		switch {
		case flagVerbose:
			level = slog.LevelDebug
		case flagQuiet:
			level = slog.LevelError
		case cfg.Verbose:
			level = slog.LevelDebug
		case cfg.Quiet:
			level = slog.LevelError
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress all but error logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML CLI defaults file")
	rootCmd.PersistentFlags().StringVar(&flagGenerate, "generate", "", "generate shell completion (bash|zsh|fish|powershell) and exit")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(traverseCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(gtfCmd)
	rootCmd.AddCommand(vcfCmd)
	rootCmd.AddCommand(fastaCmd)
	rootCmd.AddCommand(jsonCmd)
}

func main() {
	if generateCompletionAndExit() {
		return
	}
	if err := rootCmd.Execute(); err != nil {
		var ce *cliError
		code := int(exitUsage)
		if errors.As(err, &ce) {
			code = int(ce.code)
		}
		fmt.Fprintln(os.Stderr, "tsg:", err)
		os.Exit(code)
	}
}

// generateCompletionAndExit handles --generate before cobra's own flag
// parsing, since it is a root-level escape hatch rather than a
// subcommand, per §spec.md 6's "--generate <shell>" global flag.
func generateCompletionAndExit() bool {
	for i, a := range os.Args[1:] {
		if a != "--generate" {
			continue
		}
		if i+2 >= len(os.Args) {
			fmt.Fprintln(os.Stderr, "tsg: --generate requires a shell name (bash|zsh|fish|powershell)")
			os.Exit(int(exitUsage))
		}
		shell := os.Args[i+2]
		var err error
		switch shell {
		case "bash":
			err = rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			err = rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			err = rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			err = rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			fmt.Fprintf(os.Stderr, "tsg: unknown shell %q for --generate\n", shell)
			os.Exit(int(exitUsage))
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "tsg:", err)
			os.Exit(int(exitIO))
		}
		return true
	}
	return false
}
