package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rostan-t/refery/internal/color"
	"github.com/rostan-t/refery/pkg/logging"
)

// errTestsFailed makes the process exit with a failure status without
// printing anything more: the report already explains what went wrong.
var errTestsFailed = errors.New("some tests failed")

var (
	logLevel  string
	colorMode string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "refery",
	Short: "Run functional tests against command-line programs",
	Long: `refery runs the test cases described in a YAML file against
command-line programs. Each case runs a binary with arguments and standard
input, then compares its standard output, standard error and exit code with
the expected ones, or with those of a reference binary.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid test files, failed tests)
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logging.InitForCLI(level, os.Stderr)
		return color.Configure(colorMode)
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "refery version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", color.ModeAuto, "When to color the output (auto, always, never)")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
