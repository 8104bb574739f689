package main

import (
	"os"

	"github.com/spf13/cobra"

	"headline/internal/config"
	"headline/internal/version"
)

var (
	configFlag   string
	formatFlag   string
	inputFlag    string
	outputFlag   string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "headline [words...]",
	Short: "headline - AP-style title casing for lines of text",
	Long: `headline rewrites lines of text in AP-style title case: short articles,
conjunctions and prepositions stay lowercase in the interior of a title,
period-delimited acronyms are uppercased, and every other word is
capitalized.

With arguments, the arguments are joined into a single title. Without
arguments, lines are read from stdin (or --input) and written to stdout
(or --output); empty lines pass through untouched.

Examples:
  headline the cat in the hat
  headline < titles.txt
  headline --input=titles.txt --output=cased.txt
  headline --format=json < titles.txt`,
	Version:      version.Info(),
	RunE:         runHeadline,
	SilenceUsage: true,
}

func init() {
	rootCmd.SetVersionTemplate("headline version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to config file (default: headline.json in the working directory)")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "Output format (human, json)")
	rootCmd.Flags().StringVar(&inputFlag, "input", "", "Read titles from a file instead of stdin")
	rootCmd.Flags().StringVar(&outputFlag, "output", "", "Write cased titles to a file instead of stdout")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
}

// resolveFormat determines the effective output format.
// Precedence: CLI flag > HEADLINE_FORMAT env var > config file > human
func resolveFormat(cfg *config.Config) OutputFormat {
	if formatFlag != "" {
		return OutputFormat(formatFlag)
	}
	if env := os.Getenv("HEADLINE_FORMAT"); env != "" {
		return OutputFormat(env)
	}
	if cfg != nil && cfg.Format != "" {
		return OutputFormat(cfg.Format)
	}
	return FormatHuman
}

// resolveInput returns the input file path, empty meaning stdin.
func resolveInput(cfg *config.Config) string {
	if inputFlag != "" {
		return inputFlag
	}
	return cfg.Input
}

// resolveOutput returns the output file path, empty meaning stdout.
func resolveOutput(cfg *config.Config) string {
	if outputFlag != "" {
		return outputFlag
	}
	return cfg.Output
}
