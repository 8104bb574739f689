package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"headline/internal/config"
	"headline/internal/logging"
	"headline/internal/titlecase"
)

func runHeadline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	format := resolveFormat(cfg)
	if format != FormatHuman && format != FormatJSON {
		return fmt.Errorf("unsupported format: %s", format)
	}

	runID := uuid.NewString()
	logger.Debug("starting run", map[string]any{
		"runId":  runID,
		"format": string(format),
		"args":   len(args),
	})

	out, closeOut, err := openOutput(resolveOutput(cfg))
	if err != nil {
		return err
	}
	defer closeOut()

	// Argument mode: the arguments form a single title.
	if len(args) > 0 {
		line := strings.Join(args, " ")
		formatted, err := formatLine(line, titlecase.CaseTitle(line), format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, formatted)
		return err
	}

	in, closeIn, err := openInput(resolveInput(cfg))
	if err != nil {
		return err
	}
	defer closeIn()

	lines, err := processLines(in, out, format)
	logger.Debug("run complete", map[string]any{
		"runId": runID,
		"lines": lines,
	})
	return err
}

// processLines cases each line from r onto w and returns the number of
// lines read. Blank lines are passed through as blank lines without
// invoking the caser, in every output format.
func processLines(r io.Reader, w io.Writer, format OutputFormat) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := 0
	for scanner.Scan() {
		line := scanner.Text()
		lines++

		if strings.TrimSpace(line) == "" {
			if _, err := fmt.Fprintln(w); err != nil {
				return lines, err
			}
			continue
		}

		formatted, err := formatLine(line, titlecase.CaseTitle(line), format)
		if err != nil {
			return lines, err
		}
		if _, err := fmt.Fprintln(w, formatted); err != nil {
			return lines, err
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func newLogger(cfg *config.Config) *logging.Logger {
	levelName := cfg.Logging.Level
	if logLevelFlag != "" {
		levelName = logLevelFlag
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		level = logging.InfoLevel
	}
	logFormat, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		logFormat = logging.HumanFormat
	}
	return logging.NewLogger(logging.Config{Level: level, Format: logFormat})
}
