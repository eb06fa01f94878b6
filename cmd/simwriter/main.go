package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/CTAG07/simwriter/pkg/markov"
	"github.com/CTAG07/simwriter/pkg/textio"
	"github.com/urfave/cli/v3"
)

const defaultMaxLength = 1 << 20

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newApp builds the root command. The root action keeps the classic
// positional interface: simwriter <order> <length> <inputPath>.
func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "simwriter",
		Usage:     "Generate text from a k-order character Markov model",
		ArgsUsage: "<order> <length> <inputPath>",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     append(commonFlags(), generateFlags()...),
		Action:    generateAction,
		Commands: []*cli.Command{
			inspectCmd(),
			serveCmd(),
		},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to a YAML config file (default ~/.config/simwriter/config.yaml)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, warn, error)",
			Value: "info",
		},
		&cli.IntFlag{
			Name:  "max-length",
			Usage: "largest length a single generation may ask for",
			Value: defaultMaxLength,
		},
	}
}

// setup loads the config file and builds the logger shared by every command.
func setup(cmd *cli.Command) (Config, *slog.Logger, error) {
	cfg, err := LoadConfig(cmd.String("config"))
	if err != nil {
		return Config{}, nil, err
	}

	level := cmd.String("log-level")
	if cfg.LogLevel != "" && !cmd.IsSet("log-level") {
		level = cfg.LogLevel
	}

	errWriter := cmd.Root().ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	return cfg, newLogger(errWriter, level), nil
}

// resolveMaxLength returns the generation length limit from the flag or,
// when the flag is unset, the config file.
func resolveMaxLength(cmd *cli.Command, cfg Config) (int, error) {
	maxLength := cmd.Int("max-length")
	if cfg.MaxLength != nil && !cmd.IsSet("max-length") {
		maxLength = *cfg.MaxLength
	}
	if maxLength < 1 {
		return 0, fmt.Errorf("invalid max-length %d: must be at least 1", maxLength)
	}
	return maxLength, nil
}

// parseCount parses a non-negative integer positional argument.
func parseCount(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, arg)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s %d: must not be negative", name, n)
	}
	return n, nil
}

// loadModel reads the source text at path and builds a model of the given
// order from it. It returns the text too, since callers seed from its prefix.
func loadModel(logger *slog.Logger, path string, order int) (*markov.Model, string, error) {
	text, err := textio.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	model, err := markov.NewModel(text, order)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build model from %q: %w", path, err)
	}

	stats := model.Stats()
	logger.Debug("Model built",
		slog.String("input", path),
		slog.Int("order", stats.Order),
		slog.Int("source_length", stats.TotalFrequency),
		slog.Int("kgrams", stats.KGrams),
		slog.Int("transitions", stats.Transitions),
	)
	return model, text, nil
}
