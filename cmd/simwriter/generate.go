package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CTAG07/simwriter/pkg/markov"
	"github.com/CTAG07/simwriter/pkg/textio"
	"github.com/urfave/cli/v3"
)

const (
	defaultOutput = "output.txt"
	defaultWidth  = 90
)

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "file to write the generated text to, or - for stdout",
			Value:   defaultOutput,
		},
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"w"},
			Usage:   "insert a line break every N characters (0 disables wrapping)",
			Value:   defaultWidth,
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed for the random source, for reproducible output",
		},
	}
}

// generateAction builds a model from the input file and writes length
// generated characters, seeded with the first order characters of the input.
func generateAction(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	if cmd.Args().Len() != 3 {
		return fmt.Errorf("expected 3 arguments <order> <length> <inputPath>, got %d", cmd.Args().Len())
	}
	order, err := parseCount("order", cmd.Args().Get(0))
	if err != nil {
		return err
	}
	length, err := parseCount("length", cmd.Args().Get(1))
	if err != nil {
		return err
	}
	inputPath := cmd.Args().Get(2)

	maxLength, err := resolveMaxLength(cmd, cfg)
	if err != nil {
		return err
	}
	if length > maxLength {
		return fmt.Errorf("invalid length %d: may not exceed %d", length, maxLength)
	}

	output := cmd.String("output")
	if cfg.Output != "" && !cmd.IsSet("output") {
		output = cfg.Output
	}
	width := cmd.Int("width")
	if cfg.Width != nil && !cmd.IsSet("width") {
		width = *cfg.Width
	}
	var genOpts []markov.GeneratorOption
	if cmd.IsSet("seed") {
		genOpts = append(genOpts, markov.WithSeed(cmd.Uint64("seed")))
	} else if cfg.Seed != nil {
		genOpts = append(genOpts, markov.WithSeed(*cfg.Seed))
	}

	model, text, err := loadModel(logger, inputPath, order)
	if err != nil {
		return err
	}

	gen := markov.NewGenerator(model, genOpts...)
	gen.SetLogger(logger)
	generated, err := gen.Generate(text[:order], length)
	if err != nil {
		return fmt.Errorf("failed to generate text: %w", err)
	}
	wrapped := textio.Wrap(generated, width)

	if output == "-" {
		_, err = fmt.Fprint(cmd.Root().Writer, wrapped)
		return err
	}
	if err = textio.WriteFile(output, wrapped); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Generated text written",
		slog.String("output", output),
		slog.Int("order", order),
		slog.Int("length", len(generated)),
	)
	return nil
}
