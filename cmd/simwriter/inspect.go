package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print statistics or the full frequency table of a model",
		ArgsUsage: "<order> <inputPath>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print statistics as JSON",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print every k-gram and k+1-gram with its frequency",
			},
		},
		Action: inspectAction,
	}
}

func inspectAction(ctx context.Context, cmd *cli.Command) error {
	_, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected 2 arguments <order> <inputPath>, got %d", cmd.Args().Len())
	}
	order, err := parseCount("order", cmd.Args().Get(0))
	if err != nil {
		return err
	}
	model, _, err := loadModel(logger, cmd.Args().Get(1), order)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if cmd.Bool("dump") {
		_, err = model.WriteTo(w)
		return err
	}

	stats := model.Stats()
	if cmd.Bool("json") {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode stats: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	_, err = fmt.Fprintf(w,
		"order:           %d\nkgrams:          %d\ntransitions:     %d\ntotal frequency: %d\nalphabet size:   %d\nalphabet:        %q\n",
		stats.Order, stats.KGrams, stats.Transitions, stats.TotalFrequency, stats.AlphabetSize, model.Alphabet())
	return err
}
