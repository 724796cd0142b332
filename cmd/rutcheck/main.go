// Package main provides the rutcheck command-line front-end for the RUT engine.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/chiletools/rut"
)

// engineOptions translates the shared CLI flags into engine options.
func engineOptions(cmd *cli.Command, logger *slog.Logger) []rut.Option {
	opts := []rut.Option{
		rut.WithSeparator(cmd.String("separator")),
		rut.WithLayout(rut.Layout(cmd.String("layout"))),
		rut.WithLogger(logger),
	}
	if cmd.Bool("strict") {
		opts = append(opts, rut.WithStrict())
	}
	if cmd.Bool("preserve") {
		opts = append(opts, rut.WithPreserveStructure())
	}

	return opts
}

// sharedFlags are accepted by every subcommand that resolves engine options.
func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "separator",
			Aliases: []string{"s"},
			Value:   ".",
			Usage:   "Triplet separator for the standard layout",
		},
		&cli.StringFlag{
			Name:    "layout",
			Aliases: []string{"l"},
			Value:   string(rut.LayoutStandard),
			Usage:   "Output layout (standard, compact or clean)",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Use strict shape checking",
		},
		&cli.BoolFlag{
			Name:  "preserve",
			Usage: "Strip only separator noise instead of every foreign character",
		},
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cmd := &cli.Command{
		Name:    "rutcheck",
		Usage:   "Format and validate Chilean RUT identifiers",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:      "format",
				Usage:     "Render an identifier under the selected layout",
				ArgsUsage: "<rut>",
				Flags:     sharedFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					formatted, err := rut.Format(cmd.Args().First(), engineOptions(cmd, logger)...)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Println(formatted)

					return nil
				},
			},
			{
				Name:      "validate",
				Usage:     "Check the modulo-11 verifier; exit code 1 when invalid",
				ArgsUsage: "<rut>",
				Flags:     sharedFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					res := rut.Inspect(cmd.Args().First(), engineOptions(cmd, logger)...)
					if !res.Valid {
						return cli.Exit("invalid", 1)
					}
					fmt.Println("valid")

					return nil
				},
			},
			{
				Name:      "digit",
				Usage:     "Compute the check digit for a bare numeric body",
				ArgsUsage: "<body>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					digit, err := rut.ComputeCheckDigit(cmd.Args().First())
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Println(digit)

					return nil
				},
			},
			{
				Name:      "normalize",
				Usage:     "Strip an identifier down to its canonical [0-9K] form",
				ArgsUsage: "<rut>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					normalized, err := rut.Normalize(cmd.Args().First())
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Println(normalized)

					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
