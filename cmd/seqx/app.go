package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/charmingruby/seqkit/internal/config"
	"github.com/charmingruby/seqkit/internal/logging"
	"github.com/charmingruby/seqkit/seq"
)

type configKey struct{}

func newApp(out io.Writer) *cli.Command {
	//nolint:exhaustruct
	return &cli.Command{
		Name:   "seqx",
		Usage:  "Run lazy sequence operations over command line arguments",
		Writer: out,
		Flags: []cli.Flag{
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file path (defaults to " + config.DefaultFilename + " when present)",
			},
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: trace, debug, info, warn, error",
				Sources: cli.EnvVars("SEQX_LOG_LEVEL"),
			},
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format: auto, json, pretty",
				Sources: cli.EnvVars("SEQX_LOG_FORMAT"),
			},
			//nolint:exhaustruct
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "Seed for random and shuffle (0 picks a fresh seed per call)",
				Sources: cli.EnvVars("SEQX_SEED"),
			},
		},
		Before:   setup,
		Commands: commands(),
	}
}

func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	conf, err := config.Load(cmd.String("config"))
	if nil != err {
		return ctx, fmt.Errorf("load config: %w", err)
	}

	if cmd.IsSet("log-level") {
		conf.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		conf.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("seed") {
		conf.Random.Seed = cmd.Uint64("seed")
	}

	if err := conf.Validate(); nil != err {
		return ctx, fmt.Errorf("invalid flags: %w", err)
	}

	logger := logging.FromConfig(conf.Log, os.Stderr)
	logger.Debug().Dict("config", conf.ToDict()).Msg("Config loaded")

	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, configKey{}, conf)

	return ctx, nil
}

func configFrom(ctx context.Context) *config.Config {
	if conf, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return conf
	}

	return config.Default()
}

func rngFrom(ctx context.Context) seq.Rand {
	seed := configFrom(ctx).Random.Seed
	if seed == 0 {
		return nil
	}

	return rand.New(rand.NewPCG(seed, seed))
}

func loggerFrom(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
