// Command dsademo prints a walkthrough of the list, tree and sorting packages.
//
// Configuration comes from the environment (see demo.LoadConfig); set
// DSA_ENV_FILE to load a .env or .yaml file first.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/amp-labs/amp-dsa/build"
	"github.com/amp-labs/amp-dsa/cli"
	"github.com/amp-labs/amp-dsa/demo"
	"github.com/amp-labs/amp-dsa/logger"
	"github.com/amp-labs/amp-dsa/shutdown"
	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
)

// buildInfo may be set to a JSON build.Info with -ldflags "-X main.buildInfo=...".
var buildInfo string //nolint:gochecknoglobals

const app = "dsademo"

func main() {
	ctx := shutdown.SetupHandler(context.Background())

	// The env file may carry LOG_* settings, so it is applied first.
	loaded, envErr := demo.LoadEnvFile(ctx)

	log := logger.ConfigureLogging(ctx, app)

	if envErr != nil {
		logger.Fatal("unable to load env file", "error", envErr)
	}

	if len(loaded) > 0 {
		log.Debug("loaded env file", "keys", loaded)
	}

	cfg, err := demo.LoadConfig(ctx)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	cfg.RunID = uuid.NewString()

	shutdown.BeforeShutdown(func() {
		log.Warn("demo interrupted", "run_id", cfg.RunID)
	})

	if info, ok := build.Resolve(buildInfo); ok {
		cfg.Build = info
	}

	if cfg.Interactive {
		cfg, err = choose(cfg)
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			// The prompt swallows Ctrl-C, so run the hooks by hand.
			shutdown.Shutdown()
			<-ctx.Done()
			os.Exit(1)
		}

		if err != nil {
			logger.Fatal("prompt failed", "error", err)
		}

		if len(cfg.Sections) == 0 {
			log.Info("no sections selected")

			return
		}
	}

	if cfg.Format == demo.FormatYAML {
		// The report owns stdout.
		log = logger.ConfigureLogging(ctx, app, logger.WithOutput(os.Stderr))
	}

	if err := demo.Run(ctx, cfg, os.Stdout); err != nil {
		logger.Fatal("demo failed", "error", err, "run_id", cfg.RunID)
	}
}

// choose asks for the sections to run and then the report format. It stops
// early, with no sections, when none were picked.
func choose(cfg demo.Config) (demo.Config, error) {
	sections, err := cli.MultiSelect("Sections to run", demo.SectionNames()...)
	if err != nil {
		return cfg, err
	}

	cfg.Sections = sections
	if len(sections) == 0 {
		return cfg, nil
	}

	format, err := cli.Select("Report format", string(demo.FormatText), string(demo.FormatYAML))
	if err != nil {
		return cfg, err
	}

	cfg.Format = demo.Format(format)

	return cfg, nil
}
