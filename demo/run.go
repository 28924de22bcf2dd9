// Package demo walks through the list, tree and sorting packages with fixed
// inputs and reports what each operation returned.
package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	dsaerrors "github.com/amp-labs/amp-dsa/errors"
	"github.com/amp-labs/amp-dsa/logger"
	"github.com/google/uuid"
)

// Collect runs the configured sections in order. A failing or unknown
// section is skipped and reported in the returned error; the others still
// run. Cancelling ctx stops before the next section. A fresh run id is
// generated when cfg.RunID is empty.
func Collect(ctx context.Context, cfg Config) (Report, error) {
	report := Report{RunID: cfg.RunID, Build: cfg.Build}
	if report.RunID == "" {
		report.RunID = uuid.NewString()
	}

	ctx = logger.With(logger.WithSubsystem(ctx, "demo"), "run_id", report.RunID)
	log := logger.Get(ctx)

	var errs dsaerrors.Collection

	for _, name := range cfg.Sections {
		if err := ctx.Err(); err != nil {
			log.Warn("demo interrupted", "remaining", name)
			errs.Add(err)

			break
		}

		sc, ok := findScenario(name)
		if !ok {
			err := logger.AnnotateError(fmt.Errorf("%w: %q", ErrUnknownSection, name), "section", name)
			log.Error("skipping section", "error", err)
			errs.Add(err)

			continue
		}

		start := time.Now()

		log.Debug("section started", "section", name)

		sec := Section{Name: sc.name, Title: sc.title}
		if err := sc.run(&sec); err != nil {
			err = logger.AnnotateError(fmt.Errorf("section %s: %w", name, err), "section", name)
			log.Error("section failed", "error", err)
			errs.Add(err)

			continue
		}

		log.Debug("section finished", "section", name, "steps", len(sec.Steps), "elapsed", time.Since(start))

		report.Sections = append(report.Sections, sec)
	}

	return report, errs.GetError()
}

// Run collects the report and writes it to w. Sections that succeeded are
// written even when others failed.
func Run(ctx context.Context, cfg Config, w io.Writer) error {
	report, err := Collect(ctx, cfg)

	var errs dsaerrors.Collection

	errs.Add(err)
	errs.Add(Render(w, report, cfg))

	return errs.GetError()
}
