package demo

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/amp-labs/amp-dsa/build"
	"github.com/amp-labs/amp-dsa/cli"
	"github.com/amp-labs/amp-dsa/envutil"
	dsaerrors "github.com/amp-labs/amp-dsa/errors"
)

// Format selects how a Report is written.
type Format string

const (
	// FormatText renders banners and indented steps for a terminal.
	FormatText Format = "text"
	// FormatYAML encodes the whole Report as one YAML document.
	FormatYAML Format = "yaml"
)

const minWidth = 20

var (
	// ErrUnknownSection is returned for a section name with no scenario.
	ErrUnknownSection = errors.New("unknown demo section")
	// ErrWidthTooSmall is returned when DSA_DEMO_WIDTH is below the minimum
	// banner width.
	ErrWidthTooSmall = errors.New("width too small")
	// ErrUnknownFormat is returned by Render for a Format it cannot write.
	ErrUnknownFormat = errors.New("unknown report format")
)

// Config controls which sections run and how the report looks.
type Config struct {
	Sections    []string
	Format      Format
	Color       bool
	Width       int
	Interactive bool
	NoBanner    bool
	// RunID tags the report and its log lines. Collect generates one when empty.
	RunID string
	// Build, when set, is copied into the report.
	Build *build.Info
}

// DefaultConfig runs every section as plain text at the terminal width.
func DefaultConfig() Config {
	return Config{
		Sections: SectionNames(),
		Format:   FormatText,
		Width:    max(cli.TerminalWidth(), minWidth),
	}
}

// LoadConfig reads DSA_DEMO_* and AMP_NO_BANNER. All malformed variables are
// reported together.
func LoadConfig(ctx context.Context) (Config, error) {
	var errs dsaerrors.Collection

	cfg := DefaultConfig()

	sections, err := envutil.StringList(ctx, "DSA_DEMO_SECTIONS",
		envutil.Default(cfg.Sections),
		envutil.Validate(validateSections)).Value()
	errs.Add(err)

	format, err := envutil.Map(envutil.String(ctx, "DSA_DEMO_FORMAT",
		envutil.Default(string(cfg.Format)),
		envutil.OneOf(string(FormatText), string(FormatYAML))),
		func(s string) (Format, error) { return Format(s), nil }).Value()
	errs.Add(err)

	color, err := envutil.Bool(ctx, "DSA_DEMO_COLOR", envutil.Default(false)).Value()
	errs.Add(err)

	width, err := envutil.Int(ctx, "DSA_DEMO_WIDTH",
		envutil.Default(cfg.Width),
		envutil.Validate(func(w int) error {
			if w < minWidth {
				return fmt.Errorf("%w: %d < %d", ErrWidthTooSmall, w, minWidth)
			}

			return nil
		})).Value()
	errs.Add(err)

	interactive, err := envutil.Bool(ctx, "DSA_DEMO_INTERACTIVE", envutil.Default(false)).Value()
	errs.Add(err)

	if errs.HasError() {
		return cfg, errs.GetError()
	}

	return Config{
		Sections:    sections,
		Format:      format,
		Color:       color,
		Width:       width,
		Interactive: interactive,
		NoBanner:    cli.BannerSuppressed(ctx),
	}, nil
}

// LoadEnvFile exports the variables in the file named by DSA_ENV_FILE, leaving
// variables that are already set untouched. It does nothing when the
// variable is unset.
func LoadEnvFile(ctx context.Context) ([]string, error) {
	path := envutil.String(ctx, "DSA_ENV_FILE")
	if !path.HasValue() {
		return nil, nil
	}

	file, err := path.Value()
	if err != nil {
		return nil, err
	}

	vars, err := envutil.LoadEnvFile(file)
	if err != nil {
		return nil, fmt.Errorf("loading %s named by %s: %w", file, path.Key(), err)
	}

	return envutil.Apply(vars)
}

func validateSections(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: none given", ErrUnknownSection)
	}

	known := SectionNames()

	for _, n := range names {
		if !slices.Contains(known, n) {
			return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownSection, n, known)
		}
	}

	return nil
}
