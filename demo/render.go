package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-dsa/cli"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

const (
	heading = "DSA Library Demo"
	footer  = "Demo complete"
)

// Render writes the report in cfg.Format.
func Render(w io.Writer, report Report, cfg Config) error {
	switch cfg.Format {
	case FormatYAML:
		return renderYAML(w, report)
	case FormatText, "":
		return renderText(w, report, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
}

func renderYAML(w io.Writer, report Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(report); err != nil {
		return err
	}

	return enc.Close()
}

type textRenderer struct {
	cfg Config
	yes *color.Color
	no  *color.Color
	out strings.Builder
}

func renderText(w io.Writer, report Report, cfg Config) error {
	r := &textRenderer{
		cfg: cfg,
		yes: color.New(color.FgGreen, color.Bold),
		no:  color.New(color.FgRed),
	}

	if cfg.Color {
		r.yes.EnableColor()
		r.no.EnableColor()
	} else {
		r.yes.DisableColor()
		r.no.DisableColor()
	}

	r.title(heading)

	if b := report.Build; b != nil {
		_, _ = fmt.Fprintf(&r.out, "  %s %s (%s)\n", b.Module, b.Version, b.GoVersion)
	}

	for _, sec := range report.Sections {
		r.separator()
		r.title(sec.Title)

		for _, st := range sec.Steps {
			r.step(st)
		}
	}

	r.separator()
	r.title(footer)

	_, err := io.WriteString(w, r.out.String())

	return err
}

func (r *textRenderer) title(s string) {
	if r.cfg.NoBanner {
		r.out.WriteString("== " + s + " ==\n")

		return
	}

	r.out.WriteString(cli.Banner(s, r.width(), cli.AlignCenter))
}

// separator is a divider rule, or a blank line when banners are off.
func (r *textRenderer) separator() {
	if r.cfg.NoBanner {
		r.out.WriteString("\n")

		return
	}

	r.out.WriteString(cli.Divider(r.width()))
}

func (r *textRenderer) width() int {
	if r.cfg.Width < minWidth {
		return cli.DefaultTerminalWidth
	}

	return r.cfg.Width
}

func (r *textRenderer) step(st Step) {
	sep := ": "
	if strings.HasSuffix(st.Label, "?") {
		sep = " "
	}

	line := "  " + st.Label + sep + r.value(st.Value)
	if st.Note != "" {
		line += " (" + st.Note + ")"
	}

	r.out.WriteString(line + "\n")
}

func (r *textRenderer) value(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return r.yes.Sprint("Yes")
		}

		return r.no.Sprint("No")
	case []int:
		parts := make([]string, len(val))
		for i, x := range val {
			parts[i] = fmt.Sprint(x)
		}

		return strings.Join(parts, " ")
	case []string:
		return strings.Join(val, " ")
	default:
		return fmt.Sprint(val)
	}
}
