package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/amp-labs/amp-dsa/envutil"
	"golang.org/x/term"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignment places a line of text inside a Banner.
type Alignment int

const (
	// AlignLeft pads on the right.
	AlignLeft Alignment = iota
	// AlignCenter splits padding evenly, the extra column going right.
	AlignCenter
	// AlignRight pads on the left.
	AlignRight

	bannerPadding  = 2
	dividerPadding = 2
	halfDivisor    = 2
)

// DefaultTerminalWidth is used when stdout is not a terminal.
const DefaultTerminalWidth = 80

// BannerSuppressed reports whether AMP_NO_BANNER asks for plain titles.
func BannerSuppressed(ctx context.Context) bool {
	return envutil.Bool(ctx, "AMP_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

// TerminalWidth returns the width of stdout, or DefaultTerminalWidth when
// stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd()) //nolint:gosec // file descriptors fit in an int

	if !term.IsTerminal(fd) {
		return DefaultTerminalWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultTerminalWidth
	}

	return w
}

// Divider returns a single horizontal rule of the given width, newline included.
func Divider(width int) string {
	if width < dividerPadding {
		return "\n"
	}

	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, width-dividerPadding), dividerRight)
}

// Banner boxes each line of s inside a frame width columns wide. Lines that
// do not fit are cut and end in an ellipsis. An empty result means width or
// alignment was invalid.
func Banner(s string, width int, alignment Alignment) string {
	if width <= bannerPadding {
		return ""
	}

	inner := width - bannerPadding

	var pad func(string, int) string

	switch alignment {
	case AlignCenter:
		pad = padCenter
	case AlignLeft:
		pad = padLeft
	case AlignRight:
		pad = padRight
	default:
		return ""
	}

	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range getLines(s) {
		parts = append(parts, boxSide+pad(l, inner)+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func getLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// truncateGraphic keeps the first n graphic runes of s.
func truncateGraphic(s string, n int) string {
	var out strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		out.WriteRune(r)
	}

	return out.String()
}

// fit returns text cut to width (with an ellipsis) and its visible length.
func fit(text string, width int) (string, int) {
	length := countGraphic(text)
	if length <= width {
		return text, length
	}

	return truncateGraphic(text, width-1) + ellipsis, width
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func padCenter(text string, width int) string {
	str, length := fit(text, width)

	diff := width - length
	leftPad := diff / halfDivisor

	return spaces(leftPad) + str + spaces(diff-leftPad)
}

func padLeft(text string, width int) string {
	str, length := fit(text, width)

	return str + spaces(width-length)
}

func padRight(text string, width int) string {
	str, length := fit(text, width)

	return spaces(width-length) + str
}
