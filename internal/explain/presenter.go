package explain

import (
	"fmt"
	"io"

	"github.com/Laisky/errors/v2"
	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Laisky/explain/library/wikipedia"
)

// ColorMode controls whether the title styling is emitted.
type ColorMode string

const (
	// ColorAlways always emits ANSI styling.
	ColorAlways ColorMode = "always"
	// ColorAuto emits styling only when the output is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorNever never emits styling.
	ColorNever ColorMode = "never"
)

// OutputFormat selects how a summary is printed.
type OutputFormat string

const (
	// OutputText prints the styled explanation.
	OutputText OutputFormat = "text"
	// OutputJSON prints {"title","summary","url"}.
	OutputJSON OutputFormat = "json"
)

// Presenter formats article summaries for a terminal.
type Presenter struct {
	profile termenv.Profile
}

// NewPresenter builds a Presenter whose styling is detected against w.
func NewPresenter(w io.Writer, mode ColorMode) *Presenter {
	renderer := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Presenter{
		profile: renderer.ColorProfile(),
	}
}

// styleTitle wraps the whole title in one bold+underline sequence,
// so the raw output still contains the title verbatim.
func (p *Presenter) styleTitle(title string) string {
	return p.profile.String(title).Bold().Underline().String()
}

// Render formats the summary as "<title>: <summary>", a blank line, then the url.
func (p *Presenter) Render(summary *wikipedia.ArticleSummary) string {
	return fmt.Sprintf("%s: %s\n\n%s",
		p.styleTitle(summary.Title), summary.Summary, summary.URL)
}

// Print writes the rendering of summary in the given format followed by a newline.
func (p *Presenter) Print(w io.Writer, format OutputFormat, summary *wikipedia.ArticleSummary) error {
	var out string
	switch format {
	case OutputJSON:
		var err error
		if out, err = RenderJSON(summary); err != nil {
			return err
		}
	default:
		out = p.Render(summary)
	}

	if _, err := fmt.Fprintln(w, out); err != nil {
		return errors.Wrap(err, "write explanation")
	}
	return nil
}

// RenderJSON encodes the summary as a JSON object.
func RenderJSON(summary *wikipedia.ArticleSummary) (string, error) {
	out, err := sonic.MarshalString(summary)
	if err != nil {
		return "", errors.Wrap(err, "marshal summary")
	}
	return out, nil
}
