package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Console labels
const (
	LabelInfo    = "[INFO]"
	LabelSuccess = "[SUCCESS]"
	LabelWarning = "[WARNING]"
	LabelError   = "[ERROR]"
)

// labelStyles holds one style per console label
type labelStyles struct {
	byLabel map[string]lipgloss.Style
}

func newLabelStyles(w io.Writer) labelStyles {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(ColorProfile(w))

	return labelStyles{byLabel: map[string]lipgloss.Style{
		LabelInfo:    renderer.NewStyle().Foreground(lipgloss.Color("4")),
		LabelSuccess: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		LabelWarning: renderer.NewStyle().Foreground(lipgloss.Color("3")),
		LabelError:   renderer.NewStyle().Foreground(lipgloss.Color("1")),
	}}
}

func (s labelStyles) render(label string) string {
	style, ok := s.byLabel[label]
	if !ok {
		return label
	}
	return style.Render(label)
}

// ColorProfile picks the color profile for w. Anything that is not a terminal,
// and any terminal when NO_COLOR is set, gets plain ASCII.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := w.(*os.File)
	if !ok || !isTerminal(f) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTTY returns true if both stdin and stdout are terminals
func IsTTY() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}
