// Package term renders the interactive session: styled prompts, a busy
// spinner, and the typed-out assistant replies.
package term

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the lipgloss styles used by the terminal sink.
type Styles struct {
	Prompt  lipgloss.Style
	Reply   lipgloss.Style
	Spinner lipgloss.Style
	Error   lipgloss.Style
	Banner  lipgloss.Style
}

// DefaultStyles returns the colored palette: bright green prompt, yellow
// replies, green spinner, red errors.
func DefaultStyles() Styles {
	return Styles{
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Reply:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Banner:  lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Prompt: plain, Reply: plain, Spinner: plain, Error: plain, Banner: plain}
}

// DetectStyles picks the colored palette when out is a terminal and color is
// not disabled, and the plain palette otherwise.
func DetectStyles(noColor bool, out *os.File) Styles {
	if noColor || out == nil {
		return PlainStyles()
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return PlainStyles()
	}
	return DefaultStyles()
}
