package term

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Sink is the narrow rendering seam between the interactive loop and the
// terminal, so the loop can run against a fake in tests.
type Sink interface {
	// Prompt writes the input prompt without a trailing newline.
	Prompt(text string)
	// Line writes one plain line.
	Line(text string)
	// Error writes one error line.
	Error(text string)
	// StartSpinner shows an in-place busy indicator until StopSpinner.
	StartSpinner(message string)
	// StopSpinner stops and clears the indicator.
	StopSpinner()
	// Reply renders an assistant reply one rune at a time, polling
	// interrupted between runes. It reports whether it ran to completion.
	Reply(text string, interrupted func() bool) bool
}

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"|", "/", "-", "\\"}

// Terminal renders to one writer with a fixed typing delay.
type Terminal struct {
	out    io.Writer
	styles Styles
	delay  time.Duration

	spinnerDone chan struct{}
	spinnerWG   sync.WaitGroup
}

// NewTerminal builds a Terminal writing to out. delay is the pause between
// typed-out reply runes.
func NewTerminal(out io.Writer, styles Styles, delay time.Duration) *Terminal {
	return &Terminal{out: out, styles: styles, delay: delay}
}

func (t *Terminal) Prompt(text string) {
	_, _ = fmt.Fprint(t.out, t.styles.Prompt.Render(text))
}

func (t *Terminal) Line(text string) {
	_, _ = fmt.Fprintln(t.out, text)
}

func (t *Terminal) Error(text string) {
	_, _ = fmt.Fprintln(t.out, t.styles.Error.Render(text))
}

// Banner writes the faint startup banner.
func (t *Terminal) Banner(text string) {
	_, _ = fmt.Fprintln(t.out, t.styles.Banner.Render(text))
}

func (t *Terminal) StartSpinner(message string) {
	if t.spinnerDone != nil {
		return
	}
	done := make(chan struct{})
	t.spinnerDone = done
	t.spinnerWG.Add(1)
	go func() {
		defer t.spinnerWG.Done()
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		frame := 0
		width := 0
		for {
			line := fmt.Sprintf("%s %s", t.styles.Spinner.Render(spinnerFrames[frame%len(spinnerFrames)]), message)
			width = lipgloss.Width(line)
			_, _ = fmt.Fprintf(t.out, "\r%s", line)
			select {
			case <-done:
				_, _ = fmt.Fprintf(t.out, "\r%s\r", strings.Repeat(" ", width))
				return
			case <-ticker.C:
				frame++
			}
		}
	}()
}

func (t *Terminal) StopSpinner() {
	if t.spinnerDone == nil {
		return
	}
	close(t.spinnerDone)
	t.spinnerWG.Wait()
	t.spinnerDone = nil
}

func (t *Terminal) Reply(text string, interrupted func() bool) bool {
	completed := true
	for _, r := range text {
		if interrupted != nil && interrupted() {
			completed = false
			break
		}
		_, _ = fmt.Fprint(t.out, t.styles.Reply.Render(string(r)))
		if t.delay > 0 {
			time.Sleep(t.delay)
		}
	}
	_, _ = fmt.Fprintln(t.out)
	return completed
}
