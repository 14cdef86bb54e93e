package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"kbchat/pkg/chat"
	"kbchat/pkg/knowledge"
	"kbchat/pkg/term"
)

const (
	promptText  = "Please enter some text and press Enter: "
	exitKeyword = "exit"
	askingText  = "\U0001F4A1 Asking..."
)

// Loop drives one interactive session: read a line, dispatch it, issue at
// most one completion request, render the reply, repeat until the exit
// keyword, an empty line, or an interrupt.
type Loop struct {
	session   *chat.Session
	catalog   []knowledge.Source
	sink      term.Sink
	interrupt *Interrupt
	scanner   *bufio.Scanner
	logger    *zap.Logger
}

// Options configures a Loop.
type Options struct {
	Session   *chat.Session
	Catalog   []knowledge.Source
	Sink      term.Sink
	Interrupt *Interrupt
	In        io.Reader
	Logger    *zap.Logger
}

// New builds a Loop. A nil Interrupt gets a fresh untripped flag and a nil
// Logger is replaced with a no-op one.
func New(opts Options) *Loop {
	if opts.Interrupt == nil {
		opts.Interrupt = NewInterrupt()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Loop{
		session:   opts.Session,
		catalog:   opts.Catalog,
		sink:      opts.Sink,
		interrupt: opts.Interrupt,
		scanner:   bufio.NewScanner(opts.In),
		logger:    opts.Logger,
	}
}

// Run executes the loop until a terminal condition. Every exit path is
// clean: completion failures and knowledge load failures are reported and
// the loop keeps going.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if l.interrupt.Tripped() {
			return nil
		}
		l.sink.Prompt(promptText)
		if !l.scanner.Scan() {
			if err := l.scanner.Err(); err != nil {
				l.logger.Error("read input", zap.Error(err))
			}
			return nil
		}
		if l.interrupt.Tripped() {
			return nil
		}

		input := strings.TrimSpace(l.scanner.Text())
		if input == "" || input == exitKeyword {
			return nil
		}

		switch input {
		case "clear":
			l.session.ClearHistory()
			l.sink.Line("Conversation history cleared.")
		case "knowledge":
			l.selectKnowledge()
		case "help":
			l.printHelp()
		default:
			l.query(ctx, input)
		}
	}
}

// selectKnowledge enumerates the catalog, reads one index, and replaces the
// active knowledge with the chosen source's rendering. Any failure leaves
// the previous knowledge unchanged.
func (l *Loop) selectKnowledge() {
	l.sink.Line("Knowledge sources:")
	for i, src := range l.catalog {
		l.sink.Line(fmt.Sprintf("  %d. %s", i+1, src.Name))
	}
	l.sink.Prompt("Select a source by number: ")
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			l.logger.Error("read selection", zap.Error(err))
		}
		return
	}
	if l.interrupt.Tripped() {
		return
	}

	choice := strings.TrimSpace(l.scanner.Text())
	index, err := strconv.Atoi(choice)
	if err != nil || index < 1 || index > len(l.catalog) {
		l.sink.Error(fmt.Sprintf("Invalid selection %q; knowledge unchanged.", choice))
		return
	}

	src := l.catalog[index-1]
	if err := l.session.UseSource(src); err != nil {
		l.logger.Error("load knowledge", zap.String("source", src.Name), zap.Error(err))
		l.sink.Error(fmt.Sprintf("Failed to load %s: %v", src.Name, err))
		return
	}
	l.sink.Line(fmt.Sprintf("Knowledge source set to %s.", src.Name))
}

// query issues one completion request for input and types out the reply.
func (l *Loop) query(ctx context.Context, input string) {
	l.sink.StartSpinner(askingText)
	reply, err := l.session.Ask(ctx, input)
	l.sink.StopSpinner()
	if err != nil {
		l.logger.Error("completion failed", zap.Error(err))
		l.sink.Error(fmt.Sprintf("Error: %v", err))
		return
	}
	l.sink.Reply(reply, l.interrupt.Tripped)
}

func (l *Loop) printHelp() {
	l.sink.Line("Commands:")
	l.sink.Line("  help       - Show this help message")
	l.sink.Line("  knowledge  - Select a knowledge source")
	l.sink.Line("  clear      - Clear conversation history")
	l.sink.Line("  exit       - Exit the program (an empty line also exits)")
}
