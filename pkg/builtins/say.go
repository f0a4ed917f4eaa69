package builtins

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/biro-lang/go-sdk/internal/logging"
)

// Options configures a Printer.
type Options struct {
	// LegacyBackspace closes containers with backspace characters instead of
	// joining elements, reproducing the byte stream of the native runtime.
	// It only looks right on a terminal.
	LegacyBackspace bool

	// Strict makes Say fail on values outside the supported set instead of
	// skipping them.
	Strict bool

	// Input is read by Ask. A nil Input makes Ask return io.EOF.
	Input io.Reader

	// Logger receives warnings about skipped values. Defaults to a
	// logger that discards everything.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the options used when nil is passed to NewPrinter.
func DefaultOptions() *Options {
	return &Options{}
}

// Printer renders values for the say and ask builtins.
// It is safe for concurrent use; each call's output is written at once.
type Printer struct {
	mu     sync.Mutex
	w      io.Writer
	in     *bufio.Reader
	opts   Options
	logger logrus.FieldLogger
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts *Options) *Printer {
	if opts == nil {
		opts = DefaultOptions()
	}

	p := &Printer{
		w:      w,
		opts:   *opts,
		logger: opts.Logger,
	}
	if p.logger == nil {
		p.logger = logging.Discard()
	}
	if opts.Input != nil {
		p.in = bufio.NewReader(opts.Input)
	}
	return p
}

// Say renders every value in order, with no separator between them and no
// trailing newline.
func (p *Printer) Say(values ...any) error {
	var sb strings.Builder
	for _, v := range values {
		err := render(&sb, v, p.opts.LegacyBackspace)
		if err == nil {
			continue
		}
		if p.opts.Strict {
			return err
		}
		p.logger.WithError(err).WithField("value", spew.Sdump(v)).Warn("say: skipping value")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := io.WriteString(p.w, sb.String())
	return err
}

// Ask says the prompt and returns the next line of input without its line
// terminator. A final line without a terminator is returned with a nil error.
func (p *Printer) Ask(prompt ...any) (string, error) {
	if err := p.Say(prompt...); err != nil {
		return "", err
	}
	if p.in == nil {
		return "", io.EOF
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var std = NewPrinter(os.Stdout, &Options{Input: os.Stdin})

// Say renders values to standard output.
func Say(values ...any) error {
	return std.Say(values...)
}

// Ask prompts on standard output and reads a line from standard input.
func Ask(prompt ...any) (string, error) {
	return std.Ask(prompt...)
}
