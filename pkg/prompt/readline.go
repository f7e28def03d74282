package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/m-mizutani/goerr/v2"

	"github.com/vass-cornelius/kensho/pkg/model"
)

// ReadlineSource asks prompts interactively on the terminal.
type ReadlineSource struct {
	rl *readline.Instance
}

// Option adjusts the readline configuration before the terminal opens.
type Option func(*readline.Config)

// WithStreams detaches the source from the process terminal and reads from
// in and writes to out instead.
func WithStreams(in io.ReadCloser, out io.Writer) Option {
	return func(cfg *readline.Config) {
		cfg.Stdin = in
		cfg.Stdout = out
		cfg.Stderr = out
		cfg.FuncIsTerminal = func() bool { return false }
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
		cfg.FuncGetWidth = func() int { return 80 }
	}
}

// NewReadline creates an interactive prompt source.
func NewReadline(opts ...Option) (*ReadlineSource, error) {
	cfg := &readline.Config{
		Prompt: "> ",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize readline")
	}

	return &ReadlineSource{rl: rl}, nil
}

// Close releases the terminal.
func (s *ReadlineSource) Close() error {
	return s.rl.Close()
}

// Ask presents a prompt and reads its answer. List prompts collect one item
// per line until an empty line and store them as bullet text; text prompts
// collect free lines until a line containing only END; line prompts read a
// single line. Interrupt or EOF ends the current prompt with what was
// collected so far.
func (s *ReadlineSource) Ask(ctx context.Context, p model.Prompt) (string, error) {
	switch p.Mode {
	case model.PromptModeList:
		fmt.Fprintf(s.rl.Stdout(), "\n%s (enter an empty line to finish):\n", p.Question)
		return s.readList()
	case model.PromptModeText:
		fmt.Fprintf(s.rl.Stdout(), "\n%s (type 'END' on its own line to finish):\n", p.Question)
		return s.readText()
	default:
		return s.readLine(p.Question)
	}
}

func (s *ReadlineSource) readLine(question string) (string, error) {
	s.rl.SetPrompt(fmt.Sprintf("\n%s: ", question))
	defer s.rl.SetPrompt("> ")

	line, err := s.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}

func (s *ReadlineSource) readList() (string, error) {
	s.rl.SetPrompt("- ")
	defer s.rl.SetPrompt("> ")

	var items []string
	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				break
			}
			return "", goerr.Wrap(err, "failed to read input")
		}

		item := strings.TrimSpace(line)
		if item == "" {
			break
		}
		items = append(items, "- "+item)
	}

	return strings.Join(items, "\n"), nil
}

func (s *ReadlineSource) readText() (string, error) {
	s.rl.SetPrompt("")
	defer s.rl.SetPrompt("> ")

	var lines []string
	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				break
			}
			return "", goerr.Wrap(err, "failed to read input")
		}

		if strings.EqualFold(strings.TrimSpace(line), "END") {
			break
		}
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
