// Package shell is the SDOS command interpreter: it reads command lines,
// echoes them behind the prompt and dispatches the first word to a command.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"sdos/sdos/fstree"
)

const haltedMsg = "shell halted."

var (
	errExit = errors.New("shell: exit")

	// ErrReboot is returned by Run after the REBOOT command.
	ErrReboot = errors.New("shell: reboot")
)

// Display is the text sink commands print to.
type Display interface {
	PrintLine(text string)
	Clear()
}

// LineReader supplies command lines.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Logger receives one line per shell event.
type Logger interface {
	WriteLineString(s string)
}

// Config wires a Service. Tree, Display and Input are required.
type Config struct {
	Tree    *fstree.Tree
	Display Display
	Input   LineReader
	Logger  Logger

	// Version is shown by VER.
	Version string
	// Now is the TIME clock; nil means time.Now.
	Now func() time.Time
	// Seed feeds the games' random generator.
	Seed uint32
}

// Service is one shell session. It is not safe for concurrent use.
type Service struct {
	tree    *fstree.Tree
	disp    Display
	in      LineReader
	log     Logger
	version string
	now     func() time.Time
	seed    uint32

	cwd string
	reg *registry
}

func New(cfg Config) (*Service, error) {
	if cfg.Tree == nil {
		return nil, errors.New("shell: nil tree")
	}
	if cfg.Display == nil {
		return nil, errors.New("shell: nil display")
	}
	if cfg.Input == nil {
		return nil, errors.New("shell: nil input")
	}
	s := &Service{
		tree:    cfg.Tree,
		disp:    cfg.Display,
		in:      cfg.Input,
		log:     cfg.Logger,
		version: cfg.Version,
		now:     cfg.Now,
		seed:    cfg.Seed,
		cwd:     cfg.Tree.Root(),
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.version == "" {
		s.version = "0.0.0"
	}
	if err := s.initRegistry(); err != nil {
		return nil, err
	}
	return s, nil
}

// Cwd returns the current directory.
func (s *Service) Cwd() string { return s.cwd }

// Run prints the prompt and processes lines until EXIT, REBOOT or the end of
// input. End of input, a read error and ctx cancellation all halt the shell
// and return nil; REBOOT returns ErrReboot.
func (s *Service) Run(ctx context.Context) error {
	s.logf("shell: start cwd=%s", s.cwd)
	s.print(s.prompt())

	for {
		line, err := s.in.ReadLine(ctx)
		if err != nil {
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				s.logf("shell: input: %v", err)
			}
			s.print(haltedMsg)
			s.logf("shell: halted")
			return nil
		}
		line = strings.TrimSpace(line)
		s.print(s.prompt() + line)

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		err = s.Dispatch(ctx, fields[0], fields[1:])
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			s.logf("shell: exit")
			return nil
		case errors.Is(err, ErrReboot):
			s.logf("shell: reboot")
			return ErrReboot
		default:
			s.print(err.Error())
		}
	}
}

// Dispatch runs the command named by token (any case) with args. Unknown
// tokens print a single "not recognized" line and return nil.
func (s *Service) Dispatch(ctx context.Context, token string, args []string) error {
	cmd, ok := s.reg.resolve(token)
	if !ok {
		s.print(fmt.Sprintf("'%s' not recognized", token))
		return nil
	}
	s.logf("shell: cmd=%s args=%d", cmd.Name, len(args))
	return cmd.Run(ctx, s, args)
}

func (s *Service) prompt() string { return s.cwd + ">" }

func (s *Service) print(line string) { s.disp.PrintLine(line) }

func (s *Service) chdir(path string) {
	s.logf("shell: cd %s -> %s", s.cwd, path)
	s.cwd = path
}

func (s *Service) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
