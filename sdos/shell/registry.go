package shell

import (
	"context"
	"fmt"
	"strings"
)

type cmdFunc func(ctx context.Context, s *Service, args []string) error

type command struct {
	Name  string
	Usage string
	Desc  string
	Run   cmdFunc
}

// Commands is the fixed command set, in HELP order.
var Commands = []string{
	"HELP", "DIR", "CLS", "ECHO", "VER", "TIME", "CD", "EXIT",
	"GAMES", "PI", "REBOOT",
}

type registry struct {
	primary map[string]command
}

func newRegistry() *registry {
	return &registry{primary: make(map[string]command)}
}

func (r *registry) register(cmd command) error {
	cmd.Name = strings.ToUpper(strings.TrimSpace(cmd.Name))
	if cmd.Name == "" {
		return fmt.Errorf("shell registry: empty command name")
	}
	if cmd.Run == nil {
		return fmt.Errorf("shell registry: %q has no handler", cmd.Name)
	}
	if _, ok := r.primary[cmd.Name]; ok {
		return fmt.Errorf("shell registry: duplicate command %q", cmd.Name)
	}
	r.primary[cmd.Name] = cmd
	return nil
}

// check verifies that the registered handlers are exactly the declared set.
func (r *registry) check(declared []string) error {
	want := make(map[string]bool, len(declared))
	for _, name := range declared {
		if want[name] {
			return fmt.Errorf("shell registry: %q declared twice", name)
		}
		want[name] = true
		if _, ok := r.primary[name]; !ok {
			return fmt.Errorf("shell registry: %q has no handler", name)
		}
	}
	for name := range r.primary {
		if !want[name] {
			return fmt.Errorf("shell registry: %q is not a declared command", name)
		}
	}
	return nil
}

// resolve matches name case-insensitively.
func (r *registry) resolve(name string) (command, bool) {
	cmd, ok := r.primary[strings.ToUpper(strings.TrimSpace(name))]
	return cmd, ok
}
