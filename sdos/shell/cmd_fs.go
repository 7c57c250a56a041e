package shell

import (
	"context"
	"fmt"

	"sdos/sdos/fstree"
)

func registerFSCommands(r *registry) error {
	return registerAll(r, []command{
		{Name: "DIR", Usage: "DIR", Desc: "List the current directory.", Run: cmdDir},
		{Name: "CD", Usage: "CD [directory]", Desc: "Change directory.", Run: cmdCd},
	})
}

func cmdDir(_ context.Context, s *Service, _ []string) error {
	s.print("Directory of " + s.cwd)
	entries, _ := s.tree.List(s.cwd)
	for _, e := range entries {
		s.print(fmt.Sprintf("%-15s%6s", e.Name, e.Size))
	}
	return nil
}

func cmdCd(_ context.Context, s *Service, args []string) error {
	if len(args) == 0 {
		s.print("Current directory: " + s.cwd)
		s.print("Usage: CD [directory]")
		return nil
	}

	target := args[0]
	switch {
	case len(target) == 2 && target[1] == ':':
		root := fstree.DriveRoot(target[:1])
		if !s.tree.Has(root) {
			s.print(fmt.Sprintf("Drive %s: not found", root[:1]))
			return nil
		}
		s.chdir(root)
	case target == `\`:
		s.chdir(fstree.RootOf(s.cwd))
	case target == "..":
		if fstree.IsRoot(s.cwd) {
			s.print("Already at root")
			return nil
		}
		s.chdir(fstree.Parent(s.cwd))
	default:
		next := fstree.Join(s.cwd, target)
		if !s.tree.Has(next) {
			s.print("Path not found")
			return nil
		}
		s.chdir(next)
	}
	return nil
}
