package shell

import (
	"context"
	"strings"
)

const piDigits = "3.14159265358979323846264338327950288419716939937510"

func registerCoreCommands(r *registry) error {
	return registerAll(r, []command{
		{Name: "HELP", Usage: "HELP", Desc: "List commands.", Run: cmdHelp},
		{Name: "CLS", Usage: "CLS", Desc: "Clear the screen.", Run: cmdCls},
		{Name: "ECHO", Usage: "ECHO [text...]", Desc: "Print text.", Run: cmdEcho},
		{Name: "VER", Usage: "VER", Desc: "Show the version.", Run: cmdVer},
		{Name: "TIME", Usage: "TIME", Desc: "Show the time.", Run: cmdTime},
		{Name: "PI", Usage: "PI", Desc: "Print digits of pi.", Run: cmdPi},
	})
}

func cmdHelp(_ context.Context, s *Service, _ []string) error {
	s.print("Available commands:")
	for _, name := range Commands {
		s.print(name)
	}
	return nil
}

func cmdCls(_ context.Context, s *Service, _ []string) error {
	s.disp.Clear()
	s.print(s.prompt())
	return nil
}

func cmdEcho(_ context.Context, s *Service, args []string) error {
	s.print(strings.Join(args, " "))
	return nil
}

func cmdVer(_ context.Context, s *Service, _ []string) error {
	s.print("PICO SDOS v" + s.version)
	return nil
}

func cmdTime(_ context.Context, s *Service, _ []string) error {
	s.print("Time: " + s.now().Format("15:04:05"))
	return nil
}

func cmdPi(_ context.Context, s *Service, _ []string) error {
	s.print("Pi:")
	s.print(piDigits)
	return nil
}
