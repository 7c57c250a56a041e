package shell

import (
	"context"

	"sdos/sdos/games"
)

func registerSysCommands(r *registry) error {
	return registerAll(r, []command{
		{Name: "EXIT", Usage: "EXIT", Desc: "Halt the shell.", Run: cmdExit},
		{Name: "GAMES", Usage: "GAMES", Desc: "Open the games menu.", Run: cmdGames},
		{Name: "REBOOT", Usage: "REBOOT", Desc: "Restart the system.", Run: cmdReboot},
	})
}

func cmdExit(_ context.Context, s *Service, _ []string) error {
	s.print(haltedMsg)
	return errExit
}

func cmdGames(ctx context.Context, s *Service, _ []string) error {
	s.seed = nextSeed(s.seed)
	games.Menu(ctx, s.disp, s.in, s.seed)
	s.disp.Clear()
	s.print(s.prompt())
	return nil
}

func cmdReboot(_ context.Context, s *Service, _ []string) error {
	s.print("Soft reboot...")
	return ErrReboot
}

func nextSeed(x uint32) uint32 {
	if x == 0 {
		x = 0x12345678
	}
	return x*1664525 + 1013904223
}
