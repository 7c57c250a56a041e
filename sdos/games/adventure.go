package games

import (
	"context"
	"strings"
)

// PlayAdventure runs the one-room text adventure. It reports false when
// input ended before the player answered.
func PlayAdventure(ctx context.Context, scr Screen, in LineReader) bool {
	scr.Clear()
	scr.PrintLine("=== MINI TEXT ADVENTURE ===")
	scr.PrintLine("Room with door and window")
	scr.PrintLine("Door or Window? (D/W)")

	line, err := in.ReadLine(ctx)
	if err != nil {
		return false
	}
	switch strings.ToUpper(strings.TrimSpace(line)) {
	case "D":
		scr.PrintLine("You escape through the door!")
	case "W":
		scr.PrintLine("You fall out the window! Ouch!")
	default:
		scr.PrintLine("You stand still...")
	}
	scr.PrintLine("Press Enter")
	return waitKey(ctx, in)
}
