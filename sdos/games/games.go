// Package games holds the line-driven games reachable from the GAMES command.
package games

import (
	"context"
	"strings"
)

// Screen is the text output the games draw on.
type Screen interface {
	PrintLine(text string)
	Clear()
}

// LineReader supplies one line of player input per call.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Menu shows the games menu until the player picks "3" or input ends.
func Menu(ctx context.Context, scr Screen, in LineReader, seed uint32) {
	for {
		scr.Clear()
		scr.PrintLine("Games Menu")
		scr.PrintLine("1. Snake")
		scr.PrintLine("2. Text Adventure")
		scr.PrintLine("3. Exit to DOS")
		scr.PrintLine("Select (1-3):")

		line, err := in.ReadLine(ctx)
		if err != nil {
			return
		}
		switch strings.TrimSpace(line) {
		case "1":
			seed = xorshift32(seed)
			if !PlaySnake(ctx, scr, in, seed) {
				return
			}
		case "2":
			if !PlayAdventure(ctx, scr, in) {
				return
			}
		case "3":
			scr.PrintLine("Returning to DOS...")
			return
		default:
			scr.PrintLine("Invalid choice")
			if !waitKey(ctx, in) {
				return
			}
		}
	}
}

// waitKey blocks for one line so a message stays readable. It reports
// false when input ended.
func waitKey(ctx context.Context, in LineReader) bool {
	_, err := in.ReadLine(ctx)
	return err == nil
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}
