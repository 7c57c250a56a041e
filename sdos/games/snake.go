package games

import (
	"context"
	"fmt"
	"strings"
)

// Snake board size: seven rows plus the score line fill the 8-row screen.
const (
	SnakeWidth  = 16
	SnakeHeight = 7
)

type point struct {
	x, y int
}

var (
	dirUp    = point{0, -1}
	dirDown  = point{0, 1}
	dirLeft  = point{-1, 0}
	dirRight = point{1, 0}
)

// Snake is the state of one snake game. Edges wrap around.
type Snake struct {
	w, h  int
	snake []point // head first
	dir   point
	food  point
	score int
	alive bool
	rng   uint32
}

// NewSnake starts a game with a three-cell snake heading right.
func NewSnake(seed uint32) *Snake {
	g := &Snake{w: SnakeWidth, h: SnakeHeight, dir: dirRight, alive: true, rng: seed}
	cx, cy := g.w/2, g.h/2
	g.snake = []point{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.spawnFood()
	return g
}

func (g *Snake) Score() int  { return g.score }
func (g *Snake) Alive() bool { return g.alive }

// Turn changes direction for the next step. Reversing onto the body and
// unknown keys are ignored.
func (g *Snake) Turn(key rune) {
	var d point
	switch key {
	case 'W', 'w':
		d = dirUp
	case 'S', 's':
		d = dirDown
	case 'A', 'a':
		d = dirLeft
	case 'D', 'd':
		d = dirRight
	default:
		return
	}
	if d.x == -g.dir.x && d.y == -g.dir.y {
		return
	}
	g.dir = d
}

// Step moves the snake one cell.
func (g *Snake) Step() {
	if !g.alive || len(g.snake) == 0 {
		return
	}

	next := g.snake[0]
	next.x = (next.x + g.dir.x + g.w) % g.w
	next.y = (next.y + g.dir.y + g.h) % g.h

	willEat := next == g.food
	check := g.snake
	if !willEat && len(check) > 1 {
		check = check[:len(check)-1]
	}
	for _, p := range check {
		if p == next {
			g.alive = false
			return
		}
	}

	g.snake = append([]point{next}, g.snake...)
	if willEat {
		g.score++
		g.spawnFood()
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

// Rows renders the board, one string per row.
func (g *Snake) Rows() []string {
	cells := make([][]byte, g.h)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(".", g.w))
	}
	if g.food.x >= 0 {
		cells[g.food.y][g.food.x] = '*'
	}
	for i, p := range g.snake {
		c := byte('o')
		if i == 0 {
			c = 'O'
		}
		cells[p.y][p.x] = c
	}
	rows := make([]string, g.h)
	for y := range cells {
		rows[y] = string(cells[y])
	}
	return rows
}

func (g *Snake) spawnFood() {
	var free []point
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := point{x, y}
			if !g.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = point{-1, -1}
		g.alive = false
		return
	}
	g.rng = xorshift32(g.rng)
	g.food = free[g.rng%uint32(len(free))]
}

func (g *Snake) occupied(p point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}

// PlaySnake runs a game: each input line is one move (W/A/S/D turn, any
// other text keeps going), an empty line quits. It reports false when
// input ended.
func PlaySnake(ctx context.Context, scr Screen, in LineReader, seed uint32) bool {
	scr.Clear()
	scr.PrintLine("SNAKE")
	scr.PrintLine("W/A/S/D + Enter moves")
	scr.PrintLine("Empty line quits")
	if !waitKey(ctx, in) {
		return false
	}

	g := NewSnake(seed)
	for g.Alive() {
		drawSnake(scr, g)
		line, err := in.ReadLine(ctx)
		if err != nil {
			return false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return true
		}
		g.Turn([]rune(line)[0])
		g.Step()
	}

	scr.PrintLine(fmt.Sprintf("GAME OVER! Score: %d", g.Score()))
	return waitKey(ctx, in)
}

func drawSnake(scr Screen, g *Snake) {
	scr.Clear()
	for _, row := range g.Rows() {
		scr.PrintLine(row)
	}
	scr.PrintLine(fmt.Sprintf("Score: %d", g.Score()))
}
