// Package board implements the rules core for a two-player snake duel on an
// n×n grid: legal-move enumeration and the move-execution state machine
// (health, growth, food, collision, elimination).
//
// The board is exclusively owned by one driver at a time. All calls are
// synchronous and the board does no locking; a search driver that wants to
// explore branches takes a Clone per branch.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/brensch/duelsnek/game"
)

var (
	ErrInvalidBoardSize = errors.New("board too small to place both snakes and food")
	ErrNoHead           = errors.New("side has no head on the board")
	ErrNoTail           = errors.New("side has no tail on the board")
	ErrOutOfBounds      = errors.New("coordinates outside the board")
)

// Board holds the full game state. Each snake is an ordered list of
// coordinates, head first; the integer grid the driver reads through Cell is
// derived from these lists on demand.
type Board struct {
	n       int32
	bodies  [2][]game.Point // indexed by sideIndex, head at position 0
	health  [2]int32
	food    game.Point
	hasFood bool
	rng     *rand.Rand
	log     zerolog.Logger
}

func sideIndex(s game.Side) int {
	if s == game.White {
		return 0
	}
	return 1
}

// New sets up a fresh game: white head, black head and one food item placed
// at three distinct uniformly-random empty cells, both healths at
// game.HealthMax. rng drives all placement; pass a seeded source for
// deterministic games, or nil to seed from the clock.
//
// Returns ErrInvalidBoardSize if the grid cannot hold the three initial
// pieces (n*n < 3).
func New(n int32, rng *rand.Rand) (*Board, error) {
	if n < 0 || n*n < 3 {
		return nil, fmt.Errorf("%dx%d grid: %w", n, n, ErrInvalidBoardSize)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b := &Board{n: n, rng: rng, log: zerolog.Nop()}
	b.bodies[0] = []game.Point{b.randomFreeCell()}
	b.bodies[1] = []game.Point{b.randomFreeCell()}
	b.food = b.randomFreeCell()
	b.hasFood = true
	b.health[0] = game.HealthMax
	b.health[1] = game.HealthMax
	return b, nil
}

// WithLogger attaches a logger for debug traces (eliminations, food pickups)
// and returns the board. The default logger discards everything.
func (b *Board) WithLogger(l zerolog.Logger) *Board {
	b.log = l
	return b
}

// randomFreeCell draws uniformly among empty cells by rejection sampling.
// Spins forever if no empty cell exists; callers guarantee one does.
func (b *Board) randomFreeCell() game.Point {
	for {
		p := game.Point{X: b.rng.Int31n(b.n), Y: b.rng.Int31n(b.n)}
		if b.occupant(p) == 0 {
			return p
		}
	}
}

func (b *Board) inBounds(p game.Point) bool {
	return p.X >= 0 && p.X < b.n && p.Y >= 0 && p.Y < b.n
}

// occupant reports the cell encoding at p: 0 for empty, game.Food for the
// food cell, and ±k for a body segment, where the head reports magnitude 1
// and the tail the snake's length.
func (b *Board) occupant(p game.Point) int32 {
	if b.hasFood && b.food == p {
		return game.Food
	}
	for i := range b.bodies {
		sign := int32(1)
		if i == 1 {
			sign = -1
		}
		for j, cell := range b.bodies[i] {
			if cell == p {
				return sign * int32(j+1)
			}
		}
	}
	return 0
}

// Cell returns the encoding of the cell at (x, y), or ErrOutOfBounds for
// coordinates off the grid.
func (b *Board) Cell(x, y int32) (int32, error) {
	if x < 0 || x >= b.n || y < 0 || y >= b.n {
		return 0, fmt.Errorf("cell (%d,%d) on %dx%d board: %w", x, y, b.n, b.n, ErrOutOfBounds)
	}
	return b.occupant(game.Point{X: x, Y: y}), nil
}

// Size returns the grid dimension n.
func (b *Board) Size() int32 {
	return b.n
}

// Health returns the side's current health.
func (b *Board) Health(side game.Side) int32 {
	return b.health[sideIndex(side)]
}

// Length returns the number of body segments the side has on the board.
func (b *Board) Length(side game.Side) int32 {
	return int32(len(b.bodies[sideIndex(side)]))
}

// Alive reports whether the side still has health and cells on the board.
func (b *Board) Alive(side game.Side) bool {
	idx := sideIndex(side)
	return b.health[idx] > 0 && len(b.bodies[idx]) > 0
}

// Food returns the current food coordinate.
func (b *Board) Food() game.Point {
	return b.food
}

// Head returns the side's head coordinate, or ErrNoHead if the side has been
// eliminated.
func (b *Board) Head(side game.Side) (game.Point, error) {
	body := b.bodies[sideIndex(side)]
	if len(body) == 0 {
		return game.Point{}, fmt.Errorf("%s: %w", side, ErrNoHead)
	}
	return body[0], nil
}

// Tail returns the side's tail coordinate, or ErrNoTail if the side has been
// eliminated.
func (b *Board) Tail(side game.Side) (game.Point, error) {
	body := b.bodies[sideIndex(side)]
	if len(body) == 0 {
		return game.Point{}, fmt.Errorf("%s: %w", side, ErrNoTail)
	}
	return body[len(body)-1], nil
}

// CountDiff returns the material difference oriented to the queried side:
// own segment count minus the opponent's, food excluded. Zero on an empty
// board.
func (b *Board) CountDiff(side game.Side) int32 {
	diff := int32(len(b.bodies[0])) - int32(len(b.bodies[1]))
	if side == game.Black {
		return -diff
	}
	return diff
}

// Clone performs a deep copy of the board. The clone shares the random
// source and logger with the original.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}

	out := &Board{
		n:       b.n,
		health:  b.health,
		food:    b.food,
		hasFood: b.hasFood,
		rng:     b.rng,
		log:     b.log,
	}
	for i := range b.bodies {
		if len(b.bodies[i]) > 0 {
			out.bodies[i] = make([]game.Point, len(b.bodies[i]))
			copy(out.bodies[i], b.bodies[i])
		}
	}
	return out
}
