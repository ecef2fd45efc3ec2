package board

import (
	"fmt"

	"github.com/brensch/duelsnek/game"
)

// MovesForSquare returns the directions that step from p onto an in-bounds
// cell that is empty or holds food, in canonical order. Returns nil if p is
// off the grid or not occupied by a snake segment.
func (b *Board) MovesForSquare(p game.Point) []game.Direction {
	if !b.inBounds(p) {
		return nil
	}
	if v := b.occupant(p); v == 0 || v == game.Food {
		return nil
	}

	var moves []game.Direction
	for _, d := range game.Directions {
		dest := p.Step(d)
		if !b.inBounds(dest) {
			continue
		}
		if v := b.occupant(dest); v == 0 || v == game.Food {
			moves = append(moves, d)
		}
	}
	return moves
}

// LegalMoves returns the set of directions legal for the side, in canonical
// order: the union of MovesForSquare over every cell the side occupies. A
// direction appears once no matter how many cells contribute it.
func (b *Board) LegalMoves(side game.Side) []game.Direction {
	var seen [len(game.Directions)]bool
	for _, cell := range b.bodies[sideIndex(side)] {
		for _, d := range b.MovesForSquare(cell) {
			seen[d] = true
		}
	}

	var moves []game.Direction
	for _, d := range game.Directions {
		if seen[d] {
			moves = append(moves, d)
		}
	}
	return moves
}

// HasLegalMoves reports whether the side has at least one legal move.
func (b *Board) HasLegalMoves(side game.Side) bool {
	return len(b.LegalMoves(side)) > 0
}

// ExecuteMove applies one side's chosen direction against the current grid.
// The turn model is cooperative-sequential: the driver calls ExecuteMove once
// per side per tick, in an order of its choosing, and that order decides the
// outcome when both heads contest the same cell or try to swap.
//
// Per call: health drops by one, and at zero the side starves off the board
// before the step is even attempted. Otherwise the destination is inspected
// against the occupancy as it stands right now — stepping onto the mover's
// own tail is fatal even though the tail is about to vacate, a quirk kept
// from the original engine. Food restores full health, grows the snake by
// one segment and respawns at a random empty cell; any other occupied cell
// eliminates the mover; an empty cell is an ordinary step.
//
// Returns ErrNoHead if the side was already eliminated, and ErrOutOfBounds
// if the step would leave the grid (the health decrement still applies, as
// it precedes the destination check).
func (b *Board) ExecuteMove(dir game.Direction, side game.Side) error {
	idx := sideIndex(side)
	body := b.bodies[idx]
	if len(body) == 0 {
		return fmt.Errorf("%s: %w", side, ErrNoHead)
	}

	b.health[idx]--
	if b.health[idx] <= 0 {
		b.removeSnake(side)
		b.log.Debug().Stringer("side", side).Msg("eliminated by starvation")
		return nil
	}

	head := body[0]
	dest := head.Step(dir)
	if !b.inBounds(dest) {
		return fmt.Errorf("%s stepping %s from (%d,%d): %w", side, dir, head.X, head.Y, ErrOutOfBounds)
	}

	target := b.occupant(dest)
	if target != 0 && target != game.Food {
		b.removeSnake(side)
		b.log.Debug().
			Stringer("side", side).
			Int32("x", dest.X).Int32("y", dest.Y).
			Msg("eliminated by collision")
		return nil
	}

	newBody := []game.Point{dest}
	newBody = append(newBody, body...)
	if target != game.Food {
		newBody = newBody[:len(newBody)-1]
	}
	b.bodies[idx] = newBody

	if target == game.Food {
		b.health[idx] = game.HealthMax
		b.food = b.randomFreeCell()
		b.log.Debug().
			Stringer("side", side).
			Int32("length", int32(len(newBody))).
			Int32("foodX", b.food.X).Int32("foodY", b.food.Y).
			Msg("ate food")
	}
	return nil
}

func (b *Board) removeSnake(side game.Side) {
	b.bodies[sideIndex(side)] = nil
}
