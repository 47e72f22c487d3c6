// Package bot contains the move executor: a per-piece state machine that
// asks the generator for the best final placement and then drives the live
// piece there with exactly one rotate, shift or drop-step per tick.
package bot

import (
	"github.com/rs/zerolog/log"

	"github.com/blockfall/tetron/equity"
	"github.com/blockfall/tetron/game"
	"github.com/blockfall/tetron/movegen"
)

// ExecState is the executor's phase for the current piece.
type ExecState uint8

const (
	NeedTarget ExecState = iota
	Rotating
	Translating
	Dropping
	Locked
)

func (s ExecState) String() string {
	switch s {
	case NeedTarget:
		return "need-target"
	case Rotating:
		return "rotating"
	case Translating:
		return "translating"
	case Dropping:
		return "dropping"
	case Locked:
		return "locked"
	}
	return "invalid"
}

// TickOutcome is what a single tick did for the session.
type TickOutcome uint8

const (
	// Continue means the piece is still in flight.
	Continue TickOutcome = iota
	// PieceLocked means this tick locked the piece; LinesCleared and
	// ScoreDelta carry what the lock awarded.
	PieceLocked
	// GameOver means no placement exists, or a spawn already collided.
	GameOver
)

type TickResult struct {
	Outcome      TickOutcome
	LinesCleared int
	ScoreDelta   int
}

// Executor drives one game's pieces to the generator's chosen placements.
type Executor struct {
	game      *game.Game
	gen       *movegen.Generator
	target    movegen.Placement
	hasTarget bool
	state     ExecState
}

func NewExecutor(g *game.Game, calc equity.Calculator) *Executor {
	return &Executor{
		game:  g,
		gen:   movegen.NewGenerator(g.Board(), calc),
		state: NeedTarget,
	}
}

// Spawn begins tracking a newly spawned piece, discarding any held target.
func (e *Executor) Spawn() {
	e.hasTarget = false
	e.state = NeedTarget
}

func (e *Executor) State() ExecState {
	return e.state
}

// Target returns the held placement; ok is false while no target is held.
func (e *Executor) Target() (movegen.Placement, bool) {
	return e.target, e.hasTarget
}

// Tick advances the state machine by one action. Search runs at most once
// per tick, and the chosen action is performed in the same invocation.
func (e *Executor) Tick() TickResult {
	if !e.game.Playing() {
		return TickResult{Outcome: GameOver}
	}
	lp := e.game.CurrentPiece()
	if !e.hasTarget {
		target, ok := e.gen.BestPlacement(lp)
		if !ok {
			// Nothing is placeable; the session is done.
			log.Debug().Int("score", e.game.Score()).Msg("no-placement")
			e.game.EndGame()
			return TickResult{Outcome: GameOver}
		}
		e.target = target
		e.hasTarget = true
	}
	switch {
	case lp.Rotation() != e.target.Rotation():
		e.state = Rotating
		if e.game.RotateKick() {
			return TickResult{Outcome: Continue}
		}
		// Rotation blocked even with kicks. The held target assumed the
		// rotated shape, so replan from the unrotated state, and fall
		// one row so a re-search cannot hand back the same unreachable
		// plan forever.
		e.invalidateTarget()
		return e.descend()
	case lp.Col() != e.target.Col():
		e.state = Translating
		dir := 1
		if e.target.Col() < lp.Col() {
			dir = -1
		}
		if e.game.MoveSideways(dir) {
			return TickResult{Outcome: Continue}
		}
		// Blocked sideways: same forced descent as a blocked rotation.
		e.invalidateTarget()
		return e.descend()
	default:
		e.state = Dropping
		return e.descend()
	}
}

// descend advances the piece one row and, on contact, reports the lock. The
// blocked-rotation and blocked-shift paths route through here too, so every
// tick that cannot make lateral progress still makes vertical progress and
// the piece always locks in finitely many ticks.
func (e *Executor) descend() TickResult {
	locked, lines, delta := e.game.MoveDown()
	if !locked {
		return TickResult{Outcome: Continue}
	}
	e.state = Locked
	// The game already spawned the next piece; track it.
	e.Spawn()
	return TickResult{
		Outcome:      PieceLocked,
		LinesCleared: lines,
		ScoreDelta:   delta,
	}
}

func (e *Executor) invalidateTarget() {
	e.hasTarget = false
	e.state = NeedTarget
}
