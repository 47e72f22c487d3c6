// Package automatic plays complete bot games unattended: useful for soak
// testing the placement engine and looking at score distributions.
package automatic

import (
	"fmt"

	"github.com/blockfall/tetron/ai/bot"
	"github.com/blockfall/tetron/config"
	"github.com/blockfall/tetron/equity"
	"github.com/blockfall/tetron/game"
)

// GameRunner is the master struct for the automatic game logic. It owns one
// game and one executor and replays them for every job it is handed.
type GameRunner struct {
	game     *game.Game
	executor *bot.Executor
	config   *config.Config
	logchan  chan string
}

// GameResult summarizes one finished game.
type GameResult struct {
	Score  int
	Pieces int
	Lines  int
	Ticks  int
}

// NewGameRunner instantiates and initializes a game runner.
func NewGameRunner(logchan chan string, cfg *config.Config) (*GameRunner, error) {
	calc, err := equity.NewStaticCalculator(cfg.WeightsPath)
	if err != nil {
		return nil, err
	}
	g, err := game.NewGame(cfg)
	if err != nil {
		return nil, err
	}
	return &GameRunner{
		game:     g,
		executor: bot.NewExecutor(g, calc),
		config:   cfg,
		logchan:  logchan,
	}, nil
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayGame plays a single game to completion and returns its result. A
// nonzero pieceCap stops the game early after that many locked pieces, so
// that a strong evaluator on a wide board cannot run unbounded.
func (r *GameRunner) PlayGame(pieceCap int) GameResult {
	r.game.StartGame()
	r.executor.Spawn()
	var result GameResult
	for r.game.Playing() {
		res := r.executor.Tick()
		result.Ticks++
		switch res.Outcome {
		case bot.PieceLocked:
			result.Pieces++
			result.Lines += res.LinesCleared
		case bot.GameOver:
			// playing flag is already down
		}
		if pieceCap > 0 && result.Pieces >= pieceCap {
			break
		}
	}
	result.Score = r.game.Score()
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%d,%d,%d,%d\n",
			result.Score, result.Lines, result.Pieces, result.Ticks)
	}
	return result
}
