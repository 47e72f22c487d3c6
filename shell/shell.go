// Package shell is the interactive frontend. It drives the same game
// mechanics as the bot executor, so a human and the autoplayer are just two
// callers of one engine.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/blockfall/tetron/ai/bot"
	"github.com/blockfall/tetron/automatic"
	"github.com/blockfall/tetron/config"
	"github.com/blockfall/tetron/equity"
	"github.com/blockfall/tetron/game"
)

type ShellController struct {
	l *readline.Instance

	cfg      *config.Config
	game     *game.Game
	executor *bot.Executor
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new - start a new game\n")
	io.WriteString(w, "show - show the board\n")
	io.WriteString(w, "tick [n] - let the bot act n times (default 1)\n")
	io.WriteString(w, "play - let the bot play the current game to the end\n")
	io.WriteString(w, "autoplay <games> [threads] - play full bot games, log to autoplay.csv\n")
	io.WriteString(w, "left / right / down / drop / rotate - manual moves\n")
	io.WriteString(w, "seed <n> - set the bag seed for subsequent games\n")
	io.WriteString(w, "score - show the score\n")
	io.WriteString(w, "exit - leave\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtetron>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

func (sc *ShellController) newGame() error {
	calc, err := equity.NewStaticCalculator(sc.cfg.WeightsPath)
	if err != nil {
		return err
	}
	g, err := game.NewGame(sc.cfg)
	if err != nil {
		return err
	}
	sc.game = g
	sc.executor = bot.NewExecutor(g, calc)
	g.StartGame()
	sc.executor.Spawn()
	return nil
}

// requireGame guards the commands that need a game in progress.
func (sc *ShellController) requireGame() bool {
	if sc.game == nil {
		showMessage("no game; type new", sc.l.Stderr())
		return false
	}
	return true
}

func (sc *ShellController) botTicks(n int) {
	for i := 0; i < n; i++ {
		res := sc.executor.Tick()
		if res.Outcome == bot.GameOver {
			sc.showMessage("game over")
			return
		}
		if res.Outcome == bot.PieceLocked && res.LinesCleared > 0 {
			sc.showMessage(fmt.Sprintf("cleared %d line(s) for %d points",
				res.LinesCleared, res.ScoreDelta))
		}
	}
}

func (sc *ShellController) botPlayOut() {
	var pieces int
	for sc.game.Playing() {
		res := sc.executor.Tick()
		if res.Outcome == bot.PieceLocked {
			pieces++
		}
	}
	sc.showMessage(fmt.Sprintf("game over after %d pieces, score %d",
		pieces, sc.game.Score()))
}

func (sc *ShellController) handle(line string, sig chan os.Signal) error {
	switch {
	case line == "new":
		if err := sc.newGame(); err != nil {
			return err
		}
		sc.showMessage(sc.game.ToDisplayText())

	case line == "show" || line == "s":
		if sc.requireGame() {
			sc.showMessage(sc.game.ToDisplayText())
		}

	case line == "tick" || strings.HasPrefix(line, "tick "):
		if !sc.requireGame() {
			break
		}
		n := 1
		if strings.HasPrefix(line, "tick ") {
			var err error
			n, err = strconv.Atoi(strings.TrimSpace(line[5:]))
			if err != nil {
				sc.showError(err)
				break
			}
		}
		sc.botTicks(n)
		sc.showMessage(sc.game.ToDisplayText())

	case line == "play":
		if sc.requireGame() {
			sc.botPlayOut()
			sc.showMessage(sc.game.Board().ToDisplayText())
		}

	case strings.HasPrefix(line, "autoplay "):
		fields := strings.Fields(line[9:])
		if len(fields) == 0 {
			showMessage("autoplay needs a game count", sc.l.Stderr())
			break
		}
		numGames, err := strconv.Atoi(fields[0])
		if err != nil {
			sc.showError(err)
			break
		}
		threads := sc.cfg.Threads
		if len(fields) > 1 {
			threads, err = strconv.Atoi(fields[1])
			if err != nil {
				sc.showError(err)
				break
			}
		}
		err = automatic.StartAutoplayGames(context.Background(), sc.cfg,
			numGames, threads, "autoplay.csv")
		if err != nil {
			sc.showError(err)
		}

	case line == "left", line == "right":
		if sc.requireGame() {
			dir := 1
			if line == "left" {
				dir = -1
			}
			sc.game.MoveSideways(dir)
			sc.showMessage(sc.game.ToDisplayText())
		}

	case line == "down":
		if sc.requireGame() {
			if locked, _, _ := sc.game.MoveDown(); locked {
				// a new piece spawned; the executor must not keep
				// steering toward the locked piece's placement
				sc.executor.Spawn()
			}
			sc.showMessage(sc.game.ToDisplayText())
		}

	case line == "drop":
		if sc.requireGame() {
			sc.game.Drop()
			sc.executor.Spawn()
			sc.showMessage(sc.game.ToDisplayText())
		}

	case line == "rotate":
		if sc.requireGame() {
			if !sc.game.RotateKick() {
				sc.showMessage("rotation blocked")
			}
			sc.showMessage(sc.game.ToDisplayText())
		}

	case strings.HasPrefix(line, "seed "):
		seed, err := strconv.ParseUint(strings.TrimSpace(line[5:]), 10, 64)
		if err != nil {
			sc.showError(err)
			break
		}
		sc.cfg.RandSeed = seed
		sc.showMessage("seed set; takes effect on the next new game")

	case line == "score":
		if sc.requireGame() {
			sc.showMessage(strconv.Itoa(sc.game.Score()))
		}

	case line == "help":
		usage(sc.l.Stderr())

	case line == "exit":
		sig <- syscall.SIGINT

	case line == "":
		// enter on an empty line ticks once, which makes watching the
		// bot pleasant
		if sc.game != nil && sc.game.Playing() {
			sc.botTicks(1)
			sc.showMessage(sc.game.ToDisplayText())
		}

	default:
		showMessage("command not recognized: "+line, sc.l.Stderr())
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if err := sc.handle(line, sig); err != nil {
			log.Error().Err(err).Msg("")
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
