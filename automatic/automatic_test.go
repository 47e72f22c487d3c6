package automatic

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/blockfall/tetron/config"
)

func TestPlayGameProducesResult(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.RandSeed = 31

	logchan := make(chan string, 1)
	r, err := NewGameRunner(logchan, &cfg)
	is.NoErr(err)

	res := r.PlayGame(5)
	is.True(res.Pieces > 0)
	is.True(res.Pieces <= 5)
	is.True(res.Ticks >= res.Pieces)
	is.Equal(res.Score, r.Game().Score())

	rec := <-logchan
	is.Equal(strings.Count(rec, ","), 3)
	is.True(strings.HasSuffix(rec, "\n"))
}

func TestPlayGameReusesRunner(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.RandSeed = 31

	r, err := NewGameRunner(nil, &cfg)
	is.NoErr(err)

	first := r.PlayGame(3)
	second := r.PlayGame(3)
	is.True(first.Pieces > 0)
	is.True(second.Pieces > 0)
	// the second game starts from a fresh board and score
	is.Equal(second.Score, r.Game().Score())
}

func TestStartAutoplayGames(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	// a cramped board so every game dies fast
	cfg.BoardWidth = 4
	cfg.BoardHeight = 4
	cfg.RandSeed = 8

	out := filepath.Join(t.TempDir(), "games.csv")
	err := StartAutoplayGames(context.Background(), &cfg, 3, 2, out)
	is.NoErr(err)
	is.Equal(GamesCounter.Value(), int64(3))

	data, err := os.ReadFile(out)
	is.NoErr(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	is.Equal(len(lines), 4) // header plus one record per game
	is.Equal(lines[0], "score,lines,pieces,ticks")
	for _, rec := range lines[1:] {
		is.Equal(strings.Count(rec, ","), 3)
	}
}
