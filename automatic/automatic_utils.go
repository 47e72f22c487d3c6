package automatic

// Data collection for automatic games. Allow many bot-vs-gravity games, etc.

import (
	"context"
	"errors"
	"expvar"
	"os"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/blockfall/tetron/config"
)

var (
	GamesCounter *expvar.Int
	IsPlaying    *expvar.Int
)

func init() {
	GamesCounter = expvar.NewInt("gamesCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

type Job struct{}

// StartAutoplayGames plays numGames full bot games across threads worker
// goroutines and blocks until they finish. Each finished game appends one CSV
// record to outputFilename, and a histogram plus summary of the final scores
// is printed to stdout at the end.
func StartAutoplayGames(ctx context.Context, cfg *config.Config,
	numGames int, threads int, outputFilename string) error {

	if IsPlaying.Value() > 0 {
		return errors.New("games are already being played, please wait till complete")
	}
	if threads < 1 {
		threads = 1
	}
	logfile, err := os.Create(outputFilename)
	if err != nil {
		return err
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	GamesCounter.Set(0)
	jobs := make(chan Job, 100)
	logChan := make(chan string, 100)
	scoreChan := make(chan int, 100)

	g, ctx := errgroup.WithContext(ctx)
	for i := 1; i <= threads; i++ {
		g.Go(func() error {
			r, err := NewGameRunner(logChan, cfg)
			if err != nil {
				return err
			}
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for range jobs {
				res := r.PlayGame(0)
				scoreChan <- res.Score
				GamesCounter.Add(1)
			}
			return nil
		})
	}

	go func() {
	gameLoop:
		for i := 1; i < numGames+1; i++ {
			select {
			case jobs <- Job{}:
				if i%1000 == 0 {
					log.Info().Msgf("Queued %v jobs", i)
				}
			case <-ctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				break gameLoop
			}
		}
		close(jobs)
		log.Debug().Msg("Finished queueing all jobs.")
	}()

	collectorDone := make(chan []int)
	go func() {
		var scores []int
		for s := range scoreChan {
			scores = append(scores, s)
		}
		collectorDone <- scores
	}()

	loggerDone := make(chan struct{})
	go func() {
		logfile.WriteString("score,lines,pieces,ticks\n")
		for msg := range logChan {
			logfile.WriteString(msg)
		}
		logfile.Close()
		close(loggerDone)
	}()

	err = g.Wait()
	close(logChan)
	close(scoreChan)
	<-loggerDone
	scores := <-collectorDone
	if err != nil {
		return err
	}
	printSummary(scores)
	return nil
}

func printSummary(scores []int) {
	if len(scores) == 0 {
		return
	}
	vals := lo.Map(scores, func(s int, _ int) float64 { return float64(s) })
	hist := histogram.Hist(15, vals)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		log.Err(err).Msg("printing-histogram")
	}
	log.Info().
		Int("games", len(scores)).
		Int("max", lo.Max(scores)).
		Int("min", lo.Min(scores)).
		Float64("mean", float64(lo.Sum(scores))/float64(len(scores))).
		Msg("autoplay-summary")
}
