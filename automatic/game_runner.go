package automatic

// Data collection for automatic games: solver-vs-board self-play, many
// games across a worker pool, one CSV stats line per game.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/csasdwwewadwa/Blockblast/config"
	"github.com/csasdwwewadwa/Blockblast/game"
	"github.com/csasdwwewadwa/Blockblast/move"
	"github.com/csasdwwewadwa/Blockblast/piece"
	"github.com/csasdwwewadwa/Blockblast/solver"
)

// firstPossibleMove picks the first legal move in held-list order then
// row-major position order, like the original demo loop did.
func firstPossibleMove(sess *game.Session) (move.Move, bool) {
	pm := sess.PossibleMoves()
	for _, id := range sess.HeldIDs() {
		name := piece.Get(id).Name()
		if ps, ok := pm[name]; ok && len(ps) > 0 {
			return move.Move{Piece: id, Pos: ps[0]}, true
		}
	}
	return move.Move{}, false
}

func pieceName(m move.Move) string { return piece.Get(m.Piece).Name() }

var (
	GamesPlayed *expvar.Int
	IsPlaying   *expvar.Int
)

func init() {
	GamesPlayed = expvar.NewInt("gamesPlayed")
	IsPlaying = expvar.NewInt("isPlaying")
}

// MaxGameMoves caps a single self-play game. With guaranteed dealing a
// game can in principle run forever, so the runner has to cut it off.
const MaxGameMoves = 10000

// GameStats summarizes one finished self-play game.
type GameStats struct {
	Seed     int64
	Moves    int
	Score    int
	MaxCombo int
	GameOver bool
}

// GameRunner plays full games using the solver's move choices, falling
// back to the first possible move when no full-set sequence exists.
type GameRunner struct {
	cfg     *config.Config
	logchan chan string
}

func NewGameRunner(cfg *config.Config) *GameRunner {
	return &GameRunner{cfg: cfg}
}

// PlayFullGame runs one seeded game to game over (or the move cap) and
// returns its stats.
func (r *GameRunner) PlayFullGame(seed int64) (*GameStats, error) {
	sess, err := game.NewSessionWithSeed(
		r.cfg.BoardWidth, r.cfg.BoardHeight, r.cfg.GuaranteedDeals, seed)
	if err != nil {
		return nil, err
	}
	sv := solver.New(sess)

	stats := &GameStats{Seed: seed}
	for !sess.GameOver() && stats.Moves < MaxGameMoves {
		m, err := sv.NextMove()
		if err != nil {
			if !errors.Is(err, solver.ErrNoSolution) {
				return nil, err
			}
			// The held set has no full sequence but the game may still
			// be playable piece by piece; take the first possible move.
			var ok bool
			m, ok = firstPossibleMove(sess)
			if !ok {
				break
			}
		}
		res, err := sess.MakeMove(pieceName(m), m.Pos)
		if err != nil {
			return nil, err
		}
		stats.Moves++
		stats.Score = res.Score
		if c := sess.Combo(); c > stats.MaxCombo {
			stats.MaxCombo = c
		}
	}
	stats.GameOver = sess.GameOver()
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%d,%d,%d,%d,%v\n",
			stats.Seed, stats.Moves, stats.Score, stats.MaxCombo, stats.GameOver)
	}
	return stats, nil
}

// StartSelfPlayGames plays numGames games over the given number of worker
// threads and writes one CSV line per game to outputFilename. It blocks
// until every game finishes or ctx is canceled.
func StartSelfPlayGames(ctx context.Context, cfg *config.Config, numGames int,
	threads int, outputFilename string) error {

	if IsPlaying.Value() > 0 {
		return errors.New("games are already being played, please wait till complete")
	}

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return err
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	GamesPlayed.Set(0)
	jobs := make(chan int64, 100)
	logChan := make(chan string, 100)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			r := &GameRunner{cfg: cfg, logchan: logChan}
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for seed := range jobs {
				if _, err := r.PlayFullGame(seed); err != nil {
					return err
				}
				GamesPlayed.Add(1)
			}
			return nil
		})
	}

	go func() {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			seed := int64(frand.Uint64n(1 << 62))
			// gctx also cancels when a worker fails, so the feeder
			// never stays parked on a send nobody will receive.
			select {
			case jobs <- seed:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return
			}
		}
	}()

	loggerDone := make(chan struct{})
	go func() {
		logfile.WriteString("seed,moves,score,maxcombo,gameover\n")
		for msg := range logChan {
			logfile.WriteString(msg)
		}
		logfile.Close()
		close(loggerDone)
	}()

	err = g.Wait()
	close(logChan)
	<-loggerDone
	log.Info().Int("games", numGames).Msg("All games finished.")
	return err
}
