package automatic

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/csasdwwewadwa/Blockblast/config"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.BoardWidth = 5
	cfg.BoardHeight = 5
	// uniform deals so games actually dead-end and finish quickly
	cfg.GuaranteedDeals = false
	return cfg
}

func TestPlayFullGame(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(testConfig())

	stats, err := r.PlayFullGame(12345)
	is.NoErr(err)
	is.Equal(stats.Seed, int64(12345))
	is.True(stats.Moves > 0)
	is.True(stats.Score > 0)
	is.True(stats.GameOver || stats.Moves == MaxGameMoves)
}

func TestPlayFullGameDeterministic(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(testConfig())

	s1, err := r.PlayFullGame(777)
	is.NoErr(err)
	s2, err := r.PlayFullGame(777)
	is.NoErr(err)
	is.Equal(s1.Score, s2.Score)
	is.Equal(s1.Moves, s2.Moves)
	is.Equal(s1.MaxCombo, s2.MaxCombo)
}

func TestStartSelfPlayGamesWorkerFailureUnblocksFeeder(t *testing.T) {
	is := is.New(t)
	cfg := testConfig()
	cfg.BoardWidth = 65 // session construction fails, so every worker errors out

	before := runtime.NumGoroutine()
	outfile := filepath.Join(t.TempDir(), "failed.csv")
	// far more games than the jobs buffer holds: once the workers die,
	// only cancellation can unpark the feeder goroutine
	err := StartSelfPlayGames(context.Background(), cfg, 1000, 2, outfile)
	is.True(err != nil)

	for i := 0; i < 100 && runtime.NumGoroutine() > before; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	is.True(runtime.NumGoroutine() <= before)
}

func TestStartSelfPlayGames(t *testing.T) {
	is := is.New(t)
	outfile := filepath.Join(t.TempDir(), "selfplay.csv")

	err := StartSelfPlayGames(context.Background(), testConfig(), 4, 2, outfile)
	is.NoErr(err)

	f, err := os.Open(outfile)
	is.NoErr(err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	is.NoErr(scanner.Err())
	is.Equal(len(lines), 5) // header plus one line per game
	is.Equal(lines[0], "seed,moves,score,maxcombo,gameover")
	for _, l := range lines[1:] {
		is.Equal(len(strings.Split(l, ",")), 5)
	}
}
