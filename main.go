package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/csasdwwewadwa/Blockblast/automatic"
	"github.com/csasdwwewadwa/Blockblast/config"
	"github.com/csasdwwewadwa/Blockblast/game"
	"github.com/csasdwwewadwa/Blockblast/move"
	"github.com/csasdwwewadwa/Blockblast/piece"
	"github.com/csasdwwewadwa/Blockblast/solver"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new - start a fresh session with the configured board size\n")
	io.WriteString(w, "show - render the board, score, and held pieces\n")
	io.WriteString(w, "moves - list every legal placement for the held pieces\n")
	io.WriteString(w, "move <piece> <x> <y> - place a held piece at (x, y)\n")
	io.WriteString(w, "solve - print a sequence placing all held pieces\n")
	io.WriteString(w, "next - play the solver's next move\n")
	io.WriteString(w, "autoplay - let the solver play until game over\n")
	io.WriteString(w, "selfplay <games> [threads] [csvfile] - run self-play games and log stats\n")
	io.WriteString(w, "exit - quit\n")
}

type shell struct {
	cfg  *config.Config
	sess *game.Session
	sv   *solver.Solver
}

func (sh *shell) newSession() error {
	var (
		sess *game.Session
		err  error
	)
	if sh.cfg.Seed != 0 {
		sess, err = game.NewSessionWithSeed(
			sh.cfg.BoardWidth, sh.cfg.BoardHeight, sh.cfg.GuaranteedDeals, sh.cfg.Seed)
	} else {
		sess, err = game.NewSession(
			sh.cfg.BoardWidth, sh.cfg.BoardHeight, sh.cfg.GuaranteedDeals)
	}
	if err != nil {
		return err
	}
	sh.sess = sess
	sh.sv = solver.New(sess)
	log.Info().Int64("seed", sess.RandSeed()).Msg("new session")
	return nil
}

func (sh *shell) playMove(name string, pos move.Pos) {
	res, err := sh.sess.MakeMove(name, pos)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sh.sv.Reset()
	fmt.Printf("placed %s at %v: +%d lines=%d score=%d\n", name, pos, res.MovePoints, res.LinesCleared, res.Score)
	fmt.Print(sh.sess.DisplayText())
}

func (sh *shell) execute(line string) {
	fields := strings.Fields(line)
	cmd := fields[0]
	switch cmd {
	case "new":
		if err := sh.newSession(); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Print(sh.sess.DisplayText())
	case "show":
		fmt.Print(sh.sess.DisplayText())
	case "moves":
		pm := sh.sess.PossibleMoves()
		for _, name := range sh.sess.HeldPieces() {
			ps, ok := pm[name]
			if !ok {
				fmt.Printf("%-8s (no legal position)\n", name)
				continue
			}
			fmt.Printf("%-8s %d positions, first %v\n", name, len(ps), ps[0])
		}
	case "move":
		if len(fields) != 4 {
			fmt.Println("usage: move <piece> <x> <y>")
			return
		}
		x, errX := strconv.Atoi(fields[2])
		y, errY := strconv.Atoi(fields[3])
		if errX != nil || errY != nil {
			fmt.Println("usage: move <piece> <x> <y>")
			return
		}
		sh.playMove(fields[1], move.Pos{X: x, Y: y})
	case "solve":
		seq, err := sh.sv.Solve()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		for i, m := range seq {
			fmt.Printf("%d. %v\n", i+1, m)
		}
	case "next":
		m, err := sh.sv.NextMove()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		res, err := sh.sess.MakeMove(piece.Get(m.Piece).Name(), m.Pos)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("solver played %v: lines=%d score=%d\n", m, res.LinesCleared, res.Score)
		fmt.Print(sh.sess.DisplayText())
	case "autoplay":
		for !sh.sess.GameOver() {
			m, err := sh.sv.NextMove()
			if err != nil {
				fmt.Println("solver stopped:", err)
				break
			}
			if _, err := sh.sess.MakeMove(piece.Get(m.Piece).Name(), m.Pos); err != nil {
				fmt.Println("error:", err)
				break
			}
		}
		fmt.Print(sh.sess.DisplayText())
	case "selfplay":
		if len(fields) < 2 {
			fmt.Println("usage: selfplay <games> [threads] [csvfile]")
			return
		}
		games, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Println("usage: selfplay <games> [threads] [csvfile]")
			return
		}
		threads := 4
		if len(fields) > 2 {
			threads, _ = strconv.Atoi(fields[2])
		}
		outfile := "/tmp/blockblast-selfplay.csv"
		if len(fields) > 3 {
			outfile = fields[3]
		}
		if err := automatic.StartSelfPlayGames(context.Background(), sh.cfg, games, threads, outfile); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("stats written to", outfile)
	default:
		fmt.Printf("unknown command %v; type help\n", strconv.Quote(line))
	}
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	sh := &shell{cfg: cfg}
	if err := sh.newSession(); err != nil {
		log.Fatal().Err(err).Msg("could not create session")
	}
	fmt.Print(sh.sess.DisplayText())

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[31mblockblast>\033[0m ",
		HistoryFile: "/tmp/blockblast_readline.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "bye" || line == "exit":
			return
		case line == "help":
			usage(l.Stderr())
		case line == "":
		default:
			sh.execute(line)
		}
	}
}
