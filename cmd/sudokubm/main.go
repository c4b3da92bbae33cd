// Command sudokubm drives a Boltzmann machine over a sudoku puzzle.
//
// The default mode is an interactive loop in the spirit of a lab
// notebook: pick a temperature, pick a tick count, watch the grid churn,
// repeat with a cooler temperature until the open cells settle. The
// -anneal mode replaces the human with a geometric cooling schedule and
// parallel restarts, then prints the best grid found.
//
// Usage:
//
//	sudokubm [-config settings.yaml] [-anneal]
//	sudokubm -config settings.yaml -init   # write the defaults and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/elinorbgr/silinapse/anneal"
	"github.com/elinorbgr/silinapse/boltzmann"
	"github.com/elinorbgr/silinapse/sudoku"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML settings file (optional)")
		initConfig = flag.Bool("init", false, "write the default settings to -config and exit")
		annealMode = flag.Bool("anneal", false, "run the cooling schedule instead of the interactive loop")
	)
	flag.Parse()

	if *initConfig {
		if *configPath == "" {
			fail(errors.New("-init needs -config"))
		}
		if err := Default().Save(*configPath); err != nil {
			fail(err)
		}
		fmt.Println("wrote", *configPath)
		return
	}

	cfg, err := LoadOrDefault(*configPath)
	if err != nil {
		fail(err)
	}
	board, err := sudoku.Parse(cfg.Board)
	if err != nil {
		fail(err)
	}

	if *annealMode {
		err = runAnneal(board, cfg)
	} else {
		err = runInteractive(board, cfg)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "sudokubm: %v\n", err)
	os.Exit(1)
}

// runInteractive is the hands-on mode: the machine persists across
// prompt rounds, so successive runs at falling temperatures anneal the
// same state. A tick count of 0 quits.
func runInteractive(board sudoku.Board, cfg *Config) error {
	var opts []boltzmann.Option
	if cfg.Seed != 0 {
		opts = append(opts, boltzmann.WithSeed(cfg.Seed))
	}
	m, fixed, err := sudoku.NewMachine(board, opts...)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".sudokubm_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Print(board)
	fmt.Println("Pick a temperature and a tick count; 0 ticks quits.")

	live := term.IsTerminal(int(os.Stdout.Fd()))
	temperature := cfg.Temperature
	ticks := cfg.Ticks

	for {
		t, err := promptFloat(rl, "temperature", temperature)
		if err != nil {
			return promptErr(err)
		}
		temperature = t

		n, err := promptInt(rl, "ticks (0 quits)", ticks)
		if err != nil {
			return promptErr(err)
		}
		if n == 0 {
			return nil
		}
		ticks = n

		if err := runTicks(m, fixed, temperature, ticks, live); err != nil {
			return err
		}
	}
}

// promptErr treats EOF (ctrl-D) as a clean exit.
func promptErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// promptFloat asks for a number, keeping the fallback on blank or
// unparsable input. ^C also keeps the fallback.
func promptFloat(rl *readline.Instance, label string, fallback float64) (float64, error) {
	rl.SetPrompt(fmt.Sprintf("%s? [%g] ", label, fallback))
	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if perr != nil {
		return fallback, nil
	}
	return v, nil
}

func promptInt(rl *readline.Instance, label string, fallback int) (int, error) {
	rl.SetPrompt(fmt.Sprintf("%s? [%d] ", label, fallback))
	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}
	v, perr := strconv.Atoi(strings.TrimSpace(line))
	if perr != nil {
		return fallback, nil
	}
	return v, nil
}

// gridHeight is the rendered board: 9 cell rows plus 4 borders.
const gridHeight = 13

// runTicks steps one random unit per tick and redraws the decoded grid.
// On a terminal the grid repaints in place with a short delay so the
// churn is visible; piped output gets only the final grid.
func runTicks(m *boltzmann.Machine, fixed []int, temperature float64, ticks int, live bool) error {
	for k := 0; k < ticks; k++ {
		if _, err := m.UpdateOneRandom(temperature, fixed); err != nil {
			return err
		}
		if live {
			state, err := sudoku.Decode(m)
			if err != nil {
				return err
			}
			if k > 0 {
				fmt.Printf("\033[%dA", gridHeight)
			}
			fmt.Print(state)
			time.Sleep(10 * time.Millisecond)
		}
	}

	if !live {
		state, err := sudoku.Decode(m)
		if err != nil {
			return err
		}
		fmt.Print(state)
	}
	energy, err := m.Energy()
	if err != nil {
		return err
	}
	fmt.Printf("energy %g after %d ticks at T=%g\n", energy, ticks, temperature)
	return nil
}

// runAnneal hands the puzzle to the annealing harness and reports every
// restart, best first.
func runAnneal(board sudoku.Board, cfg *Config) error {
	acfg := anneal.Config{
		Schedule: anneal.Schedule{
			Start:         cfg.Anneal.Start,
			Floor:         cfg.Anneal.Floor,
			Decay:         cfg.Anneal.Decay,
			StepsPerLevel: cfg.Anneal.StepsPerLevel,
			Mode:          anneal.RandomMode,
		},
		Restarts: cfg.Anneal.Restarts,
		Workers:  cfg.Anneal.Workers,
		Seed:     cfg.Seed,
	}
	factory := func(seed int64) (*boltzmann.Machine, []int, error) {
		return sudoku.NewMachine(board, boltzmann.WithSeed(seed))
	}

	results, err := anneal.RunAll(factory, acfg)
	if len(results) == 0 {
		if err != nil {
			return err
		}
		return errors.New("no annealing run finished")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "sudokubm: some restarts failed: %v\n", err)
	}

	best := results[0]
	state, err := sudoku.DecodeValues(best.Values)
	if err != nil {
		return err
	}
	fmt.Print(state)
	if state.Solved() {
		fmt.Println("solved")
	} else {
		fmt.Println("not solved; try more restarts or a slower decay")
	}
	fmt.Printf("best: run %s (seed %d) energy %g after %d steps in %s\n",
		best.ID, best.Seed, best.Energy, best.Steps, best.Elapsed.Round(time.Millisecond))
	for _, r := range results[1:] {
		fmt.Printf("      run %s (seed %d) energy %g\n", r.ID, r.Seed, r.Energy)
	}
	return nil
}
