// Package shell implements the interactive REPL for playing and inspecting
// levels. It is a thin consumer of the game facade: every command maps to
// facade queries and mutators.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/woodgrain/sokoban/config"
	"github.com/woodgrain/sokoban/game"
	"github.com/woodgrain/sokoban/movegen"
	"github.com/woodgrain/sokoban/xsbio"
)

var errNoGame = errors.New("no level loaded; use `load <file> [index|title]`")

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curGame    *game.Game
	curTitle   string
	collection []xsbio.LevelInfo
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31msokoban>\033[0m ",
		HistoryFile:     "/tmp/sokoban_readline.tmp",
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
	io.WriteString(sc.l.Stderr(), msg)
	io.WriteString(sc.l.Stderr(), "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if done := sc.execute(line, sig); done {
			break
		}
	}
	log.Debug().Msg("exiting readline loop")
}

// Execute runs a single semicolon-separated command line, for scripting.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	for _, cmd := range strings.Split(line, ";") {
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			continue
		}
		if done := sc.execute(cmd, sig); done {
			return
		}
	}
}

func (sc *ShellController) execute(line string, sig chan os.Signal) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	var err error
	switch cmd {
	case "exit", "quit", "bye":
		sig <- syscall.SIGINT
		return true
	case "help":
		sc.help()
	case "load":
		err = sc.load(args)
	case "list":
		err = sc.list()
	case "select":
		err = sc.selectLevel(args)
	case "show":
		err = sc.show()
	case "move", "m":
		err = sc.move(strings.Join(args, ""))
	case "undo":
		err = sc.undo()
	case "redo":
		err = sc.redo()
	case "reset":
		err = sc.reset()
	case "moves":
		err = sc.legalMoves()
	case "pushes":
		err = sc.pushes()
	case "perft":
		err = sc.perft(args)
	case "states":
		err = sc.uniqueStates(args)
	case "solution":
		err = sc.solution()
	case "hash":
		err = sc.hash()
	default:
		// A bare LURD string plays the moves directly.
		if xsbio.ValidSolutionFormat(line) {
			err = sc.move(line)
		} else {
			err = fmt.Errorf("unknown command %q; try `help`", cmd)
		}
	}
	if err != nil {
		sc.showError(err)
	}
	return false
}

func (sc *ShellController) help() {
	sc.showMessage(`Commands:
  load <file> [index|title]   load a level or collection file
  list                        list levels in the loaded collection
  select <index|title>        switch to another level of the collection
  show                        print the board and counters
  move <lurd> | <lurd>        play moves (u/d/l/r; case ignored on input)
  undo / redo / reset         history operations
  moves                       legal move directions
  pushes                      legal pushes (box tile, direction)
  perft <depth>               count push-tree leaves to depth
  states <depth>              count distinct states within <depth> pushes
  solution                    print the move history as a LURD string
  hash                        print the current zobrist hash
  exit`)
}

func (sc *ShellController) load(args []string) error {
	if len(args) == 0 {
		return errors.New("need a file name")
	}
	levels, err := xsbio.LoadCollection(args[0])
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		return fmt.Errorf("no levels found in %s", args[0])
	}
	sc.collection = levels
	if len(args) > 1 {
		return sc.selectLevel(args[1:])
	}
	sc.setLevel(levels[0])
	return sc.show()
}

func (sc *ShellController) list() error {
	if len(sc.collection) == 0 {
		return errors.New("no collection loaded")
	}
	titles := lo.Map(sc.collection, func(info xsbio.LevelInfo, _ int) string {
		return fmt.Sprintf("  %3d  %s", info.Index, info.Title)
	})
	sc.showMessage(strings.Join(titles, "\n"))
	return nil
}

func (sc *ShellController) selectLevel(args []string) error {
	if len(sc.collection) == 0 {
		return errors.New("no collection loaded")
	}
	if len(args) == 0 {
		return errors.New("need a level index or title")
	}
	key := strings.Join(args, " ")
	if index, err := strconv.Atoi(key); err == nil {
		if index < 0 || index >= len(sc.collection) {
			return fmt.Errorf("index %d out of range (collection has %d levels)", index, len(sc.collection))
		}
		sc.setLevel(sc.collection[index])
		return sc.show()
	}
	for _, info := range sc.collection {
		if strings.EqualFold(info.Title, key) {
			sc.setLevel(info)
			return sc.show()
		}
	}
	return fmt.Errorf("no level %q in collection", key)
}

func (sc *ShellController) setLevel(info xsbio.LevelInfo) {
	sc.curGame = info.Game
	sc.curTitle = info.Title
	log.Info().Str("title", info.Title).Int("index", info.Index).Msg("level selected")
}

func (sc *ShellController) show() error {
	if sc.curGame == nil {
		return errNoGame
	}
	g := sc.curGame
	status := fmt.Sprintf("%s: moves %d, pushes %d, boxes on goals %d/%d",
		sc.curTitle, g.MoveCount(), g.PushCount(), g.BoxesOnGoals(), g.NumBoxes())
	if g.IsSolved() {
		status += "  SOLVED"
	}
	sc.showMessage(xsbio.SaveLevel(g, false))
	sc.showMessage(status)
	return nil
}

func (sc *ShellController) move(lurd string) error {
	if sc.curGame == nil {
		return errNoGame
	}
	for _, d := range xsbio.SolutionDirections(lurd) {
		result := sc.curGame.Move(d)
		if !result.Success() {
			sc.showMessage(fmt.Sprintf("%s: %s", d, result))
			break
		}
		if result == game.Win {
			sc.showMessage("Solved!")
		}
	}
	return sc.show()
}

func (sc *ShellController) undo() error {
	if sc.curGame == nil {
		return errNoGame
	}
	if !sc.curGame.Undo() {
		return errors.New("nothing to undo")
	}
	return sc.show()
}

func (sc *ShellController) redo() error {
	if sc.curGame == nil {
		return errNoGame
	}
	if !sc.curGame.Redo() {
		return errors.New("nothing to redo")
	}
	return sc.show()
}

func (sc *ShellController) reset() error {
	if sc.curGame == nil {
		return errNoGame
	}
	sc.curGame.Reset()
	return sc.show()
}

func (sc *ShellController) legalMoves() error {
	if sc.curGame == nil {
		return errNoGame
	}
	dirs := sc.curGame.LegalMoves()
	parts := make([]string, len(dirs))
	for i, d := range dirs {
		parts[i] = d.String()
	}
	sc.showMessage(strings.Join(parts, " "))
	return nil
}

func (sc *ShellController) pushes() error {
	if sc.curGame == nil {
		return errNoGame
	}
	pushes := sc.curGame.LegalPushes()
	if len(pushes) == 0 {
		sc.showMessage("no legal pushes")
		return nil
	}
	m := sc.curGame.StaticMap()
	for _, p := range pushes {
		pos := m.PositionOf(p.Box)
		sc.showMessage(fmt.Sprintf("  box %d (%d, %d) %s", p.Box, pos.Row, pos.Col, p.Dir))
	}
	return nil
}

func (sc *ShellController) perft(args []string) error {
	if sc.curGame == nil {
		return errNoGame
	}
	depth, err := parseDepth(args, sc.cfg.PerftDepthLimit)
	if err != nil {
		return err
	}
	g := sc.curGame
	start := time.Now()
	nodes := movegen.Perft(g.StaticMap(), g.State().Player(), g.State().BoxBitboard(), depth)
	sc.showMessage(fmt.Sprintf("perft(%d) = %d  (%v)", depth, nodes, time.Since(start)))
	return nil
}

func (sc *ShellController) uniqueStates(args []string) error {
	if sc.curGame == nil {
		return errNoGame
	}
	depth, err := parseDepth(args, sc.cfg.PerftDepthLimit)
	if err != nil {
		return err
	}
	g := sc.curGame
	start := time.Now()
	n := movegen.UniqueStates(g.StaticMap(), g.Hasher(), g.State().Player(), g.State().BoxBitboard(), depth)
	sc.showMessage(fmt.Sprintf("distinct states within %d pushes: %d  (%v)", depth, n, time.Since(start)))
	return nil
}

func parseDepth(args []string, limit int) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("need a depth")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, err
	}
	if depth < 0 || depth > limit {
		return 0, fmt.Errorf("depth must be between 0 and %d", limit)
	}
	return depth, nil
}

func (sc *ShellController) solution() error {
	if sc.curGame == nil {
		return errNoGame
	}
	records := sc.curGame.MoveHistory()
	if len(records) == 0 {
		sc.showMessage("no moves yet")
		return nil
	}
	sc.showMessage(xsbio.SolutionString(records, true))
	return nil
}

func (sc *ShellController) hash() error {
	if sc.curGame == nil {
		return errNoGame
	}
	sc.showMessage(fmt.Sprintf("%#016x", sc.curGame.StateHash()))
	return nil
}
