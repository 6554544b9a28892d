package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/remotesweep/controller"
	"github.com/they4kman/remotesweep/game"
)

const plainHelp = `commands:
  r ROW COL      reveal a cell
  f ROW COL      toggle a flag
  new [LEVEL]    start a game (easy, medium, hard)
  show           print the board
  auto           let the director reveal a cell
  quit           leave
`

// Plain is a line-oriented front end for terminals without mouse support
// and for scripted play.
type Plain struct {
	in      io.Reader
	out     io.Writer
	store   *game.Store
	ctrl    *controller.Controller
	log     logrus.FieldLogger
	options Options
}

func NewPlain(in io.Reader, out io.Writer, store *game.Store, ctrl *controller.Controller, log logrus.FieldLogger, options Options) *Plain {
	return &Plain{
		in:      in,
		out:     out,
		store:   store,
		ctrl:    ctrl,
		log:     log,
		options: options,
	}
}

// Run reads commands until quit, EOF, or ctx is done. Each command is
// dispatched synchronously.
func (p *Plain) Run(ctx context.Context) error {
	if err := WriteBoard(p.out, p.store.Snapshot(), p.options.Glyphs); err != nil {
		return err
	}

	lines, readErr := p.readLines(ctx)
	for {
		fmt.Fprint(p.out, "> ")
		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				return errors.Wrap(<-readErr, "read command")
			}
			line = l
		}

		quit, err := p.exec(ctx, line)
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// readLines feeds input lines to the returned channel so Run can stop on
// ctx while a read is blocked. Once the channel is closed the error channel
// holds the scanner error, nil at EOF.
func (p *Plain) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

func (p *Plain) exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	var action game.Action
	switch fields[0] {
	case "q", "quit", "exit":
		return true, nil
	case "?", "h", "help":
		_, err := io.WriteString(p.out, plainHelp)
		return false, err
	case "show":
		return false, WriteBoard(p.out, p.store.Snapshot(), p.options.Glyphs)
	case "r", "reveal", "f", "flag":
		coord, err := parseCoord(fields[1:])
		if err != nil {
			return false, err
		}
		action = game.Reveal(coord.Row, coord.Col)
		if fields[0] == "f" || fields[0] == "flag" {
			action = game.ToggleFlag(coord.Row, coord.Col)
		}
	case "n", "new":
		difficulty := p.options.Difficulty
		if len(fields) > 1 {
			var err error
			if difficulty, err = game.ParseDifficulty(fields[1]); err != nil {
				return false, err
			}
		}
		action = game.StartGame(difficulty)
	case "a", "auto":
		if p.options.Director == nil {
			return false, errors.New("no director (run with --director)")
		}
		var ok bool
		if action, ok = p.options.Director.Next(p.store.Snapshot()); !ok {
			return false, errors.New("nothing left to reveal")
		}
	default:
		return false, errors.Errorf("unknown command %q (try help)", fields[0])
	}

	result := p.ctrl.Dispatch(ctx, action)
	switch result.Outcome {
	case controller.Applied:
		return false, WriteBoard(p.out, p.store.Snapshot(), p.options.Glyphs)
	case controller.Failed:
		return false, result.Err
	default:
		p.log.WithField("outcome", result.Outcome).Debug("Command had no effect")
		return false, nil
	}
}

func parseCoord(args []string) (game.Coord, error) {
	if len(args) != 2 {
		return game.Coord{}, errors.New("want ROW COL")
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return game.Coord{}, errors.Wrap(err, "row")
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return game.Coord{}, errors.Wrap(err, "col")
	}
	return game.Coord{Row: row, Col: col}, nil
}
