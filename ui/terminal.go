package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/remotesweep/controller"
	"github.com/they4kman/remotesweep/game"
	"github.com/they4kman/remotesweep/util/collections"
)

const newGameLabel = "[New Game]"

// Director picks the next action for computer-driven play.
type Director interface {
	Next(session game.Session) (game.Action, bool)
}

type Options struct {
	Glyphs     game.GlyphSet
	Difficulty game.Difficulty

	// Director, when set, can be toggled with "d" to play automatically
	Director         Director
	DirectorInterval time.Duration
	// Autoplay starts with the director enabled
	Autoplay bool
}

var (
	styleDefault  = tcell.StyleDefault
	styleHidden   = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
	styleRevealed = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleButton   = tcell.StyleDefault.Reverse(true)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCoords   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
)

var countColors = map[int]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorBlack,
	8: tcell.ColorGray,
}

// resultEvent carries a finished dispatch back into the event loop.
type resultEvent struct {
	tcell.EventTime
	result controller.Result
}

type tickEvent struct {
	tcell.EventTime
}

// refreshEvent marks a store replacement; the loop redraws after any event.
type refreshEvent struct {
	tcell.EventTime
}

// Terminal renders the session with tcell and turns mouse and key input
// into controller actions. Only the event loop goroutine touches its state.
type Terminal struct {
	screen  tcell.Screen
	store   *game.Store
	ctrl    *controller.Controller
	log     logrus.FieldLogger
	options Options

	activity   *Activity
	cursor     game.Coord
	hovered    *game.Coord
	highlights collections.Set[game.Coord]
	buttons    tcell.ButtonMask
	difficulty game.Difficulty
	autoplay   bool

	newGameX, newGameY int
}

func NewTerminal(screen tcell.Screen, store *game.Store, ctrl *controller.Controller, log logrus.FieldLogger, options Options) *Terminal {
	if options.DirectorInterval <= 0 {
		options.DirectorInterval = 500 * time.Millisecond
	}
	return &Terminal{
		screen:     screen,
		store:      store,
		ctrl:       ctrl,
		log:        log,
		options:    options,
		activity:   NewActivity(defaultActivityLines),
		highlights: collections.NewSet[game.Coord](),
		difficulty: options.Difficulty,
		autoplay:   options.Autoplay && options.Director != nil,
	}
}

// Run owns the screen until the user quits or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer t.screen.Fini()
	t.screen.EnableMouse()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
	if t.options.Director != nil {
		go t.tick(ctx)
	}

	updates, unsubscribe := t.store.Subscribe()
	defer unsubscribe()
	go func() {
		for range updates {
			ev := &refreshEvent{}
			ev.SetEventNow()
			t.screen.PostEvent(ev)
		}
	}()

	t.draw()
	for {
		ev := t.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		if !t.handle(ctx, ev) {
			return nil
		}
		t.draw()
	}
}

func (t *Terminal) tick(ctx context.Context) {
	ticker := time.NewTicker(t.options.DirectorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ev := &tickEvent{}
			ev.SetEventNow()
			t.screen.PostEvent(ev)
		}
	}
}

// handle processes one event; false means quit.
func (t *Terminal) handle(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		return t.handleKey(ctx, ev)
	case *tcell.EventMouse:
		t.handleMouse(ctx, ev)
	case *resultEvent:
		t.handleResult(ev.result)
	case *tickEvent:
		t.handleTick(ctx)
	}
	return true
}

func (t *Terminal) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	size := t.store.Snapshot().Board.Size()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		t.cursor.Row = clamp(t.cursor.Row-1, size)
	case tcell.KeyDown:
		t.cursor.Row = clamp(t.cursor.Row+1, size)
	case tcell.KeyLeft:
		t.cursor.Col = clamp(t.cursor.Col-1, size)
	case tcell.KeyRight:
		t.cursor.Col = clamp(t.cursor.Col+1, size)
	case tcell.KeyEnter:
		// Enter starts over once the game is decided
		if t.store.Snapshot().Phase.IsOver() {
			t.dispatch(ctx, game.StartGame(t.difficulty))
		} else {
			t.dispatch(ctx, game.Reveal(t.cursor.Row, t.cursor.Col))
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			t.dispatch(ctx, game.Reveal(t.cursor.Row, t.cursor.Col))
		case 'f':
			t.dispatch(ctx, game.ToggleFlag(t.cursor.Row, t.cursor.Col))
		case 'n':
			t.dispatch(ctx, game.StartGame(t.difficulty))
		case '1', '2', '3':
			t.difficulty = game.Difficulty(ev.Rune() - '1')
			t.dispatch(ctx, game.StartGame(t.difficulty))
		case 'd':
			if t.options.Director != nil {
				t.autoplay = !t.autoplay
				t.activity.Addf("director %s", onOff(t.autoplay))
			}
		case '.':
			if t.options.Director != nil && !t.autoplay {
				t.handleTickOnce(ctx)
			}
		}
	}
	return true
}

func (t *Terminal) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ t.buttons
	t.buttons = buttons

	layout := Layout{BoardSize: t.store.Snapshot().Board.Size()}
	coord, onBoard := layout.ScreenToCell(x, y)
	if onBoard {
		t.hovered = &coord
	} else {
		t.hovered = nil
	}

	if pressed&tcell.ButtonPrimary != 0 && t.onNewGameButton(x, y) {
		t.dispatch(ctx, game.StartGame(t.difficulty))
		return
	}
	if !onBoard {
		return
	}

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		t.cursor = coord
		t.dispatch(ctx, game.Reveal(coord.Row, coord.Col))
	case pressed&tcell.ButtonSecondary != 0:
		t.cursor = coord
		t.dispatch(ctx, game.ToggleFlag(coord.Row, coord.Col))
	}
}

func (t *Terminal) onNewGameButton(x, y int) bool {
	return y == t.newGameY && x >= t.newGameX && x < t.newGameX+len(newGameLabel)
}

func (t *Terminal) handleTick(ctx context.Context) {
	if t.autoplay {
		t.handleTickOnce(ctx)
	}
}

func (t *Terminal) handleTickOnce(ctx context.Context) {
	if t.ctrl.Pending() {
		return
	}
	action, ok := t.options.Director.Next(t.store.Snapshot())
	if !ok {
		return
	}
	t.dispatch(ctx, action)
}

// dispatch runs the action off the event loop and posts its result back.
// Gate rejections come back as results too and are dropped silently.
func (t *Terminal) dispatch(ctx context.Context, action game.Action) {
	go func() {
		ev := &resultEvent{result: t.ctrl.Dispatch(ctx, action)}
		ev.SetEventNow()
		if err := t.screen.PostEvent(ev); err != nil {
			t.log.WithError(err).Debug("Dropped result event")
		}
	}()
}

func (t *Terminal) handleResult(result controller.Result) {
	action := result.Action
	describe := func() string {
		if action.Kind == game.ActionStart {
			return fmt.Sprintf("new %s game", action.Difficulty)
		}
		return fmt.Sprintf("%s %v", action.Kind, game.Coord{Row: action.Row, Col: action.Col})
	}

	switch result.Outcome {
	case controller.Applied:
		t.highlights = result.Changed
		session := t.store.Snapshot()
		if session.Difficulty.IsSet() {
			t.difficulty = session.Difficulty
		}
		size := session.Board.Size()
		t.cursor = game.Coord{Row: clamp(t.cursor.Row, size), Col: clamp(t.cursor.Col, size)}
		t.activity.Addf("%s: %s", describe(), game.Status(session.Phase))
	case controller.Failed:
		t.activity.Addf("%s failed: %v", describe(), result.Err)
	case controller.Busy:
		t.activity.Addf("%s ignored: waiting for the service", describe())
	}
}

func (t *Terminal) draw() {
	session := t.store.Snapshot()
	layout := Layout{BoardSize: session.Board.Size()}

	t.screen.Clear()

	statusStyle := styleDefault.Bold(true)
	switch session.Phase {
	case game.PhaseWon:
		statusStyle = statusStyle.Foreground(tcell.ColorGreen)
	case game.PhaseLost:
		statusStyle = statusStyle.Foreground(tcell.ColorRed)
	}
	drawText(t.screen, marginLeft, 0, statusStyle, game.Status(session.Phase))

	x := drawText(t.screen, marginLeft, 1, styleDefault, game.MinesLabel(session))
	if t.ctrl.Pending() {
		x = drawText(t.screen, x+1, 1, styleHelp, "…")
	}
	t.newGameX, t.newGameY = max(x+2, layout.Width()-len(newGameLabel)), 1
	drawText(t.screen, t.newGameX, t.newGameY, styleButton, newGameLabel)

	if t.hovered != nil {
		drawText(t.screen, t.newGameX+len(newGameLabel)+2, 1, styleCoords, t.hovered.String())
	}

	for row, cells := range session.Board {
		for col, cell := range cells {
			coord := game.Coord{Row: row, Col: col}
			t.drawCell(layout, coord, cell)
		}
	}

	y := layout.FooterTop()
	help := "click/space reveal · right-click/f flag · n new · 1-3 difficulty · q quit"
	if t.options.Director != nil {
		help += " · d director"
	}
	drawText(t.screen, marginLeft, y, styleHelp, help)
	for i, line := range t.activity.Lines() {
		drawText(t.screen, marginLeft, y+2+i, styleDefault, line)
	}

	t.screen.Show()
}

func (t *Terminal) drawCell(layout Layout, coord game.Coord, cell game.Cell) {
	style := styleRevealed
	if cell.IsHidden() {
		style = styleHidden
	}
	if n, ok := cell.Count(); ok {
		style = style.Foreground(countColors[n]).Bold(true)
	}
	if t.highlights.Contains(coord) {
		style = style.Background(tcell.ColorYellow)
	}
	if coord == t.cursor {
		style = style.Reverse(true)
	}

	x, y := layout.CellOrigin(coord)
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(x+i, y, ' ', nil, style)
	}
	drawText(t.screen, x+1, y, style, game.Glyph(t.options.Glyphs, cell))
}

// drawText writes text starting at x and returns the column after it.
// Zero-width runes such as emoji variation selectors are skipped.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		width := runewidth.RuneWidth(r)
		if width == 0 {
			continue
		}
		screen.SetContent(x, y, r, nil, style)
		x += width
	}
	return x
}

func clamp(n, size int) int {
	if n < 0 {
		return 0
	}
	if n >= size {
		return size - 1
	}
	return n
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
