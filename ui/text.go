package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/they4kman/remotesweep/game"
)

// WriteBoard prints the header and board with row and column indices.
// Hidden cells show as "-" so they can be told apart from empty ones.
func WriteBoard(w io.Writer, session game.Session, glyphs game.GlyphSet) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n", game.Status(session.Phase), game.MinesLabel(session))

	b.WriteString("    ")
	for col := 0; col < session.Board.Size(); col++ {
		fmt.Fprintf(&b, "%-3d", col)
	}
	b.WriteString("\n")

	for row, cells := range session.Board {
		fmt.Fprintf(&b, "%2d: ", row)
		for _, cell := range cells {
			glyph := game.Glyph(glyphs, cell)
			switch {
			case cell.Kind() == game.Blank:
				glyph = "-"
			case cell.Kind() == game.EmptyRevealed:
				glyph = "."
			}
			b.WriteString(runewidth.FillRight(glyph, 3))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
