package game

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// GlyphSet holds the symbols a renderer uses for non-numeric cells.
type GlyphSet struct {
	Name      string
	Flag      string
	Explosion string
	Bomb      string
	// Unknown marks a cell the decoder could not interpret
	Unknown string
}

var (
	EmojiGlyphs = GlyphSet{Name: "emoji", Flag: "⛳️", Explosion: "💥", Bomb: "💣", Unknown: "❓"}
	IconGlyphs  = GlyphSet{Name: "icons", Flag: "⚑", Explosion: "✸", Bomb: "●", Unknown: "?"}
	ASCIIGlyphs = GlyphSet{Name: "ascii", Flag: "F", Explosion: "*", Bomb: "@", Unknown: "?"}
)

var glyphSets = map[string]GlyphSet{
	EmojiGlyphs.Name: EmojiGlyphs,
	IconGlyphs.Name:  IconGlyphs,
	ASCIIGlyphs.Name: ASCIIGlyphs,
}

func GlyphSetByName(name string) (GlyphSet, error) {
	if set, ok := glyphSets[name]; ok {
		return set, nil
	}
	return GlyphSet{}, errors.Errorf("unknown glyph set %q (want one of %v)", name, GlyphSetNames())
}

func GlyphSetNames() []string {
	names := make([]string, 0, len(glyphSets))
	for name := range glyphSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode maps a cell onto exactly one glyph from set.
func Decode(set GlyphSet, cell Cell) (string, error) {
	if n, ok := cell.Count(); ok {
		return strconv.Itoa(n), nil
	}

	switch cell.Kind() {
	case Blank, EmptyRevealed:
		return "", nil
	case Flagged:
		return set.Flag, nil
	case MineTriggered:
		return set.Explosion, nil
	case MineShown:
		return set.Bomb, nil
	default:
		return "", errors.WithMessagef(ErrUnknownCell, "code %q", cell.Code())
	}
}

// Glyph is Decode for renderers: an undecodable cell shows set.Unknown.
func Glyph(set GlyphSet, cell Cell) string {
	glyph, err := Decode(set, cell)
	if err != nil {
		return set.Unknown
	}
	return glyph
}
