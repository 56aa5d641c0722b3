package game

import (
	"fmt"
)

var tileGlyphs = map[Tile]rune{
	Water:          ' ',
	VerticalShip:   '|',
	HorizontalShip: '=',
	HitShip:        'x',
	Miss:           '.',
}

// Snapshots spell water as '~' so rows never carry trailing blanks
var tileSerialized = map[Tile]rune{
	Water:          '~',
	VerticalShip:   '|',
	HorizontalShip: '=',
	HitShip:        'x',
	Miss:           '.',
}

func (tile Tile) IsShip() bool {
	return tile == VerticalShip || tile == HorizontalShip
}

func (tile Tile) IsHit() bool {
	return tile == HitShip
}

func (tile Tile) IsMiss() bool {
	return tile == Miss
}

func (tile Tile) IsWater() bool {
	return tile == Water
}

// IsResolved reports whether a guess has already landed on the tile
func (tile Tile) IsResolved() bool {
	return tile.IsHit() || tile.IsMiss()
}

// Glyph is the character used when the tile is rendered on screen
func (tile Tile) Glyph() rune {
	if glyph, ok := tileGlyphs[tile]; ok {
		return glyph
	}
	return '?'
}

func (tile Tile) String() string {
	switch tile {
	case Water:
		return "Water"
	case VerticalShip:
		return "VerticalShip"
	case HorizontalShip:
		return "HorizontalShip"
	case HitShip:
		return "HitShip"
	case Miss:
		return "Miss"
	default:
		return fmt.Sprintf("Tile(%d)", int(tile))
	}
}

func (tile Tile) serialize() rune {
	return tileSerialized[tile]
}

func deserializeTile(c rune) (Tile, bool) {
	for _, tile := range Tiles {
		if tile.serialize() == c {
			return tile, true
		}
	}
	return Water, false
}
