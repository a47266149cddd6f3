// Package assets holds the game's static content: textures, sound recipes,
// actor definitions, quiz questions and the authored levels.
package assets

import (
	"clue-hunter/internal/gamemap"
	"clue-hunter/internal/media"

	"github.com/gdamore/tcell/v2"
)

// Texture IDs that are not derived from an actor name.
const (
	TexClue     = "clue"
	TexMagazine = "magazine"
	TexPotion   = "potion"
	TexBullet   = "bullet"
)

// Font IDs.
const (
	FontHUD      = "hud"
	FontTitle    = "title"
	FontQuestion = "question"
	FontAnswer   = "answer"
	FontGood     = "good"
	FontBad      = "bad"
)

// TileTextures maps tile IDs to texture IDs.
var TileTextures = map[int]string{
	gamemap.TileFloor: "tile_floor",
	gamemap.TileWall:  "tile_wall",
	gamemap.TileGrass: "tile_grass",
	gamemap.TileWater: "tile_water",
	gamemap.TileDoor:  "tile_door",
}

func style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorDefault)
}

var textures = map[string]media.Texture{
	"tile_floor": {Frames: []string{"· "}, Style: style(tcell.ColorDimGray)},
	"tile_wall":  {Frames: []string{"🧱"}, Style: style(tcell.ColorSaddleBrown)},
	"tile_grass": {Frames: []string{"🌱"}, Style: style(tcell.ColorGreen)},
	"tile_water": {Frames: []string{"🌊", "〰"}, Style: style(tcell.ColorBlue)},
	"tile_door":  {Frames: []string{"🚪"}, Style: style(tcell.ColorTan)},

	TexClue:     {Frames: []string{"🔍", "🔎"}, Style: style(tcell.ColorYellow)},
	TexMagazine: {Frames: []string{"📦"}, Style: style(tcell.ColorOrange)},
	TexPotion:   {Frames: []string{"🧪"}, Style: style(tcell.ColorFuchsia)},
	TexBullet:   {Frames: []string{"•"}, Style: style(tcell.ColorWhite)},
}

var fonts = map[string]media.Font{
	FontHUD:      {Style: style(tcell.ColorSilver)},
	FontTitle:    {Style: style(tcell.ColorYellow).Bold(true)},
	FontQuestion: {Style: style(tcell.ColorWhite).Bold(true)},
	FontAnswer:   {Style: style(tcell.ColorAqua)},
	FontGood:     {Style: style(tcell.ColorLime).Bold(true)},
	FontBad:      {Style: style(tcell.ColorRed).Bold(true)},
}

// Load registers every texture, font and sound with lib.
func Load(lib *media.Library) error {
	for id, t := range textures {
		lib.AddTexture(id, t)
	}
	for _, a := range actorTextures() {
		lib.AddTexture(a.id, a.tex)
	}
	for id, f := range fonts {
		lib.AddFont(id, f)
	}
	for id, notes := range sounds {
		if err := lib.AddRecipe(id, notes); err != nil {
			return err
		}
	}
	return nil
}
