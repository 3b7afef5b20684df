package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/corridor/core"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(120, 120, 140) // Slate
	RgbFloorDot   = tcell.NewRGBColor(50, 52, 70)    // Barely visible grid

	RgbDoorClosed = tcell.NewRGBColor(200, 120, 40) // Rust
	RgbDoorMoving = tcell.NewRGBColor(230, 180, 90) // Pale amber

	RgbPlayer     = tcell.NewRGBColor(255, 255, 255) // White
	RgbPamphlet   = tcell.NewRGBColor(140, 190, 255) // Bright blue
	RgbBolt       = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbFlash      = tcell.NewRGBColor(255, 255, 200) // Yellow-white muzzle flash
	RgbConverted  = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbAggressive = tcell.NewRGBColor(255, 120, 120) // Bright red

	RgbHUDText   = tcell.NewRGBColor(0, 0, 0)       // Dark text on bars
	RgbHUDBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHealth    = tcell.NewRGBColor(255, 80, 80)
	RgbChargeOn  = tcell.NewRGBColor(0, 200, 200) // Vibrant cyan
	RgbChargeOff = tcell.NewRGBColor(60, 60, 60)
	RgbGameOver  = tcell.NewRGBColor(200, 50, 50)
	RgbNoClip    = tcell.NewRGBColor(255, 192, 203) // Pink
)

// kindColors are the patrol colors per hostile kind
var kindColors = map[core.Kind]tcell.Color{
	core.KindSmallDroid: tcell.NewRGBColor(180, 180, 180),
	core.KindMidDroid:   tcell.NewRGBColor(200, 200, 120),
	core.KindHeavyDroid: tcell.NewRGBColor(160, 110, 200),
	core.KindTrooper:    tcell.NewRGBColor(230, 230, 230),
	core.KindCreature:   tcell.NewRGBColor(120, 200, 140),
}

// kindGlyphs are the map glyphs per hostile kind
var kindGlyphs = map[core.Kind]rune{
	core.KindSmallDroid: 'd',
	core.KindMidDroid:   'D',
	core.KindHeavyDroid: 'H',
	core.KindTrooper:    'T',
	core.KindCreature:   'C',
}

// Scale blends c toward the background by opacity in [0, 1]
func Scale(c tcell.Color, opacity float64) tcell.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	mix := func(fg, bgc int32) int32 {
		return bgc + int32(float64(fg-bgc)*opacity)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
