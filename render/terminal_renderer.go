package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/corridor/arena"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine"
)

const (
	// cellsPerUnitX stretches the corridor horizontally, terminal cells are roughly twice as tall as wide
	cellsPerUnitX = 3
	hudRows       = 2
)

// facingGlyphs indexed by yaw octant, yaw 0 faces +Z which is drawn downward
var facingGlyphs = [8]rune{'v', '\\', '>', '/', '^', '\\', '<', '/'}

// TerminalRenderer draws a top-down view of the corridor around the player and a HUD
// The map is centered on the player's Z, negative Z (ahead at yaw 0) at the top
type TerminalRenderer struct {
	screen tcell.Screen
	layout arena.Layout
	width  int
	height int
}

// NewTerminalRenderer creates a renderer for an initialized screen
func NewTerminalRenderer(screen tcell.Screen, layout arena.Layout) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		layout: layout,
	}
	r.Resize()
	return r
}

// Resize refreshes the cached screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame renders the entire frame from a snapshot
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawCorridor(snap, defaultStyle)
	r.drawProjectiles(snap, defaultStyle)
	r.drawActors(snap, defaultStyle)
	r.drawPlayer(snap, defaultStyle)
	r.drawHUD(snap, defaultStyle)

	r.screen.Show()
}

// mapRows is the height available to the map
func (r *TerminalRenderer) mapRows() int {
	return max(r.height-hudRows, 1)
}

// cellAt projects a world point to a screen cell
func (r *TerminalRenderer) cellAt(snap engine.Snapshot, x, z float64) (int, int) {
	col := r.width/2 + int(math.Round(x*cellsPerUnitX))
	row := r.mapRows()/2 + int(math.Round(z-snap.Player.Z))
	return col, row
}

// worldZ returns the world Z at the center of a screen row
func (r *TerminalRenderer) worldZ(snap engine.Snapshot, row int) float64 {
	return snap.Player.Z + float64(row-r.mapRows()/2)
}

func (r *TerminalRenderer) put(col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= r.width || row < 0 || row >= r.mapRows() {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *TerminalRenderer) drawCorridor(snap engine.Snapshot, defaultStyle tcell.Style) {
	wallStyle := defaultStyle.Foreground(RgbWall)
	floorStyle := defaultStyle.Foreground(RgbFloorDot)
	half := r.layout.HalfWidth

	leftCol, _ := r.cellAt(snap, -half, 0)
	rightCol, _ := r.cellAt(snap, half, 0)
	lastZ := r.layout.RoomStart(r.layout.Rooms)

	for row := 0; row < r.mapRows(); row++ {
		z := r.worldZ(snap, row)
		if z < 0 || z > lastZ {
			continue
		}
		if int(math.Floor(z))%2 == 0 {
			for col := leftCol + 1; col < rightCol; col++ {
				if col%cellsPerUnitX == 0 {
					r.put(col, row, '·', floorStyle)
				}
			}
		}
		r.put(leftCol, row, '│', wallStyle)
		r.put(rightCol, row, '│', wallStyle)
	}

	// Room boundaries, the outer end walls included
	for b := 0; b <= r.layout.Rooms; b++ {
		_, row := r.cellAt(snap, 0, r.layout.BoundaryZ(b))
		for col := leftCol; col <= rightCol; col++ {
			r.put(col, row, '─', wallStyle)
		}
	}

	for _, d := range snap.Doors {
		r.drawDoor(snap, d, defaultStyle)
	}
}

// drawDoor fills the gap in a boundary row according to the door state
func (r *TerminalRenderer) drawDoor(snap engine.Snapshot, d engine.DoorView, defaultStyle tcell.Style) {
	var ch rune
	var style tcell.Style
	switch d.State {
	case core.DoorClosed:
		ch, style = '█', defaultStyle.Foreground(RgbDoorClosed)
	case core.DoorOpening, core.DoorClosing:
		ch, style = '▒', defaultStyle.Foreground(RgbDoorMoving)
	default:
		ch, style = ' ', defaultStyle
	}

	fromCol, row := r.cellAt(snap, d.X-r.layout.GapHalfWidth, d.Z)
	toCol, _ := r.cellAt(snap, d.X+r.layout.GapHalfWidth, d.Z)
	for col := fromCol; col <= toCol; col++ {
		r.put(col, row, ch, style)
	}
}

func (r *TerminalRenderer) drawActors(snap engine.Snapshot, defaultStyle tcell.Style) {
	for _, a := range snap.Actors {
		col, row := r.cellAt(snap, a.X, a.Z)

		ch := kindGlyphs[a.Kind]
		color := kindColors[a.Kind]
		switch {
		case a.State == core.StateDying:
			ch = '%'
		case a.Converted:
			color = RgbConverted
		case a.State == core.StateAggressive || a.State == core.StateAttacking:
			color = RgbAggressive
		}
		r.put(col, row, ch, defaultStyle.Foreground(Scale(color, a.Opacity)))

		if a.Flash {
			fc, fr := r.cellAt(snap, a.X+math.Sin(a.Facing)*0.5, a.Z+math.Cos(a.Facing)*0.5)
			r.put(fc, fr, '*', defaultStyle.Foreground(RgbFlash))
		}
	}
}

func (r *TerminalRenderer) drawProjectiles(snap engine.Snapshot, defaultStyle tcell.Style) {
	for _, p := range snap.Projectiles {
		col, row := r.cellAt(snap, p.X, p.Z)
		switch p.Kind {
		case core.ProjectilePamphlet:
			r.put(col, row, '▪', defaultStyle.Foreground(RgbPamphlet))
		case core.ProjectileBolt:
			r.put(col, row, '•', defaultStyle.Foreground(RgbBolt))
		}
	}
}

func (r *TerminalRenderer) drawPlayer(snap engine.Snapshot, defaultStyle tcell.Style) {
	col, row := r.cellAt(snap, snap.Player.X, snap.Player.Z)
	style := defaultStyle.Foreground(RgbPlayer).Bold(true)
	r.put(col, row, '@', style)

	// The view direction is the camera's negated forward
	fc, fr := r.cellAt(snap, snap.Player.X-math.Sin(snap.Yaw), snap.Player.Z-math.Cos(snap.Yaw))
	r.put(fc, fr, facingGlyph(snap.Yaw+math.Pi), defaultStyle.Foreground(RgbPlayer))
}

// facingGlyph picks an arrow for a yaw
func facingGlyph(yaw float64) rune {
	octant := int(math.Round(yaw/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return facingGlyphs[octant]
}

// drawHUD draws health, ammo, zap charge and flags on the bottom rows
func (r *TerminalRenderer) drawHUD(snap engine.Snapshot, defaultStyle tcell.Style) {
	hud := snap.HUD
	row := r.height - hudRows
	if row < 0 {
		return
	}
	barStyle := defaultStyle.Foreground(RgbHUDText).Background(RgbHUDBg)
	col := r.drawText(0, row, fmt.Sprintf(" ROOM %d ", snap.Room+1), barStyle)
	col++

	col = r.drawText(col, row, "HP ", defaultStyle.Foreground(RgbPlayer))
	for i := 0; i < hud.MaxHealth; i++ {
		ch, style := '♥', defaultStyle.Foreground(RgbHealth)
		if i >= hud.Health {
			ch, style = '·', defaultStyle.Foreground(RgbChargeOff)
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
	col = r.drawText(col+1, row, fmt.Sprintf("AMMO %d ", hud.Ammo), defaultStyle.Foreground(RgbPlayer))

	col = r.drawText(col, row, "ZAP ", defaultStyle.Foreground(RgbPlayer))
	const chargeCells = 10
	filled := int(hud.Charge * chargeCells)
	for i := 0; i < chargeCells; i++ {
		style := defaultStyle.Foreground(RgbChargeOff)
		if i < filled {
			style = defaultStyle.Foreground(RgbChargeOn)
		}
		r.screen.SetContent(col, row, '█', nil, style)
		col++
	}
	switch {
	case hud.Jabbing:
		col = r.drawText(col+1, row, "JAB", defaultStyle.Foreground(RgbFlash))
	case hud.Ready:
		col = r.drawText(col+1, row, "READY", defaultStyle.Foreground(RgbChargeOn))
	}
	if hud.NoClip {
		r.drawText(col+1, row, " NOCLIP ", defaultStyle.Foreground(RgbHUDText).Background(RgbNoClip))
	}

	if hud.GameOver {
		r.drawText(0, row+1, " GAME OVER - R to restart, Esc to quit ", defaultStyle.Foreground(RgbPlayer).Background(RgbGameOver))
	} else {
		r.drawText(0, row+1, "WASD move  Q/E turn  F zap  G pamphlet  Space door  P no-clip", defaultStyle.Foreground(RgbWall))
	}
}

// drawText writes s at (col, row) and returns the column after it
func (r *TerminalRenderer) drawText(col, row int, s string, style tcell.Style) int {
	for _, ch := range s {
		if col >= r.width {
			break
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
	return col
}
