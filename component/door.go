package component

import (
	"fmt"
	"time"

	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/parameter"
	"github.com/lixenwraith/corridor/vmath"
)

// DoorComponent is a sliding door sitting in a boundary's wall gap
// Opening and Closing are driven by Phase, elapsed time since the transition began
type DoorComponent struct {
	ID       string
	Boundary int
	Position vmath.Vec2
	State    core.DoorState

	Phase     time.Duration
	Step      int
	AutoClose time.Duration // Remaining while Open
	Height    float64
}

// NewDoor returns a closed door
func NewDoor(id string, boundary int, pos vmath.Vec2) DoorComponent {
	return DoorComponent{
		ID:       id,
		Boundary: boundary,
		Position: pos,
		State:    core.DoorClosed,
		Height:   parameter.DoorClosedHeight,
	}
}

// Passable reports whether the gap lets bodies through
func (d DoorComponent) Passable() bool {
	return d.State == core.DoorOpen
}

// VisualKey identifies the sprite to draw: door/state/step
func (d DoorComponent) VisualKey() string {
	return fmt.Sprintf("door/%s/%d", d.State, d.Step)
}

// Open starts the opening animation, no-op unless Closed
func (d *DoorComponent) Open() bool {
	if d.State != core.DoorClosed {
		return false
	}
	d.State = core.DoorOpening
	d.Phase = 0
	d.Step = 0
	return true
}

// Close starts the closing animation, no-op unless Open
func (d *DoorComponent) Close() bool {
	if d.State != core.DoorOpen {
		return false
	}
	d.State = core.DoorClosing
	d.Phase = 0
	d.Step = 0
	d.AutoClose = 0
	return true
}

// Advance moves the door's timers forward by dt
// Returns the state reached when a transition completes or auto-close begins
func (d *DoorComponent) Advance(dt time.Duration) (core.DoorState, bool) {
	switch d.State {
	case core.DoorOpening:
		d.Phase += dt
		d.Step = animationStep(d.Phase, parameter.DoorOpenDelay)
		d.Height = stepHeight(parameter.DoorClosedHeight, parameter.DoorOpenHeight, d.Step)
		if d.Step >= parameter.DoorAnimationSteps {
			d.State = core.DoorOpen
			d.AutoClose = parameter.DoorOpenDuration
			return d.State, true
		}

	case core.DoorOpen:
		d.AutoClose -= dt
		if d.AutoClose <= 0 {
			d.Close()
			return d.State, true
		}

	case core.DoorClosing:
		d.Phase += dt
		d.Step = animationStep(d.Phase, 0)
		d.Height = stepHeight(parameter.DoorOpenHeight, parameter.DoorClosedHeight, d.Step)
		if d.Step >= parameter.DoorAnimationSteps {
			d.State = core.DoorClosed
			return d.State, true
		}
	}
	return d.State, false
}

// animationStep returns how many interpolation steps have applied after phase
// The first step lands at lead, each following one DoorStepDuration later
func animationStep(phase, lead time.Duration) int {
	if phase < lead {
		return 0
	}
	step := 1 + int((phase-lead)/parameter.DoorStepDuration)
	if step > parameter.DoorAnimationSteps {
		step = parameter.DoorAnimationSteps
	}
	return step
}

func stepHeight(from, to float64, step int) float64 {
	return vmath.Lerp(from, to, float64(step)/parameter.DoorAnimationSteps)
}
