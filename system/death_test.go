package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/corridor/component"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/parameter"
)

// Health 2 unit: zap, recharge, zap, then fade out and removal
func TestDeathEndToEndTwoHealth(t *testing.T) {
	w, sys, rec := newBareWorld(t)
	e := spawn(t, w, core.KindSmallDroid, 0, 17)

	require.True(t, sys.Weapon.FireZapper())
	tickN(w, 9)
	h := hostile(t, w, e)
	assert.Equal(t, 1, h.Health)
	assert.True(t, h.Engaged())
	assert.False(t, h.Dying())

	tickN(w, 110)
	require.True(t, w.Session.ZapReady)
	require.True(t, sys.Weapon.FireZapper())
	tickN(w, 9)

	h = hostile(t, w, e)
	assert.Equal(t, 0, h.Health)
	assert.Equal(t, core.StateDying, h.State)
	assert.Equal(t, 1, rec.count(event.EventEntityDied))

	// Zero death frames for droids, fade runs straight away
	tickN(w, 60)
	assert.False(t, w.Components.Hostile.HasEntity(e))
	assert.Equal(t, 1, rec.count(event.EventEntityRemoved))
}

func TestDeathTrooperFramesThenFade(t *testing.T) {
	w, _, rec := newBareWorld(t)
	e := spawn(t, w, core.KindTrooper, 0, 25)
	mutateHostile(t, w, e, func(h *component.HostileComponent) { h.TakeDamage(100) })

	framesDuration := int(parameter.DeathFrameInterval/testTick) * parameter.TrooperDeathFrames
	tickN(w, framesDuration-1)
	h := hostile(t, w, e)
	assert.Equal(t, parameter.TrooperDeathFrames-1, h.DeathFrame)
	assert.Equal(t, 1.0, h.Opacity, "no fade during the death animation")
	assert.Equal(t, "trooper/dying/13", h.VisualKey())

	tickN(w, 1)
	h = hostile(t, w, e)
	assert.True(t, h.DeathAnimationDone())
	assert.Equal(t, 1.0, h.Opacity)

	tickN(w, 1)
	assert.InDelta(t, 1-parameter.TrooperFadePerTick, hostile(t, w, e).Opacity, 1e-9)

	tickN(w, 25)
	assert.False(t, w.Components.Hostile.HasEntity(e))
	require.Equal(t, 1, rec.count(event.EventEntityRemoved))

	for _, ev := range rec.events {
		if ev.Type == event.EventEntityRemoved {
			assert.Equal(t, "entity-removed/trooper", ev.Key())
		}
	}
}

func TestDeathDyingIsFrozen(t *testing.T) {
	w, _, _ := newBareWorld(t)
	e := spawn(t, w, core.KindTrooper, 0, 25)
	mutateHostile(t, w, e, func(h *component.HostileComponent) { h.TakeDamage(100) })
	before := hostile(t, w, e)

	tickN(w, 5)
	after := hostile(t, w, e)
	assert.Equal(t, before.Position, after.Position)
	assert.Equal(t, before.Facing, after.Facing)
	assert.False(t, after.TakeDamage(1))
	assert.False(t, after.Convert())
}
