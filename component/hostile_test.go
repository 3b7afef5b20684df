package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/vmath"
)

func newTestHostile(t *testing.T, kind core.Kind) HostileComponent {
	t.Helper()
	p, ok := ProfileFor(kind)
	require.True(t, ok, "profile for %s", kind)
	return NewHostile(p, "test", vmath.V2(0, 5), 0)
}

func TestProfilesCoverAllKinds(t *testing.T) {
	for _, k := range core.Kinds() {
		p, ok := ProfileFor(k)
		require.True(t, ok, "missing profile for %s", k)
		assert.Equal(t, k, p.Kind)
		assert.Positive(t, p.MaxHealth)
		assert.Positive(t, p.Radius)
		assert.Positive(t, p.IdleFrames)
		assert.Positive(t, p.FadePerTick)
	}

	trooper, _ := ProfileFor(core.KindTrooper)
	assert.True(t, trooper.CanAttack())
	assert.Equal(t, 14, trooper.DeathFrames)

	droid, _ := ProfileFor(core.KindSmallDroid)
	assert.False(t, droid.CanAttack())
	assert.Zero(t, droid.DeathFrames)
}

func TestNewHostileDefaults(t *testing.T) {
	h := newTestHostile(t, core.KindTrooper)

	assert.Equal(t, h.Profile.MaxHealth, h.Health)
	assert.Equal(t, core.StatePatrol, h.State)
	assert.Equal(t, 1.0, h.Opacity)
	assert.False(t, h.Converted)
	assert.False(t, h.Dying())
}

func TestTakeDamageTwoHealth(t *testing.T) {
	h := newTestHostile(t, core.KindSmallDroid)
	require.Equal(t, 2, h.Health)

	assert.True(t, h.TakeDamage(1))
	assert.Equal(t, 1, h.Health)
	assert.Equal(t, core.StateAggressive, h.State)
	assert.False(t, h.Dying())

	assert.True(t, h.TakeDamage(1))
	assert.Equal(t, 0, h.Health)
	assert.Equal(t, core.StateDying, h.State)
	assert.True(t, h.Dying())
}

func TestDyingIgnoresDamageAndConvert(t *testing.T) {
	h := newTestHostile(t, core.KindSmallDroid)
	h.TakeDamage(5)
	require.True(t, h.Dying())
	health := h.Health

	assert.False(t, h.TakeDamage(1))
	assert.False(t, h.Convert())
	assert.Equal(t, health, h.Health)
	assert.False(t, h.Converted)
	assert.Equal(t, core.StateDying, h.State)
}

func TestConvertIdempotent(t *testing.T) {
	once := newTestHostile(t, core.KindMidDroid)
	twice := newTestHostile(t, core.KindMidDroid)

	assert.True(t, once.Convert())
	assert.True(t, twice.Convert())
	assert.False(t, twice.Convert())

	assert.Equal(t, once, twice)
	assert.True(t, once.Converted)
	assert.Equal(t, core.StateAggressive, once.State)
	assert.Equal(t, once.Profile.MaxHealth, once.Health)
}

func TestDamageKeepsAttacking(t *testing.T) {
	h := newTestHostile(t, core.KindTrooper)
	h.State = core.StateAttacking

	h.TakeDamage(1)
	assert.Equal(t, core.StateAttacking, h.State)
	assert.True(t, h.Engaged())
}

func TestVisualKey(t *testing.T) {
	h := newTestHostile(t, core.KindTrooper)
	h.Frame = 3
	assert.Equal(t, "trooper/patrol/3", h.VisualKey())

	h.TakeDamage(10)
	h.DeathFrame = 7
	assert.Equal(t, "trooper/dying/7", h.VisualKey())
}

func TestStatePredicatesOnStoredValue(t *testing.T) {
	// Predicates are read straight off values returned by a store lookup
	lookup := func(h HostileComponent) HostileComponent { return h }

	h := newTestHostile(t, core.KindSmallDroid)
	assert.False(t, lookup(h).Dying())
	assert.False(t, lookup(h).Engaged())
	assert.True(t, lookup(h).DeathAnimationDone(), "no death frames for droids")

	h.TakeDamage(h.Health)
	assert.True(t, lookup(h).Dying())
	assert.Equal(t, "small-droid/dying/0", lookup(h).VisualKey())
}
