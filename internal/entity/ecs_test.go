package entity

import (
	"testing"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDsAreUniqueAcrossKinds(t *testing.T) {
	w := NewWorld()
	seen := map[types.EntityID]bool{}
	add := func(id types.EntityID) {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	add(w.AddUnit(types.Player, 100, 400, defs.UnitLibrary[defs.Knight]).ID)
	add(w.AddTower(types.Enemy, 400, 80, defs.TowerLibrary[defs.King]).ID)
	add(w.AddTesla(types.Player, 300, 400).ID)
	add(w.AddProjectile(types.Player, component.Position{}, component.Position{X: 1}, defs.ArcherArrow(10)).ID)
	add(w.AddSpell(types.Enemy, component.Position{}, defs.SpellLibrary[defs.Rage]).ID)

	w.Reset()
	add(w.AddUnit(types.Player, 100, 400, defs.UnitLibrary[defs.Knight]).ID)
}

func TestHostilesSkipCarriedAndDead(t *testing.T) {
	w := NewWorld()
	alive := w.AddUnit(types.Enemy, 100, 100, defs.UnitLibrary[defs.Knight])
	carried := w.AddUnit(types.Enemy, 120, 100, defs.UnitLibrary[defs.MiniPekka])
	carried.IsBeingCarried = true
	dead := w.AddUnit(types.Enemy, 140, 100, defs.UnitLibrary[defs.Knight])
	dead.Health.Value = 0
	king := w.AddTower(types.Enemy, 400, 80, defs.TowerLibrary[defs.King])

	hostiles := w.Hostiles(types.Player)
	require.Len(t, hostiles, 2)
	assert.Equal(t, king.ID, hostiles[0].EntityID())
	assert.Equal(t, alive.ID, hostiles[1].EntityID())
}

func TestPruneKeepsTowersAndCarried(t *testing.T) {
	w := NewWorld()
	tower := w.AddTower(types.Player, 400, 520, defs.TowerLibrary[defs.King])
	tower.Health.Value = 0
	dead := w.AddUnit(types.Player, 100, 400, defs.UnitLibrary[defs.Knight])
	dead.Health.Value = 0
	carried := w.AddUnit(types.Player, 100, 400, defs.UnitLibrary[defs.MiniPekka])
	carried.IsBeingCarried = true
	tesla := w.AddTesla(types.Enemy, 300, 200)
	tesla.Lifetime = 0

	w.Prune()

	assert.Len(t, w.Towers[types.Player], 1)
	require.Len(t, w.Units[types.Player], 1)
	assert.Equal(t, carried.ID, w.Units[types.Player][0].ID)
	assert.Empty(t, w.Teslas[types.Enemy])
}

func TestCountAlive(t *testing.T) {
	w := NewWorld()
	w.AddUnit(types.Player, 100, 400, defs.UnitLibrary[defs.Surge])
	d := w.AddUnit(types.Player, 100, 400, defs.UnitLibrary[defs.Surge])
	d.Health.Value = 0
	w.AddUnit(types.Enemy, 100, 100, defs.UnitLibrary[defs.Surge])

	assert.Equal(t, 1, w.CountAlive(types.Player, defs.Surge))
	assert.Equal(t, 0, w.CountAlive(types.Player, defs.Lily))
}
