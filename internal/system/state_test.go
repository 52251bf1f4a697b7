package system

import (
	"testing"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"
	"go-clash-arena/pkg/arena"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTowers(w *entity.World) {
	for _, slot := range arena.PlayerTowers {
		w.AddTower(types.Player, slot.Pos.X, slot.Pos.Y, towerStats(slot))
	}
	for _, slot := range arena.EnemyTowers {
		w.AddTower(types.Enemy, slot.Pos.X, slot.Pos.Y, towerStats(slot))
	}
}

func towerStats(slot arena.TowerSlot) defs.TowerStats {
	if slot.King {
		return defs.TowerLibrary[defs.King]
	}
	return defs.TowerLibrary[defs.Princess]
}

func TestEnemyKingFallMeansPlayerWins(t *testing.T) {
	w, d, rec := newTestWorld()
	state := &component.MatchState{}
	s := NewMatchSystem(w, d, state)
	seedTowers(w)

	assert.Equal(t, types.ResultNone, s.Evaluate())

	w.King(types.Enemy).Health.Value = 0
	assert.Equal(t, types.ResultPlayerWins, s.Evaluate())
	assert.Equal(t, types.ResultPlayerWins, state.Result)

	// Итог не меняется и MatchEnded не повторяется.
	w.King(types.Player).Health.Value = 0
	assert.Equal(t, types.ResultPlayerWins, s.Evaluate())
	assert.Len(t, rec.ofType(event.MatchEnded), 1)
}

func TestPlayerKingFallMeansEnemyWins(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewMatchSystem(w, d, &component.MatchState{})
	seedTowers(w)
	for _, tw := range w.Towers[types.Enemy] {
		if !tw.IsKing() {
			tw.Health.Value = 0
		}
	}
	w.King(types.Player).Health.Value = 0

	assert.Equal(t, types.ResultEnemyWins, s.Evaluate())
}

func TestSimultaneousKingsFavourPlayer(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewMatchSystem(w, d, &component.MatchState{})
	seedTowers(w)
	w.King(types.Player).Health.Value = 0
	w.King(types.Enemy).Health.Value = 0

	assert.Equal(t, types.ResultPlayerWins, s.Evaluate())
}

func TestReapReportsEachDeathOnce(t *testing.T) {
	w, d, rec := newTestWorld()
	score := &component.Score{}
	NewScoreSystem(score, d)
	s := NewMatchSystem(w, d, &component.MatchState{})
	seedTowers(w)

	dead := addUnit(w, types.Enemy, defs.Knight, 100, 100)
	dead.Health.Value = 0
	car := w.AddTesla(types.Player, 300, 400)
	car.Lifetime = 0
	princess := w.Towers[types.Enemy][1]
	princess.Health.Value = 0

	s.Reap()
	w.Prune()
	s.Reap()

	require.Len(t, rec.ofType(event.EntityDied), 3)
	require.Len(t, rec.ofType(event.TowerDestroyed), 1)
	assert.Equal(t, 1, score.Crowns[types.Player])
	assert.Equal(t, 1, score.Kills[types.Player])
	assert.Equal(t, 1, score.Kills[types.Enemy])
}

func TestKingIsWorthThreeCrowns(t *testing.T) {
	w, d, _ := newTestWorld()
	score := &component.Score{}
	NewScoreSystem(score, d)
	s := NewMatchSystem(w, d, &component.MatchState{})
	seedTowers(w)
	w.King(types.Player).Health.Value = 0

	s.Reap()
	assert.Equal(t, 3, score.Crowns[types.Enemy])
}

func TestTowerShootsNearestInRange(t *testing.T) {
	w, d, rec := newTestWorld()
	s := NewTowerSystem(w, d)
	tower := w.AddTower(types.Player, 150, 450, defs.TowerLibrary[defs.Princess])
	near := addUnit(w, types.Enemy, defs.Knight, 150, 350)
	far := addUnit(w, types.Enemy, defs.Knight, 150, 200)

	s.UpdateTeam(types.Player, tick)

	assert.InDelta(t, near.Health.Max-tower.Damage, near.Health.Value, 1e-9)
	assert.Equal(t, far.Health.Max, far.Health.Value)
	assert.Len(t, rec.ofType(event.Attack), 1)

	s.UpdateTeam(types.Player, tick)
	assert.Len(t, rec.ofType(event.Attack), 1, "cooldown")
}

func TestDeadTowerIsSilent(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewTowerSystem(w, d)
	tower := w.AddTower(types.Player, 150, 450, defs.TowerLibrary[defs.Princess])
	tower.Health.Value = 0
	victim := addUnit(w, types.Enemy, defs.Knight, 150, 420)

	s.UpdateTeam(types.Player, tick)
	assert.Equal(t, victim.Health.Max, victim.Health.Value)
}

func TestElixirRegenAndSpend(t *testing.T) {
	s := NewElixirSystem(5, 10, 0.5, 2)

	s.Update(1)
	assert.InDelta(t, 6.0, s.Value(types.Player), 1e-9)
	assert.InDelta(t, 5.5, s.Value(types.Enemy), 1e-9)

	assert.True(t, s.Spend(types.Player, 6))
	assert.False(t, s.Spend(types.Player, 1))
	assert.InDelta(t, 0.0, s.Value(types.Player), 1e-9)

	s.Update(100)
	assert.Equal(t, 10.0, s.Value(types.Enemy))

	s.Reset(5)
	assert.Equal(t, 5.0, s.Value(types.Player))
	assert.Equal(t, 2.0, s.Multiplier(types.Player))
}

func TestMarkersExpire(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewVisualEffectSystem(w, d)
	d.Dispatch(event.Event{Type: event.UnitDrowned, Data: event.DrownData{Position: component.Position{X: 100, Y: 300}}})
	require.Len(t, w.Markers, 1)

	s.Update(1)
	w.Prune()
	assert.Empty(t, w.Markers)
}
