package app

import (
	"testing"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/config"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/telemetry"
	"go-clash-arena/internal/types"
	"go-clash-arena/pkg/arena"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

const tick = 1.0 / 60

func newTestGame(t *testing.T) *Game {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Seed = 42
	settings.EnemyAI = false
	rec, err := telemetry.New(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	return NewGame(settings, zerolog.Nop(), WithRecorder(rec))
}

func TestNewGameSeedsSixTowers(t *testing.T) {
	g := newTestGame(t)
	for _, team := range []types.Team{types.Player, types.Enemy} {
		require.Len(t, g.World.Towers[team], 3)
		require.NotNil(t, g.World.King(team))
	}
	assert.Equal(t, 5.0, g.Elixir(types.Player))
	assert.NotEmpty(t, g.MatchID())
}

// Рыцарь за 3 из 5: остаётся 2, на поле один юнит игрока.
func TestSpawnKnightSpendsElixir(t *testing.T) {
	g := newTestGame(t)

	require.True(t, g.SpawnUnit(types.Player, 250, 450, defs.Knight))

	assert.Equal(t, 2.0, g.Elixir(types.Player))
	require.Len(t, g.World.Units[types.Player], 1)
	assert.True(t, g.World.Units[types.Player][0].Alive())

	events := g.Update(0)
	require.NotEmpty(t, events)
	assert.Equal(t, event.UnitSpawned, events[0].Type)
}

func TestSpawnRejections(t *testing.T) {
	g := newTestGame(t)

	assert.False(t, g.SpawnUnit(types.Player, 250, 200, defs.Knight), "enemy half")
	assert.False(t, g.SpawnUnit(types.Player, 250, 590, defs.Knight), "behind deploy band")
	assert.False(t, g.SpawnUnit(types.Enemy, 250, 450, defs.Knight))
	assert.False(t, g.SpawnUnit(types.Player, 250, 450, defs.UnitKind("dragon")))
	assert.False(t, g.SpawnUnit(types.Player, 250, 450, defs.MegaKnight), "costs 7")
	assert.False(t, g.SpawnBuilding(types.Player, 250, 200, defs.Tesla))
	assert.False(t, g.SpawnBuilding(types.Enemy, 250, 450, defs.Tesla))
	assert.False(t, g.SpawnBuilding(types.Player, 250, 450, defs.BuildingKind("cannon")))

	assert.Equal(t, 5.0, g.Elixir(types.Player))
	assert.Empty(t, g.World.Units[types.Player])
	assert.Empty(t, g.World.Teslas[types.Player])
}

func TestSpawnTeslaInOwnHalf(t *testing.T) {
	g := newTestGame(t)
	g.ElixirSystem.Reset(10)

	require.True(t, g.SpawnBuilding(types.Player, 400, 310, defs.Tesla))
	assert.Equal(t, 5.0, g.Elixir(types.Player))
	assert.Len(t, g.World.Teslas[types.Player], 1)
}

func TestLimitedUnitCap(t *testing.T) {
	g := newTestGame(t)
	g.ElixirSystem.Reset(10)

	for _, kind := range []defs.UnitKind{defs.Surge, defs.Lily} {
		require.True(t, g.SpawnUnit(types.Player, 250, 450, kind))
		require.True(t, g.SpawnUnit(types.Player, 260, 450, kind))

		before := g.Elixir(types.Player)
		n := len(g.World.Units[types.Player])
		assert.False(t, g.SpawnUnit(types.Player, 270, 450, kind))
		assert.Equal(t, before, g.Elixir(types.Player))
		assert.Len(t, g.World.Units[types.Player], n)
	}

	assert.False(t, g.SpawnFreeSurge())
	assert.True(t, g.SpawnUnit(types.Enemy, 250, 150, defs.Surge), "cap is per team")
}

func TestEnemyKingDeathEndsMatch(t *testing.T) {
	g := newTestGame(t)
	g.World.King(types.Enemy).Health.Value = 0

	events := g.Update(tick)

	assert.Equal(t, types.ResultPlayerWins, g.Result())
	var ended bool
	for _, e := range events {
		if e.Type == event.MatchEnded {
			ended = true
			assert.Equal(t, types.ResultPlayerWins, e.Data.(event.MatchEndData).Result)
		}
	}
	assert.True(t, ended)
	assert.Equal(t, 3, g.Score.Crowns[types.Player])

	// Матч окончен: время стоит, высадка запрещена.
	elapsed := g.State.Time
	g.Update(tick)
	assert.Equal(t, elapsed, g.State.Time)
	assert.False(t, g.SpawnUnit(types.Player, 250, 450, defs.Knight))
}

func TestFireballOnLoadedTesla(t *testing.T) {
	g := newTestGame(t)
	car := g.World.AddTesla(types.Enemy, 400, 200)
	for i := 0; i < 20; i++ {
		u := g.World.AddUnit(types.Enemy, 400, 200, defs.UnitLibrary[defs.MiniPekka])
		u.IsBeingCarried = true
		car.Carried = append(car.Carried, u)
	}

	require.True(t, g.CastSpell(types.Player, defs.Fireball, car.Position))
	g.Update(tick)

	assert.Zero(t, car.Health.Value)
	assert.Empty(t, g.World.Teslas[types.Enemy])
	require.Len(t, g.World.Units[types.Enemy], 20)
	for _, u := range g.World.Units[types.Enemy] {
		assert.False(t, u.IsBeingCarried)
	}
}

func TestPauseFreezesTime(t *testing.T) {
	g := newTestGame(t)
	g.TogglePause()
	require.True(t, g.Paused())

	g.Update(1)
	assert.Zero(t, g.State.Time)
	assert.Equal(t, 5.0, g.Elixir(types.Player))

	g.TogglePause()
	g.Update(1)
	assert.InDelta(t, 5.5, g.Elixir(types.Player), 1e-9)
}

func TestRestartResetsMatch(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.SpawnUnit(types.Player, 250, 450, defs.Knight))
	g.World.King(types.Enemy).Health.Value = 0
	g.Update(tick)
	require.Equal(t, types.ResultPlayerWins, g.Result())
	oldID := g.MatchID()
	lastID := g.World.NextID

	g.Restart()

	assert.Equal(t, types.ResultNone, g.Result())
	assert.Empty(t, g.World.Units[types.Player])
	assert.Len(t, g.World.Towers[types.Enemy], 3)
	assert.True(t, g.World.King(types.Enemy).Alive())
	assert.Equal(t, 5.0, g.Elixir(types.Player))
	assert.Equal(t, component.Score{}, g.Score)
	assert.NotEqual(t, oldID, g.MatchID())
	assert.Greater(t, g.World.NextID, lastID, "ids keep growing")
}

func TestSuddenDeath(t *testing.T) {
	g := newTestGame(t)
	g.SuddenDeath()
	for _, side := range g.World.Towers {
		for _, tw := range side {
			assert.Equal(t, 1.0, tw.Health.Value)
		}
	}
}

func TestLoadedTeslaKidnapsAndTopsUp(t *testing.T) {
	g := newTestGame(t)
	free := g.World.AddUnit(types.Enemy, 100, 100, defs.UnitLibrary[defs.MiniPekka])
	knight := g.World.AddUnit(types.Enemy, 120, 100, defs.UnitLibrary[defs.Knight])

	g.SpawnLoadedTesla(types.Player)

	require.Len(t, g.World.Teslas[types.Player], 1)
	car := g.World.Teslas[types.Player][0]
	assert.Len(t, car.Carried, 1+defs.LoadedTeslaPassengers)
	assert.True(t, free.IsBeingCarried)
	assert.False(t, knight.IsBeingCarried)
	assert.Equal(t, defs.LoadedTeslaPassengers, g.World.CountAlive(types.Player, defs.MiniPekka))
}

func TestElixirMultiplier(t *testing.T) {
	g := newTestGame(t)
	g.SetElixirMultiplier(3)
	g.Update(1)
	assert.InDelta(t, 6.5, g.Elixir(types.Player), 1e-9)
	assert.InDelta(t, 5.5, g.Elixir(types.Enemy), 1e-9)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.SpawnUnit(types.Player, 250, 450, defs.MiniPekka))

	s := g.Snapshot()
	require.Len(t, s.Units, 1)
	assert.True(t, s.Units[0].Charged)
	assert.Len(t, s.Towers, 6)
	assert.Equal(t, g.MatchID(), s.MatchID)

	g.World.Units[types.Player][0].Position.X = 999
	assert.Equal(t, 250.0, s.Units[0].Position.X)
}

func TestEnemyAIPlaysWithSameSeedIdentically(t *testing.T) {
	run := func() []string {
		settings := config.DefaultSettings()
		settings.Seed = 7
		g := NewGame(settings, zerolog.Nop())
		var kinds []string
		for i := 0; i < 60*30; i++ {
			for _, e := range g.Update(tick) {
				if d, ok := e.Data.(event.SpawnData); ok {
					kinds = append(kinds, d.Kind)
				}
			}
		}
		return kinds
	}
	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestMatchPlaysOutWithoutInvariantBreaks(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Seed = 1234
	settings.PlayerElixirMultiplier = 3
	g := NewGame(settings, zerolog.Nop())

	cards := []defs.UnitKind{defs.Knight, defs.MiniPekka, defs.MagicArcher, defs.GoldKnight, defs.MegaKnight, defs.Surge, defs.Lily}
	for i := 0; i < 60*90 && g.Result() == types.ResultNone; i++ {
		if i%90 == 0 {
			g.SpawnUnit(types.Player, 150+float64(i%500), 450, cards[(i/90)%len(cards)])
		}
		if i%600 == 0 {
			g.CastSpell(types.Player, defs.AllSpellKinds[(i/600)%4], component.Position{X: 400, Y: 200})
		}
		g.Update(tick)

		for _, side := range g.World.Units {
			for _, u := range side {
				require.True(t, u.Alive(), "pruned units are alive")
				require.GreaterOrEqual(t, u.AttackCooldown, 0.0)
			}
		}
		for _, side := range g.World.Teslas {
			for _, car := range side {
				require.True(t, car.Alive())
			}
		}
	}
}

func drownedIDs(g *Game) *[]types.EntityID {
	var ids []types.EntityID
	g.EventDispatcher.Subscribe(event.UnitDrowned, event.ListenerFunc(func(e event.Event) {
		ids = append(ids, e.Data.(event.DrownData).UnitID)
	}))
	return &ids
}

func TestTeslaRamIntoRiverDrownsSameTick(t *testing.T) {
	g := newTestGame(t)
	drowned := drownedIDs(g)
	knight := g.World.AddUnit(types.Enemy, 150, 330, defs.UnitLibrary[defs.Knight])
	g.World.AddTesla(types.Player, 150, 370)

	g.Update(tick)

	require.True(t, arena.IsDrowning(knight.Position.X, knight.Position.Y))
	assert.Zero(t, knight.Health.Value)
	assert.Equal(t, []types.EntityID{knight.ID}, *drowned)
	assert.Empty(t, g.World.Units[types.Enemy])
}

func TestPassengersReleasedOverRiverDrown(t *testing.T) {
	g := newTestGame(t)
	drowned := drownedIDs(g)
	car := g.World.AddTesla(types.Enemy, 100, 300)
	for i := 0; i < 20; i++ {
		u := g.World.AddUnit(types.Enemy, 100, 300, defs.UnitLibrary[defs.MiniPekka])
		u.IsBeingCarried = true
		car.Carried = append(car.Carried, u)
	}

	require.True(t, g.CastSpell(types.Player, defs.Fireball, car.Position))
	g.Update(tick)

	assert.Empty(t, g.World.Teslas[types.Enemy])
	assert.NotEmpty(t, *drowned)
	assert.Len(t, g.World.Units[types.Enemy], 20-len(*drowned))
	for _, u := range g.World.Units[types.Enemy] {
		assert.False(t, arena.IsDrowning(u.Position.X, u.Position.Y), "unit %d stands in water", u.ID)
	}
}
