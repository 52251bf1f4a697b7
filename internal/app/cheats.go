// internal/app/cheats.go
package app

import (
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"
	"go-clash-arena/pkg/arena"
)

// Отладочные команды. Всё, что ниже, идёт мимо эликсира и зон высадки.

// Точка выезда заряженной Tesla и бесплатного Surge у игрока.
const (
	cheatSpawnX = 400.0
	cheatSpawnY = 580.0
)

// SuddenDeath оставляет каждой живой башне 1 HP.
func (g *Game) SuddenDeath() {
	for _, side := range g.World.Towers {
		for _, t := range side {
			if t.Alive() {
				t.Health.Value = 1
			}
		}
	}
	g.logger.Info().Msg("sudden death")
}

// SetElixirMultiplier меняет скорость накопления эликсира игрока.
func (g *Game) SetElixirMultiplier(m float64) {
	g.ElixirSystem.SetMultiplier(types.Player, m)
	g.logger.Info().Float64("multiplier", m).Msg("elixir multiplier changed")
}

func (g *Game) ElixirMultiplier() float64 {
	return g.ElixirSystem.Multiplier(types.Player)
}

func cheatY(team types.Team, y float64) float64 {
	if team == types.Player {
		return y
	}
	return arena.Height - y
}

// SpawnLoadedTesla выпускает машину, которая сразу забирает всех свободных
// мини-пекк на поле и добирает свежих, пока есть место.
func (g *Game) SpawnLoadedTesla(team types.Team) {
	t := g.addTesla(team, cheatSpawnX, cheatY(team, cheatSpawnY))

	kidnapped := 0
	for _, u := range g.World.AllUnits() {
		if !t.HasRoom() {
			break
		}
		if u.Alive() && !u.IsBeingCarried && u.Kind.PickupEligible() {
			u.IsBeingCarried = true
			u.Target = nil
			t.Carried = append(t.Carried, u)
			kidnapped++
		}
	}

	fresh := defs.TeslaCapacity - len(t.Carried)
	if fresh > defs.LoadedTeslaPassengers {
		fresh = defs.LoadedTeslaPassengers
	}
	for i := 0; i < fresh; i++ {
		u := g.addUnit(team, defs.MiniPekka, t.Position.X, t.Position.Y)
		u.IsBeingCarried = true
		t.Carried = append(t.Carried, u)
	}

	g.dispatch(event.PassengersPicked, event.PassengersData{TeslaID: t.ID, Count: len(t.Carried)})
	g.logger.Info().
		Int("kidnapped", kidnapped).
		Int("fresh", fresh).
		Msg("loaded tesla deployed")
}

// SpawnFreeSurge ставит Surge у своей базы, лимит на двоих соблюдается.
func (g *Game) SpawnFreeSurge() bool {
	if g.World.CountAlive(types.Player, defs.Surge) >= defs.MaxLimitedPerTeam {
		return false
	}
	g.addUnit(types.Player, defs.Surge, cheatSpawnX, cheatSpawnY)
	return true
}

// MiniPekkaSwarm: дюжина мини-пекк в зоне игрока.
func (g *Game) MiniPekkaSwarm() {
	g.scatter(types.Player, defs.MiniPekka, 12, arena.PlayerDeployMinY+50, 150)
}

// EnemyMiniPekkas: 25 мини-пекк у соперника.
func (g *Game) EnemyMiniPekkas() {
	g.scatter(types.Enemy, defs.MiniPekka, 25, 30, 100)
}

// UnleashChaos: 50 золотых рыцарей игрока.
func (g *Game) UnleashChaos() {
	g.scatter(types.Player, defs.GoldKnight, 50, arena.PlayerDeployMinY+50, 150)
}

// UnleashHorde: 100 рыцарей соперника.
func (g *Game) UnleashHorde() {
	g.scatter(types.Enemy, defs.Knight, 100, 30, 100)
}

func (g *Game) scatter(team types.Team, kind defs.UnitKind, n int, minY, spreadY float64) {
	for i := 0; i < n; i++ {
		x := g.Rng.Range(100, 700)
		y := minY + g.Rng.Float64()*spreadY
		g.addUnit(team, kind, x, y)
	}
	g.logger.Info().
		Str("team", team.String()).
		Str("kind", string(kind)).
		Int("count", n).
		Msg("cheat spawn")
}

// MegaKnightAssault переносит всех MegaKnight игрока к королю соперника
// и высаживает ещё пятерых у мостов.
func (g *Game) MegaKnightAssault() {
	if king := g.World.King(types.Enemy); king != nil && king.Alive() {
		for _, u := range g.World.Units[types.Player] {
			if u.Kind != defs.MegaKnight || !u.Alive() || u.IsBeingCarried {
				continue
			}
			u.Jump.Jumping = false
			u.Position.X = king.Position.X + g.Rng.Range(-60, 60)
			u.Position.Y = king.Position.Y + 60 + g.Rng.Float64()*20
		}
	}
	for i := 0; i < 5; i++ {
		x := arena.Bridges[i%2].Center() + g.Rng.Range(-30, 30)
		g.addUnit(types.Player, defs.MegaKnight, x, arena.PlayerDeployMinY)
	}
	g.logger.Info().Msg("mega knight assault")
}
