// internal/app/deploy.go
package app

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"
	"go-clash-arena/pkg/arena"
)

// SpawnUnit высаживает юнита, если место допустимо, лимит не превышен и
// хватает эликсира. Отказ ничего не тратит и ничего не создаёт.
func (g *Game) SpawnUnit(team types.Team, x, y float64, kind defs.UnitKind) bool {
	if g.State.Result != types.ResultNone {
		return false
	}
	stats, ok := defs.Unit(kind)
	if !ok || !canDeployUnit(team, x, y) {
		return false
	}
	if kind.Limited() && g.World.CountAlive(team, kind) >= defs.MaxLimitedPerTeam {
		g.logger.Debug().
			Str("team", team.String()).
			Str("kind", string(kind)).
			Msg("spawn rejected: unit cap reached")
		return false
	}
	if !g.ElixirSystem.Spend(team, stats.Cost) {
		return false
	}
	g.recorder.ElixirSpent(team.String(), string(kind), stats.Cost)
	g.addUnit(team, kind, x, y)
	return true
}

// SpawnBuilding ставит Tesla на своей половине поля.
func (g *Game) SpawnBuilding(team types.Team, x, y float64, kind defs.BuildingKind) bool {
	if g.State.Result != types.ResultNone || kind != defs.Tesla {
		return false
	}
	if !canDeployBuilding(team, x, y) {
		return false
	}
	if !g.ElixirSystem.Spend(team, defs.TeslaCost) {
		return false
	}
	g.recorder.ElixirSpent(team.String(), string(kind), defs.TeslaCost)
	g.addTesla(team, x, y)
	return true
}

// CastSpell кладёт заклинание в любую точку поля.
func (g *Game) CastSpell(team types.Team, kind defs.SpellKind, pos component.Position) bool {
	if g.State.Result != types.ResultNone {
		return false
	}
	cfg, ok := defs.SpellLibrary[kind]
	if !ok {
		return false
	}
	cost := defs.SpellCost(kind)
	if !g.ElixirSystem.Spend(team, cost) {
		return false
	}
	g.recorder.ElixirSpent(team.String(), string(kind), cost)

	sp := g.World.AddSpell(team, pos, cfg)
	g.dispatch(event.SpellCast, event.SpellCastData{
		ID:       sp.ID,
		Team:     team,
		Kind:     string(kind),
		Position: pos,
	})
	return true
}

func (g *Game) addUnit(team types.Team, kind defs.UnitKind, x, y float64) *component.Unit {
	u := g.World.AddUnit(team, x, y, defs.UnitLibrary[kind])
	g.dispatch(event.UnitSpawned, event.SpawnData{
		ID:       u.ID,
		Team:     team,
		Kind:     string(kind),
		Position: u.Position,
	})
	return u
}

func (g *Game) addTesla(team types.Team, x, y float64) *component.Tesla {
	t := g.World.AddTesla(team, x, y)
	g.dispatch(event.BuildingSpawned, event.SpawnData{
		ID:       t.ID,
		Team:     team,
		Kind:     string(defs.Tesla),
		Position: t.Position,
	})
	return t
}

func canDeployUnit(team types.Team, x, y float64) bool {
	if team == types.Player {
		return arena.InPlayerDeployZone(x, y)
	}
	return arena.InEnemyDeployZone(x, y)
}

// Здания ставятся в любом месте своей половины.
func canDeployBuilding(team types.Team, x, y float64) bool {
	if x < 0 || x > arena.Width || y < 0 || y > arena.Height {
		return false
	}
	if team == types.Player {
		return arena.IsInPlayerZone(y)
	}
	return !arena.IsInPlayerZone(y)
}
