// internal/interfaces/game_context.go
package interfaces

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"
)

// SpawnContext: то, что скрипту соперника нужно от оркестратора.
type SpawnContext interface {
	SpawnUnit(team types.Team, x, y float64, kind defs.UnitKind) bool
	SpawnBuilding(team types.Team, x, y float64, kind defs.BuildingKind) bool
	CastSpell(team types.Team, kind defs.SpellKind, pos component.Position) bool
	Elixir(team types.Team) float64
	CountAlive(team types.Team, kind defs.UnitKind) int
}

// TeslaController позволяет заклинаниям взрывать машины с высадкой пассажиров.
type TeslaController interface {
	Explode(t *component.Tesla)
}
