// internal/component/tower.go
package component

import (
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"
)

// Tower: стационарный защитник. Позиция не меняется весь матч.
type Tower struct {
	ID       types.EntityID
	Kind     defs.TowerKind
	Team     types.Team
	Position Position
	Health   Health
	Combat
	Size float64
}

func NewTower(id types.EntityID, team types.Team, x, y float64, stats defs.TowerStats) *Tower {
	return &Tower{
		ID:       id,
		Kind:     stats.Kind,
		Team:     team,
		Position: Position{X: x, Y: y},
		Health:   Health{Value: stats.Health, Max: stats.Health},
		Combat: Combat{
			Damage:          stats.Damage,
			AttackSpeed:     stats.AttackSpeed,
			BaseAttackSpeed: stats.AttackSpeed,
			AttackRange:     stats.AttackRange,
		},
		Size: stats.Size,
	}
}

func (t *Tower) EntityID() types.EntityID { return t.ID }
func (t *Tower) Pos() *Position { return &t.Position }
func (t *Tower) Side() types.Team { return t.Team }
func (t *Tower) Alive() bool { return t.Health.Alive() }
func (t *Tower) Targetable() bool { return t.Health.Alive() }
func (t *Tower) Radius() float64 { return t.Size }
func (t *Tower) IsStructure() bool { return true }
func (t *Tower) TakeDamage(amount float64) { t.Health.Damage(amount) }

// IsKing: король решает исход матча.
func (t *Tower) IsKing() bool {
	return t.Kind == defs.King
}
