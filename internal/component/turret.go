// internal/component/turret.go
package component

import (
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"
)

// Tesla: машина-таран. Урон наносит столкновением, а не выстрелом,
// и возит в салоне подобранных юнитов.
type Tesla struct {
	ID       types.EntityID
	Team     types.Team
	Position Position
	Velocity Velocity
	Health   Health

	Damage   float64
	Speed    float64
	Size     float64
	Angle    float64
	Lifetime float64

	Carried      []*Unit
	HitCooldowns map[types.EntityID]float64
	SkidMarks    []Position

	FreezeTimer float64
	DropTimer   float64
	LastHitTime float64
	DriftAngle  float64
	Honking     bool
	Target      Target
}

func NewTesla(id types.EntityID, team types.Team, x, y float64) *Tesla {
	angle := -1.5707963267948966 // вверх, к сопернику
	if team == types.Enemy {
		angle = 1.5707963267948966
	}
	return &Tesla{
		ID:           id,
		Team:         team,
		Position:     Position{X: x, Y: y},
		Health:       Health{Value: defs.TeslaHealth, Max: defs.TeslaHealth},
		Damage:       defs.TeslaDamage,
		Speed:        defs.TeslaSpeed,
		Size:         defs.TeslaSize,
		Angle:        angle,
		Lifetime:     defs.TeslaLifetime,
		HitCooldowns: make(map[types.EntityID]float64),
	}
}

// Alive: машина цела и время её службы не истекло.
func (t *Tesla) Alive() bool {
	return t.Health.Alive() && t.Lifetime > 0
}

func (t *Tesla) IsFrozen() bool {
	return t.FreezeTimer > 0
}

// Freeze обездвиживает машину на duration секунд.
func (t *Tesla) Freeze(duration float64) {
	t.FreezeTimer = duration
}

func (t *Tesla) TakeDamage(amount float64) {
	t.Health.Damage(amount)
}

// Explode уничтожает машину. Высадку пассажиров делает система.
func (t *Tesla) Explode() {
	t.Health.Value = 0
}

func (t *Tesla) HasRoom() bool {
	return len(t.Carried) < defs.TeslaCapacity
}
