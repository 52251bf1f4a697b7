package component

import (
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"
)

// Projectile: снаряд общей модели. Может наводиться, пробивать и бить по площади.
type Projectile struct {
	ID               types.EntityID
	Team             types.Team
	Position         Position
	Velocity         Velocity
	Config           defs.ProjectileConfig
	HitEntities      map[types.EntityID]bool
	DistanceTraveled float64
	Active           bool
}

// NewProjectile направляет снаряд на точку target. Если направление не
// определено, снаряд летит вверх.
func NewProjectile(id types.EntityID, team types.Team, start, target Position, cfg defs.ProjectileConfig) *Projectile {
	dx, dy := target.X-start.X, target.Y-start.Y
	v := Velocity{X: 0, Y: -cfg.Speed}
	if d := (Velocity{X: dx, Y: dy}).Length(); d > 0 {
		v = Velocity{X: dx / d * cfg.Speed, Y: dy / d * cfg.Speed}
	}
	return &Projectile{
		ID:          id,
		Team:        team,
		Position:    start,
		Velocity:    v,
		Config:      cfg,
		HitEntities: make(map[types.EntityID]bool),
		Active:      true,
	}
}

func (p *Projectile) Alive() bool {
	return p.Active
}
