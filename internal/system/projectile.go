// internal/system/projectile.go
package system

import (
	"math"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"
	"go-clash-arena/pkg/arena"
)

// ProjectileSystem двигает снаряды и разбирает попадания.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	hostiles := [2][]component.Target{
		types.Player: s.world.Hostiles(types.Player),
		types.Enemy:  s.world.Hostiles(types.Enemy),
	}
	for _, p := range s.world.Projectiles {
		if p.Active {
			s.update(p, hostiles[p.Team], deltaTime)
		}
	}
}

func (s *ProjectileSystem) update(p *component.Projectile, hostiles []component.Target, dt float64) {
	cfg := p.Config

	if cfg.Seeking {
		if target := nearestUnhit(p, hostiles); target != nil {
			s.seek(p, *target.Pos())
		}
	}

	mx, my := p.Velocity.X*dt, p.Velocity.Y*dt
	p.Position.X += mx
	p.Position.Y += my
	p.DistanceTraveled += math.Hypot(mx, my)

	for _, h := range hostiles {
		if !h.Targetable() || p.HitEntities[h.EntityID()] {
			continue
		}
		if p.Position.DistanceTo(*h.Pos()) >= defs.ProjectileHitRadius {
			continue
		}

		p.HitEntities[h.EntityID()] = true
		ApplyDamage(h, cfg.Damage)
		s.hit(p, h.EntityID(), cfg.Damage, false)

		if cfg.Splash {
			s.splash(p, h, hostiles)
		}
		if !cfg.Piercing {
			p.Active = false
			break
		}
	}

	if p.DistanceTraveled > cfg.MaxRange || arena.OutOfBounds(p.Position.X, p.Position.Y) {
		p.Active = false
	}
}

// seek поворачивает скорость на 10% к цели и возвращает ей прежний модуль.
func (s *ProjectileSystem) seek(p *component.Projectile, dest component.Position) {
	dx, dy := dest.X-p.Position.X, dest.Y-p.Position.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return
	}
	speed := p.Config.Speed
	vx := p.Velocity.X + (dx/d*speed-p.Velocity.X)*defs.ProjectileSeekBlend
	vy := p.Velocity.Y + (dy/d*speed-p.Velocity.Y)*defs.ProjectileSeekBlend
	if l := math.Hypot(vx, vy); l > 0 {
		p.Velocity = component.Velocity{X: vx / l * speed, Y: vy / l * speed}
	}
}

// splash бьёт всех рядом с точкой попадания, урон падает к краю.
func (s *ProjectileSystem) splash(p *component.Projectile, primary component.Target, hostiles []component.Target) {
	r := p.Config.SplashRadius
	for _, o := range hostiles {
		if o.EntityID() == primary.EntityID() || !o.Targetable() || p.HitEntities[o.EntityID()] {
			continue
		}
		d := p.Position.DistanceTo(*o.Pos())
		if d >= r {
			continue
		}
		damage := p.Config.Damage * defs.ProjectileSplashRatio * (1 - d/r)
		p.HitEntities[o.EntityID()] = true
		ApplyDamage(o, damage)
		s.hit(p, o.EntityID(), damage, true)
	}
}

func (s *ProjectileSystem) hit(p *component.Projectile, target types.EntityID, damage float64, splash bool) {
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileHit, Data: event.ProjectileHitData{
		ProjectileID: p.ID,
		TargetID:     target,
		Damage:       damage,
		Splash:       splash,
	}})
}

func nearestUnhit(p *component.Projectile, hostiles []component.Target) component.Target {
	var best component.Target
	bestDist := math.Inf(1)
	for _, h := range hostiles {
		if !h.Targetable() || p.HitEntities[h.EntityID()] {
			continue
		}
		if d := p.Position.DistanceTo(*h.Pos()); d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}
