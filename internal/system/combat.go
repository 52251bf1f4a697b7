// internal/system/combat.go
package system

import (
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/utils"
	"go-clash-arena/pkg/arena"
)

// CombatSystem разбирает отложенные эффекты атак: отбрасывание,
// приземление MegaKnight и выпуск стрел.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	s := &CombatSystem{world: world, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.KnockbackQueued, s)
	eventDispatcher.Subscribe(event.JumpLanded, s)
	eventDispatcher.Subscribe(event.ProjectileRequested, s)
	return s
}

func (s *CombatSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.KnockbackQueued:
		if data, ok := e.Data.(event.KnockbackData); ok {
			s.knockback(data)
		}
	case event.JumpLanded:
		if data, ok := e.Data.(event.JumpLandedData); ok {
			s.land(data)
		}
	case event.ProjectileRequested:
		if data, ok := e.Data.(event.ProjectileRequestData); ok {
			s.world.AddProjectile(data.Team, data.Start, data.Target, defs.ArcherArrow(data.Damage))
		}
	}
}

// knockback отбрасывает юнита поперёк реки и немного вбок от атакующего.
// Башни не двигаются.
func (s *CombatSystem) knockback(data event.KnockbackData) {
	u := s.world.UnitByID(data.TargetID)
	if u == nil || !u.Alive() || u.IsBeingCarried {
		return
	}
	dirY := 1.0
	if u.Position.Y >= arena.RiverCenter {
		dirY = -1
	}
	u.Position.Y += dirY * data.Strength
	u.Position.X += utils.Sign(u.Position.X-data.From.X) * data.Strength * defs.KnockbackLateralRatio
	u.Position.X, u.Position.Y = arena.Clamp(u.Position.X, u.Position.Y, defs.KnockbackMargin)
}

func (s *CombatSystem) land(data event.JumpLandedData) {
	for _, id := range data.TargetIDs {
		if u := s.world.UnitByID(id); u != nil && u.Team != data.Team {
			ApplyDamage(u, data.Damage)
		}
	}
	for _, t := range s.world.Towers[data.Team.Opponent()] {
		if t.Alive() && t.Position.DistanceTo(data.End) <= data.Radius {
			ApplyDamage(t, data.Damage)
		}
	}
}
