// internal/system/tower.go
package system

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"
)

// TowerSystem: стрельба башен по ближайшей цели в радиусе.
type TowerSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewTowerSystem(world *entity.World, eventDispatcher *event.Dispatcher) *TowerSystem {
	return &TowerSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *TowerSystem) UpdateTeam(team types.Team, deltaTime float64) {
	hostiles := s.world.Hostiles(team)
	for _, t := range s.world.Towers[team] {
		s.update(t, hostiles, deltaTime)
	}
}

func (s *TowerSystem) update(t *component.Tower, hostiles []component.Target, dt float64) {
	if !t.Alive() {
		return
	}
	t.Tick(dt)

	target, _ := Nearest(t.Position, hostiles, t.AttackRange)
	if target == nil {
		t.Target = nil
		return
	}
	t.Target = target
	if !t.Ready() {
		return
	}

	ApplyDamage(target, t.Damage)
	t.ResetCooldown()
	s.eventDispatcher.Dispatch(event.Event{Type: event.Attack, Data: event.AttackData{
		AttackerID: t.ID,
		TargetID:   target.EntityID(),
		Team:       t.Team,
		Damage:     t.Damage,
	}})
}
