// internal/system/environmental_damage.go
package system

import (
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/pkg/arena"
)

// DrowningSystem топит юнитов, оказавшихся в реке вне моста.
// Пассажиры Tesla и MegaKnight в прыжке над водой не тонут.
type DrowningSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewDrowningSystem(world *entity.World, eventDispatcher *event.Dispatcher) *DrowningSystem {
	return &DrowningSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *DrowningSystem) Update() {
	for _, side := range s.world.Units {
		for _, u := range side {
			if !u.Alive() || u.IsBeingCarried || u.Jumping() {
				continue
			}
			if !arena.IsDrowning(u.Position.X, u.Position.Y) {
				continue
			}
			u.Health.Value = 0
			s.eventDispatcher.Dispatch(event.Event{Type: event.UnitDrowned, Data: event.DrownData{
				UnitID:   u.ID,
				Team:     u.Team,
				Position: u.Position,
			}})
		}
	}
}
