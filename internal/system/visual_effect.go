// internal/system/visual_effect.go
package system

import (
	"go-clash-arena/internal/config"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
)

// VisualEffectSystem ставит круги-метки на месте приземлений, взрывов
// и утоплений и отсчитывает их время жизни.
type VisualEffectSystem struct {
	world *entity.World
}

func NewVisualEffectSystem(world *entity.World, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{world: world}
	eventDispatcher.Subscribe(event.JumpLanded, s)
	eventDispatcher.Subscribe(event.UnitDrowned, s)
	eventDispatcher.Subscribe(event.TeslaExploded, s)
	eventDispatcher.Subscribe(event.SpellCast, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.JumpLandedData:
		s.world.AddMarker(data.End, data.Radius, config.SplashMarkerLifetime)
	case event.DrownData:
		s.world.AddMarker(data.Position, 20, config.SplashMarkerLifetime)
	case event.TeslaData:
		if e.Type == event.TeslaExploded {
			s.world.AddMarker(data.Position, defs.TeslaSize*2, config.SplashMarkerLifetime)
		}
	case event.SpellCastData:
		if data.Kind == string(defs.Fireball) {
			s.world.AddMarker(data.Position, defs.SpellLibrary[defs.Fireball].Radius, config.SplashMarkerLifetime)
		}
	}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, m := range s.world.Markers {
		m.Timer += deltaTime
	}
}
