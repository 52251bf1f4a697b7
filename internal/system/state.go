// internal/system/state.go
package system

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"
)

// MatchSystem сообщает о гибели сущностей и решает, окончен ли матч.
type MatchSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	state           *component.MatchState
	fallenTowers    map[types.EntityID]bool
}

func NewMatchSystem(world *entity.World, eventDispatcher *event.Dispatcher, state *component.MatchState) *MatchSystem {
	return &MatchSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		state:           state,
		fallenTowers:    make(map[types.EntityID]bool),
	}
}

// Reap рассылает EntityDied для всех, кто погиб за тик. Вызывается до Prune:
// юниты и машины после него исчезают, а о башне сообщаем один раз.
func (s *MatchSystem) Reap() {
	for _, side := range s.world.Units {
		for _, u := range side {
			if !u.Alive() {
				s.died(u.ID, u.Team, string(u.Kind), false)
			}
		}
	}
	for _, side := range s.world.Teslas {
		for _, t := range side {
			if !t.Alive() {
				s.died(t.ID, t.Team, string(defs.Tesla), false)
			}
		}
	}
	for _, side := range s.world.Towers {
		for _, t := range side {
			if t.Alive() || s.fallenTowers[t.ID] {
				continue
			}
			s.fallenTowers[t.ID] = true
			s.died(t.ID, t.Team, string(t.Kind), true)
			s.eventDispatcher.Dispatch(event.Event{Type: event.TowerDestroyed, Data: event.DeathData{
				ID:        t.ID,
				Team:      t.Team,
				Kind:      string(t.Kind),
				Structure: true,
			}})
		}
	}
}

func (s *MatchSystem) died(id types.EntityID, team types.Team, kind string, structure bool) {
	s.eventDispatcher.Dispatch(event.Event{Type: event.EntityDied, Data: event.DeathData{
		ID:        id,
		Team:      team,
		Kind:      kind,
		Structure: structure,
	}})
}

// Evaluate фиксирует итог, когда пал король. Король соперника проверяется
// первым, поэтому при одновременной гибели побеждает игрок.
func (s *MatchSystem) Evaluate() types.Result {
	if s.state.Result != types.ResultNone {
		return s.state.Result
	}
	switch {
	case kingFallen(s.world.King(types.Enemy)):
		s.state.Result = types.ResultPlayerWins
	case kingFallen(s.world.King(types.Player)):
		s.state.Result = types.ResultEnemyWins
	default:
		return types.ResultNone
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: event.MatchEndData{Result: s.state.Result}})
	return s.state.Result
}

func kingFallen(k *component.Tower) bool {
	return k != nil && !k.Alive()
}

// Reset забывает павшие башни прошлого матча.
func (s *MatchSystem) Reset() {
	s.fallenTowers = make(map[types.EntityID]bool)
	s.state.Result = types.ResultNone
	s.state.Time = 0
}
