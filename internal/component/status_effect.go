// internal/component/status_effect.go
package component

import (
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"
)

// SpeedSnapshot: скорости сущности до того, как на неё подействовало заклинание.
type SpeedSnapshot struct {
	MoveSpeed   float64
	AttackSpeed float64
}

// Spell: заклинание на площади. Каждый id в Affected имеет снимок в OriginalStats.
type Spell struct {
	ID            types.EntityID
	Team          types.Team
	Position      Position
	Config        defs.SpellConfig
	TimeRemaining float64
	HasFired      bool
	Active        bool

	Affected      []types.EntityID
	OriginalStats map[types.EntityID]SpeedSnapshot
}

func NewSpell(id types.EntityID, team types.Team, pos Position, cfg defs.SpellConfig) *Spell {
	return &Spell{
		ID:            id,
		Team:          team,
		Position:      pos,
		Config:        cfg,
		TimeRemaining: cfg.Duration,
		Active:        true,
		OriginalStats: make(map[types.EntityID]SpeedSnapshot),
	}
}

func (s *Spell) Alive() bool {
	return s.Active
}

// InRadius: точка внутри круга (граница включительно).
func (s *Spell) InRadius(p Position) bool {
	return s.Position.DistanceTo(p) <= s.Config.Radius
}

// IsAffected сообщает, держит ли заклинание снимок для id.
func (s *Spell) IsAffected(id types.EntityID) bool {
	_, ok := s.OriginalStats[id]
	return ok
}

// Track запоминает исходные скорости при первом входе в радиус.
func (s *Spell) Track(id types.EntityID, snap SpeedSnapshot) SpeedSnapshot {
	if old, ok := s.OriginalStats[id]; ok {
		return old
	}
	s.OriginalStats[id] = snap
	s.Affected = append(s.Affected, id)
	return snap
}

// Forget удаляет id из учёта и возвращает снимок.
func (s *Spell) Forget(id types.EntityID) (SpeedSnapshot, bool) {
	snap, ok := s.OriginalStats[id]
	if !ok {
		return SpeedSnapshot{}, false
	}
	delete(s.OriginalStats, id)
	for i, a := range s.Affected {
		if a == id {
			s.Affected = append(s.Affected[:i], s.Affected[i+1:]...)
			break
		}
	}
	return snap, true
}
