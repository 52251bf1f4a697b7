// internal/system/player_system.go
package system

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/event"
)

// ScoreSystem считает короны и убийства по событиям гибели.
type ScoreSystem struct {
	score *component.Score
}

func NewScoreSystem(score *component.Score, eventDispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{score: score}
	eventDispatcher.Subscribe(event.EntityDied, s)
	return s
}

func (s *ScoreSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.DeathData)
	if !ok {
		return
	}
	killer := data.Team.Opponent()
	if data.Structure {
		s.score.Crowns[killer] += defs.CrownsFor(defs.TowerKind(data.Kind))
		return
	}
	s.score.Kills[killer]++
}

func (s *ScoreSystem) Reset() {
	*s.score = component.Score{}
}
