// internal/app/snapshot.go
package app

import (
	"math"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"
)

// Snapshot: копия состояния матча для отрисовки. Рендер не держит
// указателей на сущности мира.
type Snapshot struct {
	Towers      []TowerView
	Units       []UnitView
	Teslas      []TeslaView
	Projectiles []ProjectileView
	Spells      []SpellView
	Markers     []MarkerView

	Elixir     [2]float64
	MaxElixir  float64
	Multiplier float64
	Score      component.Score
	Result     types.Result
	Paused     bool
	Time       float64
	MatchID    string
}

type TowerView struct {
	ID        types.EntityID
	Team      types.Team
	King      bool
	Position  component.Position
	Health    float64
	MaxHealth float64
	Size      float64
}

type UnitView struct {
	ID         types.EntityID
	Kind       defs.UnitKind
	Team       types.Team
	Position   component.Position
	Health     float64
	MaxHealth  float64
	Size       float64
	Carried    bool
	Charged    bool
	Invisible  bool
	Jumping    bool
	JumpHeight float64
	Stage      int
	Super      float64
	Shots      []component.InlineShot
}

type TeslaView struct {
	ID         types.EntityID
	Team       types.Team
	Position   component.Position
	Health     float64
	MaxHealth  float64
	Size       float64
	Angle      float64
	DriftAngle float64
	Lifetime   float64
	Carried    int
	Frozen     bool
	Honking    bool
	Flashing   bool
	SkidMarks  []component.Position
}

type ProjectileView struct {
	Team     types.Team
	Position component.Position
	Angle    float64
}

type SpellView struct {
	Kind      defs.SpellKind
	Team      types.Team
	Position  component.Position
	Radius    float64
	Remaining float64
}

type MarkerView struct {
	Position component.Position
	Radius   float64
	Progress float64 // 0 в момент появления, 1 в конце
}

// Snapshot собирает копию текущего состояния.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		Elixir:     [2]float64{g.Elixir(types.Player), g.Elixir(types.Enemy)},
		MaxElixir:  g.ElixirSystem.Max(types.Player),
		Multiplier: g.ElixirSystem.Multiplier(types.Player),
		Score:      g.Score,
		Result:     g.State.Result,
		Paused:     g.State.Paused,
		Time:       g.State.Time,
		MatchID:    g.matchID,
	}

	for _, side := range w.Towers {
		for _, t := range side {
			s.Towers = append(s.Towers, TowerView{
				ID:        t.ID,
				Team:      t.Team,
				King:      t.IsKing(),
				Position:  t.Position,
				Health:    t.Health.Value,
				MaxHealth: t.Health.Max,
				Size:      t.Size,
			})
		}
	}

	for _, u := range w.AllUnits() {
		s.Units = append(s.Units, unitView(u))
	}

	for _, side := range w.Teslas {
		for _, t := range side {
			s.Teslas = append(s.Teslas, TeslaView{
				ID:         t.ID,
				Team:       t.Team,
				Position:   t.Position,
				Health:     t.Health.Value,
				MaxHealth:  t.Health.Max,
				Size:       t.Size,
				Angle:      t.Angle,
				DriftAngle: t.DriftAngle,
				Lifetime:   t.Lifetime,
				Carried:    len(t.Carried),
				Frozen:     t.IsFrozen(),
				Honking:    t.Honking,
				Flashing:   t.LastHitTime > 0,
				SkidMarks:  append([]component.Position(nil), t.SkidMarks...),
			})
		}
	}

	for _, p := range w.Projectiles {
		s.Projectiles = append(s.Projectiles, ProjectileView{
			Team:     p.Team,
			Position: p.Position,
			Angle:    math.Atan2(p.Velocity.Y, p.Velocity.X),
		})
	}

	for _, sp := range w.Spells {
		s.Spells = append(s.Spells, SpellView{
			Kind:      sp.Config.Kind,
			Team:      sp.Team,
			Position:  sp.Position,
			Radius:    sp.Config.Radius,
			Remaining: sp.TimeRemaining,
		})
	}

	for _, m := range w.Markers {
		progress := 1.0
		if m.Duration > 0 {
			progress = math.Min(1, m.Timer/m.Duration)
		}
		s.Markers = append(s.Markers, MarkerView{Position: m.Position, Radius: m.Radius, Progress: progress})
	}
	return s
}

func unitView(u *component.Unit) UnitView {
	v := UnitView{
		ID:        u.ID,
		Kind:      u.Kind,
		Team:      u.Team,
		Position:  u.Position,
		Health:    u.Health.Value,
		MaxHealth: u.Health.Max,
		Size:      u.Size,
		Carried:   u.IsBeingCarried,
		Charged:   u.Charged,
		Invisible: u.Invisible(),
		Jumping:   u.Jumping(),
	}
	if u.Jump != nil {
		v.JumpHeight = u.Jump.Height
	}
	switch {
	case u.Surge != nil:
		v.Stage = u.Surge.Stage
		v.Super = u.Surge.Super
		v.Shots = append([]component.InlineShot(nil), u.Surge.Shots...)
	case u.Lily != nil:
		v.Super = u.Lily.Super
		v.Shots = append([]component.InlineShot(nil), u.Lily.Thorns...)
	}
	return v
}
