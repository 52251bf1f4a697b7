// internal/entity/ecs.go
package entity

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"
)

// World владеет всеми сущностями матча. Контейнеры: упорядоченные срезы,
// индекс по стороне совпадает с types.Team, чтобы обход был детерминированным.
type World struct {
	GameTime    float64
	NextID      types.EntityID
	Units       [2][]*component.Unit
	Towers      [2][]*component.Tower
	Teslas      [2][]*component.Tesla
	Projectiles []*component.Projectile
	Spells      []*component.Spell
	Markers     []*component.SplashMarker
}

func NewWorld() *World {
	return &World{NextID: 1}
}

// NewEntity выдаёт следующий id. Один счётчик на все виды, id не переиспользуются.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) AddUnit(team types.Team, x, y float64, stats defs.UnitStats) *component.Unit {
	u := component.NewUnit(w.NewEntity(), team, x, y, stats)
	w.Units[team] = append(w.Units[team], u)
	return u
}

func (w *World) AddTower(team types.Team, x, y float64, stats defs.TowerStats) *component.Tower {
	t := component.NewTower(w.NewEntity(), team, x, y, stats)
	w.Towers[team] = append(w.Towers[team], t)
	return t
}

func (w *World) AddTesla(team types.Team, x, y float64) *component.Tesla {
	t := component.NewTesla(w.NewEntity(), team, x, y)
	w.Teslas[team] = append(w.Teslas[team], t)
	return t
}

func (w *World) AddProjectile(team types.Team, start, target component.Position, cfg defs.ProjectileConfig) *component.Projectile {
	p := component.NewProjectile(w.NewEntity(), team, start, target, cfg)
	w.Projectiles = append(w.Projectiles, p)
	return p
}

func (w *World) AddSpell(team types.Team, pos component.Position, cfg defs.SpellConfig) *component.Spell {
	s := component.NewSpell(w.NewEntity(), team, pos, cfg)
	w.Spells = append(w.Spells, s)
	return s
}

func (w *World) AddMarker(pos component.Position, radius, duration float64) {
	w.Markers = append(w.Markers, &component.SplashMarker{Position: pos, Radius: radius, Duration: duration})
}

// Hostiles возвращает живые цели соперника team: сначала башни, потом юниты.
// Юниты в салоне Tesla сюда не попадают.
func (w *World) Hostiles(team types.Team) []component.Target {
	return w.Targets(team.Opponent())
}

// Targets: живые цели стороны side.
func (w *World) Targets(side types.Team) []component.Target {
	out := make([]component.Target, 0, len(w.Units[side])+len(w.Towers[side]))
	for _, t := range w.Towers[side] {
		if t.Alive() {
			out = append(out, t)
		}
	}
	for _, u := range w.Units[side] {
		if u.Targetable() {
			out = append(out, u)
		}
	}
	return out
}

// AllUnits: юниты обеих сторон, сначала игрок.
func (w *World) AllUnits() []*component.Unit {
	out := make([]*component.Unit, 0, len(w.Units[types.Player])+len(w.Units[types.Enemy]))
	out = append(out, w.Units[types.Player]...)
	return append(out, w.Units[types.Enemy]...)
}

func (w *World) UnitByID(id types.EntityID) *component.Unit {
	for _, side := range w.Units {
		for _, u := range side {
			if u.ID == id {
				return u
			}
		}
	}
	return nil
}

func (w *World) TowerByID(id types.EntityID) *component.Tower {
	for _, side := range w.Towers {
		for _, t := range side {
			if t.ID == id {
				return t
			}
		}
	}
	return nil
}

// King возвращает короля стороны.
func (w *World) King(team types.Team) *component.Tower {
	for _, t := range w.Towers[team] {
		if t.IsKing() {
			return t
		}
	}
	return nil
}

// CountAlive считает живых юнитов вида kind у стороны, включая тех, кто в салоне.
func (w *World) CountAlive(team types.Team, kind defs.UnitKind) int {
	n := 0
	for _, u := range w.Units[team] {
		if u.Kind == kind && u.Alive() {
			n++
		}
	}
	return n
}

// Prune убирает мёртвые сущности. Башни остаются в контейнере до конца матча.
func (w *World) Prune() {
	for side := range w.Units {
		w.Units[side] = filter(w.Units[side], func(u *component.Unit) bool { return u.Alive() })
		w.Teslas[side] = filter(w.Teslas[side], func(t *component.Tesla) bool { return t.Alive() })
	}
	w.Projectiles = filter(w.Projectiles, func(p *component.Projectile) bool { return p.Alive() })
	w.Spells = filter(w.Spells, func(s *component.Spell) bool { return s.Alive() })
	w.Markers = filter(w.Markers, func(m *component.SplashMarker) bool { return !m.Done() })
}

// Reset очищает все контейнеры. Счётчик id продолжает расти.
func (w *World) Reset() {
	w.GameTime = 0
	w.Units = [2][]*component.Unit{}
	w.Towers = [2][]*component.Tower{}
	w.Teslas = [2][]*component.Tesla{}
	w.Projectiles = nil
	w.Spells = nil
	w.Markers = nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	// Хвост обнуляем, чтобы не держать ссылки на удалённые сущности.
	for i := len(out); i < len(items); i++ {
		var zero T
		items[i] = zero
	}
	return out
}
