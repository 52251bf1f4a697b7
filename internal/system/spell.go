// internal/system/spell.go
package system

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/interfaces"
	"go-clash-arena/internal/types"
)

// SpellSystem ведёт заклинания на площади. Заклинания только отмечают,
// кого они держат; действующие скорости каждый тик собираются заново из
// табличных и всех активных заклинаний, поэтому наложения не оставляют следов.
type SpellSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	teslas          interfaces.TeslaController
	touched         map[types.EntityID]struct{} // кого модификаторы меняли на прошлом тике
}

func NewSpellSystem(world *entity.World, eventDispatcher *event.Dispatcher, teslas interfaces.TeslaController) *SpellSystem {
	return &SpellSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		teslas:          teslas,
		touched:         make(map[types.EntityID]struct{}),
	}
}

func (s *SpellSystem) Update(deltaTime float64) {
	for _, sp := range s.world.Spells {
		if sp.Active {
			s.update(sp, deltaTime)
		}
	}
	s.applyModifiers()
}

// Reset забывает изменённые сущности после рестарта.
func (s *SpellSystem) Reset() {
	s.touched = make(map[types.EntityID]struct{})
}

func (s *SpellSystem) update(sp *component.Spell, dt float64) {
	sp.TimeRemaining -= dt

	switch sp.Config.Kind {
	case defs.Rage:
		s.trackUnits(sp, sp.Team)
	case defs.Fireball:
		if !sp.HasFired {
			s.applyFireball(sp)
			sp.HasFired = true
		}
	case defs.Freeze:
		s.applyFreeze(sp)
	case defs.Poison:
		s.applyPoison(sp, dt)
	}

	if sp.TimeRemaining <= 0 {
		s.expire(sp)
		sp.Active = false
	}
}

// trackUnits отмечает юнитов стороны team внутри круга и отпускает вышедших.
func (s *SpellSystem) trackUnits(sp *component.Spell, team types.Team) {
	for _, u := range s.world.Units[team] {
		if !u.Targetable() {
			continue
		}
		if !sp.InRadius(u.Position) {
			sp.Forget(u.ID)
			continue
		}
		sp.Track(u.ID, component.SpeedSnapshot{MoveSpeed: u.BaseMoveSpeed, AttackSpeed: u.BaseAttackSpeed})
	}
}

// Огненный шар бьёт один раз, машины в радиусе взрываются.
func (s *SpellSystem) applyFireball(sp *component.Spell) {
	enemy := sp.Team.Opponent()
	for _, u := range s.world.Units[enemy] {
		if u.Targetable() && sp.InRadius(u.Position) {
			ApplyDamage(u, sp.Config.Damage)
		}
	}
	for _, t := range s.world.Towers[enemy] {
		if t.Alive() && sp.InRadius(t.Position) {
			ApplyDamage(t, sp.Config.Damage)
		}
	}
	for _, t := range s.world.Teslas[enemy] {
		if t.Alive() && sp.InRadius(t.Position) {
			s.teslas.Explode(t)
		}
	}
}

func (s *SpellSystem) applyFreeze(sp *component.Spell) {
	enemy := sp.Team.Opponent()
	s.trackUnits(sp, enemy)
	for _, t := range s.world.Towers[enemy] {
		if t.Alive() && sp.InRadius(t.Position) {
			sp.Track(t.ID, component.SpeedSnapshot{AttackSpeed: t.BaseAttackSpeed})
		}
	}
	for _, t := range s.world.Teslas[enemy] {
		if t.Alive() && sp.InRadius(t.Position) {
			t.Freeze(sp.Config.Duration)
		}
	}
}

func (s *SpellSystem) applyPoison(sp *component.Spell, dt float64) {
	damage := sp.Config.DamagePerSecond * dt
	enemy := sp.Team.Opponent()
	s.trackUnits(sp, enemy)
	for _, u := range s.world.Units[enemy] {
		if u.Targetable() && sp.InRadius(u.Position) {
			ApplyDamage(u, damage)
		}
	}
	for _, t := range s.world.Towers[enemy] {
		if t.Alive() && sp.InRadius(t.Position) {
			ApplyDamage(t, damage)
		}
	}
	for _, t := range s.world.Teslas[enemy] {
		if t.Alive() && sp.InRadius(t.Position) {
			t.TakeDamage(damage)
		}
	}
}

// expire отпускает всех, кого заклинание ещё держит.
func (s *SpellSystem) expire(sp *component.Spell) {
	for _, id := range append([]types.EntityID(nil), sp.Affected...) {
		sp.Forget(id)
	}
}

// modifier: суммарное действие активных заклинаний на одну сущность.
type modifier struct {
	move   float64
	attack float64
	frozen bool
}

// applyModifiers пересобирает скорости тех, кого держит хотя бы одно
// заклинание, и возвращает табличные тем, кого отпустили.
func (s *SpellSystem) applyModifiers() {
	mods := make(map[types.EntityID]*modifier)
	for _, sp := range s.world.Spells {
		if !sp.Active {
			continue
		}
		cfg := sp.Config
		for _, id := range sp.Affected {
			m, ok := mods[id]
			if !ok {
				m = &modifier{move: 1, attack: 1}
				mods[id] = m
			}
			switch cfg.Kind {
			case defs.Rage:
				m.move *= cfg.SpeedBoost
				m.attack *= cfg.AttackSpeedBoost
			case defs.Poison:
				m.move *= cfg.SlowAmount
			case defs.Freeze:
				m.frozen = true
			}
		}
	}

	for id := range s.touched {
		if _, ok := mods[id]; !ok {
			s.restore(id)
		}
	}
	s.touched = make(map[types.EntityID]struct{}, len(mods))
	for id, m := range mods {
		if s.apply(id, m) {
			s.touched[id] = struct{}{}
		}
	}
}

func (s *SpellSystem) apply(id types.EntityID, m *modifier) bool {
	if u := s.world.UnitByID(id); u != nil {
		if m.frozen {
			u.MoveSpeed = 0
			freeze(&u.Combat)
			return true
		}
		u.MoveSpeed = u.BaseMoveSpeed * m.move
		setAttackSpeed(&u.Combat, u.BaseAttackSpeed*m.attack)
		return true
	}
	if t := s.world.TowerByID(id); t != nil {
		if m.frozen {
			freeze(&t.Combat)
		} else {
			setAttackSpeed(&t.Combat, t.BaseAttackSpeed*m.attack)
		}
		return true
	}
	return false
}

func (s *SpellSystem) restore(id types.EntityID) {
	if u := s.world.UnitByID(id); u != nil {
		u.MoveSpeed = u.BaseMoveSpeed
		setAttackSpeed(&u.Combat, u.BaseAttackSpeed)
		return
	}
	if t := s.world.TowerByID(id); t != nil {
		setAttackSpeed(&t.Combat, t.BaseAttackSpeed)
	}
}

// setAttackSpeed меняет скорость атаки, не давая кулдауну превысить новый интервал.
func setAttackSpeed(c *component.Combat, attackSpeed float64) {
	c.AttackSpeed = attackSpeed
	if interval := c.Interval(); c.AttackCooldown > interval {
		c.AttackCooldown = interval
	}
}

// freeze держит кулдаун на полном интервале, пока заморозка действует.
func freeze(c *component.Combat) {
	c.AttackSpeed = defs.FreezeAttackSpeed
	c.AttackCooldown = c.Interval()
}

// BestSpellTarget выбирает точку для заклинания стороны team.
// Ярость кладётся в центр своих юнитов, остальное туда, где у соперника
// больше всего целей в радиусе.
func BestSpellTarget(w *entity.World, team types.Team, kind defs.SpellKind) (component.Position, bool) {
	cfg, ok := defs.SpellLibrary[kind]
	if !ok {
		return component.Position{}, false
	}

	if kind.Friendly() {
		var sum component.Position
		n := 0
		for _, u := range w.Units[team] {
			if u.Targetable() {
				sum.X += u.Position.X
				sum.Y += u.Position.Y
				n++
			}
		}
		if n == 0 {
			return component.Position{}, false
		}
		return component.Position{X: sum.X / float64(n), Y: sum.Y / float64(n)}, true
	}

	targets := w.Targets(team.Opponent())
	var best component.Position
	bestCount := 0
	for _, c := range targets {
		count := 0
		for _, o := range targets {
			if c.Pos().DistanceTo(*o.Pos()) <= cfg.Radius {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = *c.Pos(), count
		}
	}
	return best, bestCount > 0
}
