// internal/system/unit.go
package system

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"
)

// unitBehavior: переопределения вида юнита. Пустое поле означает общее поведение.
type unitBehavior struct {
	update func(s *UnitSystem, u *component.Unit, hostiles []component.Target, dt float64)
	attack func(s *UnitSystem, u *component.Unit, target component.Target)
}

// UnitSystem ведёт всех наземных юнитов по общему циклу: кулдаун, выбор
// ближайшей цели, атака или движение. События юнита копятся в outbox и
// отдаются наружу после его хода.
type UnitSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	behaviors       map[defs.UnitKind]unitBehavior
	outbox          []event.Event
}

func NewUnitSystem(world *entity.World, eventDispatcher *event.Dispatcher) *UnitSystem {
	return &UnitSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		behaviors: map[defs.UnitKind]unitBehavior{
			defs.Knight:      {},
			defs.MiniPekka:   {attack: miniPekkaAttack},
			defs.MagicArcher: {attack: magicArcherAttack},
			defs.GoldKnight:  {attack: goldKnightAttack},
			defs.MegaKnight:  {update: megaKnightUpdate},
			defs.Surge:       {update: surgeUpdate},
			defs.Lily:        {update: lilyUpdate},
		},
	}
}

// UpdateTeam обновляет юнитов стороны по порядку. События каждого юнита
// рассылаются сразу после его хода, до хода следующего.
func (s *UnitSystem) UpdateTeam(team types.Team, deltaTime float64) {
	hostiles := s.world.Hostiles(team)
	for _, u := range s.world.Units[team] {
		s.eventDispatcher.DispatchAll(s.UpdateUnit(u, hostiles, deltaTime))
	}
}

// UpdateUnit выполняет один ход юнита и возвращает его события.
// Юнит в салоне Tesla ничего не делает.
func (s *UnitSystem) UpdateUnit(u *component.Unit, hostiles []component.Target, deltaTime float64) []event.Event {
	if !u.Alive() || u.IsBeingCarried {
		return nil
	}
	s.outbox = nil
	if b := s.behaviors[u.Kind]; b.update != nil {
		b.update(s, u, hostiles, deltaTime)
	} else {
		s.baseUpdate(u, hostiles, deltaTime)
	}
	out := s.outbox
	s.outbox = nil
	return out
}

func (s *UnitSystem) emit(t event.EventType, data interface{}) {
	s.outbox = append(s.outbox, event.Event{Type: t, Data: data})
}

func (s *UnitSystem) baseUpdate(u *component.Unit, hostiles []component.Target, dt float64) {
	u.Tick(dt)

	target, dist := Nearest(u.Position, hostiles, 0)
	if target == nil {
		u.Target = nil
		MarchForward(u, dt)
		return
	}
	u.Target = target

	if dist <= u.AttackRange {
		if u.Ready() {
			s.attack(u, target)
		}
		return
	}
	MoveToward(u, *target.Pos(), dt)
}

func (s *UnitSystem) attack(u *component.Unit, target component.Target) {
	if b := s.behaviors[u.Kind]; b.attack != nil {
		b.attack(s, u, target)
		return
	}
	s.strike(u, target, u.Damage)
}

// strike наносит мгновенный удар: урон, сброс кулдауна, событие атаки.
func (s *UnitSystem) strike(u *component.Unit, target component.Target, damage float64) {
	ApplyDamage(target, damage)
	u.ResetCooldown()
	s.emit(event.Attack, event.AttackData{
		AttackerID: u.ID,
		TargetID:   target.EntityID(),
		Team:       u.Team,
		Damage:     damage,
	})
}

// Первый удар MiniPekka двойной, дальше обычный.
func miniPekkaAttack(s *UnitSystem, u *component.Unit, target component.Target) {
	damage := u.Damage
	if u.Charged {
		damage *= defs.MiniPekkaChargeMultiplier
		u.Charged = false
	}
	s.strike(u, target, damage)
}

// MagicArcher не бьёт сразу, а просит выпустить стрелу.
func magicArcherAttack(s *UnitSystem, u *component.Unit, target component.Target) {
	u.ResetCooldown()
	s.emit(event.ProjectileRequested, event.ProjectileRequestData{
		ShooterID: u.ID,
		Team:      u.Team,
		Start:     u.Position,
		Target:    *target.Pos(),
		Damage:    u.Damage,
	})
}

func goldKnightAttack(s *UnitSystem, u *component.Unit, target component.Target) {
	s.strike(u, target, u.Damage)
	s.emit(event.KnockbackQueued, event.KnockbackData{
		AttackerID: u.ID,
		TargetID:   target.EntityID(),
		From:       u.Position,
		Strength:   defs.KnockbackStrength,
	})
}
