// internal/system/lily.go
package system

import (
	"math"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/event"
)

// lilyUpdate: скрытный убийца. Невидимость после паузы в атаках,
// залп из трёх шипов, рывок к цели при полном заряде.
func lilyUpdate(s *UnitSystem, u *component.Unit, hostiles []component.Target, dt float64) {
	l := u.Lily

	u.Tick(dt)
	l.DashCooldown = math.Max(0, l.DashCooldown-dt)
	l.SinceLastAttack += dt

	if l.Invisible {
		l.InvisibleTimer -= dt
		if l.InvisibleTimer <= 0 {
			l.Invisible = false
		}
	}
	if l.SinceLastAttack > defs.LilyInvisibilityDelay && !l.Invisible {
		l.Invisible = true
		l.InvisibleTimer = defs.LilyInvisibilityDuration
	}

	// Заряд копится за попадания шипов, а не за выстрелы.
	l.Thorns = advanceShots(l.Thorns, hostiles, dt, defs.LilyThornHitRadius, func(h component.Target, sh component.InlineShot) {
		ApplyDamage(h, sh.Damage)
		l.Super = math.Min(1, l.Super+defs.LilyChargePerHit)
	})

	target, _ := Nearest(u.Position, hostiles, 0)
	if target == nil {
		u.Target = nil
		dy := surgeBaseY(u.Team) - u.Position.Y
		if math.Abs(dy) > defs.SurgeMoveThresholdY {
			SmartMove(u, 0, dy, math.Abs(dy), u.MoveSpeed, dt)
		}
		return
	}
	u.Target = target

	if l.Super >= 1 && l.DashCooldown <= 0 && u.MoveSpeed > 0 {
		s.lilyDash(u, target)
	}

	dx := target.Pos().X - u.Position.X
	dy := target.Pos().Y - u.Position.Y
	dist := math.Hypot(dx, dy)

	if dist > u.AttackRange {
		SmartMove(u, dx, dy, dist, u.MoveSpeed, dt)
		return
	}
	if !u.Ready() {
		return
	}

	base := math.Atan2(dy, dx)
	for i := 0; i < defs.LilyThornCount; i++ {
		offset := (float64(i) - float64(defs.LilyThornCount-1)/2) * defs.LilyThornSpread
		l.Thorns = append(l.Thorns, newShot(u.Position, base+offset,
			defs.LilyThornSpeed, defs.LilyThornLifetime, u.Damage))
	}
	u.ResetCooldown()
	l.SinceLastAttack = 0
	l.Invisible = false
	s.emit(event.Attack, event.AttackData{AttackerID: u.ID, TargetID: target.EntityID(), Team: u.Team})
}

func (s *UnitSystem) lilyDash(u *component.Unit, target component.Target) {
	l := u.Lily
	dx := target.Pos().X - u.Position.X
	dy := target.Pos().Y - u.Position.Y
	if dist := math.Hypot(dx, dy); dist > 0 {
		d := math.Min(defs.LilyDashDistance, dist)
		u.Position.X += dx / dist * d
		u.Position.Y += dy / dist * d
	}
	l.Invisible = true
	l.InvisibleTimer = defs.LilyInvisibilityDuration
	l.Super = 0
	l.DashCooldown = defs.LilyDashCooldown
	s.emit(event.SuperUsed, event.SuperData{UnitID: u.ID, Kind: string(u.Kind)})
}
