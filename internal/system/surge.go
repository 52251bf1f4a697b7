// internal/system/surge.go
package system

import (
	"math"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"
	"go-clash-arena/pkg/arena"
)

// surgeUpdate: юнит с четырьмя стадиями. Каждый удар заряжает супер,
// полный супер телепортирует вперёд и повышает стадию.
func surgeUpdate(s *UnitSystem, u *component.Unit, hostiles []component.Target, dt float64) {
	st := u.Surge
	bonus := defs.SurgeStages[st.Stage]
	speed := u.MoveSpeed * bonus.Speed
	attackRange := u.AttackRange * bonus.Range

	u.Tick(dt)

	st.Shots = advanceShots(st.Shots, hostiles, dt, defs.SurgeShotHitRadius, func(h component.Target, sh component.InlineShot) {
		ApplyDamage(h, sh.Damage)
	})

	target, _ := Nearest(u.Position, hostiles, attackRange*defs.SurgeAcquireFactor)
	if target == nil {
		u.Target = nil
		dy := surgeBaseY(u.Team) - u.Position.Y
		if math.Abs(dy) > defs.SurgeMoveThresholdY {
			SmartMove(u, 0, dy, math.Abs(dy), speed, dt)
		}
		return
	}
	u.Target = target

	if st.Super >= 1 && st.Stage < defs.SurgeMaxStage && u.MoveSpeed > 0 {
		s.surgeTeleport(u)
	}

	dx := target.Pos().X - u.Position.X
	dy := target.Pos().Y - u.Position.Y
	dist := math.Hypot(dx, dy)

	if dist > attackRange {
		SmartMove(u, dx, dy, dist, speed, dt)
		return
	}
	if !u.Ready() {
		return
	}

	s.strike(u, target, u.Damage)
	st.Super = math.Min(1, st.Super+defs.SurgeChargePerHit)

	if n := bonus.SplitShots; n > 0 {
		base := math.Atan2(dy, dx)
		for i := 0; i < n; i++ {
			offset := (float64(i) - float64(n-1)/2) * defs.SurgeShotSpread
			st.Shots = append(st.Shots, newShot(u.Position, base+offset,
				defs.SurgeShotSpeed, defs.SurgeShotLifetime, u.Damage*defs.SurgeShotDamage))
		}
	}
}

// Surge без цели идёт к самому краю поля соперника.
func surgeBaseY(team types.Team) float64 {
	if team == types.Player {
		return 0
	}
	return arena.Height
}

func (s *UnitSystem) surgeTeleport(u *component.Unit) {
	st := u.Surge
	if u.Team == types.Player {
		u.Position.Y -= defs.SurgeTeleport
	} else {
		u.Position.Y += defs.SurgeTeleport
	}
	u.Position.X, u.Position.Y = arena.Clamp(u.Position.X, u.Position.Y, u.Size)
	st.Stage++
	st.Super = 0
	s.emit(event.SurgeUpgraded, event.SurgeUpgradeData{UnitID: u.ID, Stage: st.Stage})
}
