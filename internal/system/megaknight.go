// internal/system/megaknight.go
package system

import (
	"math"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"
	"go-clash-arena/internal/utils"
)

// megaKnightUpdate: на земле ищет цель для прыжка на дистанции [100, 300],
// в воздухе только летит по дуге. Без цели для прыжка: обычный юнит.
func megaKnightUpdate(s *UnitSystem, u *component.Unit, hostiles []component.Target, dt float64) {
	j := u.Jump
	j.Cooldown = math.Max(0, j.Cooldown-dt)

	if j.Jumping {
		s.advanceJump(u, hostiles, dt)
		return
	}

	// Под заморозкой скорость 0, прыгать нельзя.
	if j.Cooldown <= 0 && u.MoveSpeed > 0 {
		if target := jumpTarget(u, hostiles); target != nil {
			j.Jumping = true
			j.Elapsed = 0
			j.Start = u.Position
			j.End = *target.Pos()
			return
		}
	}
	s.baseUpdate(u, hostiles, dt)
}

func jumpTarget(u *component.Unit, hostiles []component.Target) component.Target {
	var best component.Target
	bestDist := math.Inf(1)
	for _, h := range hostiles {
		if !h.Targetable() {
			continue
		}
		d := u.Position.DistanceTo(*h.Pos())
		if d >= defs.JumpMinRange && d <= defs.JumpMaxRange && d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}

func (s *UnitSystem) advanceJump(u *component.Unit, hostiles []component.Target, dt float64) {
	j := u.Jump
	j.Elapsed += dt

	if j.Elapsed < defs.JumpDuration {
		t := j.Progress()
		j.Height = math.Sin(t*math.Pi) * defs.JumpArcHeight
		u.Position.X = utils.Lerp(j.Start.X, j.End.X, t)
		u.Position.Y = utils.Lerp(j.Start.Y, j.End.Y, t) - j.Height
		return
	}

	u.Position = j.End
	j.Jumping = false
	j.Elapsed = 0
	j.Height = 0
	j.Cooldown = defs.JumpCooldown

	var ids []types.EntityID
	for _, h := range hostiles {
		if h.Targetable() && u.Position.DistanceTo(*h.Pos()) <= defs.JumpSplashRadius {
			ids = append(ids, h.EntityID())
		}
	}
	s.emit(event.JumpLanded, event.JumpLandedData{
		UnitID:    u.ID,
		Team:      u.Team,
		Start:     j.Start,
		End:       j.End,
		TargetIDs: ids,
		Damage:    defs.JumpDamage,
		Radius:    defs.JumpSplashRadius,
	})
}
