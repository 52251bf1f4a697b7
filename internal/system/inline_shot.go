// internal/system/inline_shot.go
package system

import (
	"math"

	"go-clash-arena/internal/component"
)

func newShot(from component.Position, angle, speed, life, damage float64) component.InlineShot {
	return component.InlineShot{
		Position: from,
		Velocity: component.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Life:     life,
		Damage:   damage,
	}
}

// advanceShots двигает мини-снаряды и бьёт первую цель в hitRadius.
// Снаряд исчезает после попадания или когда кончилось время.
func advanceShots(shots []component.InlineShot, hostiles []component.Target, dt, hitRadius float64, onHit func(component.Target, component.InlineShot)) []component.InlineShot {
	kept := shots[:0]
	for _, sh := range shots {
		sh.Position.X += sh.Velocity.X * dt
		sh.Position.Y += sh.Velocity.Y * dt
		sh.Life -= dt

		for _, h := range hostiles {
			if !h.Targetable() {
				continue
			}
			if sh.Position.DistanceTo(*h.Pos()) < hitRadius {
				onHit(h, sh)
				sh.Life = 0
				break
			}
		}
		if sh.Life > 0 {
			kept = append(kept, sh)
		}
	}
	return kept
}
