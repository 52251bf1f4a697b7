// internal/system/utils.go
package system

import (
	"math"

	"go-clash-arena/internal/component"
)

// ApplyDamage наносит урон цели. Юнит в салоне Tesla урон игнорирует сам.
func ApplyDamage(target component.Target, damage float64) {
	if target == nil || damage <= 0 || !target.Alive() {
		return
	}
	target.TakeDamage(damage)
}

// Nearest ищет ближайшую доступную цель не дальше maxDist.
// maxDist <= 0 означает без ограничения. При равенстве побеждает первая.
func Nearest(from component.Position, targets []component.Target, maxDist float64) (component.Target, float64) {
	var best component.Target
	bestDist := math.Inf(1)
	for _, t := range targets {
		if !t.Targetable() {
			continue
		}
		d := from.DistanceTo(*t.Pos())
		if maxDist > 0 && d > maxDist {
			continue
		}
		if d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, bestDist
}

// pushFrom сдвигает точку p по направлению от from на distance.
// Если точки совпадают, направление не определено и сдвига нет.
func pushFrom(p *component.Position, from component.Position, distance float64) {
	dx, dy := p.X-from.X, p.Y-from.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return
	}
	p.X += dx / d * distance
	p.Y += dy / d * distance
}
