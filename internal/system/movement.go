// internal/system/movement.go
package system

import (
	"math"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/types"
	"go-clash-arena/internal/utils"
	"go-clash-arena/pkg/arena"
)

// needsBridge: прямой путь к targetY пересекает реку, либо юнит стоит в реке мимо моста.
func needsBridge(u *component.Unit, targetY float64) bool {
	y := u.Position.Y
	if y > arena.RiverBottom && targetY < arena.RiverTop {
		return true
	}
	if y < arena.RiverTop && targetY > arena.RiverBottom {
		return true
	}
	return arena.IsDrowning(u.Position.X, y)
}

// bridgeWaypoint заменяет цель промежуточной точкой у моста:
// выровняться по мосту, подойти к кромке, перейти.
func bridgeWaypoint(u *component.Unit, dest component.Position) component.Position {
	pos := u.Position
	bridgeX := arena.NearestBridgeX(pos.X)
	wp := component.Position{X: bridgeX}

	switch {
	case math.Abs(pos.X-bridgeX) > 10:
		wp.Y = dest.Y
		if pos.Y > arena.RiverBottom {
			wp.Y = math.Max(pos.Y-20, arena.RiverBottom+5)
		} else if pos.Y < arena.RiverTop {
			wp.Y = math.Min(pos.Y+20, arena.RiverTop-5)
		}
	case pos.Y >= arena.RiverTop-5 && pos.Y <= arena.RiverBottom+5:
		if u.Team == types.Player {
			wp.Y = arena.RiverTop - 10
		} else {
			wp.Y = arena.RiverBottom + 10
		}
	default:
		wp.Y = arena.RiverCenter
	}
	return wp
}

// MoveToward делает ограниченный шаг к dest с обходом реки через мост.
func MoveToward(u *component.Unit, dest component.Position, dt float64) {
	if needsBridge(u, dest.Y) {
		dest = bridgeWaypoint(u, dest)
	}
	dx, dy := dest.X-u.Position.X, dest.Y-u.Position.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	ratio := math.Min(u.MoveSpeed*dt/dist, 1)
	u.Position.X += dx * ratio
	u.Position.Y += dy * ratio
	u.Position.X, u.Position.Y = arena.Clamp(u.Position.X, u.Position.Y, u.Size)
}

// marchY: базовая линия соперника, к которой идёт юнит без цели.
func marchY(team types.Team) float64 {
	if team == types.Player {
		return arena.PlayerMarchY
	}
	return arena.EnemyMarchY
}

// MarchForward ведёт юнит к базовой линии соперника, не меняя x.
func MarchForward(u *component.Unit, dt float64) {
	MoveToward(u, component.Position{X: u.Position.X, Y: marchY(u.Team)}, dt)
}

// SmartMove: упрощённый обход реки для Surge и Lily. У реки вне пролёта
// моста юнит сначала смещается по x к ближайшему мосту, а по настилу
// идёт так, чтобы не сойти с него в воду.
func SmartMove(u *component.Unit, dx, dy, dist, speed, dt float64) {
	if dist == 0 || speed <= 0 {
		return
	}
	step := speed * dt
	x, y := u.Position.X, u.Position.Y
	nextX := x + dx/dist*step
	nextY := y + dy/dist*step

	wouldEnter := (y < arena.RiverTop && nextY >= arena.RiverTop) ||
		(y > arena.RiverBottom && nextY <= arena.RiverBottom) ||
		arena.IsInRiver(nextY)

	if wouldEnter {
		if !arena.OverBridge(x) {
			bridgeDx := arena.NearestBridgeX(x) - x
			u.Position.X += utils.Sign(bridgeDx) * math.Min(step, math.Abs(bridgeDx))
			return
		}
		if arena.IsInRiver(nextY) && !arena.OverBridge(nextX) {
			nextX = x
		}
	}
	u.Position.X, u.Position.Y = arena.Clamp(nextX, nextY, u.Size)
}
