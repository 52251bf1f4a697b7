// pkg/arena/arena.go
package arena

import "math"

// Размеры логического поля боя.
const (
	Width   = 800.0
	Height  = 600.0
	MidLine = 300.0

	RiverY      = 280.0
	RiverHeight = 40.0
	RiverTop    = RiverY
	RiverBottom = RiverY + RiverHeight
	RiverCenter = RiverY + RiverHeight/2

	// OutOfBoundsMargin: насколько снаряд может вылететь за край поля.
	OutOfBoundsMargin = 50.0
)

// Bridge: проход через реку, задаётся левой границей и шириной.
type Bridge struct {
	X     float64
	Width float64
}

// Center возвращает x-координату середины моста.
func (b Bridge) Center() float64 {
	return b.X + b.Width/2
}

// Contains сообщает, попадает ли x в пролёт моста (границы включительно).
func (b Bridge) Contains(x float64) bool {
	return x >= b.X && x <= b.X+b.Width
}

var (
	BridgeLeft  = Bridge{X: 200, Width: 100}
	BridgeRight = Bridge{X: 500, Width: 100}
	Bridges     = [2]Bridge{BridgeLeft, BridgeRight}
)

// IsInPlayerZone: нижняя половина поля принадлежит игроку.
func IsInPlayerZone(y float64) bool {
	return y > MidLine
}

// IsInRiver проверяет, лежит ли y в полосе реки.
func IsInRiver(y float64) bool {
	return y >= RiverTop && y <= RiverBottom
}

// IsOnBridge is true outside the river band, and inside it only over a bridge span.
func IsOnBridge(x, y float64) bool {
	if !IsInRiver(y) {
		return true
	}
	return OverBridge(x)
}

// OverBridge: x попадает в пролёт какого-либо моста.
func OverBridge(x float64) bool {
	for _, b := range Bridges {
		if b.Contains(x) {
			return true
		}
	}
	return false
}

// IsDrowning: точка в реке и не на мосту.
func IsDrowning(x, y float64) bool {
	return IsInRiver(y) && !IsOnBridge(x, y)
}

// NearestBridgeX возвращает центр ближайшего моста.
func NearestBridgeX(x float64) float64 {
	left, right := BridgeLeft.Center(), BridgeRight.Center()
	if math.Abs(x-left) < math.Abs(x-right) {
		return left
	}
	return right
}

// Clamp ограничивает координаты прямоугольником поля с отступом margin.
func Clamp(x, y, margin float64) (float64, float64) {
	return clamp(x, margin, Width-margin), clamp(y, margin, Height-margin)
}

// OutOfBounds: точка вылетела за поле дальше чем на OutOfBoundsMargin.
func OutOfBounds(x, y float64) bool {
	return x < -OutOfBoundsMargin || x > Width+OutOfBoundsMargin ||
		y < -OutOfBoundsMargin || y > Height+OutOfBoundsMargin
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
