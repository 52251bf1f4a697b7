// component/movement.go
package component

import "math"

// Position: компонент позиции
type Position struct {
	X, Y float64
}

// DistanceTo: евклидово расстояние между точками.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Velocity: компонент скорости в единицах за секунду
type Velocity struct {
	X, Y float64
}

// Length возвращает модуль скорости.
func (v Velocity) Length() float64 {
	return math.Hypot(v.X, v.Y)
}
