// internal/component/visual.go
package component

// SplashMarker: короткий круг на месте приземления, взрыва или утопления.
type SplashMarker struct {
	Position Position
	Radius   float64
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

func (m *SplashMarker) Done() bool {
	return m.Timer >= m.Duration
}
