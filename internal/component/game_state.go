package component

import "go-clash-arena/internal/types"

// Score хранит короны и убийства сторон, индекс по types.Team.
type Score struct {
	Crowns [2]int
	Kills  [2]int
}

// Elixir: запас эликсира одной стороны.
type Elixir struct {
	Value      float64
	Max        float64
	Multiplier float64
}

// Spend списывает cost, если хватает. Иначе ничего не меняет.
func (e *Elixir) Spend(cost int) bool {
	if e.Value < float64(cost) {
		return false
	}
	e.Value -= float64(cost)
	return true
}

// Regen прибавляет rate*multiplier*dt, не выше максимума.
func (e *Elixir) Regen(rate, dt float64) {
	e.Value += rate * e.Multiplier * dt
	if e.Value > e.Max {
		e.Value = e.Max
	}
}

// MatchState: итог матча и пауза.
type MatchState struct {
	Result types.Result
	Paused bool
	Time   float64
}
