// internal/system/elixir.go
package system

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/types"
)

// ElixirSystem: запасы эликсира обеих сторон.
type ElixirSystem struct {
	pools [2]component.Elixir
	rate  float64
}

// NewElixirSystem создаёт пулы с начальным запасом start. Множитель
// игрока задаётся отдельно, у соперника он всегда 1.
func NewElixirSystem(start, max, rate, playerMultiplier float64) *ElixirSystem {
	s := &ElixirSystem{rate: rate}
	for i := range s.pools {
		s.pools[i] = component.Elixir{Value: start, Max: max, Multiplier: 1}
	}
	s.pools[types.Player].Multiplier = playerMultiplier
	return s
}

func (s *ElixirSystem) Update(deltaTime float64) {
	for i := range s.pools {
		s.pools[i].Regen(s.rate, deltaTime)
	}
}

func (s *ElixirSystem) Spend(team types.Team, cost int) bool {
	return s.pools[team].Spend(cost)
}

func (s *ElixirSystem) Value(team types.Team) float64 {
	return s.pools[team].Value
}

func (s *ElixirSystem) Max(team types.Team) float64 {
	return s.pools[team].Max
}

func (s *ElixirSystem) SetMultiplier(team types.Team, m float64) {
	s.pools[team].Multiplier = m
}

func (s *ElixirSystem) Multiplier(team types.Team) float64 {
	return s.pools[team].Multiplier
}

// Reset выставляет обоим запас value, множители не трогает.
func (s *ElixirSystem) Reset(value float64) {
	for i := range s.pools {
		s.pools[i].Value = value
	}
}
