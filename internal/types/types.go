// internal/types/types.go
package types

// EntityID: уникальный идентификатор сущности в пределах матча.
type EntityID uint64

// Team: сторона, которой принадлежит сущность.
type Team int

const (
	Player Team = iota
	Enemy
)

// Opponent возвращает противоположную сторону.
func (t Team) Opponent() Team {
	if t == Player {
		return Enemy
	}
	return Player
}

func (t Team) String() string {
	if t == Player {
		return "player"
	}
	return "enemy"
}

// Result: итог матча.
type Result int

const (
	ResultNone Result = iota
	ResultPlayerWins
	ResultEnemyWins
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWins:
		return "playerWins"
	case ResultEnemyWins:
		return "enemyWins"
	default:
		return "none"
	}
}
