// internal/defs/towers.go
package defs

// TowerStats: характеристики башни одного архетипа.
type TowerStats struct {
	Kind        TowerKind
	Health      float64
	Damage      float64
	AttackSpeed float64
	AttackRange float64
	Size        float64
}

var TowerLibrary = map[TowerKind]TowerStats{
	King:     {Kind: King, Health: 7200, Damage: 25, AttackSpeed: 0.5, AttackRange: 120, Size: 50},
	Princess: {Kind: Princess, Health: 4200, Damage: 20, AttackSpeed: 0.4, AttackRange: 140, Size: 40},
}

// CrownsFor: сколько корон приносит разрушение башни.
func CrownsFor(kind TowerKind) int {
	if kind == King {
		return 3
	}
	return 1
}
