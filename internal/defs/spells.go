// internal/defs/spells.go
package defs

// SpellConfig describes one area effect.
type SpellConfig struct {
	Kind             SpellKind
	Cost             int
	Radius           float64
	Duration         float64
	Damage           float64
	DamagePerSecond  float64
	SpeedBoost       float64
	AttackSpeedBoost float64
	SlowAmount       float64
}

// FreezeAttackSpeed: почти нулевая скорость атаки под заморозкой.
const FreezeAttackSpeed = 0.001

var SpellLibrary = map[SpellKind]SpellConfig{
	Rage:     {Kind: Rage, Cost: 1, Radius: 100, Duration: 5, SpeedBoost: 1.5, AttackSpeedBoost: 1.4},
	Fireball: {Kind: Fireball, Cost: 3, Radius: 80, Duration: 0.5, Damage: 500},
	Freeze:   {Kind: Freeze, Cost: 3, Radius: 80, Duration: 4},
	Poison:   {Kind: Poison, Cost: 3, Radius: 100, Duration: 8, DamagePerSecond: 50, SlowAmount: 0.7},
}

// Friendly сообщает, действует ли заклинание на свою сторону.
func (k SpellKind) Friendly() bool {
	return k == Rage
}
