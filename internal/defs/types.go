// internal/defs/types.go
package defs

// UnitKind: закрытый набор наземных юнитов.
type UnitKind string

const (
	Knight      UnitKind = "knight"
	MiniPekka   UnitKind = "minipekka"
	MagicArcher UnitKind = "magicarcher"
	GoldKnight  UnitKind = "goldknight"
	MegaKnight  UnitKind = "megaknight"
	Surge       UnitKind = "surge"
	Lily        UnitKind = "lily"
)

// AllUnitKinds: фиксированный порядок для UI и таблиц.
var AllUnitKinds = []UnitKind{Knight, MiniPekka, MagicArcher, GoldKnight, MegaKnight, Surge, Lily}

// Limited сообщает, действует ли для вида ограничение на число живых юнитов.
func (k UnitKind) Limited() bool {
	return k == Surge || k == Lily
}

// PickupEligible: "быстрый рыцарь-таран", которого Tesla забирает в салон.
// Набор фиксирован.
func (k UnitKind) PickupEligible() bool {
	return k == MiniPekka
}

// BuildingKind: здания (сейчас только Tesla).
type BuildingKind string

const Tesla BuildingKind = "tesla"

// SpellKind: тип заклинания.
type SpellKind string

const (
	Rage     SpellKind = "rage"
	Fireball SpellKind = "fireball"
	Freeze   SpellKind = "freeze"
	Poison   SpellKind = "poison"
)

var AllSpellKinds = []SpellKind{Rage, Fireball, Freeze, Poison}

// TowerKind: архетип башни.
type TowerKind string

const (
	King     TowerKind = "king"
	Princess TowerKind = "princess"
)
