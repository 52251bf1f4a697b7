// internal/defs/cards.go
package defs

// CardType: что делает карта при розыгрыше.
type CardType int

const (
	CardUnit CardType = iota
	CardBuilding
	CardSpell
)

// Card: одна карта в колоде.
type Card struct {
	ID    string
	Type  CardType
	Label string
}

// Deck: порядок карт на панели (и горячих клавиш).
var Deck = []Card{
	{ID: string(Knight), Type: CardUnit, Label: "Knight"},
	{ID: string(MiniPekka), Type: CardUnit, Label: "Mini P"},
	{ID: string(MagicArcher), Type: CardUnit, Label: "Archer"},
	{ID: string(GoldKnight), Type: CardUnit, Label: "Gold K"},
	{ID: string(MegaKnight), Type: CardUnit, Label: "Mega K"},
	{ID: string(Rage), Type: CardSpell, Label: "Rage"},
	{ID: string(Fireball), Type: CardSpell, Label: "Fire"},
	{ID: string(Freeze), Type: CardSpell, Label: "Freeze"},
	{ID: string(Poison), Type: CardSpell, Label: "Poison"},
	{ID: string(Tesla), Type: CardBuilding, Label: "Tesla"},
	{ID: string(Surge), Type: CardUnit, Label: "Surge"},
	{ID: string(Lily), Type: CardUnit, Label: "Lily"},
}

// SpellCost: карта заклинания стоит половину цены, но не меньше 1.
func SpellCost(kind SpellKind) int {
	cfg, ok := SpellLibrary[kind]
	if !ok {
		return 0
	}
	if c := cfg.Cost / 2; c > 0 {
		return c
	}
	return 1
}

// Cost возвращает цену карты в эликсире, 0 для неизвестной.
func Cost(id string) int {
	if s, ok := UnitLibrary[UnitKind(id)]; ok {
		return s.Cost
	}
	if BuildingKind(id) == Tesla {
		return TeslaCost
	}
	return SpellCost(SpellKind(id))
}
