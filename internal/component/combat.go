package component

import "go-clash-arena/internal/types"

// Health: компонент здоровья. Сущность жива, пока Value > 0.
type Health struct {
	Value float64
	Max   float64
}

// Alive сообщает, что здоровье больше нуля.
func (h *Health) Alive() bool {
	return h.Value > 0
}

// Damage уменьшает здоровье, не опуская ниже нуля.
func (h *Health) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
}

// Fraction: доля оставшегося здоровья для полосок.
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

// Combat: общие боевые характеристики юнитов и башен.
// AttackSpeed действующая скорость, BaseAttackSpeed табличная; заклинания
// пересчитывают первую из второй.
type Combat struct {
	Damage          float64
	AttackSpeed     float64 // атак в секунду
	BaseAttackSpeed float64
	AttackRange     float64
	AttackCooldown  float64 // сколько осталось до следующей атаки
	Target          Target
}

// Interval: время между атаками.
func (c *Combat) Interval() float64 {
	if c.AttackSpeed <= 0 {
		return 0
	}
	return 1 / c.AttackSpeed
}

// Tick уменьшает кулдаун, не ниже нуля.
func (c *Combat) Tick(dt float64) {
	c.AttackCooldown -= dt
	if c.AttackCooldown < 0 {
		c.AttackCooldown = 0
	}
}

// Ready: можно атаковать.
func (c *Combat) Ready() bool {
	return c.AttackCooldown <= 0
}

// ResetCooldown выставляет кулдаун после удачной атаки.
func (c *Combat) ResetCooldown() {
	c.AttackCooldown = c.Interval()
}

// Target: всё, во что можно попасть (юниты и башни).
type Target interface {
	EntityID() types.EntityID
	Pos() *Position
	Side() types.Team
	Alive() bool
	Targetable() bool
	Radius() float64
	TakeDamage(amount float64)
	IsStructure() bool
}
