// internal/component/unit.go
package component

import (
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"
)

// Unit: наземный юнит любого вида. Поведение вида задаётся системой,
// а состояние особых способностей лежит в необязательных полях ниже.
type Unit struct {
	ID       types.EntityID
	Kind     defs.UnitKind
	Team     types.Team
	Position Position
	Health   Health
	Combat
	MoveSpeed     float64
	BaseMoveSpeed float64 // без заклинаний
	Size          float64
	Cost          int

	// Пока юнит в салоне Tesla, он неуязвим и ничего не делает.
	IsBeingCarried bool

	Charged bool // MiniPekka: следующий удар двойной
	Jump    *JumpState
	Surge   *SurgeState
	Lily    *LilyState
}

// JumpState: прыжок MegaKnight.
type JumpState struct {
	Jumping  bool
	Start    Position
	End      Position
	Elapsed  float64
	Cooldown float64
	Height   float64 // текущая высота дуги, только для отрисовки
}

// Progress: доля пройденного прыжка в [0, 1].
func (j *JumpState) Progress() float64 {
	p := j.Elapsed / defs.JumpDuration
	if p > 1 {
		return 1
	}
	return p
}

// InlineShot: мини-снаряд, который живёт внутри юнита (осколки Surge, шипы Lily).
type InlineShot struct {
	Position Position
	Velocity Velocity
	Life     float64
	Damage   float64
}

// SurgeState: стадии и заряд Surge.
type SurgeState struct {
	Stage int
	Super float64
	Shots []InlineShot
}

// LilyState: невидимость, рывок и шипы Lily.
type LilyState struct {
	Super           float64
	Invisible       bool
	InvisibleTimer  float64
	SinceLastAttack float64
	DashCooldown    float64
	Thorns          []InlineShot
}

// NewUnit собирает юнит из таблицы характеристик.
func NewUnit(id types.EntityID, team types.Team, x, y float64, stats defs.UnitStats) *Unit {
	u := &Unit{
		ID:       id,
		Kind:     stats.Kind,
		Team:     team,
		Position: Position{X: x, Y: y},
		Health:   Health{Value: stats.Health, Max: stats.Health},
		Combat: Combat{
			Damage:          stats.Damage,
			AttackSpeed:     stats.AttackSpeed,
			BaseAttackSpeed: stats.AttackSpeed,
			AttackRange:     stats.AttackRange,
		},
		MoveSpeed:     stats.MoveSpeed,
		BaseMoveSpeed: stats.MoveSpeed,
		Size:          stats.Size,
		Cost:          stats.Cost,
	}
	switch stats.Kind {
	case defs.MiniPekka:
		u.Charged = true
	case defs.MegaKnight:
		u.Jump = &JumpState{}
	case defs.Surge:
		u.Surge = &SurgeState{Stage: 1}
	case defs.Lily:
		u.Lily = &LilyState{}
	}
	return u
}

func (u *Unit) EntityID() types.EntityID { return u.ID }
func (u *Unit) Pos() *Position { return &u.Position }
func (u *Unit) Side() types.Team { return u.Team }
func (u *Unit) Alive() bool { return u.Health.Alive() }
func (u *Unit) Radius() float64 { return u.Size }
func (u *Unit) IsStructure() bool { return false }

// TakeDamage не действует на юнит в салоне Tesla.
func (u *Unit) TakeDamage(amount float64) {
	if u.IsBeingCarried {
		return
	}
	u.Health.Damage(amount)
}

// SetBaseMoveSpeed меняет табличную скорость вместе с действующей.
func (u *Unit) SetBaseMoveSpeed(v float64) {
	u.BaseMoveSpeed = v
	u.MoveSpeed = v
}

// Targetable: юнит можно выбрать целью.
func (u *Unit) Targetable() bool {
	return u.Alive() && !u.IsBeingCarried
}

// Jumping: MegaKnight в воздухе.
func (u *Unit) Jumping() bool {
	return u.Jump != nil && u.Jump.Jumping
}

// Invisible: Lily в невидимости.
func (u *Unit) Invisible() bool {
	return u.Lily != nil && u.Lily.Invisible
}
