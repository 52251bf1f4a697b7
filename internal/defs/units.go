// internal/defs/units.go
package defs

// UnitStats holds the static combat numbers for one unit kind.
type UnitStats struct {
	Kind        UnitKind `json:"kind"`
	Health      float64  `json:"health"`
	Damage      float64  `json:"damage"`
	AttackSpeed float64  `json:"attackSpeed"`
	AttackRange float64  `json:"attackRange"`
	MoveSpeed   float64  `json:"moveSpeed"`
	Cost        int      `json:"cost"`
	Size        float64  `json:"size"`
}

func builtinUnits() map[UnitKind]UnitStats {
	return map[UnitKind]UnitStats{
		Knight:      {Kind: Knight, Health: 660, Damage: 75, AttackSpeed: 1.2, AttackRange: 25, MoveSpeed: 60, Cost: 3, Size: 15},
		MiniPekka:   {Kind: MiniPekka, Health: 600, Damage: 340, AttackSpeed: 1.8, AttackRange: 25, MoveSpeed: 90, Cost: 4, Size: 18},
		MagicArcher: {Kind: MagicArcher, Health: 250, Damage: 150, AttackSpeed: 1.1, AttackRange: 200, MoveSpeed: 70, Cost: 3, Size: 14},
		GoldKnight:  {Kind: GoldKnight, Health: 800, Damage: 120, AttackSpeed: 1.0, AttackRange: 30, MoveSpeed: 55, Cost: 4, Size: 18},
		MegaKnight:  {Kind: MegaKnight, Health: 1200, Damage: 180, AttackSpeed: 1.3, AttackRange: 35, MoveSpeed: 45, Cost: 7, Size: 24},
		Surge:       {Kind: Surge, Health: 5600, Damage: 1680, AttackSpeed: 0.6, AttackRange: 200, MoveSpeed: 120, Cost: 1, Size: 18},
		Lily:        {Kind: Lily, Health: 4200, Damage: 1400, AttackSpeed: 0.7, AttackRange: 180, MoveSpeed: 150, Cost: 1, Size: 16},
	}
}

// UnitLibrary: текущие характеристики юнитов, может быть переопределена из JSON.
var UnitLibrary = builtinUnits()

// ResetUnitLibrary возвращает встроенные значения.
func ResetUnitLibrary() {
	UnitLibrary = builtinUnits()
}

// Unit возвращает характеристики вида.
func Unit(kind UnitKind) (UnitStats, bool) {
	s, ok := UnitLibrary[kind]
	return s, ok
}

// MaxLimitedPerTeam: сколько Surge/Lily одного вида может жить у стороны одновременно.
const MaxLimitedPerTeam = 2

// MiniPekka
const MiniPekkaChargeMultiplier = 2.0

// GoldKnight
const (
	KnockbackStrength     = 200.0
	KnockbackLateralRatio = 0.3
	KnockbackMargin       = 20.0
)

// MegaKnight
const (
	JumpDamage       = 350.0
	JumpSplashRadius = 80.0
	JumpMinRange     = 100.0
	JumpMaxRange     = 300.0
	JumpCooldown     = 4.0
	JumpDuration     = 0.5
	JumpArcHeight    = 100.0
)

// Surge
const (
	SurgeChargePerHit   = 0.25
	SurgeTeleport       = 100.0
	SurgeMaxStage       = 4
	SurgeShotSpeed      = 300.0
	SurgeShotLifetime   = 0.5
	SurgeShotHitRadius  = 20.0
	SurgeShotDamage     = 0.5
	SurgeShotSpread     = 0.3
	SurgeAcquireFactor  = 1.5
	SurgeMoveThresholdY = 10.0
)

// StageBonus: множители одной стадии Surge.
type StageBonus struct {
	Speed      float64
	Range      float64
	SplitShots int
}

// SurgeStages индексируется номером стадии (1..4).
var SurgeStages = map[int]StageBonus{
	1: {Speed: 1, Range: 1, SplitShots: 0},
	2: {Speed: 1.5, Range: 1, SplitShots: 0},
	3: {Speed: 1.5, Range: 1.5, SplitShots: 3},
	4: {Speed: 1.5, Range: 1.5, SplitShots: 6},
}

// Lily
const (
	LilyChargePerHit         = 0.2
	LilyDashDistance         = 120.0
	LilyInvisibilityDelay    = 3.0
	LilyInvisibilityDuration = 2.5
	LilyDashCooldown         = 1.5
	LilyThornCount           = 3
	LilyThornSpread          = 0.25
	LilyThornSpeed           = 350.0
	LilyThornLifetime        = 0.6
	LilyThornHitRadius       = 20.0
)
