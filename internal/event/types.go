// internal/event/types.go
package event

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/types"
)

const (
	UnitSpawned         EventType = "UnitSpawned"     // Юнит высажен
	BuildingSpawned     EventType = "BuildingSpawned" // Tesla выехала
	SpellCast           EventType = "SpellCast"
	Attack              EventType = "Attack" // Удар юнита или башни
	ProjectileRequested EventType = "ProjectileRequested"
	ProjectileHit       EventType = "ProjectileHit"
	KnockbackQueued     EventType = "KnockbackQueued"
	JumpLanded          EventType = "JumpLanded"
	SurgeUpgraded       EventType = "SurgeUpgraded"
	SuperUsed           EventType = "SuperUsed"
	TeslaHit            EventType = "TeslaHit"
	TeslaHonk           EventType = "TeslaHonk"
	PassengersPicked    EventType = "PassengersPicked"
	PassengersDropped   EventType = "PassengersDropped"
	TeslaExploded       EventType = "TeslaExploded"
	UnitDrowned         EventType = "UnitDrowned"
	EntityDied          EventType = "EntityDied"
	TowerDestroyed      EventType = "TowerDestroyed"
	MatchEnded          EventType = "MatchEnded"
	MatchRestarted      EventType = "MatchRestarted"
)

type SpawnData struct {
	ID       types.EntityID
	Team     types.Team
	Kind     string
	Position component.Position
}

type SpellCastData struct {
	ID       types.EntityID
	Team     types.Team
	Kind     string
	Position component.Position
}

type AttackData struct {
	AttackerID types.EntityID
	TargetID   types.EntityID
	Team       types.Team
	Damage     float64
}

// ProjectileRequestData: MagicArcher просит выпустить стрелу.
type ProjectileRequestData struct {
	ShooterID types.EntityID
	Team      types.Team
	Start     component.Position
	Target    component.Position
	Damage    float64
}

type ProjectileHitData struct {
	ProjectileID types.EntityID
	TargetID     types.EntityID
	Damage       float64
	Splash       bool
}

// KnockbackData: GoldKnight отбрасывает цель.
type KnockbackData struct {
	AttackerID types.EntityID
	TargetID   types.EntityID
	From       component.Position
	Strength   float64
}

// JumpLandedData: MegaKnight приземлился. Урон по TargetIDs и по башням
// рядом с End наносит получатель события.
type JumpLandedData struct {
	UnitID    types.EntityID
	Team      types.Team
	Start     component.Position
	End       component.Position
	TargetIDs []types.EntityID
	Damage    float64
	Radius    float64
}

type SurgeUpgradeData struct {
	UnitID types.EntityID
	Stage  int
}

type SuperData struct {
	UnitID types.EntityID
	Kind   string
}

type TeslaHitData struct {
	TeslaID  types.EntityID
	TargetID types.EntityID
	Damage   float64
}

type PassengersData struct {
	TeslaID types.EntityID
	Count   int
}

type TeslaData struct {
	TeslaID  types.EntityID
	Team     types.Team
	Position component.Position
}

type DrownData struct {
	UnitID   types.EntityID
	Team     types.Team
	Position component.Position
}

type DeathData struct {
	ID        types.EntityID
	Team      types.Team
	Kind      string
	Structure bool
}

type MatchEndData struct {
	Result types.Result
}
