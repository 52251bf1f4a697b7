// internal/defs/tesla.go
package defs

// Параметры машины Tesla.
const (
	TeslaHealth      = 600.0
	TeslaDamage      = 200.0
	TeslaSpeed       = 180.0
	TeslaCost        = 5
	TeslaLifetime    = 30.0
	TeslaSize        = 30.0
	TeslaHitCooldown = 0.5
	TeslaTurnSpeed   = 3.0
	TeslaCapacity    = 100

	TeslaPickupReach = 30.0
	TeslaMargin      = 40.0
	TeslaPushForce   = 50.0
	TeslaHitFlash    = 0.2
	TeslaHonkRange   = 100.0
	TeslaDamping     = 0.95

	TeslaSkidThreshold = 0.3
	TeslaSkidChance    = 0.3
	TeslaSkidCap       = 20
	TeslaDriftFactor   = 0.3

	// Постепенная высадка начинается, когда осталось 22.5 c из 30.
	TeslaReleaseStart    = 22.5
	TeslaReleaseInterval = 2.5
	TeslaReleaseBatch    = 10

	// Заряженная Tesla из чит-меню набирает до этого числа мини-пекк.
	LoadedTeslaPassengers = 75
)

// ProjectileConfig описывает снаряд общей модели.
type ProjectileConfig struct {
	Damage       float64
	Speed        float64
	Piercing     bool
	Splash       bool
	SplashRadius float64
	Seeking      bool
	MaxRange     float64
}

// Общие параметры снарядов.
const (
	ProjectileHitRadius   = 20.0
	ProjectileSeekBlend   = 0.1
	ProjectileSplashRatio = 0.5
)

// ArcherArrow: стрела MagicArcher, урон берётся из юнита.
func ArcherArrow(damage float64) ProjectileConfig {
	return ProjectileConfig{
		Damage:       damage,
		Speed:        400,
		Piercing:     true,
		Splash:       true,
		SplashRadius: 60,
		Seeking:      true,
		MaxRange:     500,
	}
}
