// internal/config/config.go
package config

import (
	"image/color"

	"go-clash-arena/pkg/arena"
)

const (
	ScreenWidth  = int(arena.Width)
	ScreenHeight = int(arena.Height) + HUDHeight
	HUDHeight    = 90

	MaxDeltaTime = 0.06

	HealthBarWidth  = 30.0
	HealthBarHeight = 4.0
	HealthBarOffset = 8.0

	CardWidth   = 56.0
	CardHeight  = 60.0
	CardSpacing = 6.0

	ElixirBarHeight = 14.0

	SplashMarkerLifetime = 0.6

	// Прозрачность оверлеев, заклинаний и следов шин.
	OverlayAlpha = 160
	SpellAlpha   = 90
	SkidAlpha    = 140
)

var (
	BackgroundColor   = color.RGBA{60, 120, 60, 255}
	PlayerHalfColor   = color.RGBA{70, 140, 70, 255}
	EnemyHalfColor    = color.RGBA{60, 125, 60, 255}
	RiverColor        = color.RGBA{50, 110, 200, 255}
	BridgeColor       = color.RGBA{140, 100, 60, 255}
	PlayerColor       = color.RGBA{60, 120, 255, 255}
	EnemyColor        = color.RGBA{230, 60, 60, 255}
	HealthBarBgColor  = color.RGBA{30, 30, 30, 255}
	HealthGoodColor   = color.RGBA{80, 220, 80, 255}
	HealthBadColor    = color.RGBA{230, 70, 50, 255}
	ProjectileColor   = color.RGBA{255, 240, 120, 255}
	ShotColor         = color.RGBA{255, 180, 60, 255}
	ThornColor        = color.RGBA{120, 255, 140, 255}
	TeslaColor        = color.RGBA{200, 200, 220, 255}
	SkidColor         = color.RGBA{40, 40, 40, 255}
	ElixirColor       = color.RGBA{200, 60, 220, 255}
	HUDColor          = color.RGBA{25, 25, 35, 255}
	CardColor         = color.RGBA{70, 70, 90, 255}
	CardSelectedColor = color.RGBA{230, 200, 80, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 255}
	RageColor         = color.RGBA{200, 60, 220, 255}
	FireballColor     = color.RGBA{255, 120, 30, 255}
	FreezeColor       = color.RGBA{150, 220, 255, 255}
	PoisonColor       = color.RGBA{120, 200, 60, 255}
	SplashColor       = color.RGBA{255, 255, 255, 255}
)
