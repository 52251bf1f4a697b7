// pkg/render/color.go
package render

import (
	"image/color"

	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"
)

// ArenaColors: цвета статичного задника поля.
type ArenaColors struct {
	PlayerHalf color.RGBA
	EnemyHalf  color.RGBA
	River      color.RGBA
	Bridge     color.RGBA
}

// TeamColors: основной цвет каждой стороны.
type TeamColors struct {
	Player color.RGBA
	Enemy  color.RGBA
}

// Of возвращает цвет команды.
func (c TeamColors) Of(team types.Team) color.RGBA {
	if team == types.Player {
		return c.Player
	}
	return c.Enemy
}

// SpellColors: полупрозрачные круги действующих заклинаний.
type SpellColors map[defs.SpellKind]color.RGBA

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor смешивает цвет с белым пополам.
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(c.R) + 255) / 2),
		G: uint8((int(c.G) + 255) / 2),
		B: uint8((int(c.B) + 255) / 2),
		A: c.A,
	}
}

// WithAlpha делает непрозрачный цвет полупрозрачным.
// color.RGBA хранит премультиплицированные значения, поэтому каналы тоже масштабируются.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	k := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: a,
	}
}
