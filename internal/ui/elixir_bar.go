// internal/ui/elixir_bar.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ElixirBar: полоса эликсира игрока, поделённая на целые единицы.
type ElixirBar struct {
	X, Y          float32
	Width, Height float32
	FillColor     color.Color
	BgColor       color.Color
	TextColor     color.Color
	fontFace      font.Face
}

func NewElixirBar(x, y, width, height float32, fill, bg, textColor color.Color, face font.Face) *ElixirBar {
	return &ElixirBar{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		FillColor: fill,
		BgColor:   bg,
		TextColor: textColor,
		fontFace:  face,
	}
}

// Draw рисует текущий запас. multiplier > 1 показывается рядом с числом.
func (b *ElixirBar) Draw(screen *ebiten.Image, value, maxValue, multiplier float64) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, b.BgColor, false)
	if maxValue > 0 {
		ratio := float32(math.Max(0, math.Min(1, value/maxValue)))
		vector.DrawFilledRect(screen, b.X, b.Y, b.Width*ratio, b.Height, b.FillColor, false)

		// деления по единицам
		step := b.Width / float32(maxValue)
		for i := 1; i < int(maxValue); i++ {
			x := b.X + step*float32(i)
			vector.StrokeLine(screen, x, b.Y, x, b.Y+b.Height, 1, b.BgColor, false)
		}
	}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, b.TextColor, false)

	label := fmt.Sprintf("%d/%d", int(value), int(maxValue))
	if multiplier > 1 {
		label += fmt.Sprintf("  x%g", multiplier)
	}
	text.Draw(screen, label, b.fontFace, int(b.X+b.Width)+8, int(b.Y+b.Height)-2, b.TextColor)
}
