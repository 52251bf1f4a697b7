// internal/ui/card_bar.go
package ui

import (
	"image"
	"image/color"
	"strconv"

	"go-clash-arena/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Подписи горячих клавиш в порядке колоды.
var hotkeyLabels = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

// CardButton: одна карта на панели.
type CardButton struct {
	Rect image.Rectangle
	Card defs.Card
	Cost int
}

// CardBar: ряд карт колоды. Выбранная подсвечивается, недоступные по эликсиру тускнеют.
type CardBar struct {
	Buttons       []CardButton
	Selected      int // -1: ничего не выбрано
	CardColor     color.RGBA
	SelectedColor color.RGBA
	TextColor     color.Color
	fontFace      font.Face
}

func NewCardBar(x, y, width, height, spacing int, deck []defs.Card, cardColor, selectedColor color.RGBA, textColor color.Color, face font.Face) *CardBar {
	bar := &CardBar{
		Selected:      -1,
		CardColor:     cardColor,
		SelectedColor: selectedColor,
		TextColor:     textColor,
		fontFace:      face,
	}
	for i, card := range deck {
		left := x + i*(width+spacing)
		bar.Buttons = append(bar.Buttons, CardButton{
			Rect: image.Rect(left, y, left+width, y+height),
			Card: card,
			Cost: defs.Cost(card.ID),
		})
	}
	return bar
}

// Select выбирает карту по индексу, повторный выбор снимает выделение.
func (b *CardBar) Select(i int) {
	if i < 0 || i >= len(b.Buttons) {
		return
	}
	if b.Selected == i {
		b.Selected = -1
		return
	}
	b.Selected = i
}

// Current возвращает выбранную карту.
func (b *CardBar) Current() (defs.Card, bool) {
	if b.Selected < 0 || b.Selected >= len(b.Buttons) {
		return defs.Card{}, false
	}
	return b.Buttons[b.Selected].Card, true
}

// Deselect снимает выделение.
func (b *CardBar) Deselect() {
	b.Selected = -1
}

// HitTest возвращает индекс карты под курсором или -1.
func (b *CardBar) HitTest(x, y int) int {
	p := image.Pt(x, y)
	for i, btn := range b.Buttons {
		if p.In(btn.Rect) {
			return i
		}
	}
	return -1
}

func (b *CardBar) Draw(screen *ebiten.Image, elixir float64) {
	for i, btn := range b.Buttons {
		r := btn.Rect
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())

		bg := b.CardColor
		if float64(btn.Cost) > elixir {
			bg = dim(bg)
		}
		vector.DrawFilledRect(screen, x, y, w, h, bg, false)
		if i == b.Selected {
			vector.StrokeRect(screen, x, y, w, h, 3, b.SelectedColor, false)
		}

		text.Draw(screen, btn.Card.Label, b.fontFace, r.Min.X+4, r.Min.Y+16, b.TextColor)
		text.Draw(screen, strconv.Itoa(btn.Cost), b.fontFace, r.Min.X+4, r.Max.Y-6, b.SelectedColor)
		if i < len(hotkeyLabels) {
			text.Draw(screen, hotkeyLabels[i], b.fontFace, r.Max.X-10, r.Max.Y-6, b.TextColor)
		}
	}
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
