// pkg/render/arena_renderer.go
package render

import (
	"image/color"
	"math"
	"strconv"

	"go-clash-arena/internal/app"
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/config"
	"go-clash-arena/internal/defs"
	"go-clash-arena/pkg/arena"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Буквы на кружках юнитов.
var unitLetters = map[defs.UnitKind]string{
	defs.Knight:      "K",
	defs.MiniPekka:   "P",
	defs.MagicArcher: "A",
	defs.GoldKnight:  "G",
	defs.MegaKnight:  "M",
	defs.Surge:       "S",
	defs.Lily:        "L",
}

// ArenaRenderer рисует снимок матча: задник поля, башни, юниты, машины и эффекты.
// Мировые координаты совпадают с экранными, HUD рисуется ниже поля.
type ArenaRenderer struct {
	width       int
	height      int
	fontFace    font.Face
	arenaColors ArenaColors
	teamColors  TeamColors
	spellColors SpellColors
	arenaImage  *ebiten.Image // предрендеренный задник
}

func NewArenaRenderer(width, height int, face font.Face, arenaColors ArenaColors, teamColors TeamColors, spellColors SpellColors) *ArenaRenderer {
	r := &ArenaRenderer{
		width:       width,
		height:      height,
		fontFace:    face,
		arenaColors: arenaColors,
		teamColors:  teamColors,
		spellColors: spellColors,
		arenaImage:  ebiten.NewImage(width, height),
	}
	r.RenderArenaImage()
	return r
}

// RenderArenaImage один раз рисует половины поля, реку и мосты.
func (r *ArenaRenderer) RenderArenaImage() {
	r.arenaImage.Clear()
	w := float32(r.width)
	vector.DrawFilledRect(r.arenaImage, 0, 0, w, float32(arena.MidLine), r.arenaColors.EnemyHalf, false)
	vector.DrawFilledRect(r.arenaImage, 0, float32(arena.MidLine), w, float32(float64(r.height)-arena.MidLine), r.arenaColors.PlayerHalf, false)
	vector.DrawFilledRect(r.arenaImage, 0, float32(arena.RiverTop), w, float32(arena.RiverHeight), r.arenaColors.River, false)
	for _, b := range arena.Bridges {
		vector.DrawFilledRect(r.arenaImage, float32(b.X), float32(arena.RiverTop), float32(b.Width), float32(arena.RiverHeight), r.arenaColors.Bridge, false)
		vector.StrokeRect(r.arenaImage, float32(b.X), float32(arena.RiverTop), float32(b.Width), float32(arena.RiverHeight), 2, DarkenColor(r.arenaColors.Bridge), false)
	}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	screen.DrawImage(r.arenaImage, nil)

	r.drawSpells(screen, s.Spells)
	r.drawSkidMarks(screen, s.Teslas)
	r.drawTowers(screen, s.Towers)
	r.drawUnits(screen, s.Units)
	r.drawTeslas(screen, s.Teslas)
	r.drawProjectiles(screen, s.Projectiles)
	r.drawMarkers(screen, s.Markers)
}

func (r *ArenaRenderer) drawSpells(screen *ebiten.Image, spells []app.SpellView) {
	for _, sp := range spells {
		c, ok := r.spellColors[sp.Kind]
		if !ok {
			continue
		}
		x, y := float32(sp.Position.X), float32(sp.Position.Y)
		vector.DrawFilledCircle(screen, x, y, float32(sp.Radius), WithAlpha(c, config.SpellAlpha), true)
		vector.StrokeCircle(screen, x, y, float32(sp.Radius), 2, c, true)
	}
}

func (r *ArenaRenderer) drawSkidMarks(screen *ebiten.Image, teslas []app.TeslaView) {
	skid := WithAlpha(config.SkidColor, config.SkidAlpha)
	for _, t := range teslas {
		for _, m := range t.SkidMarks {
			vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), 2, skid, false)
		}
	}
}

func (r *ArenaRenderer) drawTowers(screen *ebiten.Image, towers []app.TowerView) {
	for _, t := range towers {
		if t.Health <= 0 {
			continue
		}
		c := r.teamColors.Of(t.Team)
		half := float32(t.Size)
		x, y := float32(t.Position.X), float32(t.Position.Y)
		vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, DarkenColor(c), true)
		vector.StrokeRect(screen, x-half, y-half, half*2, half*2, 2, c, true)
		if t.King {
			r.drawLabel(screen, "KING", t.Position, config.TextLightColor)
		}
		r.drawHealthBar(screen, t.Position, t.Size, t.Health, t.MaxHealth)
	}
}

func (r *ArenaRenderer) drawUnits(screen *ebiten.Image, units []app.UnitView) {
	for _, u := range units {
		if u.Carried || u.Health <= 0 {
			continue
		}
		c := r.teamColors.Of(u.Team)
		if u.Invisible {
			c = WithAlpha(c, 90)
		}
		pos := u.Position
		if u.Jumping {
			// тень на земле, сам рыцарь выше на высоту прыжка
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(u.Size)*0.8, WithAlpha(config.OverlayColor, 80), true)
			pos.Y -= u.JumpHeight
		}
		x, y := float32(pos.X), float32(pos.Y)
		vector.DrawFilledCircle(screen, x, y, float32(u.Size), c, true)
		if u.Charged {
			vector.StrokeCircle(screen, x, y, float32(u.Size)+3, 2, config.ShotColor, true)
		}
		if u.Kind == defs.Surge && u.Stage > 1 {
			r.drawLabel(screen, strconv.Itoa(u.Stage), component.Position{X: pos.X + u.Size, Y: pos.Y - u.Size}, config.ShotColor)
		}
		r.drawLabel(screen, unitLetters[u.Kind], pos, config.TextLightColor)
		r.drawHealthBar(screen, pos, u.Size, u.Health, u.MaxHealth)

		shotColor := config.ShotColor
		if u.Kind == defs.Lily {
			shotColor = config.ThornColor
		}
		for _, sh := range u.Shots {
			vector.DrawFilledCircle(screen, float32(sh.Position.X), float32(sh.Position.Y), 3, shotColor, true)
		}
	}
}

func (r *ArenaRenderer) drawTeslas(screen *ebiten.Image, teslas []app.TeslaView) {
	for _, t := range teslas {
		if t.Health <= 0 {
			continue
		}
		body := config.TeslaColor
		if t.Frozen {
			body = config.FreezeColor
		} else if t.Flashing {
			body = LightenColor(body)
		}
		x, y := float32(t.Position.X), float32(t.Position.Y)
		size := float32(t.Size)
		heading := t.Angle + t.DriftAngle

		// корпус как толстая линия вдоль курса
		dx, dy := float32(math.Cos(heading))*size, float32(math.Sin(heading))*size
		vector.StrokeLine(screen, x-dx, y-dy, x+dx, y+dy, size, body, true)
		vector.StrokeLine(screen, x, y, x+dx, y+dy, 3, r.teamColors.Of(t.Team), true)
		if t.Honking {
			vector.StrokeCircle(screen, x, y, size*1.6, 1, config.TextLightColor, true)
		}
		if t.Carried > 0 {
			r.drawLabel(screen, strconv.Itoa(t.Carried), t.Position, config.HUDColor)
		}
		r.drawHealthBar(screen, t.Position, t.Size, t.Health, t.MaxHealth)
	}
}

func (r *ArenaRenderer) drawProjectiles(screen *ebiten.Image, projectiles []app.ProjectileView) {
	for _, p := range projectiles {
		x, y := float32(p.Position.X), float32(p.Position.Y)
		tx, ty := float32(math.Cos(p.Angle))*8, float32(math.Sin(p.Angle))*8
		vector.StrokeLine(screen, x-tx, y-ty, x, y, 2, config.ProjectileColor, true)
	}
}

func (r *ArenaRenderer) drawMarkers(screen *ebiten.Image, markers []app.MarkerView) {
	for _, m := range markers {
		fade := uint8(255 * (1 - m.Progress))
		radius := float32(m.Radius * (0.5 + 0.5*m.Progress))
		vector.StrokeCircle(screen, float32(m.Position.X), float32(m.Position.Y), radius, 3, WithAlpha(config.SplashColor, fade), true)
	}
}

func (r *ArenaRenderer) drawHealthBar(screen *ebiten.Image, pos component.Position, size, health, maxHealth float64) {
	if maxHealth <= 0 {
		return
	}
	ratio := math.Max(0, math.Min(1, health/maxHealth))
	x := float32(pos.X - config.HealthBarWidth/2)
	y := float32(pos.Y - size - config.HealthBarOffset)
	vector.DrawFilledRect(screen, x, y, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBgColor, false)

	fill := config.HealthGoodColor
	if ratio < 0.3 {
		fill = config.HealthBadColor
	}
	vector.DrawFilledRect(screen, x, y, float32(config.HealthBarWidth*ratio), config.HealthBarHeight, fill, false)
}

func (r *ArenaRenderer) drawLabel(screen *ebiten.Image, s string, pos component.Position, c color.Color) {
	if s == "" {
		return
	}
	bounds := text.BoundString(r.fontFace, s)
	x := int(pos.X) - bounds.Dx()/2
	y := int(pos.Y) + bounds.Dy()/2
	text.Draw(screen, s, r.fontFace, x, y, c)
}
