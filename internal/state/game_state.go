// internal/state/game_state.go
package state

import (
	"fmt"

	"go-clash-arena/internal/app"
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/config"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/types"
	"go-clash-arena/internal/ui"
	"go-clash-arena/pkg/arena"
	"go-clash-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Клавиши выбора карт в порядке колоды.
var cardKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0, ebiten.KeyMinus, ebiten.KeyEqual,
}

// Shift+цифра: множитель эликсира игрока.
var multiplierKeys = map[ebiten.Key]float64{
	ebiten.Key1: 0.5,
	ebiten.Key2: 2,
	ebiten.Key3: 3,
	ebiten.Key5: 5,
}

// GameState ведёт идущий матч: ввод игрока, шаг симуляции, отрисовка снимка.
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	renderer  *render.ArenaRenderer
	cards     *ui.CardBar
	elixirBar *ui.ElixirBar
	dragging  bool // заклинание тянется к цели, каст на отпускании
	dragPos   component.Position
}

func NewGameState(sm *StateMachine, game *app.Game, face font.Face) *GameState {
	renderer := render.NewArenaRenderer(
		int(arena.Width), int(arena.Height), face,
		render.ArenaColors{
			PlayerHalf: config.PlayerHalfColor,
			EnemyHalf:  config.EnemyHalfColor,
			River:      config.RiverColor,
			Bridge:     config.BridgeColor,
		},
		render.TeamColors{Player: config.PlayerColor, Enemy: config.EnemyColor},
		render.SpellColors{
			defs.Rage:     config.RageColor,
			defs.Fireball: config.FireballColor,
			defs.Freeze:   config.FreezeColor,
			defs.Poison:   config.PoisonColor,
		},
	)

	hudY := int(arena.Height)
	cards := ui.NewCardBar(8, hudY+24, config.CardWidth, config.CardHeight, config.CardSpacing,
		defs.Deck, config.CardColor, config.CardSelectedColor, config.TextLightColor, face)
	elixirBar := ui.NewElixirBar(8, float32(hudY+5), 400, config.ElixirBarHeight,
		config.ElixirColor, config.HealthBarBgColor, config.TextLightColor, face)

	return &GameState{
		sm:        sm,
		game:      game,
		renderer:  renderer,
		cards:     cards,
		elixirBar: elixirBar,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.game.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleKeys()
	g.handleMouse()

	g.game.Update(deltaTime)

	if g.game.Result() != types.ResultNone {
		g.dragging = false
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) handleKeys() {
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		for key, m := range multiplierKeys {
			if inpututil.IsKeyJustPressed(key) {
				g.game.SetElixirMultiplier(m)
			}
		}
		return
	}

	for i, key := range cardKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.cards.Select(i)
			g.dragging = false
		}
	}

	// читы
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.game.SuddenDeath()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.game.SpawnLoadedTesla(types.Player)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.game.MiniPekkaSwarm()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.game.EnemyMiniPekkas()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.game.SpawnFreeSurge()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.game.UnleashChaos()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.game.UnleashHorde()
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		g.game.MegaKnightAssault()
	}
}

func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()
	inArena := float64(y) < arena.Height

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.dragging = false
		g.cards.Deselect()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !inArena {
			if i := g.cards.HitTest(x, y); i >= 0 {
				g.cards.Select(i)
				g.dragging = false
			}
			return
		}
		g.handleArenaClick(float64(x), float64(y))
	}

	if !g.dragging {
		return
	}
	if inArena {
		g.dragPos = component.Position{X: float64(x), Y: float64(y)}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		card, ok := g.cards.Current()
		if ok && card.Type == defs.CardSpell && inArena {
			g.game.CastSpell(types.Player, defs.SpellKind(card.ID), g.dragPos)
		}
	}
}

// handleArenaClick разыгрывает выбранную карту. Юниты и здания ставятся сразу,
// заклинание начинает перетаскивание.
func (g *GameState) handleArenaClick(x, y float64) {
	card, ok := g.cards.Current()
	if !ok {
		return
	}
	switch card.Type {
	case defs.CardSpell:
		g.dragging = true
		g.dragPos = component.Position{X: x, Y: y}
	case defs.CardBuilding:
		g.game.SpawnBuilding(types.Player, x, y, defs.BuildingKind(card.ID))
	case defs.CardUnit:
		g.game.SpawnUnit(types.Player, x, y, defs.UnitKind(card.ID))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)

	if g.dragging {
		if card, ok := g.cards.Current(); ok {
			if cfg, ok := defs.SpellLibrary[defs.SpellKind(card.ID)]; ok {
				vector.StrokeCircle(screen, float32(g.dragPos.X), float32(g.dragPos.Y), float32(cfg.Radius), 2, config.TextLightColor, true)
			}
		}
	}

	vector.DrawFilledRect(screen, 0, float32(arena.Height), float32(config.ScreenWidth), config.HUDHeight, config.HUDColor, false)
	g.elixirBar.Draw(screen, snap.Elixir[types.Player], snap.MaxElixir, snap.Multiplier)
	g.cards.Draw(screen, snap.Elixir[types.Player])

	// Debug text
	ebitenutil.DebugPrint(screen, fmt.Sprintf("t=%.0fs  crowns %d:%d  kills %d:%d  FPS %.0f",
		snap.Time,
		snap.Score.Crowns[types.Player], snap.Score.Crowns[types.Enemy],
		snap.Score.Kills[types.Player], snap.Score.Kills[types.Enemy],
		ebiten.ActualFPS()))
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
