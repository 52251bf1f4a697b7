// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-clash-arena/internal/config"
	"go-clash-arena/internal/types"
	"go-clash-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог матча. Клик или пробел запускают новый матч.
type GameOverState struct {
	sm   *StateMachine
	game *GameState
}

func NewGameOverState(sm *StateMachine, gs *GameState) *GameOverState {
	return &GameOverState{sm: sm, game: gs}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.game.game.Restart()
		s.sm.SetState(s.game)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight),
		render.WithAlpha(config.OverlayColor, config.OverlayAlpha), false)

	g := s.game.game
	title := "DEFEAT"
	if g.Result() == types.ResultPlayerWins {
		title = "VICTORY"
	}
	score := g.Score
	msg := fmt.Sprintf("%s\n\ncrowns %d : %d\nkills  %d : %d\n\nclick to play again",
		title,
		score.Crowns[types.Player], score.Crowns[types.Enemy],
		score.Kills[types.Player], score.Kills[types.Enemy])
	ebitenutil.DebugPrintAt(screen, msg, config.ScreenWidth/2-60, config.ScreenHeight/2-40)
}

func (s *GameOverState) Exit() {}
