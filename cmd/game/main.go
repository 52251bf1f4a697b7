// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"go-clash-arena/internal/app"
	"go-clash-arena/internal/config"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/logging"
	"go-clash-arena/internal/state"
	"go-clash-arena/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

const windowTitle = "Clash Arena"

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDeltaTime   float64
	paused         bool
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDeltaTime {
		deltaTime = a.maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)

	if _, paused := a.stateMachine.Current().(*state.PauseState); paused != a.paused {
		a.paused = paused
		if paused {
			ebiten.SetWindowTitle(windowTitle + " (paused)")
		} else {
			ebiten.SetWindowTitle(windowTitle)
		}
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "Path to settings file (default: clash.* in ./ or ./config)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		bootLogger := logging.New("info", os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load settings")
	}
	logger := logging.New(settings.LogLevel, os.Stderr)

	if settings.Definitions != "" {
		n, err := defs.LoadUnitDefinitions(settings.Definitions)
		if err != nil {
			logger.Fatal().Err(err).Str("path", settings.Definitions).Msg("failed to load unit definitions")
		}
		logger.Info().Int("units", n).Str("path", settings.Definitions).Msg("unit definitions loaded")
	}

	var opts []app.Option
	if settings.Metrics {
		recorder, err := telemetry.Default()
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create telemetry recorder")
		}
		opts = append(opts, app.WithRecorder(recorder))
	}

	game := app.NewGame(settings, logger, opts...)

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, basicfont.Face7x13))

	maxDelta := settings.MaxDeltaTime
	if maxDelta <= 0 {
		maxDelta = config.MaxDeltaTime
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDeltaTime:   maxDelta,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(a); err != nil {
		logger.Fatal().Err(err).Msg("game loop stopped")
	}
}
