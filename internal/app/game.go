// internal/app/game.go
package app

import (
	"go-clash-arena/internal/component"
	"go-clash-arena/internal/config"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/interfaces"
	"go-clash-arena/internal/system"
	"go-clash-arena/internal/telemetry"
	"go-clash-arena/internal/types"
	"go-clash-arena/internal/utils"
	"go-clash-arena/pkg/arena"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var _ interfaces.SpawnContext = (*Game)(nil)

// Game holds the match state and runs one simulation tick per Update.
type Game struct {
	World              *entity.World
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	ElixirSystem       *system.ElixirSystem
	TowerSystem        *system.TowerSystem
	UnitSystem         *system.UnitSystem
	CombatSystem       *system.CombatSystem
	DrowningSystem     *system.DrowningSystem
	TeslaSystem        *system.TeslaSystem
	ProjectileSystem   *system.ProjectileSystem
	SpellSystem        *system.SpellSystem
	VisualEffectSystem *system.VisualEffectSystem
	MatchSystem        *system.MatchSystem
	ScoreSystem        *system.ScoreSystem
	EnemySpawner       *system.EnemySpawner

	Score component.Score
	State component.MatchState

	settings   config.Settings
	baseLogger zerolog.Logger
	logger     zerolog.Logger
	recorder   *telemetry.Recorder
	matchID    string

	// События с прошлого вызова Update, в порядке рассылки.
	pending []event.Event
}

// Option настраивает Game при создании.
type Option func(*Game)

// WithRecorder подключает счётчики OpenTelemetry.
func WithRecorder(r *telemetry.Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithRNG подменяет генератор, например фиксированным для тестов.
func WithRNG(rng *utils.PRNGService) Option {
	return func(g *Game) { g.Rng = rng }
}

// NewGame initializes a new match: towers, elixir and all systems.
func NewGame(settings config.Settings, logger zerolog.Logger, opts ...Option) *Game {
	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		World:           world,
		EventDispatcher: eventDispatcher,
		settings:        settings,
		baseLogger:      logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(settings.Seed)
	}

	g.ElixirSystem = system.NewElixirSystem(settings.StartingElixir, settings.MaxElixir,
		settings.ElixirRegenRate, settings.PlayerElixirMultiplier)
	g.TowerSystem = system.NewTowerSystem(world, eventDispatcher)
	g.UnitSystem = system.NewUnitSystem(world, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher)
	g.DrowningSystem = system.NewDrowningSystem(world, eventDispatcher)
	g.TeslaSystem = system.NewTeslaSystem(world, eventDispatcher, g.Rng)
	g.ProjectileSystem = system.NewProjectileSystem(world, eventDispatcher)
	g.SpellSystem = system.NewSpellSystem(world, eventDispatcher, g.TeslaSystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, eventDispatcher)
	g.MatchSystem = system.NewMatchSystem(world, eventDispatcher, &g.State)
	g.ScoreSystem = system.NewScoreSystem(&g.Score, eventDispatcher)
	g.EnemySpawner = system.NewEnemySpawner(g, world, g.Rng)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.UnitSpawned, listener)
	eventDispatcher.Subscribe(event.BuildingSpawned, listener)
	eventDispatcher.Subscribe(event.SpellCast, listener)
	eventDispatcher.Subscribe(event.EntityDied, listener)
	eventDispatcher.Subscribe(event.MatchEnded, listener)
	eventDispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		g.pending = append(g.pending, e)
	}))

	g.newMatchID()
	g.seedTowers()
	g.logger.Info().
		Int64("seed", settings.Seed).
		Bool("enemyAI", settings.EnemyAI).
		Msg("match started")
	return g
}

// GameEventListener переводит события матча в метрики и редкие записи лога.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch data := e.Data.(type) {
	case event.SpawnData:
		g.recorder.UnitSpawned(data.Team.String(), data.Kind)
	case event.SpellCastData:
		g.recorder.SpellCast(data.Team.String(), data.Kind)
	case event.DeathData:
		g.recorder.EntityDied(data.Team.String(), data.Kind)
	case event.MatchEndData:
		g.recorder.MatchFinished(data.Result.String())
		g.logger.Info().
			Str("result", data.Result.String()).
			Int("playerCrowns", g.Score.Crowns[types.Player]).
			Int("enemyCrowns", g.Score.Crowns[types.Enemy]).
			Float64("time", g.State.Time).
			Msg("match ended")
	}
}

func (g *Game) newMatchID() {
	g.matchID = uuid.NewString()
	g.logger = g.baseLogger.With().Str("match", g.matchID).Logger()
}

func (g *Game) seedTowers() {
	seed := func(team types.Team, slots []arena.TowerSlot) {
		for _, slot := range slots {
			kind := defs.Princess
			if slot.King {
				kind = defs.King
			}
			g.World.AddTower(team, slot.Pos.X, slot.Pos.Y, defs.TowerLibrary[kind])
		}
	}
	seed(types.Player, arena.PlayerTowers)
	seed(types.Enemy, arena.EnemyTowers)
}

// Update выполняет один тик и возвращает все события с прошлого вызова.
// На паузе и после завершения матча симуляция стоит.
func (g *Game) Update(deltaTime float64) []event.Event {
	if !g.State.Paused && g.State.Result == types.ResultNone {
		g.step(deltaTime)
	}
	events := g.pending
	g.pending = nil
	return events
}

func (g *Game) step(dt float64) {
	g.State.Time += dt
	g.World.GameTime = g.State.Time

	g.ElixirSystem.Update(dt)
	if g.settings.EnemyAI {
		g.EnemySpawner.Update(dt)
	}

	g.TowerSystem.UpdateTeam(types.Player, dt)
	g.TowerSystem.UpdateTeam(types.Enemy, dt)

	g.UnitSystem.UpdateTeam(types.Player, dt)
	g.UnitSystem.UpdateTeam(types.Enemy, dt)
	g.DrowningSystem.Update()

	g.TeslaSystem.UpdateTeam(types.Player, dt)
	g.TeslaSystem.UpdateTeam(types.Enemy, dt)
	g.TeslaSystem.ReleaseDead()
	// таран и высадка могли сбросить юнитов в реку
	g.DrowningSystem.Update()

	g.ProjectileSystem.Update(dt)
	g.SpellSystem.Update(dt)
	// Яд мог добить машину уже после её хода.
	g.TeslaSystem.ReleaseDead()
	g.DrowningSystem.Update()

	g.VisualEffectSystem.Update(dt)
	g.MatchSystem.Reap()
	g.World.Prune()
	g.MatchSystem.Evaluate()
}

func (g *Game) dispatch(t event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}

// Restart начинает матч заново: новые башни, эликсир, таймеры соперника и id матча.
func (g *Game) Restart() {
	g.World.Reset()
	g.seedTowers()
	g.ElixirSystem.Reset(g.settings.StartingElixir)
	g.EnemySpawner.Reset()
	g.MatchSystem.Reset()
	g.ScoreSystem.Reset()
	g.SpellSystem.Reset()
	g.State.Paused = false
	g.newMatchID()
	g.dispatch(event.MatchRestarted, nil)
	g.logger.Info().Msg("match restarted")
}

func (g *Game) Result() types.Result {
	return g.State.Result
}

func (g *Game) TogglePause() {
	g.State.Paused = !g.State.Paused
}

func (g *Game) Paused() bool {
	return g.State.Paused
}

func (g *Game) MatchID() string {
	return g.matchID
}

func (g *Game) Elixir(team types.Team) float64 {
	return g.ElixirSystem.Value(team)
}

func (g *Game) CountAlive(team types.Team, kind defs.UnitKind) int {
	return g.World.CountAlive(team, kind)
}
