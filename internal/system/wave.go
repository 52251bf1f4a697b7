// internal/system/wave.go
package system

import (
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/interfaces"
	"go-clash-arena/internal/types"
	"go-clash-arena/internal/utils"
)

// Интервалы скрипта соперника: база плюс случайная добавка.
const (
	enemySpawnBase   = 3.0
	enemySpawnJitter = 2.0
	enemySpellBase   = 5.0
	enemySpellJitter = 5.0

	enemyRestartSpawnDelay = 2.0
	enemySpellDelay        = 5.0
)

// EnemySpawner: простой скрипт соперника, по таймерам высаживает
// случайную карту из таблицы весов и кастует заклинание в лучшую точку.
type EnemySpawner struct {
	ctx        interfaces.SpawnContext
	world      *entity.World
	rng        *utils.PRNGService
	spawnTimer float64
	spellTimer float64
}

func NewEnemySpawner(ctx interfaces.SpawnContext, world *entity.World, rng *utils.PRNGService) *EnemySpawner {
	return &EnemySpawner{
		ctx:        ctx,
		world:      world,
		rng:        rng,
		spellTimer: enemySpellDelay,
	}
}

// Reset ставит таймеры после рестарта. Первая высадка через 2 c, не сразу.
func (s *EnemySpawner) Reset() {
	s.spawnTimer = enemyRestartSpawnDelay
	s.spellTimer = enemySpellDelay
}

func (s *EnemySpawner) Update(deltaTime float64) {
	s.spawnTimer -= deltaTime
	if s.spawnTimer <= 0 {
		s.spawn()
		s.spawnTimer = enemySpawnBase + s.rng.Float64()*enemySpawnJitter
	}

	s.spellTimer -= deltaTime
	if s.spellTimer <= 0 {
		s.cast()
		s.spellTimer = enemySpellBase + s.rng.Float64()*enemySpellJitter
	}
}

func (s *EnemySpawner) spawn() {
	card := s.rng.ChooseWeighted(defs.EnemySpawnTable)
	x := s.rng.Range(100, 700)
	y := s.rng.Range(50, 130)

	if defs.BuildingKind(card) == defs.Tesla {
		s.ctx.SpawnBuilding(types.Enemy, x, y, defs.Tesla)
		return
	}

	kind := defs.UnitKind(card)
	if kind.Limited() && s.ctx.CountAlive(types.Enemy, kind) >= defs.MaxLimitedPerTeam {
		kind = defs.Knight
	}
	s.ctx.SpawnUnit(types.Enemy, x, y, kind)
}

func (s *EnemySpawner) cast() {
	kind := defs.AllSpellKinds[s.rng.Intn(len(defs.AllSpellKinds))]
	if s.ctx.Elixir(types.Enemy) < float64(defs.SpellCost(kind)) {
		return
	}
	pos, ok := BestSpellTarget(s.world, types.Enemy, kind)
	if !ok {
		return
	}
	s.ctx.CastSpell(types.Enemy, kind, pos)
}
