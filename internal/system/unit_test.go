package system

import (
	"testing"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

// recorder собирает все события диспетчера по порядку.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newTestWorld() (*entity.World, *event.Dispatcher, *recorder) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec)
	return w, d, rec
}

func addUnit(w *entity.World, team types.Team, kind defs.UnitKind, x, y float64) *component.Unit {
	return w.AddUnit(team, x, y, defs.UnitLibrary[kind])
}

// tough делает юнита практически неубиваемым, чтобы считать урон по нему.
func tough(u *component.Unit) *component.Unit {
	u.Health = component.Health{Value: 100000, Max: 100000}
	u.SetBaseMoveSpeed(0)
	return u
}

func TestMiniPekkaFirstHitIsDouble(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	mp := addUnit(w, types.Player, defs.MiniPekka, 300, 400)
	dummy := tough(addUnit(w, types.Enemy, defs.Knight, 300, 410))

	s.UpdateUnit(mp, w.Hostiles(types.Player), tick)
	assert.InDelta(t, 100000-2*340.0, dummy.Health.Value, 1e-9)
	assert.False(t, mp.Charged)

	mp.AttackCooldown = 0
	s.UpdateUnit(mp, w.Hostiles(types.Player), tick)
	assert.InDelta(t, 100000-3*340.0, dummy.Health.Value, 1e-9)
}

func TestUnitWaitsForCooldown(t *testing.T) {
	w, d, rec := newTestWorld()
	s := NewUnitSystem(w, d)
	k := addUnit(w, types.Player, defs.Knight, 300, 400)
	dummy := tough(addUnit(w, types.Enemy, defs.Knight, 300, 420))

	for i := 0; i < 10; i++ {
		s.UpdateTeam(types.Player, tick)
	}
	assert.InDelta(t, 100000-75.0, dummy.Health.Value, 1e-9)
	require.Len(t, rec.ofType(event.Attack), 1)
	assert.Equal(t, k.ID, rec.ofType(event.Attack)[0].Data.(event.AttackData).AttackerID)
}

func TestUnitWalksTowardNearestHostile(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	k := addUnit(w, types.Player, defs.Knight, 300, 500)
	near := tough(addUnit(w, types.Enemy, defs.Knight, 300, 400))
	tough(addUnit(w, types.Enemy, defs.Knight, 300, 340))

	before := k.Position.DistanceTo(near.Position)
	s.UpdateUnit(k, w.Hostiles(types.Player), tick)
	assert.Less(t, k.Position.DistanceTo(near.Position), before)
	assert.Equal(t, near.ID, k.Target.EntityID())
}

func TestUnitMarchesWithoutTargets(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	k := addUnit(w, types.Player, defs.Knight, 250, 500)

	s.UpdateUnit(k, nil, tick)
	assert.Less(t, k.Position.Y, 500.0)
	assert.Nil(t, k.Target)
}

func TestCarriedUnitIsInert(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	mp := addUnit(w, types.Player, defs.MiniPekka, 300, 400)
	mp.IsBeingCarried = true
	dummy := tough(addUnit(w, types.Enemy, defs.Knight, 300, 410))

	out := s.UpdateUnit(mp, w.Hostiles(types.Player), tick)
	assert.Empty(t, out)
	assert.InDelta(t, 100000.0, dummy.Health.Value, 1e-9)

	hp := mp.Health.Value
	mp.TakeDamage(500)
	ApplyDamage(mp, 500)
	assert.Equal(t, hp, mp.Health.Value)
}

func TestMagicArcherRequestsArrow(t *testing.T) {
	w, d, rec := newTestWorld()
	NewCombatSystem(w, d)
	s := NewUnitSystem(w, d)
	a := addUnit(w, types.Player, defs.MagicArcher, 300, 450)
	tough(addUnit(w, types.Enemy, defs.Knight, 300, 350))

	s.UpdateTeam(types.Player, tick)

	require.Len(t, rec.ofType(event.ProjectileRequested), 1)
	require.Len(t, w.Projectiles, 1)
	p := w.Projectiles[0]
	assert.Equal(t, types.Player, p.Team)
	assert.Equal(t, a.Damage, p.Config.Damage)
	assert.True(t, p.Config.Seeking)
	assert.Less(t, p.Velocity.Y, 0.0)
}

func TestGoldKnightKnocksEnemyAcrossTheField(t *testing.T) {
	w, d, _ := newTestWorld()
	NewCombatSystem(w, d)
	s := NewUnitSystem(w, d)
	gk := addUnit(w, types.Player, defs.GoldKnight, 250, 170)
	victim := tough(addUnit(w, types.Enemy, defs.Knight, 250, 150))

	s.UpdateTeam(types.Player, tick)

	assert.InDelta(t, 100000-gk.Damage, victim.Health.Value, 1e-9)
	assert.InDelta(t, 350.0, victim.Position.Y, 1e-9)
	assert.InDelta(t, 250.0, victim.Position.X, 1e-9)
}

func TestGoldKnightDoesNotMoveTowers(t *testing.T) {
	w, d, _ := newTestWorld()
	NewCombatSystem(w, d)
	s := NewUnitSystem(w, d)
	addUnit(w, types.Player, defs.GoldKnight, 150, 175)
	tower := w.AddTower(types.Enemy, 150, 150, defs.TowerLibrary[defs.Princess])

	s.UpdateTeam(types.Player, tick)

	assert.Less(t, tower.Health.Value, tower.Health.Max)
	assert.Equal(t, component.Position{X: 150, Y: 150}, tower.Position)
}

func TestMegaKnightJumpsAtMidRange(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	mk := addUnit(w, types.Player, defs.MegaKnight, 300, 500)
	addUnit(w, types.Enemy, defs.Knight, 300, 350)

	s.UpdateUnit(mk, w.Hostiles(types.Player), tick)

	require.True(t, mk.Jumping())
	assert.Equal(t, component.Position{X: 300, Y: 350}, mk.Jump.End)
}

func TestMegaKnightNeverJumpsBeyondMaxRange(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	mk := addUnit(w, types.Player, defs.MegaKnight, 300, 500)
	addUnit(w, types.Enemy, defs.Knight, 300, 100).MoveSpeed = 0

	for i := 0; i < 30; i++ {
		s.UpdateUnit(mk, w.Hostiles(types.Player), tick)
		require.False(t, mk.Jumping(), "tick %d", i)
	}
}

func TestMegaKnightLandingDamagesArea(t *testing.T) {
	w, d, rec := newTestWorld()
	NewCombatSystem(w, d)
	s := NewUnitSystem(w, d)
	mk := addUnit(w, types.Player, defs.MegaKnight, 300, 500)
	target := tough(addUnit(w, types.Enemy, defs.Knight, 300, 350))
	bystander := tough(addUnit(w, types.Enemy, defs.Knight, 260, 340))

	sawArc := false
	for i := 0; i < 40 && len(rec.ofType(event.JumpLanded)) == 0; i++ {
		s.UpdateTeam(types.Player, tick)
		if mk.Jumping() && mk.Jump.Height > 0 {
			sawArc = true
		}
	}

	require.Len(t, rec.ofType(event.JumpLanded), 1)
	assert.True(t, sawArc)
	assert.False(t, mk.Jumping())
	assert.Equal(t, defs.JumpCooldown, mk.Jump.Cooldown)
	assert.Equal(t, component.Position{X: 300, Y: 350}, mk.Position)
	assert.InDelta(t, 100000-defs.JumpDamage, target.Health.Value, 1e-9)
	assert.InDelta(t, 100000-defs.JumpDamage, bystander.Health.Value, 1e-9)
}

func TestSurgeTeleportsWithFullCharge(t *testing.T) {
	w, d, rec := newTestWorld()
	s := NewUnitSystem(w, d)
	sg := addUnit(w, types.Player, defs.Surge, 400, 450)
	tough(addUnit(w, types.Enemy, defs.Knight, 400, 260))
	sg.Surge.Super = 1

	s.UpdateTeam(types.Player, tick)

	assert.Equal(t, 2, sg.Surge.Stage)
	assert.InDelta(t, 350.0, sg.Position.Y, 1e-9)
	assert.InDelta(t, defs.SurgeChargePerHit, sg.Surge.Super, 1e-9)
	require.Len(t, rec.ofType(event.SurgeUpgraded), 1)
}

func TestSurgeSplitsShotsFromStageThree(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	sg := addUnit(w, types.Player, defs.Surge, 400, 450)
	tough(addUnit(w, types.Enemy, defs.Knight, 400, 300))
	sg.Surge.Stage = 3

	s.UpdateUnit(sg, w.Hostiles(types.Player), tick)

	require.Len(t, sg.Surge.Shots, 3)
	for _, sh := range sg.Surge.Shots {
		assert.InDelta(t, sg.Damage*defs.SurgeShotDamage, sh.Damage, 1e-9)
	}
}

func TestSurgeStaysAtMaxStage(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	sg := addUnit(w, types.Player, defs.Surge, 400, 450)
	tough(addUnit(w, types.Enemy, defs.Knight, 400, 300))
	sg.Surge.Stage = defs.SurgeMaxStage
	sg.Surge.Super = 1

	s.UpdateUnit(sg, w.Hostiles(types.Player), tick)
	assert.Equal(t, defs.SurgeMaxStage, sg.Surge.Stage)
	assert.InDelta(t, 450.0, sg.Position.Y, 1e-9)
}

func TestLilyFiresThreeThorns(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	l := addUnit(w, types.Player, defs.Lily, 400, 450)
	tough(addUnit(w, types.Enemy, defs.Knight, 400, 330))
	l.Lily.Invisible = true
	l.Lily.InvisibleTimer = 1

	s.UpdateUnit(l, w.Hostiles(types.Player), tick)

	assert.Len(t, l.Lily.Thorns, defs.LilyThornCount)
	assert.False(t, l.Invisible())
	assert.Zero(t, l.Lily.SinceLastAttack)
}

func TestLilyThornsChargeSuper(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	l := addUnit(w, types.Player, defs.Lily, 400, 450)
	dummy := tough(addUnit(w, types.Enemy, defs.Knight, 400, 330))

	for i := 0; i < 45; i++ {
		l.AttackCooldown = 1 // только полёт шипов
		if i == 0 {
			l.AttackCooldown = 0
		}
		s.UpdateUnit(l, w.Hostiles(types.Player), tick)
	}

	assert.InDelta(t, 100000-l.Damage, dummy.Health.Value, 1e-9)
	assert.InDelta(t, defs.LilyChargePerHit, l.Lily.Super, 1e-9)
	assert.Empty(t, l.Lily.Thorns)
}

func TestLilyTurnsInvisibleWhenIdle(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	l := addUnit(w, types.Player, defs.Lily, 400, 450)
	l.MoveSpeed = 0

	for i := 0; i < 7; i++ {
		s.UpdateUnit(l, nil, 0.5)
	}
	assert.True(t, l.Invisible())
}

func TestLilyDashesWithFullCharge(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewUnitSystem(w, d)
	l := addUnit(w, types.Player, defs.Lily, 400, 500)
	tough(addUnit(w, types.Enemy, defs.Knight, 400, 340))
	l.Lily.Super = 1

	out := s.UpdateUnit(l, w.Hostiles(types.Player), tick)

	assert.InDelta(t, 500-defs.LilyDashDistance, l.Position.Y, 1e-9)
	assert.Zero(t, l.Lily.Super)
	assert.Equal(t, defs.LilyDashCooldown, l.Lily.DashCooldown)
	require.NotEmpty(t, out)
	assert.Equal(t, event.SuperUsed, out[0].Type)
}
