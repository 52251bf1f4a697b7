// internal/system/tesla.go
package system

import (
	"math"

	"go-clash-arena/internal/component"
	"go-clash-arena/internal/defs"
	"go-clash-arena/internal/entity"
	"go-clash-arena/internal/event"
	"go-clash-arena/internal/types"
	"go-clash-arena/internal/utils"
	"go-clash-arena/pkg/arena"
)

// TeslaSystem водит машины: таран, подбор мини-пекк и их высадка.
type TeslaSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewTeslaSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *TeslaSystem {
	return &TeslaSystem{world: world, eventDispatcher: eventDispatcher, rng: rng}
}

func (s *TeslaSystem) UpdateTeam(team types.Team, deltaTime float64) {
	hostiles := s.world.Hostiles(team)
	all := s.world.AllUnits()
	for _, t := range s.world.Teslas[team] {
		s.update(t, hostiles, all, deltaTime)
	}
}

// ReleaseDead высаживает всех пассажиров из машин, которые не пережили тик.
// Вызывается до удаления мёртвых из мира.
func (s *TeslaSystem) ReleaseDead() {
	for _, side := range s.world.Teslas {
		for _, t := range side {
			if !t.Alive() && len(t.Carried) > 0 {
				s.dropAll(t)
			}
		}
	}
}

// Explode уничтожает машину и высаживает всех пассажиров.
func (s *TeslaSystem) Explode(t *component.Tesla) {
	if !t.Alive() {
		return
	}
	s.dropAll(t)
	t.Explode()
	s.eventDispatcher.Dispatch(event.Event{Type: event.TeslaExploded, Data: event.TeslaData{
		TeslaID:  t.ID,
		Team:     t.Team,
		Position: t.Position,
	}})
}

func (s *TeslaSystem) update(t *component.Tesla, hostiles []component.Target, all []*component.Unit, dt float64) {
	if !t.Alive() {
		return
	}
	t.Lifetime -= dt
	t.LastHitTime = math.Max(0, t.LastHitTime-dt)
	if !t.Alive() {
		return
	}

	if t.FreezeTimer > 0 {
		t.FreezeTimer -= dt
		if t.FreezeTimer > 0 {
			return
		}
		t.FreezeTimer = 0
	}

	if len(t.Carried) > 0 && t.Lifetime <= defs.TeslaReleaseStart {
		t.DropTimer -= dt
		if t.DropTimer <= 0 {
			s.dropSome(t, defs.TeslaReleaseBatch)
			t.DropTimer = defs.TeslaReleaseInterval
		}
	}

	s.stackPassengers(t)
	if t.HasRoom() {
		s.pickup(t, all)
	}

	for id, cd := range t.HitCooldowns {
		if cd -= dt; cd <= 0 {
			delete(t.HitCooldowns, id)
		} else {
			t.HitCooldowns[id] = cd
		}
	}

	t.Target = nil
	if pick := nearestPassenger(t, all); pick != nil && t.HasRoom() {
		t.Target = pick
	} else if target, _ := Nearest(t.Position, hostiles, 0); target != nil {
		t.Target = target
	}

	if t.Target != nil {
		s.steer(t, *t.Target.Pos(), dt)
	} else {
		t.Velocity.X *= defs.TeslaDamping
		t.Velocity.Y *= defs.TeslaDamping
		t.DriftAngle *= 0.9
		t.Honking = false
	}

	t.Position.X += t.Velocity.X * dt
	t.Position.Y += t.Velocity.Y * dt
	t.Position.X, t.Position.Y = arena.Clamp(t.Position.X, t.Position.Y, defs.TeslaMargin)

	s.collide(t, hostiles)
}

func (s *TeslaSystem) steer(t *component.Tesla, dest component.Position, dt float64) {
	dx, dy := dest.X-t.Position.X, dest.Y-t.Position.Y
	diff := utils.NormalizeAngle(math.Atan2(dy, dx) - t.Angle)
	turn := math.Min(math.Abs(diff), defs.TeslaTurnSpeed*dt)
	t.Angle = utils.NormalizeAngle(t.Angle + utils.Sign(diff)*turn)
	t.DriftAngle = diff * defs.TeslaDriftFactor

	t.Velocity.X = math.Cos(t.Angle) * t.Speed
	t.Velocity.Y = math.Sin(t.Angle) * t.Speed

	if math.Abs(diff) > defs.TeslaSkidThreshold && s.rng.Chance(defs.TeslaSkidChance) {
		t.SkidMarks = append(t.SkidMarks, t.Position)
		if len(t.SkidMarks) > defs.TeslaSkidCap {
			t.SkidMarks = t.SkidMarks[len(t.SkidMarks)-defs.TeslaSkidCap:]
		}
	}

	honk := math.Hypot(dx, dy) < defs.TeslaHonkRange
	if honk && !t.Honking {
		s.eventDispatcher.Dispatch(event.Event{Type: event.TeslaHonk, Data: event.TeslaData{
			TeslaID:  t.ID,
			Team:     t.Team,
			Position: t.Position,
		}})
	}
	t.Honking = honk
}

func (s *TeslaSystem) collide(t *component.Tesla, hostiles []component.Target) {
	for _, h := range hostiles {
		if !h.Targetable() {
			continue
		}
		if _, cooling := t.HitCooldowns[h.EntityID()]; cooling {
			continue
		}
		if t.Position.DistanceTo(*h.Pos()) >= t.Size+h.Radius() {
			continue
		}

		ApplyDamage(h, t.Damage)
		t.HitCooldowns[h.EntityID()] = defs.TeslaHitCooldown
		t.LastHitTime = defs.TeslaHitFlash
		s.eventDispatcher.Dispatch(event.Event{Type: event.TeslaHit, Data: event.TeslaHitData{
			TeslaID:  t.ID,
			TargetID: h.EntityID(),
			Damage:   t.Damage,
		}})

		if !h.IsStructure() && h.Alive() {
			pushFrom(h.Pos(), t.Position, defs.TeslaPushForce)
		}
	}
}

// nearestPassenger: ближайший свободный юнит, которого машина может забрать.
// Сторона не важна: Tesla подбирает и чужих.
func nearestPassenger(t *component.Tesla, all []*component.Unit) *component.Unit {
	var best *component.Unit
	bestDist := math.Inf(1)
	for _, u := range all {
		if !u.Alive() || u.IsBeingCarried || !u.Kind.PickupEligible() {
			continue
		}
		if d := t.Position.DistanceTo(u.Position); d < bestDist {
			best, bestDist = u, d
		}
	}
	return best
}

func (s *TeslaSystem) pickup(t *component.Tesla, all []*component.Unit) {
	picked := 0
	for _, u := range all {
		if !t.HasRoom() {
			break
		}
		if !u.Alive() || u.IsBeingCarried || !u.Kind.PickupEligible() {
			continue
		}
		if t.Position.DistanceTo(u.Position) < t.Size+defs.TeslaPickupReach {
			u.IsBeingCarried = true
			u.Target = nil
			t.Carried = append(t.Carried, u)
			picked++
		}
	}
	if picked > 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PassengersPicked, Data: event.PassengersData{TeslaID: t.ID, Count: picked}})
	}
}

// stackPassengers раскладывает пассажиров спиралью над машиной.
func (s *TeslaSystem) stackPassengers(t *component.Tesla) {
	for i, u := range t.Carried {
		angle := float64(i) / 5 * math.Pi * 2
		radius := 5 + math.Floor(float64(i)/5)*8
		u.Position.X = t.Position.X + math.Cos(angle)*radius
		u.Position.Y = t.Position.Y - 20 - math.Floor(float64(i)/10)*5
	}
}

// dropSome высаживает до n первых пассажиров кольцом со случайным разбросом.
func (s *TeslaSystem) dropSome(t *component.Tesla, n int) {
	if n > len(t.Carried) {
		n = len(t.Carried)
	}
	if n == 0 {
		return
	}
	for i, u := range t.Carried[:n] {
		angle := float64(i)/float64(n)*math.Pi*2 + s.rng.Float64()*0.5
		radius := 40 + s.rng.Float64()*30
		s.place(t, u, angle, radius)
	}
	t.Carried = append([]*component.Unit(nil), t.Carried[n:]...)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PassengersDropped, Data: event.PassengersData{TeslaID: t.ID, Count: n}})
}

// dropAll высаживает всех сразу, ровными кольцами по десять.
func (s *TeslaSystem) dropAll(t *component.Tesla) {
	n := len(t.Carried)
	if n == 0 {
		return
	}
	for i, u := range t.Carried {
		angle := float64(i) / float64(n) * math.Pi * 2
		radius := 50 + math.Floor(float64(i)/10)*20
		s.place(t, u, angle, radius)
	}
	t.Carried = nil
	s.eventDispatcher.Dispatch(event.Event{Type: event.PassengersDropped, Data: event.PassengersData{TeslaID: t.ID, Count: n}})
}

func (s *TeslaSystem) place(t *component.Tesla, u *component.Unit, angle, radius float64) {
	u.IsBeingCarried = false
	x := t.Position.X + math.Cos(angle)*radius
	y := t.Position.Y + math.Sin(angle)*radius
	u.Position.X, u.Position.Y = arena.Clamp(x, y, u.Size)
}
