// internal/telemetry/telemetry.go
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "go-clash-arena/internal/telemetry"

// Recorder считает события матча. Nil-получатель допустим и ничего не делает.
type Recorder struct {
	unitsSpawned    metric.Int64Counter
	spellsCast      metric.Int64Counter
	elixirSpent     metric.Int64Counter
	entitiesDied    metric.Int64Counter
	matchesFinished metric.Int64Counter
}

// Default привязывается к глобальному провайдеру (no-op, если он не настроен).
func Default() (*Recorder, error) {
	return New(otel.Meter(instrumentationName))
}

func New(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error

	r.unitsSpawned, err = m.Int64Counter(
		"arena.units.spawned",
		metric.WithDescription("Units and buildings placed on the field"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}

	r.spellsCast, err = m.Int64Counter(
		"arena.spells.cast",
		metric.WithDescription("Spells cast"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spells counter: %w", err)
	}

	r.elixirSpent, err = m.Int64Counter(
		"arena.elixir.spent",
		metric.WithDescription("Elixir spent on cards"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating elixir counter: %w", err)
	}

	r.entitiesDied, err = m.Int64Counter(
		"arena.entities.died",
		metric.WithDescription("Units, towers and buildings destroyed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}

	r.matchesFinished, err = m.Int64Counter(
		"arena.matches.finished",
		metric.WithDescription("Matches that reached a result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating matches counter: %w", err)
	}

	return r, nil
}

func attrs(team, kind string) metric.AddOption {
	return metric.WithAttributes(attribute.String("team", team), attribute.String("kind", kind))
}

func (r *Recorder) UnitSpawned(team, kind string) {
	if r == nil {
		return
	}
	r.unitsSpawned.Add(context.Background(), 1, attrs(team, kind))
}

func (r *Recorder) SpellCast(team, kind string) {
	if r == nil {
		return
	}
	r.spellsCast.Add(context.Background(), 1, attrs(team, kind))
}

func (r *Recorder) ElixirSpent(team, kind string, amount int) {
	if r == nil || amount <= 0 {
		return
	}
	r.elixirSpent.Add(context.Background(), int64(amount), attrs(team, kind))
}

func (r *Recorder) EntityDied(team, kind string) {
	if r == nil {
		return
	}
	r.entitiesDied.Add(context.Background(), 1, attrs(team, kind))
}

func (r *Recorder) MatchFinished(result string) {
	if r == nil {
		return
	}
	r.matchesFinished.Add(context.Background(), 1, metric.WithAttributes(attribute.String("result", result)))
}
