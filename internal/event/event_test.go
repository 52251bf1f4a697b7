package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatcherOrder(t *testing.T) {
	d := NewDispatcher()
	typed := &recorder{}
	all := &recorder{}
	var order []string

	d.Subscribe(Attack, typed)
	d.Subscribe(Attack, ListenerFunc(func(Event) { order = append(order, "typed") }))
	d.SubscribeAll(all)
	d.SubscribeAll(ListenerFunc(func(Event) { order = append(order, "all") }))

	d.DispatchAll([]Event{{Type: Attack}, {Type: UnitDrowned}})

	assert.Equal(t, []EventType{Attack}, typed.got)
	assert.Equal(t, []EventType{Attack, UnitDrowned}, all.got)
	assert.Equal(t, []string{"typed", "all", "all"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(JumpLanded, r)
	d.Unsubscribe(JumpLanded, r)
	d.Dispatch(Event{Type: JumpLanded})
	assert.Empty(t, r.got)
}
