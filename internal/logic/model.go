package logic

import "github.com/Liscuitle/web-larek/internal/events"

// Model gives state objects a handle on the bus.
type Model struct {
	events events.Emitter
}

// NewModel binds a model to an emitter.
func NewModel(emitter events.Emitter) Model {
	return Model{events: emitter}
}

// EmitChanges publishes a named change. A nil payload is sent as an empty struct.
func (m Model) EmitChanges(name string, payload any) {
	if m.events == nil {
		return
	}
	if payload == nil {
		payload = struct{}{}
	}
	m.events.Emit(name, payload)
}
