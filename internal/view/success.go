package view

import (
	"github.com/Liscuitle/web-larek/internal/events"
)

// Success confirms a placed order.
type Success struct {
	component
	total int64
}

func NewSuccess(emitter events.Emitter) *Success {
	return &Success{component: newComponent(emitter)}
}

func (s *Success) Render(total int64) Fragment {
	s.total = total
	s.fragment = Fragment("Order placed\nCharged " + FormatAmount(total) + "\n[Continue shopping]\n")
	return s.fragment
}

func (s *Success) Close() {
	s.emit(events.SuccessClose, nil)
}
