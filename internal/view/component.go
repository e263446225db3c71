// Package view holds the storefront's headless view components. Each one owns
// a rendered text Fragment, exposes setters for partial updates and turns
// user actions into intent events on the bus.
package view

import (
	"strings"

	"github.com/Liscuitle/web-larek/internal/events"
)

// Fragment is the rendered text of a component.
type Fragment string

func (f Fragment) String() string {
	return string(f)
}

// indent prefixes every line of f.
func (f Fragment) indent(prefix string) string {
	if f == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(string(f), "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// Intent payloads.
type (
	// FieldInput is sent with "<form>.<field>:change".
	FieldInput struct {
		Field string
		Value string
	}
	// PaymentChoice is sent with "payment:change".
	PaymentChoice struct {
		Payment string
	}
)

// component is embedded by every view.
type component struct {
	events   events.Emitter
	fragment Fragment
}

func newComponent(emitter events.Emitter) component {
	return component{events: emitter}
}

// Fragment returns the last rendered text.
func (c *component) Fragment() Fragment {
	return c.fragment
}

func (c *component) emit(name string, payload any) {
	if c.events == nil {
		return
	}
	if payload == nil {
		payload = struct{}{}
	}
	c.events.Emit(name, payload)
}
