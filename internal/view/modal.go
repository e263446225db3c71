package view

import (
	"strings"

	"github.com/Liscuitle/web-larek/internal/events"
)

// Modal is a single-slot container shown above the page.
type Modal struct {
	component
	content Fragment
	open    bool
}

func NewModal(emitter events.Emitter) *Modal {
	return &Modal{component: newComponent(emitter)}
}

// Render sets the content and opens the modal.
func (m *Modal) Render(content Fragment) Fragment {
	m.content = content
	m.Open()
	return m.fragment
}

// SetContent replaces the content without reopening.
func (m *Modal) SetContent(content Fragment) {
	m.content = content
	m.render()
}

func (m *Modal) Open() {
	m.open = true
	m.render()
	m.emit(events.ModalOpen, nil)
}

// Close hides the modal and clears its content.
func (m *Modal) Close() {
	m.open = false
	m.content = ""
	m.render()
	m.emit(events.ModalClose, nil)
}

func (m *Modal) IsOpen() bool { return m.open }
func (m *Modal) Content() Fragment { return m.content }

func (m *Modal) render() {
	if !m.open {
		m.fragment = ""
		return
	}
	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", 48) + "\n")
	if body := m.content.indent("| "); body != "" {
		b.WriteString(body + "\n")
	}
	b.WriteString("+" + strings.Repeat("-", 48) + "\n")
	m.fragment = Fragment(b.String())
}
