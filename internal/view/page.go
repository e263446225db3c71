package view

import (
	"fmt"
	"strings"

	"github.com/Liscuitle/web-larek/internal/events"
)

// Page is the storefront shell: header basket counter and the catalog gallery.
type Page struct {
	component
	counter int
	catalog []Fragment
	locked  bool
	notice  string
}

func NewPage(emitter events.Emitter) *Page {
	p := &Page{component: newComponent(emitter)}
	p.render()
	return p
}

func (p *Page) SetCounter(n int) {
	p.counter = n
	p.render()
}

// SetCatalog replaces the gallery.
func (p *Page) SetCatalog(cards []Fragment) {
	p.catalog = append([]Fragment(nil), cards...)
	p.render()
}

// SetLocked freezes the page while a modal is open.
func (p *Page) SetLocked(locked bool) {
	p.locked = locked
	p.render()
}

// SetNotice shows a message above the gallery; empty hides it.
func (p *Page) SetNotice(msg string) {
	p.notice = msg
	p.render()
}

func (p *Page) Counter() int { return p.counter }
func (p *Page) Locked() bool { return p.locked }
func (p *Page) Notice() string { return p.notice }

// ClickBasket is refused while the page is locked.
func (p *Page) ClickBasket() bool {
	if p.locked {
		return false
	}
	p.emit(events.BasketOpen, nil)
	return true
}

func (p *Page) render() {
	var b strings.Builder
	fmt.Fprintf(&b, "WEB-LAREK                         basket (%d)\n", p.counter)
	if p.notice != "" {
		fmt.Fprintf(&b, "! %s\n", p.notice)
	}
	for i, card := range p.catalog {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, strings.TrimLeft(card.indent("    "), " "))
	}
	p.fragment = Fragment(b.String())
}
