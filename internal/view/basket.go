package view

import (
	"strings"

	"github.com/Liscuitle/web-larek/internal/events"
)

// Basket lists the chosen products with their total.
type Basket struct {
	component
	items    []Fragment
	total    int64
	disabled bool
}

func NewBasket(emitter events.Emitter) *Basket {
	b := &Basket{component: newComponent(emitter), disabled: true}
	b.render()
	return b
}

// Render draws the list and total. An empty list disables checkout.
func (b *Basket) Render(items []Fragment, total int64) Fragment {
	b.items = append([]Fragment(nil), items...)
	b.total = total
	b.disabled = len(items) == 0
	b.render()
	return b.fragment
}

func (b *Basket) SetItems(items []Fragment) {
	b.items = append([]Fragment(nil), items...)
	b.render()
}

func (b *Basket) SetTotal(total int64) {
	b.total = total
	b.render()
}

func (b *Basket) SetDisabled(disabled bool) {
	b.disabled = disabled
	b.render()
}

func (b *Basket) Disabled() bool { return b.disabled }

// ClickCheckout emits order:open unless checkout is disabled.
func (b *Basket) ClickCheckout() bool {
	if b.disabled {
		return false
	}
	b.emit(events.OrderOpen, nil)
	return true
}

func (b *Basket) render() {
	var sb strings.Builder
	sb.WriteString("Basket\n")
	if len(b.items) == 0 {
		sb.WriteString(emptyLabel + "\n")
	}
	for _, item := range b.items {
		sb.WriteString(item.String())
	}
	sb.WriteString("Total: " + FormatAmount(b.total) + "\n")
	button := "[Checkout]"
	if b.disabled {
		button += " (unavailable)"
	}
	sb.WriteString(button + "\n")
	b.fragment = Fragment(sb.String())
}
