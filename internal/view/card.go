package view

import (
	"fmt"
	"strings"

	"github.com/Liscuitle/web-larek/internal/events"
	"github.com/Liscuitle/web-larek/internal/logic"
)

const (
	buyLabel    = "Buy"
	removeLabel = "Remove from basket"
)

// Card shows a product in the catalog gallery.
type Card struct {
	component
	product logic.Product
}

func NewCard(emitter events.Emitter) *Card {
	return &Card{component: newComponent(emitter)}
}

func (c *Card) Render(p logic.Product) Fragment {
	c.product = p
	c.fragment = Fragment(cardHeader(p) + "\n")
	return c.fragment
}

// Click asks for the product to be previewed.
func (c *Card) Click() {
	c.emit(events.CardSelect, c.product)
}

func cardHeader(p logic.Product) string {
	return fmt.Sprintf("[%s] %s  %s", CategoryClass(p.Category), p.Title, FormatPrice(p.Price))
}

// CardPreview is the detailed product view with a buy/remove button.
type CardPreview struct {
	component
	product  logic.Product
	inBasket bool
}

func NewCardPreview(emitter events.Emitter) *CardPreview {
	return &CardPreview{component: newComponent(emitter)}
}

func (c *CardPreview) Render(p logic.Product, inBasket bool) Fragment {
	c.product = p
	c.inBasket = inBasket
	c.render()
	return c.fragment
}

// SetInBasket flips the button between buy and remove.
func (c *CardPreview) SetInBasket(inBasket bool) {
	c.inBasket = inBasket
	c.render()
}

// ButtonDisabled reports whether the action button is inactive.
// Priceless products cannot be bought.
func (c *CardPreview) ButtonDisabled() bool {
	return !c.inBasket && !c.product.Priced()
}

func (c *CardPreview) ButtonLabel() string {
	if c.inBasket {
		return removeLabel
	}
	return buyLabel
}

// ClickButton emits card:add or card:remove. It is refused while disabled.
func (c *CardPreview) ClickButton() bool {
	if c.ButtonDisabled() {
		return false
	}
	if c.inBasket {
		c.emit(events.CardRemove, c.product)
	} else {
		c.emit(events.CardAdd, c.product)
	}
	return true
}

func (c *CardPreview) Product() logic.Product { return c.product }

func (c *CardPreview) render() {
	var b strings.Builder
	b.WriteString(cardHeader(c.product) + "\n")
	if c.product.Image != "" {
		fmt.Fprintf(&b, "image: %s\n", c.product.Image)
	}
	if c.product.Description != "" {
		b.WriteString(c.product.Description + "\n")
	}
	button := "[" + c.ButtonLabel() + "]"
	if c.ButtonDisabled() {
		button += " (unavailable)"
	}
	b.WriteString(button + "\n")
	c.fragment = Fragment(b.String())
}

// CardBasket is one numbered line of the basket list.
type CardBasket struct {
	component
	product logic.Product
}

func NewCardBasket(emitter events.Emitter) *CardBasket {
	return &CardBasket{component: newComponent(emitter)}
}

// Render draws the line; index starts at 1.
func (c *CardBasket) Render(p logic.Product, index int) Fragment {
	c.product = p
	c.fragment = Fragment(fmt.Sprintf("%d. %s  %s\n", index, p.Title, FormatPrice(p.Price)))
	return c.fragment
}

// ClickDelete asks for the product to be removed from the basket.
func (c *CardBasket) ClickDelete() {
	c.emit(events.CardRemove, c.product)
}
