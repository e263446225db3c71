package logic

// Product is a catalog item as served by the product API.
// A nil Price marks a priceless item that cannot be bought.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Price       *int64 `json:"price"`
	Description string `json:"description"`
}

// Priced reports whether the product has a purchasable price.
func (p Product) Priced() bool {
	return p.Price != nil && *p.Price > 0
}

// Cost returns the price, treating a missing price as zero.
func (p Product) Cost() int64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// Basket is an insertion-ordered set of products keyed by ID.
// Its methods never modify the receiver.
type Basket struct {
	items []Product
}

// NewBasket builds a basket from products, dropping duplicate IDs.
func NewBasket(products ...Product) Basket {
	var b Basket
	for _, p := range products {
		b = b.with(p)
	}
	return b
}

// Items returns a copy of the basket contents in insertion order.
func (b Basket) Items() []Product {
	out := make([]Product, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of products in the basket.
func (b Basket) Len() int {
	return len(b.items)
}

// Has reports whether a product with the given ID is in the basket.
func (b Basket) Has(id string) bool {
	return b.index(id) >= 0
}

// IDs returns the product IDs in insertion order.
func (b Basket) IDs() []string {
	ids := make([]string, len(b.items))
	for i, p := range b.items {
		ids[i] = p.ID
	}
	return ids
}

// Total sums member prices; priceless members contribute zero.
func (b Basket) Total() int64 {
	var total int64
	for _, p := range b.items {
		total += p.Cost()
	}
	return total
}

func (b Basket) index(id string) int {
	for i, p := range b.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (b Basket) with(p Product) Basket {
	if b.Has(p.ID) {
		return b
	}
	items := make([]Product, len(b.items), len(b.items)+1)
	copy(items, b.items)
	return Basket{items: append(items, p)}
}

func (b Basket) without(id string) Basket {
	i := b.index(id)
	if i < 0 {
		return b
	}
	items := make([]Product, 0, len(b.items)-1)
	items = append(items, b.items[:i]...)
	return Basket{items: append(items, b.items[i+1:]...)}
}
