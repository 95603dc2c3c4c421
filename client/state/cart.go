package state

import (
	"sync"

	"github.com/jkhopkins39/sxnctuary/client"
)

// Cart tracks product quantities for a shopping session. Quantities
// never go below one; removing the last unit deletes the line.
type Cart struct {
	mu    sync.Mutex
	items map[int64]int
}

// NewCart creates an empty Cart
func NewCart() *Cart {
	return &Cart{items: make(map[int64]int)}
}

// Add increments the quantity for a product, starting at one
func (c *Cart) Add(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[productID]++
}

// Remove decrements the quantity for a product; at quantity one the
// line disappears entirely. Removing an absent product is a no-op.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	qty, ok := c.items[productID]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c.items, productID)
		return
	}
	c.items[productID] = qty - 1
}

// Quantity returns how many units of a product are in the cart
func (c *Cart) Quantity(productID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[productID]
}

// ItemCount returns the total unit count across all lines
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, qty := range c.items {
		total += qty
	}
	return total
}

// Items returns a copy of the cart's product quantities
func (c *Cart) Items() map[int64]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int64]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

// Total prices the cart against a product list; lines whose product is
// missing from the list contribute nothing.
func (c *Cart) Total(products []client.Product) float64 {
	prices := make(map[int64]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for id, qty := range c.items {
		total += prices[id] * float64(qty)
	}
	return total
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[int64]int)
}
