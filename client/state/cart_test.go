package state

import (
	"testing"

	"github.com/jkhopkins39/sxnctuary/client"
	"github.com/stretchr/testify/assert"
)

func TestCartAddRemove(t *testing.T) {
	c := NewCart()

	c.Add(1)
	c.Add(1)
	c.Add(2)
	assert.Equal(t, 2, c.Quantity(1))
	assert.Equal(t, 1, c.Quantity(2))
	assert.Equal(t, 3, c.ItemCount())

	c.Remove(1)
	assert.Equal(t, 1, c.Quantity(1))

	t.Run("removing the last unit drops the line", func(t *testing.T) {
		c.Remove(2)
		assert.Equal(t, 0, c.Quantity(2))
		assert.NotContains(t, c.Items(), int64(2))
	})

	t.Run("removing an absent product is a no-op", func(t *testing.T) {
		c.Remove(99)
		assert.Equal(t, 1, c.ItemCount())
	})
}

func TestCartTotal(t *testing.T) {
	products := []client.Product{
		{ID: 1, Price: 29.99},
		{ID: 2, Price: 9.99},
	}

	c := NewCart()
	c.Add(1)
	c.Add(1)
	c.Add(2)

	assert.InDelta(t, 69.97, c.Total(products), 0.001)

	t.Run("lines without a known product price as zero", func(t *testing.T) {
		c.Add(404)
		assert.InDelta(t, 69.97, c.Total(products), 0.001)
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		c.Clear()
		assert.Zero(t, c.Total(products))
		assert.Zero(t, c.ItemCount())
	})
}

func TestCartItemsIsACopy(t *testing.T) {
	c := NewCart()
	c.Add(1)

	items := c.Items()
	items[1] = 100
	assert.Equal(t, 1, c.Quantity(1))
}
