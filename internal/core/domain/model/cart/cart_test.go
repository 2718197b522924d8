package cart_test

import (
	"testing"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustMenuItem(t *testing.T, title, price string) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), title, mustMoney(t, price), kernel.NewUUID(), false)
	require.NoError(t, err)
	return item
}

func TestNewLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		id := kernel.NewUUID()
		line, err := cart.NewLine(id, 3, mustMoney(t, "4.00"))

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, 3, line.Quantity())
		assert.Equal(t, "4.00", line.UnitPrice().String())
		assert.Equal(t, "12.00", line.Price().String())
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := cart.NewLine(kernel.NewUUID(), 0, mustMoney(t, "4.00"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var line cart.Line
		require.ErrorIs(t, line.Validate(), cart.ErrLineIsNotConstructed)
	})
}

func TestNewCart(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.IsEmpty())
		assert.True(t, c.Total().IsZero())
	})

	t.Run("invalid user id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := cart.NewCart(zero)
		require.Error(t, err)
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("snapshot of catalog price", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		item := mustMenuItem(t, "Greek Salad", "10.00")

		require.NoError(t, c.AddItem(item, 2))

		// later catalog price change does not affect the line
		item.ChangePrice(mustMoney(t, "99.00"))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "10.00", lines[0].UnitPrice().String())
		assert.Equal(t, "20.00", lines[0].Price().String())
	})

	t.Run("duplicate add merges quantities keeping snapshot", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		item := mustMenuItem(t, "Bruschetta", "5.00")

		require.NoError(t, c.AddItem(item, 1))
		item.ChangePrice(mustMoney(t, "6.00"))
		require.NoError(t, c.AddItem(item, 2))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity())
		assert.Equal(t, "5.00", lines[0].UnitPrice().String())
		assert.Equal(t, "15.00", lines[0].Price().String())
	})

	t.Run("invalid quantity", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		err = c.AddItem(mustMenuItem(t, "Soup", "3.00"), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, c.IsEmpty())
	})

	t.Run("unconstructed menu item", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		var item menu.MenuItem
		require.ErrorIs(t, c.AddItem(&item, 1), menu.ErrMenuItemIsNotConstructed)
	})
}

func TestCart_Total(t *testing.T) {
	// total is the sum of line prices, zero for an empty cart
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	assert.Equal(t, "0.00", c.Total().String())

	require.NoError(t, c.AddItem(mustMenuItem(t, "Item X", "10.00"), 2))
	require.NoError(t, c.AddItem(mustMenuItem(t, "Item Y", "5.00"), 1))

	assert.Equal(t, "25.00", c.Total().String())
}

func TestCart_Clear(t *testing.T) {
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, c.AddItem(mustMenuItem(t, "Item", "2.00"), 1))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())

	// idempotent
	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestRestoreCart(t *testing.T) {
	userID := kernel.NewUUID()
	line, err := cart.NewLine(kernel.NewUUID(), 2, mustMoney(t, "7.00"))
	require.NoError(t, err)

	c, err := cart.RestoreCart(userID, []cart.Line{line})
	require.NoError(t, err)
	assert.Equal(t, "14.00", c.Total().String())

	t.Run("unconstructed line rejected", func(t *testing.T) {
		var bad cart.Line
		_, err := cart.RestoreCart(userID, []cart.Line{bad})
		require.ErrorIs(t, err, cart.ErrLineIsNotConstructed)
	})
}
