package repository

import (
	"testing"

	"marketstore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository(t *testing.T) {
	db := newTestDB(t)
	or, err := NewOrderRepository(db)
	require.NoError(t, err)

	bare := models.OrderRequest{
		OrderDate:          "2026-01-15",
		Description:        "first order",
		UserId:             intPtr(1),
		ProductId:          intPtr(2),
		DestinationAddress: "Main street 1",
	}
	first, err := or.CreateOrder(bare)
	require.NoError(t, err)
	assert.Nil(t, first.VoucherId)
	assert.Nil(t, first.PaymentId)
	assert.Nil(t, first.DeliveryId)

	full := bare
	full.Description = "second order"
	full.VoucherId = intPtr(3)
	full.PaymentId = intPtr(4)
	full.DeliveryId = intPtr(5)
	second, err := or.CreateOrder(full)
	require.NoError(t, err)

	t.Run("optional ids round-trip as null or value", func(t *testing.T) {
		got, exists, err := or.GetOrderById(first.Id)
		require.NoError(t, err)
		require.True(t, exists)
		assert.Nil(t, got.VoucherId)

		got, exists, err = or.GetOrderById(second.Id)
		require.NoError(t, err)
		require.True(t, exists)
		require.NotNil(t, got.VoucherId)
		assert.Equal(t, 3, *got.VoucherId)
		require.NotNil(t, got.PaymentId)
		assert.Equal(t, 4, *got.PaymentId)
		require.NotNil(t, got.DeliveryId)
		assert.Equal(t, 5, *got.DeliveryId)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		orders, total, err := or.ListOrders(ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, orders, 2)
		assert.Equal(t, second.Id, orders[0].Id)
		assert.Equal(t, first.Id, orders[1].Id)
	})

	t.Run("keyword searches description and address", func(t *testing.T) {
		orders, total, err := or.ListOrders(ListParams{Keyword: "SECOND"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, orders, 1)
		assert.Equal(t, second.Id, orders[0].Id)

		_, total, err = or.ListOrders(ListParams{Keyword: "main street"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("update clears an optional id", func(t *testing.T) {
		cleared := full
		cleared.VoucherId = nil
		updated, exists, err := or.UpdateOrderById(second.Id, cleared)
		require.NoError(t, err)
		require.True(t, exists)
		assert.Nil(t, updated.VoucherId)
		require.NotNil(t, updated.PaymentId)
	})

	t.Run("delete twice", func(t *testing.T) {
		deleted, err := or.DeleteOrderById(first.Id)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = or.DeleteOrderById(first.Id)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
