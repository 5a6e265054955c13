package usecase

import (
	"testing"

	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
)

func TestParseCartPayload(t *testing.T) {
	lines := parseCartPayload(`[{"id":1,"qty":2},{"id":999,"qty":1}]`)
	assert.Equal(t, []CartLine{{ID: 1, Qty: 2}, {ID: 999, Qty: 1}}, lines)
}

func TestParseCartPayloadMalformed(t *testing.T) {
	assert.Nil(t, parseCartPayload(""))
	assert.Nil(t, parseCartPayload("   "))
	assert.Nil(t, parseCartPayload("{not json"))
	assert.Nil(t, parseCartPayload(`{"id":1}`))
}

func TestBuildOrderLines(t *testing.T) {
	// Product 1 at 1990.00 twice plus an unknown id: one line, total 398000.
	lines := []CartLine{
		{ID: 1, Qty: 2},
		{ID: 999, Qty: 1},
	}
	products := map[int64]domain.Product{
		1: {ID: 1, Name: "Smart Watch", Price: 199000},
	}

	items, total := buildOrderLines(lines, products)

	assert.Equal(t, int64(398000), total)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(199000), items[0].UnitPrice)
}

func TestBuildOrderLinesIgnoresClientPrice(t *testing.T) {
	// The CartLine type has no price field at all, so an injected price in
	// the JSON payload cannot survive decoding.
	lines := parseCartPayload(`[{"id":1,"qty":1,"price":1}]`)
	products := map[int64]domain.Product{
		1: {ID: 1, Price: 149000},
	}

	_, total := buildOrderLines(lines, products)
	assert.Equal(t, int64(149000), total)
}

func TestBuildOrderLinesSkipsInvalid(t *testing.T) {
	lines := []CartLine{
		{ID: 1, Qty: 0},
		{ID: 1, Qty: -3},
		{ID: 2, Qty: 1},
	}
	products := map[int64]domain.Product{
		1: {ID: 1, Price: 100},
	}

	items, total := buildOrderLines(lines, products)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestValidateShipping(t *testing.T) {
	req := &PlaceOrderReq{
		CustomerName:  "Somchai",
		Address:       "123 Main Rd",
		Phone:         "0812345678",
		PaymentMethod: "cod",
	}
	assert.NoError(t, validateShipping(req))

	missing := &PlaceOrderReq{
		CustomerName:  "Somchai",
		Address:       "  ",
		Phone:         "0812345678",
		PaymentMethod: "cod",
	}
	assert.ErrorIs(t, validateShipping(missing), e.ErrMissingFields)
}

func TestPlaceOrderTransaction(t *testing.T) {
	t.Skip("Integration test - requires database")
}
