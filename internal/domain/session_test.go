package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalIndependence(t *testing.T) {
	p := Principal{UserID: 7, UserName: "somchai", Admin: true}
	assert.True(t, p.IsCustomer())
	assert.True(t, p.IsAdmin())

	p.ClearAdmin()
	assert.True(t, p.IsCustomer(), "admin logout must keep the customer identity")
	assert.False(t, p.IsAdmin())

	p.Admin = true
	p.ClearCustomer()
	assert.False(t, p.IsCustomer())
	assert.True(t, p.IsAdmin(), "customer logout must keep the admin flag")
}

func TestPrincipalAnonymous(t *testing.T) {
	var p Principal
	assert.True(t, p.IsAnonymous())
	assert.False(t, p.IsCustomer())
	assert.False(t, p.IsAdmin())
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "shipped", "cancelled"} {
		status, ok := ParseOrderStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, OrderStatus(valid), status)
	}

	for _, invalid := range []string{"", "delivered", "Pending", "SHIPPED"} {
		_, ok := ParseOrderStatus(invalid)
		assert.False(t, ok, invalid)
	}
}
