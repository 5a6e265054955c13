package usecase

import (
	"context"
	"testing"

	"github.com/my-shop/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
)

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	// The enum gate fires before any repository or transaction is touched,
	// so a zero-value usecase is enough.
	a := &AdminUseCase{}

	for _, status := range []string{"", "delivered", "PENDING", "done"} {
		err := a.UpdateOrderStatus(context.Background(), 1, status)
		assert.ErrorIs(t, err, e.ErrInvalidStatus, status)
	}
}

func TestValidateProduct(t *testing.T) {
	a := &AdminUseCase{}

	assert.NoError(t, a.validateProduct(&SaveProductReq{Name: "Smart Watch", Price: 199000}))
	assert.ErrorIs(t, a.validateProduct(&SaveProductReq{Name: "  "}), e.ErrProductNameRequired)
	assert.ErrorIs(t, a.validateProduct(&SaveProductReq{Name: "X", Price: -1}), e.ErrInvalidPrice)
	assert.ErrorIs(t, a.validateProduct(&SaveProductReq{Name: "X", Stock: -1}), e.ErrInvalidStock)
}
