package e

import "fmt"

var (
	// Internal transaction errors
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Configuration errors
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("required fields are missing")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidRating        = fmt.Errorf("invalid rating")
	ErrInvalidStock         = fmt.Errorf("invalid stock")
	ErrInvalidStatus        = fmt.Errorf("invalid order status")
	ErrEmptyCart            = fmt.Errorf("cart is empty")
	ErrNoValidItems         = fmt.Errorf("no valid items in cart")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrFileTooLarge         = fmt.Errorf("file is too large")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("not found")

	// 409 Conflict
	ErrUsernameTaken     = fmt.Errorf("username is already taken")
	ErrProductReferenced = fmt.Errorf("product is referenced by existing orders")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap wraps an error with a message.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
