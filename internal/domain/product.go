package domain

// Product describes a catalog product.
type Product struct {
	ID          int64
	Name        string
	Price       int64 // price stored in cents
	ImageURL    string
	Description string
	Category    string // comma-joined category labels, see NormalizeCategory
	Rating      float64
	ReviewText  string
	IsNew       bool
	IsSale      bool
	Stock       int
}
