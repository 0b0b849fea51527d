package catalog

import "time"

// Product is a single catalog record. The repository owns these; query
// paths only ever see copies.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  *float64          `json:"originalPrice,omitempty"`
	Image          string            `json:"image"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	InStock        bool              `json:"inStock"`
	Stock          int               `json:"stock"`
	Specifications map[string]string `json:"specifications,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}
