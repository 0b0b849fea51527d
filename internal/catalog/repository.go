package catalog

import "sync"

// Repository holds the catalog in process memory. It replaces the mock
// module-level array of the storefront prototype with an explicit object
// owned by the server instance, so tests get isolated catalogs and admin
// writers are serialized behind the lock.
type Repository struct {
	mu       sync.RWMutex
	products []Product
}

// NewRepository builds a repository initialized with the given products.
func NewRepository(seed []Product) *Repository {
	products := make([]Product, len(seed))
	copy(products, seed)
	return &Repository{products: products}
}

// List returns a snapshot copy of every product in catalog order.
func (r *Repository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

// Get returns the product with the given id.
func (r *Repository) Get(id string) (Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories returns the deduplicated category labels in first-seen order.
func (r *Repository) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{}, len(r.products))
	out := make([]string, 0, len(r.products))
	for _, p := range r.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Insert appends a new product.
func (r *Repository) Insert(p Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
}

// Save replaces the stored product with the same id, reporting whether
// it existed.
func (r *Repository) Save(p Product) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p
			return true
		}
	}
	return false
}

// Delete removes the product with the given id, reporting whether it existed.
func (r *Repository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true
		}
	}
	return false
}
