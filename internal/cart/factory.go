package cart

import (
	"sync"
	"time"

	pkgredis "github.com/kartzyhq/kartzy-backend/pkg/redis"
)

// StoreFactory yields the persistence slot backing one owner's cart.
type StoreFactory func(owner string) (Store, error)

// NewRedisFactory backs each owner's cart with a Redis slot.
func NewRedisFactory(client *pkgredis.Client, ttl time.Duration) StoreFactory {
	return func(owner string) (Store, error) {
		return NewRedisStore(client, owner, ttl)
	}
}

// NewMemoryFactory backs carts with in-process slots, one per owner.
// Carts survive for the life of the process only.
func NewMemoryFactory() StoreFactory {
	var mu sync.Mutex
	stores := make(map[string]*MemoryStore)

	return func(owner string) (Store, error) {
		mu.Lock()
		defer mu.Unlock()
		store, ok := stores[owner]
		if !ok {
			store = NewMemoryStore()
			stores[owner] = store
		}
		return store, nil
	}
}
