package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	pkgauth "github.com/kartzyhq/kartzy-backend/pkg/auth"
)

// User is one registered account. PasswordHash is an encoded Argon2id
// string and never leaves this package.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         pkgauth.Role
	CreatedAt    time.Time
}

// Repository keeps accounts in process memory, keyed by normalized email.
type Repository struct {
	mu      sync.RWMutex
	byEmail map[string]User
}

func NewRepository() *Repository {
	return &Repository{byEmail: map[string]User{}}
}

// Create stores a new account, reporting false when the email is taken.
func (r *Repository) Create(user User) bool {
	key := normalizeEmail(user.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[key]; exists {
		return false
	}
	r.byEmail[key] = user
	return true
}

// FindByEmail looks an account up by its normalized email.
func (r *Repository) FindByEmail(email string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[normalizeEmail(email)]
	return user, ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
