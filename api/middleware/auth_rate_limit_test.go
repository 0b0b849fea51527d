package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

type memoryRateLimitStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newMemoryRateLimitStore() *memoryRateLimitStore {
	return &memoryRateLimitStore{counts: map[string]int64{}}
}

func (s *memoryRateLimitStore) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return s.counts[key], nil
}

func (s *memoryRateLimitStore) RateLimitKey(scope string) string {
	return "test:rate_limit:" + scope
}

func okHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRateLimitEnforcesIPLimit(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 2, 0)
	calls := 0
	handler := AuthRateLimit(policy, newMemoryRateLimitStore(), testLogger())(okHandler(&calls))

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"jordan@example.com","password":"x"}`))
		req.RemoteAddr = "203.0.113.7:4242"
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		return resp.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("expected first attempt allowed got %d", code)
	}
	if code := send(); code != http.StatusOK {
		t.Fatalf("expected second attempt allowed got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 past the limit got %d", code)
	}
	if calls != 2 {
		t.Fatalf("expected 2 handled requests got %d", calls)
	}
}

func TestAuthRateLimitCountsPerEmail(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 0, 1)
	calls := 0
	handler := AuthRateLimit(policy, newMemoryRateLimitStore(), testLogger())(okHandler(&calls))

	send := func(email string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"`+email+`","password":"x"}`))
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		return resp.Code
	}

	if code := send("jordan@example.com"); code != http.StatusOK {
		t.Fatalf("expected first attempt allowed got %d", code)
	}
	if code := send("JORDAN@example.com"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for same normalized email got %d", code)
	}
	if code := send("other@example.com"); code != http.StatusOK {
		t.Fatalf("expected other email unaffected got %d", code)
	}
}

func TestAuthRateLimitPassesThroughWithoutStore(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 1, 1)
	calls := 0
	handler := AuthRateLimit(policy, nil, testLogger())(okHandler(&calls))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected passthrough got %d", resp.Code)
		}
	}
	if calls != 5 {
		t.Fatalf("expected all requests handled got %d", calls)
	}
}
