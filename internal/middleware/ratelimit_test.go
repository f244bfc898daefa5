package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func rateLimited(limit int, per time.Duration) http.Handler {
	return RateLimit(limit, per)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hit(h http.Handler, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitCapsPerClient(t *testing.T) {
	h := rateLimited(2, time.Minute)

	for i := 0; i < 2; i++ {
		if rec := hit(h, "10.0.0.1:1234"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i+1, rec.Code)
		}
	}
	rec := hit(h, "10.0.0.1:1234")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("over-limit request: status %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After header")
	}

	// A different client keeps its own budget.
	if rec := hit(h, "10.0.0.2:1234"); rec.Code != http.StatusOK {
		t.Fatalf("other client: status %d", rec.Code)
	}
}

func TestRateLimitWindowExpires(t *testing.T) {
	h := rateLimited(1, 30*time.Millisecond)

	if rec := hit(h, "10.0.0.1:1234"); rec.Code != http.StatusOK {
		t.Fatalf("first request: status %d", rec.Code)
	}
	if rec := hit(h, "10.0.0.1:1234"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 inside window, got %d", rec.Code)
	}

	time.Sleep(40 * time.Millisecond)

	if rec := hit(h, "10.0.0.1:1234"); rec.Code != http.StatusOK {
		t.Fatalf("request after window: status %d", rec.Code)
	}
}
