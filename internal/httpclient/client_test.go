package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestClient_RetriesOnServiceUnavailable(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(nil, 0).WithRetryBase(time.Millisecond)
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	resp, err := c.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("Expected 3 attempts, got %d", calls)
	}
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(nil, 0).WithRetryBase(time.Millisecond)
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	if _, err := c.Do(context.Background(), req); err == nil {
		t.Error("Expected error after exhausting retries")
	}
}

func TestClient_NoWaitAfterFinalAttempt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 3 {
			w.Header().Set("Retry-After", "5")
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(nil, 0).WithRetryBase(time.Millisecond)
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	start := time.Now()
	_, err := c.Do(context.Background(), req)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("Expected 3 attempts, got %d", calls)
	}
	if elapsed > 2*time.Second {
		t.Errorf("Expected Do to return without honoring the last Retry-After, took %s", elapsed)
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(nil, 1)
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	if _, err := c.Do(ctx, req); err == nil {
		t.Error("Expected context error")
	}
}

func TestParseRetryAfter(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	if parseRetryAfter(resp) != 0 {
		t.Error("Expected 0 without header")
	}
	resp.Header.Set("Retry-After", "2")
	if parseRetryAfter(resp) != 2*time.Second {
		t.Errorf("Expected 2s, got %v", parseRetryAfter(resp))
	}
	resp.Header.Set("Retry-After", "garbage")
	if parseRetryAfter(resp) != 0 {
		t.Error("Expected 0 for unparseable header")
	}
}
