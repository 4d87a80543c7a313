package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-service", 10*time.Second)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}

	if client.serviceName != "test-service" {
		t.Errorf("NewClient() serviceName = %v, want test-service", client.serviceName)
	}

	if client.httpClient == nil {
		t.Error("NewClient() did not initialize httpClient")
	}

	if client.httpClient.Timeout != 10*time.Second {
		t.Errorf("NewClient() timeout = %v, want %v", client.httpClient.Timeout, 10*time.Second)
	}
}

func TestGetJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "123", "name": "test"})
	}))
	defer server.Close()

	client := NewClient("test", 5*time.Second)

	var result map[string]any
	if err := client.GetJSON(context.Background(), server.URL, &result); err != nil {
		t.Fatalf("GetJSON() error: %v", err)
	}

	if result["id"] != "123" {
		t.Errorf("GetJSON() id = %v, want 123", result["id"])
	}
}

func TestPostJSON_SendsBodyAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %v, want application/json", r.Header.Get("Content-Type"))
		}
		var in map[string]any
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"echo": in["name"]})
	}))
	defer server.Close()

	client := NewClient("test", 5*time.Second)

	var result map[string]any
	err := client.PostJSON(context.Background(), server.URL, map[string]any{"name": "oat milk"}, &result)
	if err != nil {
		t.Fatalf("PostJSON() error: %v", err)
	}

	if result["echo"] != "oat milk" {
		t.Errorf("PostJSON() echo = %v, want oat milk", result["echo"])
	}
}

func TestPostJSON_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient("test", 5*time.Second)

	err := client.PostJSON(context.Background(), server.URL, map[string]any{}, nil)
	if err == nil {
		t.Fatal("PostJSON() expected error, got nil")
	}

	httpErr, ok := err.(*HTTPError)
	if !ok {
		t.Fatalf("PostJSON() error type = %T, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusBadRequest {
		t.Errorf("HTTPError.StatusCode = %v, want %v", httpErr.StatusCode, http.StatusBadRequest)
	}
}

func TestDo_RetriesRetryableStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClientWithRetry("test", 5*time.Second, RetryConfig{
		MaxRetries:        2,
		InitialBackoff:    time.Millisecond,
		MaxBackoff:        10 * time.Millisecond,
		RetryableStatuses: []int{http.StatusServiceUnavailable},
	})

	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Get() status = %v, want %v", resp.StatusCode, http.StatusOK)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("server calls = %v, want 2", got)
	}
}

func TestDo_MaxRetriesExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClientWithRetry("test", 5*time.Second, RetryConfig{
		MaxRetries:        1,
		InitialBackoff:    time.Millisecond,
		MaxBackoff:        10 * time.Millisecond,
		RetryableStatuses: []int{http.StatusServiceUnavailable},
	})

	_, err := client.Get(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Get() expected error after exhausting retries, got nil")
	}
}
