package langfuse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDisabledClientNoops(t *testing.T) {
	c := NewClient(Config{})
	if c.IsEnabled() {
		t.Fatal("client without config must be disabled")
	}

	traceID, err := c.CreateTrace(context.Background(), TraceInput{Name: "sleep-analysis"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if traceID != "" {
		t.Fatalf("disabled client returned trace id %q", traceID)
	}
	if err := c.CreateScore(context.Background(), ScoreInput{TraceID: "t"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateTraceSendsBatch(t *testing.T) {
	received := make(chan batchPayload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/public/ingestion" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if user, _, ok := r.BasicAuth(); !ok || user != "pk" {
			t.Errorf("missing basic auth")
		}
		var payload batchPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		received <- payload
		w.WriteHeader(http.StatusMultiStatus)
	}))
	defer server.Close()

	c := NewClient(Config{
		BaseURL:     server.URL,
		PublicKey:   "pk",
		SecretKey:   "sk",
		Environment: "test",
	})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		UserID: "user-1",
		Name:   "sleep-analysis",
		Input:  map[string]any{"record_count": 14},
		Output: []string{"rec"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if traceID == "" {
		t.Fatal("expected a generated trace id")
	}

	// Sends are async; wait for the server to see the batch.
	select {
	case payload := <-received:
		if len(payload.Batch) != 1 {
			t.Fatalf("batch size = %d, want 1", len(payload.Batch))
		}
		if payload.Batch[0].Type != "trace-create" {
			t.Fatalf("event type = %s, want trace-create", payload.Batch[0].Type)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server never received the trace event")
	}
}

func TestCreateScoreSendsBatch(t *testing.T) {
	received := make(chan batchPayload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload batchPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk"})

	if err := c.CreateScore(context.Background(), ScoreInput{
		TraceID: "trace-1",
		Name:    "user_feedback",
		Value:   1,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case payload := <-received:
		if payload.Batch[0].Type != "score-create" {
			t.Fatalf("event type = %s, want score-create", payload.Batch[0].Type)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server never received the score event")
	}
}

func TestSendBatchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk"}).(*client)

	err := c.sendBatch(context.Background(), []ingestionEvent{{ID: "e", Type: "trace-create"}})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}
