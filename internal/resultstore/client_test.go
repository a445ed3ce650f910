package resultstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPutReport_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody ReportRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	req := ReportRequest{JobID: "job-1", Filename: "doc.md", Report: map[string]any{"score": 80}}
	if err := c.PutReport(context.Background(), "job-1", req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/reports/job-1" {
		t.Errorf("expected path /reports/job-1, got %q", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotBody.JobID != "job-1" || gotBody.Filename != "doc.md" {
		t.Errorf("unexpected body: %+v", gotBody)
	}
}

func TestPutReport_ServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "k").PutReport(context.Background(), "j", ReportRequest{JobID: "j"})
	var retryErr *RetryableError
	if !errors.As(err, &retryErr) {
		t.Fatalf("expected a retryable error, got %v", err)
	}
	if retryErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", retryErr.StatusCode)
	}
}

func TestPutReport_RateLimitIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "k").PutReport(context.Background(), "j", ReportRequest{JobID: "j"})
	var retryErr *RetryableError
	if !errors.As(err, &retryErr) {
		t.Fatalf("expected a retryable error, got %v", err)
	}
}

func TestPutReport_ClientErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "k").PutReport(context.Background(), "j", ReportRequest{JobID: "j"})
	if err == nil {
		t.Fatal("expected an error")
	}
	var retryErr *RetryableError
	if errors.As(err, &retryErr) {
		t.Errorf("a 400 must not be retryable: %v", err)
	}
}

func TestPutReport_NetworkErrorIsRetryable(t *testing.T) {
	// Point at a closed server so the request fails at the transport.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := NewClient(srv.URL, "k").PutReport(context.Background(), "j", ReportRequest{JobID: "j"})
	var retryErr *RetryableError
	if !errors.As(err, &retryErr) {
		t.Fatalf("expected a retryable error, got %v", err)
	}
	if retryErr.StatusCode != 0 {
		t.Errorf("expected no status on a transport error, got %d", retryErr.StatusCode)
	}
}

func TestGetReport_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ReportRequest{JobID: "job-2", Title: "Plan"})
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, "k").GetReport(context.Background(), "job-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.JobID != "job-2" || got.Title != "Plan" {
		t.Errorf("unexpected report: %+v", got)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, "k").GetReport(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected no error for a 404, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil report, got %+v", got)
	}
}

func TestRetryableError_TruncatesLongBodies(t *testing.T) {
	err := &RetryableError{StatusCode: 500, Message: strings.Repeat("x", 500)}
	msg := err.Error()
	if !strings.HasSuffix(msg, "...") {
		t.Errorf("expected a truncated message, got %d chars", len(msg))
	}
	if len(msg) > 250 {
		t.Errorf("expected the message capped near 200 chars, got %d", len(msg))
	}
}
