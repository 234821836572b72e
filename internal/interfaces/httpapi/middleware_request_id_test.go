package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fixedIDGenerator struct {
	id  string
	err error
}

func (g fixedIDGenerator) NewID() (string, error) {
	return g.id, g.err
}

func TestRequestID_MintsWhenMissing(t *testing.T) {
	var seen string
	handler := RequestID(fixedIDGenerator{id: "minted-1"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/games", nil))

	if seen != "minted-1" {
		t.Fatalf("expected minted id on context, got %q", seen)
	}
	if got := rec.Header().Get(requestIDHeader); got != "minted-1" {
		t.Fatalf("expected minted id header, got %q", got)
	}
}

func TestRequestID_ReusesInbound(t *testing.T) {
	handler := RequestID(fixedIDGenerator{id: "minted-1"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/v1/games", nil)
	req.Header.Set(requestIDHeader, "edge-abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "edge-abc123" {
		t.Fatalf("expected inbound id echoed, got %q", got)
	}
}

func TestRequestID_RejectsUnsafeInbound(t *testing.T) {
	handler := RequestID(fixedIDGenerator{id: "minted-2"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/v1/games", nil)
	req.Header.Set(requestIDHeader, "bad id with spaces")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "minted-2" {
		t.Fatalf("expected replacement id, got %q", got)
	}
}

func TestRequestID_GeneratorFailureSkipsHeader(t *testing.T) {
	var seen string
	handler := RequestID(fixedIDGenerator{err: errors.New("entropy exhausted")}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/games", nil))

	if seen != "" || rec.Header().Get(requestIDHeader) != "" {
		t.Fatalf("expected no request id, got context=%q header=%q", seen, rec.Header().Get(requestIDHeader))
	}
}
