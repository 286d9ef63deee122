package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAPIClientTrimsTrailingSlash(t *testing.T) {
	c := newAPIClient("http://localhost:8080/")
	if c.base != "http://localhost:8080" {
		t.Fatalf("base=%q", c.base)
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("BABD_TEST_KEY", "set")
	if got := envOr("BABD_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("got %q", got)
	}
	if got := envOr("BABD_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintResponse_NonOKReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"backend nllb not ready","code":409}`))
	}))
	defer srv.Close()

	if err := newAPIClient(srv.URL).get("/translate"); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestPrintResponse_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models":[]}`))
	}))
	defer srv.Close()

	if err := newAPIClient(srv.URL).get("/models"); err != nil {
		t.Fatalf("get: %v", err)
	}
}
