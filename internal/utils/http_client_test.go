package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:8000", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
	if client.BaseURL != "http://localhost:8000" {
		t.Errorf("unexpected base url %q", client.BaseURL)
	}
	if client.GetClient().Timeout != time.Second {
		t.Errorf("unexpected timeout %v", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", time.Second)
	client2 := NewHTTPClient("http://b", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_SendsAcceptHeader(t *testing.T) {
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("unexpected status %d", resp.StatusCode())
	}
	if accept != "application/json" {
		t.Errorf("expected Accept 'application/json', got %q", accept)
	}
}
