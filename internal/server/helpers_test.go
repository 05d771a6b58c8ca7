package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPathParam(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		suffix string
		want   string
	}{
		{"simple id", "/api/positions/abc-123", "/api/positions/", "", "abc-123"},
		{"with suffix", "/api/portfolio/crypto/positions", "/api/portfolio/", "/positions", "crypto"},
		{"wrong prefix", "/api/other/abc", "/api/positions/", "", ""},
		{"empty rest", "/api/positions/", "/api/positions/", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if got := PathParam(req, tt.prefix, tt.suffix); got != tt.want {
				t.Errorf("PathParam(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRequireMethod_SetsAllowHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/health", nil)
	rr := httptest.NewRecorder()

	if RequireMethod(rr, req, http.MethodGet, http.MethodHead) {
		t.Fatal("Expected RequireMethod to reject DELETE")
	}
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rr.Code)
	}
	if allow := rr.Header().Get("Allow"); !strings.Contains(allow, http.MethodGet) {
		t.Errorf("Expected GET in Allow header, got %q", allow)
	}
}

func TestDecodeJSON_RejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/networth", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	var dst map[string]any
	if DecodeJSON(rr, req, &dst) {
		t.Fatal("Expected DecodeJSON to fail on malformed body")
	}
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
}

func TestMaskSecret(t *testing.T) {
	if got := maskSecret("abcd1234"); got != "****1234" {
		t.Errorf("maskSecret(abcd1234) = %q", got)
	}
	if got := maskSecret("ab"); got != "****" {
		t.Errorf("maskSecret(ab) = %q", got)
	}
}
