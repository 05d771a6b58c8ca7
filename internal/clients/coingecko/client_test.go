package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetPrices_BatchesIntoSingleRequest(t *testing.T) {
	var requests int
	var gotIDs string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotIDs = r.URL.Query().Get("ids")
		if r.URL.Path != "/simple/price" {
			t.Errorf("path = %q, want /simple/price", r.URL.Path)
		}
		if vs := r.URL.Query().Get("vs_currencies"); vs != "usd" {
			t.Errorf("vs_currencies = %q, want usd", vs)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]map[string]float64{
			"bitcoin":  {"usd": 97123.45},
			"ethereum": {"usd": 3456.78},
		})
	}))
	defer srv.Close()

	client := NewClient("", WithBaseURL(srv.URL))
	prices, err := client.GetPrices(context.Background(), []string{"bitcoin", "ethereum"})
	if err != nil {
		t.Fatalf("GetPrices returned error: %v", err)
	}

	if requests != 1 {
		t.Errorf("requests = %d, want 1 (batch endpoint)", requests)
	}
	if gotIDs != "bitcoin,ethereum" {
		t.Errorf("ids = %q, want bitcoin,ethereum", gotIDs)
	}
	if prices["bitcoin"] != 97123.45 {
		t.Errorf("bitcoin = %v, want 97123.45", prices["bitcoin"])
	}
	if prices["ethereum"] != 3456.78 {
		t.Errorf("ethereum = %v, want 3456.78", prices["ethereum"])
	}
}

func TestGetPrices_LowercasesSymbols(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ids := r.URL.Query().Get("ids"); ids != "bitcoin" {
			t.Errorf("ids = %q, want bitcoin", ids)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]map[string]float64{"bitcoin": {"usd": 100}})
	}))
	defer srv.Close()

	client := NewClient("", WithBaseURL(srv.URL))
	if _, err := client.GetPrices(context.Background(), []string{" Bitcoin "}); err != nil {
		t.Fatalf("GetPrices returned error: %v", err)
	}
}

func TestGetPrices_MissingSymbolAbsentFromMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The API silently omits unknown ids
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]map[string]float64{"bitcoin": {"usd": 100}})
	}))
	defer srv.Close()

	client := NewClient("", WithBaseURL(srv.URL))
	prices, err := client.GetPrices(context.Background(), []string{"bitcoin", "no-such-coin"})
	if err != nil {
		t.Fatalf("GetPrices returned error: %v", err)
	}

	if len(prices) != 1 {
		t.Fatalf("len(prices) = %d, want 1", len(prices))
	}
	if _, ok := prices["no-such-coin"]; ok {
		t.Error("unknown id should be absent from the result, not zero")
	}
}

func TestGetPrices_EmptyInputSkipsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty symbol list")
	}))
	defer srv.Close()

	client := NewClient("", WithBaseURL(srv.URL))
	prices, err := client.GetPrices(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetPrices returned error: %v", err)
	}
	if len(prices) != 0 {
		t.Errorf("len(prices) = %d, want 0", len(prices))
	}
}

func TestGetPrices_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	client := NewClient("", WithBaseURL(srv.URL))
	_, err := client.GetPrices(context.Background(), []string{"bitcoin"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
}

func TestGetPrices_SendsAPIKeyHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get("x-cg-demo-api-key"); key != "demo-key" {
			t.Errorf("api key header = %q, want demo-key", key)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]map[string]float64{})
	}))
	defer srv.Close()

	client := NewClient("demo-key", WithBaseURL(srv.URL))
	if _, err := client.GetPrices(context.Background(), []string{"bitcoin"}); err != nil {
		t.Fatalf("GetPrices returned error: %v", err)
	}
}
