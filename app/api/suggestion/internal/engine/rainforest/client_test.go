package rainforest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		maxResults int
		want       int
	}{
		{1, 1},
		{10, 1},
		{20, 1},
		{21, 2},
		{40, 2},
		{41, 3},
	}
	for _, tt := range tests {
		if got := pageCount(tt.maxResults); got != tt.want {
			t.Fatalf("pageCount(%d) = %d, want %d", tt.maxResults, got, tt.want)
		}
	}
}

func TestNormalize_AllFieldsMissing(t *testing.T) {
	p := normalize(rawProduct{})

	if p.Title != "タイトル不明" {
		t.Fatalf("title = %q", p.Title)
	}
	if p.Rating != 0 || p.RatingsTotal != 0 || p.IsPrime {
		t.Fatalf("rating/ratingsTotal/isPrime not zeroed: %+v", p)
	}
	if p.Price.Symbol != "¥" || p.Price.Value != 0 || p.Price.Currency != "JPY" || p.Price.Raw != "価格不明" {
		t.Fatalf("price placeholder wrong: %+v", p.Price)
	}
}

func TestSearch_NormalizesAndTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "search" {
			t.Errorf("type param = %q", got)
		}
		if got := r.URL.Query().Get("sort_by"); got != "average_review" {
			t.Errorf("sort_by param = %q", got)
		}
		if got := r.URL.Query().Get("max_page"); got != "1" {
			t.Errorf("max_page param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"search_results":[
			{"position":1,"title":"Item A","asin":"B000000001","rating":4.5,"ratings_total":120,
			 "price":{"symbol":"¥","value":1980,"currency":"JPY","raw":"¥1,980"},"is_prime":true},
			{"position":2,"asin":"B000000002"},
			{"position":3,"title":"Item C","asin":"B000000003"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(Conf{BaseUrl: srv.URL, APIKey: "test-key", AmazonDomain: "amazon.co.jp", Timeout: 5 * time.Second})
	products, err := c.Search(context.Background(), "headphones", 2)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(products))
	}
	if products[0].Price.Value != 1980 || !products[0].IsPrime {
		t.Fatalf("first product lost upstream fields: %+v", products[0])
	}
	if products[1].Title != "タイトル不明" || products[1].Price.Raw != "価格不明" {
		t.Fatalf("second product not normalized: %+v", products[1])
	}
}

func TestSearch_UpstreamErrorIsHardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"request_info":{"success":false,"message":"credits exhausted"}}`))
	}))
	defer srv.Close()

	c := NewClient(Conf{BaseUrl: srv.URL, APIKey: "test-key", Timeout: 5 * time.Second})
	if _, err := c.Search(context.Background(), "tv", 10); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestSearch_MissingKeyIsConfigError(t *testing.T) {
	c := NewClient(Conf{BaseUrl: "http://127.0.0.1:0", Timeout: time.Second})
	if _, err := c.Search(context.Background(), "tv", 10); err == nil {
		t.Fatal("expected configuration error when api key is empty")
	}
}
