package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/seoradar/server/internal/tabular"
	"golang.org/x/time/rate"
)

// fetcher with the throttle opened up for tests
func testFetcher(url string) *Fetcher {
	f := NewFetcher(url)
	f.limiter = rate.NewLimiter(rate.Inf, 1)

	return f
}

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("記事タイトル,売上,imp\nfoo,¥1000,500\n")) //nolint:errcheck // test server
	}))
	defer srv.Close()

	table, err := testFetcher(srv.URL).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(table.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(table.Rows))
	}

	// headers are normalized during ingestion
	if table.Rows[0].Get(tabular.ColTitle) != "foo" {
		t.Errorf("title = %q, want foo", table.Rows[0].Get(tabular.ColTitle))
	}

	if v, ok := table.Rows[0].Num(tabular.ColSales7d); !ok || v != 1000 {
		t.Errorf("sales = %v (ok=%v), want 1000", v, ok)
	}
}

func TestFetchAll_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testFetcher(srv.URL).FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected error on upstream 500")
	}
}

func TestFetchAll_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := testFetcher(srv.URL).FetchAll(ctx)
	if err == nil {
		t.Fatal("expected error on canceled context")
	}
}
