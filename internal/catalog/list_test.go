package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/five82/shopfilter/internal/metrics"
)

type fakeFetcher struct {
	items []CategoryOption
	err   error
	calls int
}

func (f *fakeFetcher) FetchCategories(context.Context) ([]CategoryOption, error) {
	f.calls++
	return f.items, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeOptions(n int) []CategoryOption {
	items := make([]CategoryOption, n)
	for i := range items {
		items[i] = CategoryOption{ID: CategoryID(fmt.Sprint(i)), Name: fmt.Sprintf("Category %d", i)}
	}
	return items
}

func TestLoader_LoadSuccess(t *testing.T) {
	fetcher := &fakeFetcher{items: makeOptions(3)}
	m := metrics.New()
	loader := Loader{Fetcher: fetcher, Logger: discardLogger(), Metrics: m}

	list := loader.Load(context.Background())
	if list.Status != StatusLoaded || list.Loading() {
		t.Fatalf("Status = %v, want loaded", list.Status)
	}
	if len(list.Items) != 3 || fetcher.calls != 1 {
		t.Fatalf("items = %d calls = %d, want 3 items in 1 call", len(list.Items), fetcher.calls)
	}
}

func TestLoader_LoadFailureDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		fetcher CategoryFetcher
	}{
		{"invalid shape", &fakeFetcher{err: fmt.Errorf("%w: status is false", ErrInvalidResponse)}},
		{"network", &fakeFetcher{err: errors.New("dial tcp: connection refused")}},
		{"no fetcher", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := Loader{Fetcher: tt.fetcher, Logger: discardLogger()}
			list := loader.Load(context.Background())
			if list.Status != StatusFailed || list.Loading() {
				t.Fatalf("Status = %v, want failed", list.Status)
			}
			if len(list.Items) != 0 {
				t.Fatalf("Items = %#v, want empty", list.Items)
			}
		})
	}
}

func TestLoader_StatusFalseFromServer(t *testing.T) {
	c, _ := serveJSON(t, `{"status":false}`)
	m := metrics.New()
	loader := Loader{Fetcher: c, Logger: discardLogger(), Metrics: m}

	list := loader.Load(context.Background())
	if list.Status != StatusFailed || len(list.Items) != 0 {
		t.Fatalf("list = %#v, want empty failed list", list)
	}
	if !errors.Is(list.Err, ErrInvalidResponse) {
		t.Fatalf("Err = %v, want ErrInvalidResponse", list.Err)
	}
	expected := `
# HELP shopfilter_category_fetches_total The total number of category list fetches by result
# TYPE shopfilter_category_fetches_total counter
shopfilter_category_fetches_total{result="failed"} 1
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "shopfilter_category_fetches_total"); err != nil {
		t.Fatalf("category fetch metrics: %v", err)
	}
}

func TestList_VisibleAndHasMore(t *testing.T) {
	short := List{Status: StatusLoaded, Items: makeOptions(4)}
	if short.HasMore() || len(short.Visible(false)) != 4 {
		t.Fatalf("short list: HasMore=%v visible=%d, want false/4", short.HasMore(), len(short.Visible(false)))
	}

	long := List{Status: StatusLoaded, Items: makeOptions(14)}
	if !long.HasMore() {
		t.Fatal("HasMore = false, want true for 14 items")
	}
	if got := len(long.Visible(false)); got != CollapsedLimit {
		t.Fatalf("collapsed visible = %d, want %d", got, CollapsedLimit)
	}
	if got := len(long.Visible(true)); got != 14 {
		t.Fatalf("expanded visible = %d, want 14", got)
	}
}
