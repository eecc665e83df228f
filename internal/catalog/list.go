package catalog

import (
	"context"
	"log/slog"

	"github.com/five82/shopfilter/internal/metrics"
)

// CollapsedLimit is how many categories show before "See more".
const CollapsedLimit = 10

// Status is the load state of a category list.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// List is the read-only category list shown next to the filters.
type List struct {
	Status Status
	Items  []CategoryOption
	Err    error
}

// Loading reports whether the fetch is still in flight.
func (l List) Loading() bool {
	return l.Status == StatusLoading
}

// Visible returns the items to render: all of them when expanded, otherwise
// at most CollapsedLimit.
func (l List) Visible(expanded bool) []CategoryOption {
	if expanded || len(l.Items) <= CollapsedLimit {
		return l.Items
	}
	return l.Items[:CollapsedLimit]
}

// HasMore reports whether an expand toggle is needed.
func (l List) HasMore() bool {
	return len(l.Items) > CollapsedLimit
}

// Loader fetches the category list once and degrades failures to an empty
// list.
type Loader struct {
	Fetcher CategoryFetcher
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Load never returns an error: network and shape failures are logged and
// yield a List with StatusFailed and no items.
func (l *Loader) Load(ctx context.Context) List {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if l.Fetcher == nil {
		logger.Warn("category fetcher not configured")
		l.Metrics.CategoryFetch(false)
		return List{Status: StatusFailed}
	}

	items, err := l.Fetcher.FetchCategories(ctx)
	if err != nil {
		logger.Error("fetch categories failed", "error", err)
		l.Metrics.CategoryFetch(false)
		return List{Status: StatusFailed, Err: err}
	}
	logger.Info("categories loaded", "count", len(items))
	l.Metrics.CategoryFetch(true)
	return List{Status: StatusLoaded, Items: items}
}
