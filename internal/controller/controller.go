package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/five82/shopfilter/internal/filters"
	"github.com/five82/shopfilter/internal/location"
	"github.com/five82/shopfilter/internal/metrics"
	"github.com/five82/shopfilter/internal/state"
)

// Options configure a Controller. Every field is optional: without a Port
// exports skip the URL, without a Store nothing is published.
type Options struct {
	Port    location.Port
	Store   *state.Store
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Controller owns the working filter criteria and keeps them in sync with the
// page URL and the shared store.
type Controller struct {
	mu       sync.Mutex
	port     location.Port
	store    *state.Store
	logger   *slog.Logger
	metrics  *metrics.Metrics
	criteria filters.Criteria
	machine  machine
	// lastQuery is the encoded query the controller last read or wrote;
	// Observe re-imports only when the port has moved away from it.
	lastQuery string
}

// New returns a controller holding default criteria in state Uninitialized.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		port:     opts.Port,
		store:    opts.Store,
		logger:   logger,
		metrics:  opts.Metrics,
		criteria: filters.Default(),
	}
}

// Import seeds the criteria from the port's current query and moves to
// Imported. It never writes the URL.
func (c *Controller) Import() filters.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.importLocked(c.read())
}

// Observe re-imports when the port's query changed since the controller last
// read or wrote it, e.g. after back/forward navigation. It reports whether
// an import happened.
func (c *Controller) Observe() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	query := c.read()
	if c.machine.state != Uninitialized && query.Encode() == c.lastQuery {
		return false
	}
	c.importLocked(query)
	return true
}

// Criteria returns the working filter set.
func (c *Controller) Criteria() filters.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// State returns the synchronization state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.state
}

// Imported reports whether an import has completed.
func (c *Controller) Imported() bool {
	return c.State() != Uninitialized
}

// Touched reports whether the user changed a filter since the last import.
func (c *Controller) Touched() bool {
	return c.State() == Touched
}

// SetCategory selects a category by name. An empty name clears the selection.
func (c *Controller) SetCategory(name string) error {
	return c.mutate(func(cr *filters.Criteria) { cr.Category = name })
}

// SetColor selects a color code. An empty code clears the selection.
func (c *Controller) SetColor(code string) error {
	return c.mutate(func(cr *filters.Criteria) { cr.Color = code })
}

// SetSize selects a size. Sizes outside filters.Sizes are rejected without
// touching the state.
func (c *Controller) SetSize(size filters.Size) error {
	parsed, err := filters.ParseSize(string(size))
	if err != nil {
		return err
	}
	return c.mutate(func(cr *filters.Criteria) { cr.Size = parsed })
}

// SetPriceRange sets both price bounds. A reversed pair is swapped; no other
// bounds are enforced.
func (c *Controller) SetPriceRange(minPrice, maxPrice int) error {
	return c.mutate(func(cr *filters.Criteria) {
		cr.PriceMin = minPrice
		cr.PriceMax = maxPrice
	})
}

func (c *Controller) mutate(apply func(*filters.Criteria)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	apply(&c.criteria)
	c.criteria = c.criteria.Normalize()

	if !c.machine.fire(EventTouch) {
		c.logger.Debug("filter changed before import; url left alone", "state", c.machine.state)
		c.metrics.ExportSkipped(metrics.SkipNotImported)
		return nil
	}
	return c.exportLocked()
}

func (c *Controller) importLocked(query url.Values) filters.Criteria {
	c.criteria = filters.Decode(query)
	c.machine.fire(EventImport)
	c.lastQuery = query.Encode()
	c.metrics.Import()
	c.logger.Info("filters imported from url",
		"category", c.criteria.Category,
		"color", c.criteria.Color,
		"size", c.criteria.Size,
		"min_price", c.criteria.PriceMin,
		"max_price", c.criteria.PriceMax,
	)
	return c.criteria
}

// exportLocked writes the criteria over the current query, replaces the URL
// in place and publishes the shared filter set.
func (c *Controller) exportLocked() error {
	next, err := filters.Apply(c.read(), c.criteria)
	if err != nil {
		return err
	}

	if c.port == nil {
		c.metrics.ExportSkipped(metrics.SkipNoHistory)
	} else if err := c.port.Replace(next); err != nil {
		if !errors.Is(err, location.ErrUnsupported) {
			c.logger.Error("replace url failed", "error", err)
			return fmt.Errorf("replace url: %w", err)
		}
		c.logger.Debug("url replacement unavailable; skipping")
		c.metrics.ExportSkipped(metrics.SkipNoHistory)
	} else {
		c.lastQuery = next.Encode()
	}

	if c.store != nil {
		c.store.Publish(c.criteria.Shared())
	}
	c.metrics.Export()
	c.logger.Info("filters exported", "query", next.Encode())
	return nil
}

func (c *Controller) read() url.Values {
	if c.port == nil {
		return url.Values{}
	}
	return c.port.Read()
}
