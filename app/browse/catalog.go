package browse

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/TetianaVeremchuk/product-categories/app/cache"
	"github.com/TetianaVeremchuk/product-categories/app/metrics"
	"github.com/TetianaVeremchuk/product-categories/models"
)

// snapshotKey is bumped whenever the encoded EnrichedProduct layout changes.
const snapshotKey = "catalog:enriched:v1"

// FixtureSource supplies the collections the catalog is built from.
type FixtureSource interface {
	Load(ctx context.Context) (models.Fixtures, error)
}

// Result is the outcome of one browse request.
type Result struct {
	Products  []EnrichedProduct
	Total     int
	NoMatches bool
}

// Catalog serves enriched, filtered products. Fixtures are loaded once and
// the enriched list is kept in the cache between requests.
type Catalog struct {
	source  FixtureSource
	cache   cache.Cache
	ttl     time.Duration
	log     *zap.Logger
	metrics *metrics.Metrics

	mu       sync.Mutex
	fixtures *models.Fixtures
}

type Option func(*Catalog)

// WithTTL sets how long the enriched list stays cached. Zero never expires.
func WithTTL(ttl time.Duration) Option {
	return func(c *Catalog) { c.ttl = ttl }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Catalog) { c.log = log }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Catalog) { c.metrics = m }
}

func NewCatalog(source FixtureSource, c cache.Cache, opts ...Option) *Catalog {
	catalog := &Catalog{
		source: source,
		cache:  c,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(catalog)
	}
	return catalog
}

// Fixtures returns the raw collections, loading them on first use.
func (c *Catalog) Fixtures(ctx context.Context) (models.Fixtures, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fixtures != nil {
		return *c.fixtures, nil
	}

	f, err := c.source.Load(ctx)
	if err != nil {
		return models.Fixtures{}, err
	}
	c.log.Info("Fixtures loaded",
		zap.Int("users", len(f.Users)),
		zap.Int("categories", len(f.Categories)),
		zap.Int("products", len(f.Products)))

	c.fixtures = &f
	return f, nil
}

// Products returns every enriched product in fixture order.
func (c *Catalog) Products(ctx context.Context) ([]EnrichedProduct, error) {
	if products, ok := c.cached(ctx); ok {
		return products, nil
	}

	f, err := c.Fixtures(ctx)
	if err != nil {
		return nil, err
	}

	products, err := BuildViewModels(f)
	c.metrics.RecordBuild(err)
	if err != nil {
		c.log.Error("Failed to build view models", zap.Error(err))
		return nil, err
	}

	c.store(ctx, products)
	return products, nil
}

// Product returns one enriched product by id.
func (c *Catalog) Product(ctx context.Context, id uint) (EnrichedProduct, error) {
	products, err := c.Products(ctx)
	if err != nil {
		return EnrichedProduct{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return EnrichedProduct{}, models.ErrProductNotFound
}

// Browse filters the enriched products by state.
func (c *Catalog) Browse(ctx context.Context, state FilterState) (Result, error) {
	products, err := c.Products(ctx)
	if err != nil {
		return Result{}, err
	}

	filtered := FilterProducts(products, state)
	c.metrics.RecordFilterResult(len(filtered))

	return Result{
		Products:  filtered,
		Total:     len(filtered),
		NoMatches: len(filtered) == 0,
	}, nil
}

func (c *Catalog) cached(ctx context.Context) ([]EnrichedProduct, bool) {
	if c.cache == nil {
		return nil, false
	}

	data, err := c.cache.Get(ctx, snapshotKey)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			c.metrics.RecordCacheLookup("miss")
		} else {
			c.metrics.RecordCacheLookup("error")
			c.log.Warn("View model cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var products []EnrichedProduct
	if err := json.Unmarshal(data, &products); err != nil {
		c.metrics.RecordCacheLookup("error")
		c.log.Warn("Discarding undecodable view model snapshot", zap.Error(err))
		return nil, false
	}

	c.metrics.RecordCacheLookup("hit")
	return products, true
}

func (c *Catalog) store(ctx context.Context, products []EnrichedProduct) {
	if c.cache == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		c.log.Warn("Failed to encode view models", zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, snapshotKey, data, c.ttl); err != nil {
		c.log.Warn("View model cache write failed", zap.Error(err))
	}
}
