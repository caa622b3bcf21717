package calculation

import (
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rpgo/card-optimizer/pkg/money"
	"github.com/shopspring/decimal"
)

// DefaultCacheCapacity is the projector cache size used when none is configured.
const DefaultCacheCapacity = 64

// projectionKey identifies one Project call. Amounts are keyed by their
// canonical decimal string, so equal values hit regardless of how they were
// constructed and unequal values never share an entry.
type projectionKey struct {
	balance string
	payment string
	apr     string
	periods int
}

// Projector computes the balance left after a number of months of a fixed
// payment. Results are memoized in a bounded LRU cache that is safe for
// concurrent use.
type Projector struct {
	cache  *lru.Cache[projectionKey, decimal.Decimal]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewProjector creates a projector with the given cache capacity.
func NewProjector(capacity int) (*Projector, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("projector cache capacity must be positive, got %d", capacity)
	}
	cache, err := lru.New[projectionKey, decimal.Decimal](capacity)
	if err != nil {
		return nil, fmt.Errorf("creating projector cache: %w", err)
	}
	return &Projector{cache: cache}, nil
}

var (
	defaultProjector     *Projector
	defaultProjectorOnce sync.Once
)

// DefaultProjector returns the process-wide projector shared by engines that
// do not ask for a dedicated cache size.
func DefaultProjector() *Projector {
	defaultProjectorOnce.Do(func() {
		p, err := NewProjector(DefaultCacheCapacity)
		if err != nil {
			panic(err)
		}
		defaultProjector = p
	})
	return defaultProjector
}

// Project returns balance*g^n - payment*(g + g^2 + ... + g^n), floored at
// zero, where g = 1 + aprPercent/1200. Zero periods return the balance.
func (p *Projector) Project(balance, payment, aprPercent decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return balance
	}
	key := projectionKey{
		balance: balance.String(),
		payment: payment.String(),
		apr:     aprPercent.String(),
		periods: periods,
	}
	if v, ok := p.cache.Get(key); ok {
		p.hits.Add(1)
		return v
	}
	p.misses.Add(1)
	v := compound(balance, payment, aprPercent, periods)
	p.cache.Add(key, v)
	return v
}

// Stats reports cache hits, misses and current size.
func (p *Projector) Stats() (hits, misses int64, size int) {
	return p.hits.Load(), p.misses.Load(), p.cache.Len()
}

// Purge empties the cache and resets the counters.
func (p *Projector) Purge() {
	p.cache.Purge()
	p.hits.Store(0)
	p.misses.Store(0)
}

func compound(balance, payment, aprPercent decimal.Decimal, periods int) decimal.Decimal {
	g := money.MonthlyGrowthFactor(aprPercent)
	factor := decimal.NewFromInt(1)
	annuity := decimal.Zero
	for i := 1; i <= periods; i++ {
		factor = factor.Mul(g)
		annuity = annuity.Add(factor)
	}
	return money.FloorZero(balance.Mul(factor).Sub(payment.Mul(annuity)))
}
