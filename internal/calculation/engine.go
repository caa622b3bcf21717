package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/rpgo/card-optimizer/pkg/money"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates the single-period allocation and the
// month-by-month strategy comparison.
type CalculationEngine struct {
	Allocator  *Allocator
	Projection *ProjectionEngine
	Settings   domain.EngineSettings
	Logger     Logger
}

// NewCalculationEngine creates an engine with default settings and the
// shared projector cache.
func NewCalculationEngine() *CalculationEngine {
	engine, err := NewCalculationEngineWithSettings(domain.DefaultEngineSettings())
	if err != nil {
		// defaults always construct
		panic(err)
	}
	return engine
}

// NewCalculationEngineWithSettings creates an engine using the configured
// solver backend, projection mode and cache capacity. The shared projector
// is reused when the capacity matches the default.
func NewCalculationEngineWithSettings(settings domain.EngineSettings) (*CalculationEngine, error) {
	solver, err := NewSolver(settings.Solver)
	if err != nil {
		return nil, err
	}

	projector := DefaultProjector()
	if settings.CacheCapacity > 0 && settings.CacheCapacity != DefaultCacheCapacity {
		projector, err = NewProjector(settings.CacheCapacity)
		if err != nil {
			return nil, err
		}
	}

	switch settings.ProjectionMode {
	case "", domain.ProjectionRolling, domain.ProjectionConstant:
	default:
		return nil, fmt.Errorf("unknown projection mode %q", settings.ProjectionMode)
	}

	logger := NopLogger{}
	allocator := NewAllocator(solver, logger)
	return &CalculationEngine{
		Allocator:  allocator,
		Projection: NewProjectionEngine(projector, allocator, logger),
		Settings:   settings,
		Logger:     logger,
	}, nil
}

// SetLogger sets the logger for the engine and its components. If nil is
// provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Allocator.Logger = l
	ce.Projection.Logger = l
}

type columns struct {
	balances []decimal.Decimal
	aprs     []decimal.Decimal
	mins     []decimal.Decimal
	maxs     []*decimal.Decimal
	actuals  []*decimal.Decimal
}

func splitColumns(cards []domain.Account) columns {
	c := columns{
		balances: make([]decimal.Decimal, len(cards)),
		aprs:     make([]decimal.Decimal, len(cards)),
		mins:     make([]decimal.Decimal, len(cards)),
		maxs:     make([]*decimal.Decimal, len(cards)),
		actuals:  make([]*decimal.Decimal, len(cards)),
	}
	for i, card := range cards {
		c.balances[i] = card.Balance
		c.aprs[i] = card.APR
		c.mins[i] = card.MinPayment
		c.maxs[i] = card.MaxPayment
		actual := card.EffectiveActualPayment()
		c.actuals[i] = &actual
	}
	return c
}

// Allocate suggests how to split the budget across the request's cards for
// the coming month. An infeasible budget returns ErrInfeasible.
func (ce *CalculationEngine) Allocate(ctx context.Context, req *domain.Request) (*domain.AllocationSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	cols := splitColumns(req.Cards)

	outcome, err := ce.Allocator.Allocate(AllocationInput{
		Balances:       cols.balances,
		APRs:           cols.aprs,
		MinPayments:    cols.mins,
		MaxPayments:    cols.maxs,
		ActualPayments: cols.actuals,
		Budget:         req.Budget,
	})
	if err != nil {
		return nil, fmt.Errorf("allocation failed: %w", err)
	}

	summary := &domain.AllocationSummary{
		Budget:                       req.Budget,
		Solution:                     outcome.Status,
		InitialBalance:               money.Sum(cols.balances),
		EndBalanceOnMinimumPayment:   money.Sum(outcome.NextOnMin),
		EndBalanceOnCurrentPayment:   money.Sum(outcome.NextOnActual),
		EndBalanceOnSuggestedPayment: money.Sum(outcome.NextOnSuggested),
		InterestSaved:                outcome.InterestSaved,
		UpdatedCards:                 make([]domain.CardAllocation, len(req.Cards)),
	}
	for i, card := range req.Cards {
		summary.UpdatedCards[i] = domain.CardAllocation{
			Account:                     card,
			SuggestedPayment:            outcome.Payments[i],
			NextBalanceOnSuggested:      outcome.NextOnSuggested[i],
			NextBalanceOnMin:            outcome.NextOnMin[i],
			NextBalanceOnCurrentPayment: outcome.NextOnActual[i],
		}
	}

	ce.Logger.Infof("allocation %s: %d cards, end balance %s on suggested vs %s on minimum",
		summary.Solution, len(req.Cards), summary.EndBalanceOnSuggestedPayment.StringFixed(2), summary.EndBalanceOnMinimumPayment.StringFixed(2))
	return summary, nil
}

// Compare projects every card under minimum, actual and optimal payments
// for the configured horizon, starting at the current calendar month.
func (ce *CalculationEngine) Compare(ctx context.Context, req *domain.Request) (*domain.ComparisonReport, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	cols := splitColumns(req.Cards)

	series, err := ce.Projection.Run(ProjectionInput{
		Balances:       cols.balances,
		APRs:           cols.aprs,
		MinPayments:    cols.mins,
		MaxPayments:    cols.maxs,
		ActualPayments: cols.actuals,
		Budget:         req.Budget,
		Horizon:        ce.Settings.HorizonMonths,
		Mode:           ce.Settings.ProjectionMode,
		Start:          nowFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("projection failed: %w", err)
	}

	report := &domain.ComparisonReport{Progress: make([]domain.CardProjection, len(req.Cards))}
	for i, card := range req.Cards {
		points := make([]domain.MonthProjection, len(series.Months))
		for m, month := range series.Months {
			points[m] = domain.MonthProjection{
				Month:                       month,
				NextBalanceOnMin:            series.Minimum[i][m].Round(4),
				NextBalanceOnCurrentPayment: series.Actual[i][m].Round(4),
				NextBalanceOnSuggested:      series.Optimal[i][m].Round(4),
			}
		}
		report.Progress[i] = domain.CardProjection{Nickname: card.Nickname, Projection: points}
	}

	ce.Logger.Infof("comparison: %d cards over %d months", len(req.Cards), len(series.Months)-1)
	return report, nil
}
