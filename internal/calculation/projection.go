package calculation

import (
	"fmt"
	"time"

	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/rpgo/card-optimizer/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// DefaultHorizonMonths is the number of months projected past the current one.
const DefaultHorizonMonths = 12

// ProjectionInput describes the accounts and budget to project.
type ProjectionInput struct {
	Balances       []decimal.Decimal
	APRs           []decimal.Decimal
	MinPayments    []decimal.Decimal
	MaxPayments    []*decimal.Decimal
	ActualPayments []*decimal.Decimal
	Budget         decimal.Decimal
	Horizon        int
	Mode           string
	Start          time.Time
}

// ProjectionSeries holds Horizon+1 balances per account per strategy,
// indexed [account][month]. Month 0 is the current balance.
type ProjectionSeries struct {
	Months  []string
	Minimum [][]decimal.Decimal
	Actual  [][]decimal.Decimal
	Optimal [][]decimal.Decimal
}

// ProjectionEngine walks the three payment strategies forward month by month.
type ProjectionEngine struct {
	Projector *Projector
	Allocator *Allocator
	Logger    Logger
}

// NewProjectionEngine wires a projection engine. Nil arguments fall back to
// the shared projector, a greedy allocator and a no-op logger.
func NewProjectionEngine(projector *Projector, allocator *Allocator, logger Logger) *ProjectionEngine {
	if projector == nil {
		projector = DefaultProjector()
	}
	if logger == nil {
		logger = NopLogger{}
	}
	if allocator == nil {
		allocator = NewAllocator(nil, logger)
	}
	return &ProjectionEngine{Projector: projector, Allocator: allocator, Logger: logger}
}

// Run builds the minimum, actual and optimal series.
func (pe *ProjectionEngine) Run(in ProjectionInput) (*ProjectionSeries, error) {
	n := len(in.Balances)
	if n == 0 || len(in.APRs) != n || len(in.MinPayments) != n {
		return nil, fmt.Errorf("%w: projection needs matching balances, APRs and minimum payments", ErrMalformedProgram)
	}
	horizon := in.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizonMonths
	}
	start := in.Start
	if start.IsZero() {
		start = nowFunc()
	}

	optimal, err := pe.optimalSeries(in, horizon)
	if err != nil {
		return nil, err
	}

	series := &ProjectionSeries{
		Months:  dateutil.MonthSequence(start, horizon+1),
		Optimal: optimal,
	}
	switch in.Mode {
	case "", domain.ProjectionRolling:
		series.Minimum = pe.rollingMinimumSeries(in, horizon)
		series.Actual = pe.waterfallSeries(in, horizon)
	case domain.ProjectionConstant:
		series.Minimum = pe.constantSeries(in, pe.initialMinimums(in), horizon)
		series.Actual = pe.constantSeries(in, pe.initialActuals(in), horizon)
	default:
		return nil, fmt.Errorf("unknown projection mode %q", in.Mode)
	}

	pe.Logger.Debugf("projected %d accounts over %d months (%s mode)", n, horizon, modeName(in.Mode))
	return series, nil
}

func modeName(mode string) string {
	if mode == "" {
		return domain.ProjectionRolling
	}
	return mode
}

func newSeries(in ProjectionInput, horizon int) [][]decimal.Decimal {
	out := make([][]decimal.Decimal, len(in.Balances))
	for i, b := range in.Balances {
		out[i] = make([]decimal.Decimal, 1, horizon+1)
		out[i][0] = b
	}
	return out
}

func (pe *ProjectionEngine) initialMinimums(in ProjectionInput) []decimal.Decimal {
	mins := make([]decimal.Decimal, len(in.Balances))
	for i, b := range in.Balances {
		mins[i] = NormalizeBounds(b, in.MinPayments[i], nil).Min
	}
	return mins
}

// initialActuals returns each account's actual payment, defaulting to the
// minimum and clamped to the starting balance.
func (pe *ProjectionEngine) initialActuals(in ProjectionInput) []decimal.Decimal {
	actuals := make([]decimal.Decimal, len(in.Balances))
	for i, b := range in.Balances {
		p := in.MinPayments[i]
		if in.ActualPayments != nil && in.ActualPayments[i] != nil {
			p = *in.ActualPayments[i]
		}
		actuals[i] = ClampPayment(b, p)
	}
	return actuals
}

// rollingMinimumSeries recomputes the minimum each month as the same share
// of the running balance that the original minimum was of the original
// balance. A paid-off account stays at zero.
func (pe *ProjectionEngine) rollingMinimumSeries(in ProjectionInput, horizon int) [][]decimal.Decimal {
	out := newSeries(in, horizon)
	for i, b0 := range in.Balances {
		if b0.IsZero() {
			for m := 1; m <= horizon; m++ {
				out[i] = append(out[i], decimal.Zero)
			}
			continue
		}
		ratio := in.MinPayments[i].Div(b0)
		prev := b0
		for m := 1; m <= horizon; m++ {
			if prev.IsZero() {
				out[i] = append(out[i], decimal.Zero)
				continue
			}
			payment := NormalizeBounds(prev, prev.Mul(ratio), nil).Min
			prev = pe.Projector.Project(prev, payment, in.APRs[i], 1)
			out[i] = append(out[i], prev)
		}
	}
	return out
}

// waterfallSeries pays each account its actual payment every month,
// reallocating whatever a paid-off account no longer needs.
func (pe *ProjectionEngine) waterfallSeries(in ProjectionInput, horizon int) [][]decimal.Decimal {
	out := newSeries(in, horizon)
	base := pe.initialActuals(in)
	current := make([]decimal.Decimal, len(in.Balances))
	copy(current, in.Balances)

	for m := 1; m <= horizon; m++ {
		cards := make([]WorkingCard, len(current))
		for i := range current {
			cards[i] = WorkingCard{Balance: current[i], APR: in.APRs[i], Payment: base[i]}
		}
		res := Reallocate(cards)
		if res.Overflow.IsPositive() {
			pe.Logger.Debugf("month %d: reallocated %s of overflow, %s unspent", m, res.Overflow.StringFixed(2), res.Unspent.StringFixed(2))
		}
		for i, c := range res.Cards {
			current[i] = pe.Projector.Project(c.Balance, c.Payment, c.APR, 1)
			out[i] = append(out[i], current[i])
		}
	}
	return out
}

// constantSeries projects each account from its starting balance with a
// fixed payment, i months at a time.
func (pe *ProjectionEngine) constantSeries(in ProjectionInput, payments []decimal.Decimal, horizon int) [][]decimal.Decimal {
	out := newSeries(in, horizon)
	for i, b0 := range in.Balances {
		for m := 1; m <= horizon; m++ {
			out[i] = append(out[i], pe.Projector.Project(b0, payments[i], in.APRs[i], m))
		}
	}
	return out
}

// optimalSeries re-solves the allocation every month on the running
// balances, keeping the original budget, APRs and payment bounds.
func (pe *ProjectionEngine) optimalSeries(in ProjectionInput, horizon int) ([][]decimal.Decimal, error) {
	out := newSeries(in, horizon)
	current := make([]decimal.Decimal, len(in.Balances))
	copy(current, in.Balances)

	for m := 1; m <= horizon; m++ {
		next, _, err := pe.Allocator.NextBalances(AllocationInput{
			Balances:    current,
			APRs:        in.APRs,
			MinPayments: in.MinPayments,
			MaxPayments: in.MaxPayments,
			Budget:      in.Budget,
		})
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", m, err)
		}
		for i := range next {
			out[i] = append(out[i], next[i])
		}
		current = next
	}
	return out, nil
}
