package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/rpgo/card-optimizer/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	// ErrInfeasible means the budget does not cover the sum of the effective
	// minimum payments. No payment vector is produced.
	ErrInfeasible = errors.New("no feasible allocation: budget is below the sum of minimum payments")

	// ErrSolverInconsistent means the solver reported a status other than
	// Optimal or Infeasible, which a bounded formulation should never do.
	ErrSolverInconsistent = errors.New("solver returned an inconsistent status")
)

// AllocationInput is the per-account data for one allocation period.
// MaxPayments and ActualPayments may be nil, as may any of their entries.
type AllocationInput struct {
	Balances       []decimal.Decimal
	APRs           []decimal.Decimal
	MinPayments    []decimal.Decimal
	MaxPayments    []*decimal.Decimal
	ActualPayments []*decimal.Decimal
	Budget         decimal.Decimal
}

// AllocationOutcome is the solved single-period allocation.
type AllocationOutcome struct {
	Payments        []decimal.Decimal
	NextOnSuggested []decimal.Decimal
	NextOnMin       []decimal.Decimal
	NextOnActual    []decimal.Decimal
	Bounds          []Bounds
	Status          domain.SolverStatus
	InterestSaved   decimal.Decimal
}

// Allocator formulates the interest-minimizing payment split and hands it
// to a Solver.
type Allocator struct {
	Solver Solver
	Logger Logger
}

// NewAllocator creates an allocator. A nil solver selects GreedySolver and a
// nil logger a NopLogger.
func NewAllocator(solver Solver, logger Logger) *Allocator {
	if solver == nil {
		solver = GreedySolver{}
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &Allocator{Solver: solver, Logger: logger}
}

// NextBalance is max(0, (balance - payment) * (1 + apr/1200)).
func NextBalance(balance, payment, aprPercent decimal.Decimal) decimal.Decimal {
	return money.FloorZero(balance.Sub(payment).Mul(money.MonthlyGrowthFactor(aprPercent)))
}

func (in AllocationInput) check() error {
	n := len(in.Balances)
	if n == 0 {
		return fmt.Errorf("%w: no accounts", ErrMalformedProgram)
	}
	if len(in.APRs) != n || len(in.MinPayments) != n {
		return fmt.Errorf("%w: %d balances, %d APRs, %d minimum payments", ErrMalformedProgram, n, len(in.APRs), len(in.MinPayments))
	}
	if in.MaxPayments != nil && len(in.MaxPayments) != n {
		return fmt.Errorf("%w: %d balances, %d maximum payments", ErrMalformedProgram, n, len(in.MaxPayments))
	}
	if in.ActualPayments != nil && len(in.ActualPayments) != n {
		return fmt.Errorf("%w: %d balances, %d actual payments", ErrMalformedProgram, n, len(in.ActualPayments))
	}
	return nil
}

// program builds the LP. Maximizing sum(nextOnMin) - sum(nextOnPayment) is
// the same as maximizing sum(g[i] * payment[i]) because nextOnMin is
// constant and each next balance is affine in its payment.
func (a *Allocator) program(in AllocationInput) (LinearProgram, []Bounds) {
	bounds := NormalizeAll(in.Balances, in.MinPayments, in.MaxPayments)
	prog := LinearProgram{
		Lower:  make([]decimal.Decimal, len(bounds)),
		Upper:  make([]decimal.Decimal, len(bounds)),
		Gain:   make([]decimal.Decimal, len(bounds)),
		Budget: in.Budget,
	}
	for i, bd := range bounds {
		prog.Lower[i] = bd.Min
		prog.Upper[i] = bd.Max
		prog.Gain[i] = money.MonthlyGrowthFactor(in.APRs[i])
	}
	return prog, bounds
}

func (a *Allocator) solve(in AllocationInput) (LPSolution, []Bounds, error) {
	if err := in.check(); err != nil {
		return LPSolution{}, nil, err
	}
	prog, bounds := a.program(in)
	sol, err := a.Solver.Solve(prog)
	if err != nil {
		return sol, bounds, fmt.Errorf("%s solver: %w", a.Solver.Name(), err)
	}
	switch sol.Status {
	case domain.StatusOptimal:
		return sol, bounds, nil
	case domain.StatusInfeasible:
		a.Logger.Debugf("allocation infeasible: budget %s below minimum payments", in.Budget)
		return sol, bounds, ErrInfeasible
	default:
		a.Logger.Errorf("%s solver returned status %s for a bounded program", a.Solver.Name(), sol.Status)
		return sol, bounds, fmt.Errorf("%w: %s", ErrSolverInconsistent, sol.Status)
	}
}

// Allocate solves one period and returns the suggested payments with the
// next balances under suggested, minimum and actual payments. Actual
// payments default to the minimum and are clamped to the balance.
func (a *Allocator) Allocate(in AllocationInput) (*AllocationOutcome, error) {
	sol, bounds, err := a.solve(in)
	if err != nil {
		return &AllocationOutcome{Status: sol.Status, Bounds: bounds}, err
	}

	n := len(in.Balances)
	out := &AllocationOutcome{
		Payments:        sol.Values,
		NextOnSuggested: make([]decimal.Decimal, n),
		NextOnMin:       make([]decimal.Decimal, n),
		NextOnActual:    make([]decimal.Decimal, n),
		Bounds:          bounds,
		Status:          sol.Status,
	}
	for i := 0; i < n; i++ {
		bal, apr := in.Balances[i], in.APRs[i]
		actual := in.MinPayments[i]
		if in.ActualPayments != nil && in.ActualPayments[i] != nil {
			actual = *in.ActualPayments[i]
		}
		actual = ClampPayment(bal, actual)

		out.NextOnSuggested[i] = NextBalance(bal, sol.Values[i], apr)
		out.NextOnMin[i] = NextBalance(bal, bounds[i].Min, apr)
		out.NextOnActual[i] = NextBalance(bal, actual, apr)
	}
	out.InterestSaved = money.Sum(out.NextOnMin).Sub(money.Sum(out.NextOnSuggested))

	a.Logger.Debugf("allocated budget %s across %d accounts, interest saved %s", in.Budget, n, out.InterestSaved.StringFixed(2))
	return out, nil
}

// NextBalances solves one period and returns only the next balances at the
// optimum. The projection engine calls it once per simulated month.
func (a *Allocator) NextBalances(in AllocationInput) ([]decimal.Decimal, domain.SolverStatus, error) {
	sol, _, err := a.solve(in)
	if err != nil {
		return nil, sol.Status, err
	}
	next := make([]decimal.Decimal, len(in.Balances))
	for i, bal := range in.Balances {
		next[i] = NextBalance(bal, sol.Values[i], in.APRs[i])
	}
	return next, sol.Status, nil
}
