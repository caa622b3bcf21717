package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrMalformedProgram is returned when a LinearProgram's slices disagree in length.
var ErrMalformedProgram = errors.New("malformed linear program")

// LinearProgram is a budget-constrained box LP:
//
//	maximize   sum(Gain[i] * x[i])
//	subject to sum(x[i]) <= Budget
//	           Lower[i] <= x[i] <= Upper[i]
type LinearProgram struct {
	Lower  []decimal.Decimal
	Upper  []decimal.Decimal
	Gain   []decimal.Decimal
	Budget decimal.Decimal
}

// LPSolution is a solver's answer. Values is nil unless Status is Optimal.
type LPSolution struct {
	Values    []decimal.Decimal
	Status    domain.SolverStatus
	Objective decimal.Decimal
}

// Solver solves a LinearProgram. Infeasibility and unboundedness are
// reported through LPSolution.Status; the error is reserved for programs
// that cannot be interpreted at all.
type Solver interface {
	Solve(lp LinearProgram) (LPSolution, error)
	Name() string
}

func (lp LinearProgram) validate() error {
	n := len(lp.Gain)
	if len(lp.Lower) != n || len(lp.Upper) != n {
		return fmt.Errorf("%w: %d gains, %d lower bounds, %d upper bounds", ErrMalformedProgram, n, len(lp.Lower), len(lp.Upper))
	}
	for i := range lp.Lower {
		if lp.Lower[i].GreaterThan(lp.Upper[i]) {
			return fmt.Errorf("%w: variable %d has lower bound %s above upper bound %s", ErrMalformedProgram, i, lp.Lower[i], lp.Upper[i])
		}
	}
	return nil
}

func (lp LinearProgram) lowerSum() decimal.Decimal {
	total := decimal.Zero
	for _, l := range lp.Lower {
		total = total.Add(l)
	}
	return total
}

func (lp LinearProgram) objective(x []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i, v := range x {
		total = total.Add(lp.Gain[i].Mul(v))
	}
	return total
}

// NewSolver returns the backend registered under name.
func NewSolver(name string) (Solver, error) {
	switch name {
	case "", domain.SolverGreedy:
		return GreedySolver{}, nil
	case domain.SolverSimplex:
		return NewSimplexSolver(), nil
	default:
		return nil, fmt.Errorf("unknown solver %q (want %q or %q)", name, domain.SolverGreedy, domain.SolverSimplex)
	}
}
