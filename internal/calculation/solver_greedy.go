package calculation

import (
	"sort"

	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/rpgo/card-optimizer/pkg/money"
	"github.com/shopspring/decimal"
)

// GreedySolver solves the box LP exactly. With a single budget row the
// optimum is found by starting every variable at its lower bound and then
// spending what is left on the highest-gain variables first. Equal gains
// are filled in input order, so the returned vertex is deterministic.
type GreedySolver struct{}

func (GreedySolver) Name() string { return domain.SolverGreedy }

func (GreedySolver) Solve(lp LinearProgram) (LPSolution, error) {
	if err := lp.validate(); err != nil {
		return LPSolution{Status: domain.StatusUndefined}, err
	}
	remaining := lp.Budget.Sub(lp.lowerSum())
	if remaining.IsNegative() {
		return LPSolution{Status: domain.StatusInfeasible}, nil
	}

	x := make([]decimal.Decimal, len(lp.Lower))
	copy(x, lp.Lower)

	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return lp.Gain[order[a]].GreaterThan(lp.Gain[order[b]])
	})

	for _, i := range order {
		if !remaining.IsPositive() {
			break
		}
		if !lp.Gain[i].IsPositive() {
			break
		}
		step := money.Min(lp.Upper[i].Sub(lp.Lower[i]), remaining)
		x[i] = x[i].Add(step)
		remaining = remaining.Sub(step)
	}

	return LPSolution{Values: x, Status: domain.StatusOptimal, Objective: lp.objective(x)}, nil
}
