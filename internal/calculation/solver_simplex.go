package calculation

import (
	"errors"
	"sort"

	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/rpgo/card-optimizer/pkg/money"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// SimplexSolver solves the program with gonum's simplex method. It is a
// general LP backend; results are rounded to Places decimal places and
// snapped back into the feasible region to absorb floating point noise.
type SimplexSolver struct {
	Tol    float64
	Places int32
}

// NewSimplexSolver returns a SimplexSolver with default tolerances.
func NewSimplexSolver() SimplexSolver {
	return SimplexSolver{Tol: 1e-10, Places: 8}
}

func (SimplexSolver) Name() string { return domain.SolverSimplex }

// Solve rewrites the program in standard form with y = x - Lower:
//
//	minimize   -sum(Gain[i] * y[i])
//	subject to y[i] + s[i]    = Upper[i] - Lower[i]   (one row per variable)
//	           sum(y[i]) + t  = Budget - sum(Lower)
//	           y, s, t >= 0
//
// and starts from the slack basis {s, t}, which is feasible whenever the
// original program is.
func (s SimplexSolver) Solve(prog LinearProgram) (LPSolution, error) {
	if err := prog.validate(); err != nil {
		return LPSolution{Status: domain.StatusUndefined}, err
	}
	slack := prog.Budget.Sub(prog.lowerSum())
	if slack.IsNegative() {
		return LPSolution{Status: domain.StatusInfeasible}, nil
	}

	n := len(prog.Gain)
	rows, cols := n+1, 2*n+1
	A := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)
	for i := 0; i < n; i++ {
		A.Set(i, i, 1)
		A.Set(i, n+i, 1)
		A.Set(n, i, 1)
		b[i] = toFloat(prog.Upper[i].Sub(prog.Lower[i]))
		c[i] = -toFloat(prog.Gain[i])
	}
	A.Set(n, 2*n, 1)
	b[n] = toFloat(slack)

	basic := make([]int, rows)
	for i := range basic {
		basic[i] = n + i
	}

	_, optX, err := lp.Simplex(c, A, b, s.Tol, basic)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return LPSolution{Status: domain.StatusInfeasible}, nil
	case errors.Is(err, lp.ErrUnbounded):
		return LPSolution{Status: domain.StatusUnbounded}, nil
	case err != nil:
		return LPSolution{Status: domain.StatusUndefined}, nil
	}

	x := make([]decimal.Decimal, n)
	for i := 0; i < n; i++ {
		v := prog.Lower[i].Add(decimal.NewFromFloat(optX[i]).Round(s.Places))
		x[i] = money.Max(prog.Lower[i], money.Min(prog.Upper[i], v))
	}
	trimToBudget(prog, x)

	return LPSolution{Values: x, Status: domain.StatusOptimal, Objective: prog.objective(x)}, nil
}

// trimToBudget removes any rounding excess above the budget, taking it from
// the lowest-gain variables first.
func trimToBudget(prog LinearProgram, x []decimal.Decimal) {
	excess := money.Sum(x).Sub(prog.Budget)
	if !excess.IsPositive() {
		return
	}
	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return prog.Gain[order[a]].LessThan(prog.Gain[order[b]])
	})
	for _, i := range order {
		if !excess.IsPositive() {
			return
		}
		room := x[i].Sub(prog.Lower[i])
		step := money.Min(room, excess)
		x[i] = x[i].Sub(step)
		excess = excess.Sub(step)
	}
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
