package domain

import "github.com/shopspring/decimal"

// SolverStatus is the outcome tag reported by the allocation solver.
type SolverStatus string

const (
	StatusOptimal    SolverStatus = "Optimal"
	StatusInfeasible SolverStatus = "Infeasible"
	StatusUnbounded  SolverStatus = "Unbounded"
	StatusUndefined  SolverStatus = "Undefined"
)

// CardAllocation is one card of the single-period allocation response.
type CardAllocation struct {
	Account                     `yaml:",inline"`
	SuggestedPayment            decimal.Decimal `yaml:"suggestedPayment" json:"suggestedPayment"`
	NextBalanceOnSuggested      decimal.Decimal `yaml:"nextBalanceOnSuggested" json:"nextBalanceOnSuggested"`
	NextBalanceOnMin            decimal.Decimal `yaml:"nextBalanceOnMin" json:"nextBalanceOnMin"`
	NextBalanceOnCurrentPayment decimal.Decimal `yaml:"nextBalanceOnCurrentPayment" json:"nextBalanceOnCurrentPayment"`
}

// AllocationSummary is the single-period allocation response.
type AllocationSummary struct {
	Budget                       decimal.Decimal  `json:"budget"`
	Solution                     SolverStatus     `json:"solution"`
	InitialBalance               decimal.Decimal  `json:"initialBalance"`
	EndBalanceOnMinimumPayment   decimal.Decimal  `json:"endBalanceOnMinimumPayment"`
	EndBalanceOnCurrentPayment   decimal.Decimal  `json:"endBalanceOnCurrentPayment"`
	EndBalanceOnSuggestedPayment decimal.Decimal  `json:"endBalanceOnSuggestedPayment"`
	InterestSaved                decimal.Decimal  `json:"interestSaved"`
	UpdatedCards                 []CardAllocation `json:"updatedCards"`
}
