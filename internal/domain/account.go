package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Validation errors returned by NewAccount and Request.Validate.
var (
	ErrInvalidBalance       = errors.New("card balance must be positive")
	ErrInvalidAPR           = errors.New("card APR must be positive")
	ErrInvalidMinPayment    = errors.New("minimum payment must be positive and below the balance")
	ErrInvalidMaxPayment    = errors.New("maximum payment must be between the minimum payment and the balance")
	ErrInvalidActualPayment = errors.New("actual payment must be positive")
	ErrInvalidBudget        = errors.New("budget must be positive")
	ErrNoAccounts           = errors.New("at least one card is required")
)

// Account is one revolving credit line. APR is a percentage (24 means 24%).
// MaxPayment defaults to the balance and ActualPayment to MinPayment when nil.
type Account struct {
	Nickname      string           `yaml:"cardNickName" json:"cardNickName"`
	Balance       decimal.Decimal  `yaml:"cardBalance" json:"cardBalance"`
	APR           decimal.Decimal  `yaml:"cardApr" json:"cardApr"`
	MinPayment    decimal.Decimal  `yaml:"minPayment" json:"minPayment"`
	MaxPayment    *decimal.Decimal `yaml:"maxPayment,omitempty" json:"maxPayment,omitempty"`
	ActualPayment *decimal.Decimal `yaml:"actualPayments,omitempty" json:"actualPayments,omitempty"`
}

// NewAccount builds a validated Account.
func NewAccount(nickname string, balance, apr, minPayment decimal.Decimal, maxPayment, actualPayment *decimal.Decimal) (Account, error) {
	a := Account{
		Nickname:      nickname,
		Balance:       balance,
		APR:           apr,
		MinPayment:    minPayment,
		MaxPayment:    maxPayment,
		ActualPayment: actualPayment,
	}
	if err := a.Validate(); err != nil {
		return Account{}, err
	}
	return a, nil
}

// Validate checks the field rules for a single card. An actual payment above
// the balance is accepted; the engine clamps it to the balance.
func (a Account) Validate() error {
	if !a.Balance.IsPositive() {
		return fmt.Errorf("card %q: %w, got %s", a.Nickname, ErrInvalidBalance, a.Balance)
	}
	if !a.APR.IsPositive() {
		return fmt.Errorf("card %q: %w, got %s", a.Nickname, ErrInvalidAPR, a.APR)
	}
	if !a.MinPayment.IsPositive() || a.MinPayment.GreaterThanOrEqual(a.Balance) {
		return fmt.Errorf("card %q: %w, got %s", a.Nickname, ErrInvalidMinPayment, a.MinPayment)
	}
	if a.MaxPayment != nil {
		if a.MaxPayment.LessThan(a.MinPayment) || a.MaxPayment.GreaterThan(a.Balance) {
			return fmt.Errorf("card %q: %w, got %s", a.Nickname, ErrInvalidMaxPayment, *a.MaxPayment)
		}
	}
	if a.ActualPayment != nil && !a.ActualPayment.IsPositive() {
		return fmt.Errorf("card %q: %w, got %s", a.Nickname, ErrInvalidActualPayment, *a.ActualPayment)
	}
	return nil
}

// EffectiveActualPayment returns the actual payment, or the minimum when absent.
func (a Account) EffectiveActualPayment() decimal.Decimal {
	if a.ActualPayment == nil {
		return a.MinPayment
	}
	return *a.ActualPayment
}

// UnmarshalYAML accepts optional amounts written either as numbers or strings.
func (a *Account) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Nickname      string          `yaml:"cardNickName"`
		Balance       decimal.Decimal `yaml:"cardBalance"`
		APR           decimal.Decimal `yaml:"cardApr"`
		MinPayment    decimal.Decimal `yaml:"minPayment"`
		MaxPayment    *string         `yaml:"maxPayment,omitempty"`
		ActualPayment *string         `yaml:"actualPayments,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	a.Nickname = aux.Nickname
	a.Balance = aux.Balance
	a.APR = aux.APR
	a.MinPayment = aux.MinPayment

	maxPayment, err := parseOptionalDecimal(aux.MaxPayment)
	if err != nil {
		return fmt.Errorf("maxPayment: %w", err)
	}
	a.MaxPayment = maxPayment

	actualPayment, err := parseOptionalDecimal(aux.ActualPayment)
	if err != nil {
		return fmt.Errorf("actualPayments: %w", err)
	}
	a.ActualPayment = actualPayment
	return nil
}

func parseOptionalDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Request is the input to both the single-period allocation and the
// twelve-month comparison.
type Request struct {
	Budget decimal.Decimal `yaml:"budget" json:"budget"`
	Cards  []Account       `yaml:"cards" json:"cards"`
}

// Validate checks the budget and every card.
func (r *Request) Validate() error {
	if !r.Budget.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrInvalidBudget, r.Budget)
	}
	if len(r.Cards) == 0 {
		return ErrNoAccounts
	}
	for i, card := range r.Cards {
		if err := card.Validate(); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
	}
	return nil
}

// IsValidationError reports whether err came from request validation.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidBalance, ErrInvalidAPR, ErrInvalidMinPayment, ErrInvalidMaxPayment,
		ErrInvalidActualPayment, ErrInvalidBudget, ErrNoAccounts,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
