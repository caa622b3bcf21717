package config

import (
	"fmt"
	"os"

	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a request from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Request, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a request. JSON is accepted since it is valid YAML.
func (ip *InputParser) Parse(data []byte) (*domain.Request, error) {
	var req domain.Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &req, nil
}

// ValidateRequest validates the loaded request
func (ip *InputParser) ValidateRequest(req *domain.Request) error {
	return req.Validate()
}

// CreateExampleRequest creates an example request with three cards
func (ip *InputParser) CreateExampleRequest() *domain.Request {
	maxTravel := decimal.NewFromInt(1500)
	actualTravel := decimal.NewFromInt(120)
	actualStore := decimal.NewFromInt(60)

	return &domain.Request{
		Budget: decimal.NewFromInt(450),
		Cards: []domain.Account{
			{
				Nickname:      "Travel Rewards",
				Balance:       decimal.NewFromInt(4200),
				APR:           decimal.NewFromFloat(24.99),
				MinPayment:    decimal.NewFromInt(105),
				MaxPayment:    &maxTravel,
				ActualPayment: &actualTravel,
			},
			{
				Nickname:      "Store Card",
				Balance:       decimal.NewFromInt(850),
				APR:           decimal.NewFromFloat(29.99),
				MinPayment:    decimal.NewFromInt(35),
				ActualPayment: &actualStore,
			},
			{
				Nickname:   "Balance Transfer",
				Balance:    decimal.NewFromInt(3000),
				APR:        decimal.NewFromFloat(9.9),
				MinPayment: decimal.NewFromInt(60),
			},
		},
	}
}

// SaveRequest writes a request as YAML
func SaveRequest(req *domain.Request, filename string) error {
	b, err := MarshalRequest(req)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// MarshalRequest renders a request as YAML with plain numeric amounts.
func MarshalRequest(req *domain.Request) ([]byte, error) {
	type card struct {
		Nickname      string   `yaml:"cardNickName"`
		Balance       float64  `yaml:"cardBalance"`
		APR           float64  `yaml:"cardApr"`
		MinPayment    float64  `yaml:"minPayment"`
		MaxPayment    *float64 `yaml:"maxPayment,omitempty"`
		ActualPayment *float64 `yaml:"actualPayments,omitempty"`
	}
	type request struct {
		Budget float64 `yaml:"budget"`
		Cards  []card  `yaml:"cards"`
	}

	out := request{Budget: req.Budget.InexactFloat64()}
	for _, c := range req.Cards {
		out.Cards = append(out.Cards, card{
			Nickname:      c.Nickname,
			Balance:       c.Balance.InexactFloat64(),
			APR:           c.APR.InexactFloat64(),
			MinPayment:    c.MinPayment.InexactFloat64(),
			MaxPayment:    optionalFloat(c.MaxPayment),
			ActualPayment: optionalFloat(c.ActualPayment),
		})
	}
	return yaml.Marshal(out)
}

func optionalFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
