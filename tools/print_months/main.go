package main

import (
	"fmt"
	"time"

	"github.com/rpgo/card-optimizer/internal/calculation"
	"github.com/rpgo/card-optimizer/pkg/dateutil"
	"github.com/rpgo/card-optimizer/pkg/money"
	"github.com/shopspring/decimal"
)

func main() {
	balance := decimal.NewFromInt(850)
	payment := decimal.NewFromInt(60)
	apr := decimal.RequireFromString("29.99")

	p := calculation.DefaultProjector()
	months := dateutil.MonthSequence(time.Now(), calculation.DefaultHorizonMonths+1)
	for i, m := range months {
		fmt.Printf("%2d %-10s %s\n", i, m, money.Format(p.Project(balance, payment, apr, i)))
	}
	hits, misses, size := p.Stats()
	fmt.Printf("cache: hits=%d misses=%d size=%d\n", hits, misses, size)
}
