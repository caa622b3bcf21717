package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rpgo/card-optimizer/internal/calculation"
	"github.com/rpgo/card-optimizer/internal/config"
	"github.com/rpgo/card-optimizer/internal/domain"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_solvers <request-file>")
		return
	}
	p := config.NewInputParser()
	req, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	for _, name := range []string{domain.SolverGreedy, domain.SolverSimplex} {
		settings := domain.DefaultEngineSettings()
		settings.Solver = name
		engine, err := calc.NewCalculationEngineWithSettings(settings)
		if err != nil {
			panic(err)
		}
		summary, err := engine.Allocate(context.Background(), req)
		if err != nil {
			fmt.Printf("%-8s error: %v\n", name, err)
			continue
		}
		fmt.Printf("%-8s status=%s saved=%s\n", name, summary.Solution, summary.InterestSaved.StringFixed(4))
		for _, c := range summary.UpdatedCards {
			fmt.Printf("  %-20s pay=%s next=%s\n", c.Nickname, c.SuggestedPayment.StringFixed(4), c.NextBalanceOnSuggested.StringFixed(4))
		}
	}
}
