package domain

// Solver backends.
const (
	SolverGreedy  = "greedy"
	SolverSimplex = "simplex"
)

// Projection modes. Rolling recomputes payments every month; constant
// projects the starting payments forward unchanged.
const (
	ProjectionRolling  = "rolling"
	ProjectionConstant = "constant"
)

// EngineSettings tunes the calculation engine.
type EngineSettings struct {
	CacheCapacity  int    `toml:"cache_capacity" json:"cache_capacity"`
	Solver         string `toml:"solver" json:"solver"`
	ProjectionMode string `toml:"projection_mode" json:"projection_mode"`
	HorizonMonths  int    `toml:"horizon_months" json:"horizon_months"`
	Debug          bool   `toml:"debug" json:"debug"`
}

// DefaultEngineSettings returns a 64-entry projector cache, the greedy
// solver and a twelve-month rolling projection.
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		CacheCapacity:  64,
		Solver:         SolverGreedy,
		ProjectionMode: ProjectionRolling,
		HorizonMonths:  12,
	}
}
