package types

// ComplexityFactors holds the per-axis weight multipliers applied to
// category scores during complexity aggregation. Weights are mutable
// configuration; callers are responsible for sane ranges.
type ComplexityFactors struct {
	Technical     float64 `json:"technical"`
	Business      float64 `json:"business"`
	Integration   float64 `json:"integration"`
	Testing       float64 `json:"testing"`
	Documentation float64 `json:"documentation"`
}

// DefaultComplexityFactors returns the neutral weight configuration.
func DefaultComplexityFactors() ComplexityFactors {
	return ComplexityFactors{
		Technical:     1.0,
		Business:      1.0,
		Integration:   1.0,
		Testing:       1.0,
		Documentation: 1.0,
	}
}

// FactorOverrides carries optional per-axis weight overrides. Nil fields
// leave the current weight untouched.
type FactorOverrides struct {
	Technical     *float64 `json:"technical,omitempty"`
	Business      *float64 `json:"business,omitempty"`
	Integration   *float64 `json:"integration,omitempty"`
	Testing       *float64 `json:"testing,omitempty"`
	Documentation *float64 `json:"documentation,omitempty"`
}

// FactorScore is a named sub-score contributing to a complexity axis.
type FactorScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// ComplexityScore is the multi-axis result of complexity analysis.
// All numeric fields are bounded to [1,10]. A score is derived data,
// never mutated after creation.
type ComplexityScore struct {
	Overall     float64       `json:"overall"`
	Technical   float64       `json:"technical"`
	Business    float64       `json:"business"`
	Integration float64       `json:"integration"`
	Factors     []FactorScore `json:"factors,omitempty"`
}
