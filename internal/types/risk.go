package types

// RiskImpact expresses the severity of a risk factor.
type RiskImpact string

// Risk impact constants
const (
	ImpactLow    RiskImpact = "low"
	ImpactMedium RiskImpact = "medium"
	ImpactHigh   RiskImpact = "high"
)

// Weight returns the numeric weight used in overall risk aggregation.
func (i RiskImpact) Weight() float64 {
	switch i {
	case ImpactHigh:
		return 1.0
	case ImpactMedium:
		return 0.6
	case ImpactLow:
		return 0.3
	default:
		return 0.0
	}
}

// RiskFactor is a single identified project risk with its mitigation.
type RiskFactor struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Probability float64    `json:"probability"`
	Impact      RiskImpact `json:"impact"`
	Description string     `json:"description"`
	Mitigation  string     `json:"mitigation"`
}

// RiskAssessment aggregates all detected risk factors and the
// deduplicated mitigation recommendations derived from them.
type RiskAssessment struct {
	Overall         RiskImpact   `json:"overall"`
	Factors         []RiskFactor `json:"factors"`
	Recommendations []string     `json:"recommendations"`
}

// CodebaseMetrics carries optional metrics about an existing codebase
// that feed additional technical risk factors.
type CodebaseMetrics struct {
	TechnicalDebtRatio float64 `json:"technical_debt_ratio"`
	DependencyCount    int     `json:"dependency_count"`
	HighSeverityIssues int     `json:"high_severity_issues"`
}
