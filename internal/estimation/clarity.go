package estimation

import (
	"strings"

	"github.com/jonathan/project-estimator/internal/types"
)

// Vocabulary for the requirement-clarity score. Vague phrasing is
// penalized, concrete technical vocabulary rewarded.
var (
	clarityVagueTerms = []string{
		"etc", "and so on", "user-friendly", "intuitive", "flexible",
		"as needed", "appropriate", "various", "seamless", "robust", "nice",
	}

	claritySpecificTerms = []string{
		"api", "endpoint", "database", "schema", "latency", "throughput",
		"oauth", "http", "json", "queue", "index", "webhook", "ms", "sla",
	}
)

// clarityScore rates how estimable a requirement set is on [0,1].
// Empty input is neutral (0.5). Per requirement: description length,
// vague versus specific vocabulary, and acceptance-criteria detail each
// move the score; the set score is the mean.
func clarityScore(requirements []types.Requirement) float64 {
	if len(requirements) == 0 {
		return 0.5
	}

	var sum float64
	for _, req := range requirements {
		sum += requirementClarity(req)
	}
	return sum / float64(len(requirements))
}

func requirementClarity(req types.Requirement) float64 {
	c := 0.5
	desc := strings.ToLower(req.Description)

	// Too-short descriptions cannot be estimated against
	switch {
	case len(req.Description) >= 80:
		c += 0.1
	case len(req.Description) < 20:
		c -= 0.1
	}

	for _, term := range clarityVagueTerms {
		if strings.Contains(desc, term) {
			c -= 0.1
			break
		}
	}
	for _, term := range claritySpecificTerms {
		if strings.Contains(desc, term) {
			c += 0.1
			break
		}
	}

	// Acceptance criteria are the strongest clarity signal
	switch {
	case len(req.AcceptanceCriteria) >= 3:
		c += 0.2
	case len(req.AcceptanceCriteria) > 0:
		c += 0.1
	default:
		c -= 0.1
	}

	return clamp(c, 0, 1)
}
