// Package risk scans requirement sets (and optional codebase metrics)
// for known risk patterns, producing weighted risk factors and
// mitigation recommendations.
package risk

import "github.com/jonathan/project-estimator/internal/types"

// pattern is one keyword-triggered risk detection rule. A pattern fires
// once per assessment when any requirement description matches any of
// its keywords.
type pattern struct {
	id          string
	name        string
	probability float64
	impact      types.RiskImpact
	keywords    []string
	description string
	mitigation  string
}

// Detection passes. Keyword matching is coarse by intent: these flag
// areas worth a human look, they do not prove a risk exists.
var (
	technicalPatterns = []pattern{
		{
			id:          "tech-performance",
			name:        "Performance Risk",
			probability: 0.6,
			impact:      types.ImpactHigh,
			keywords:    []string{"real-time", "realtime", "concurrent", "high-volume", "low latency", "streaming"},
			description: "Requirements demand performance characteristics that are hard to retrofit.",
			mitigation:  "Define measurable performance targets and load-test against them from the first iteration.",
		},
		{
			id:          "tech-security",
			name:        "Security Risk",
			probability: 0.55,
			impact:      types.ImpactHigh,
			keywords:    []string{"authentication", "authorization", "payment", "personal data", "encryption", "pii"},
			description: "Security-sensitive functionality increases both implementation and review effort.",
			mitigation:  "Schedule a security review and threat-modeling session before implementation begins.",
		},
		{
			id:          "tech-new-technology",
			name:        "New Technology Risk",
			probability: 0.5,
			impact:      types.ImpactMedium,
			keywords:    []string{"machine learning", "blockchain", "artificial intelligence", "augmented reality", "computer vision"},
			description: "Cutting-edge technology brings unproven tooling and scarce expertise.",
			mitigation:  "Time-box an evaluation spike for each unfamiliar technology before committing.",
		},
	}

	integrationPatterns = []pattern{
		{
			id:          "int-third-party",
			name:        "Third-Party Integration Risk",
			probability: 0.5,
			impact:      types.ImpactMedium,
			keywords:    []string{"third-party", "external", "api", "webhook", "vendor"},
			description: "External dependencies fail, change, and rate-limit on their own schedule.",
			mitigation:  "Wrap every external integration behind an interface with explicit failure handling.",
		},
		{
			id:          "int-legacy",
			name:        "Legacy System Risk",
			probability: 0.6,
			impact:      types.ImpactHigh,
			keywords:    []string{"legacy", "migration", "migrate"},
			description: "Legacy touchpoints and data migrations routinely surface undocumented behavior.",
			mitigation:  "Audit the legacy surface area early and plan migration rehearsals on production-like data.",
		},
	}

	resourcePatterns = []pattern{
		{
			id:          "res-specialized-skills",
			name:        "Specialized Skills Risk",
			probability: 0.5,
			impact:      types.ImpactMedium,
			keywords:    []string{"machine learning", "blockchain", "data science", "devops", "penetration test", "embedded"},
			description: "Requirements call for skills that may not exist on the current team.",
			mitigation:  "Identify skill gaps now and line up training, hiring, or contracting before they block.",
		},
	}
)

// vagueTerms flag requirements too loosely worded to estimate against.
var vagueTerms = []string{
	"etc", "and so on", "user-friendly", "intuitive", "flexible",
	"as needed", "appropriate", "some ", "various", "seamless", "robust",
}

// contradictionPairs are keyword pairs whose joint appearance across a
// requirement set signals unaligned stakeholders.
var contradictionPairs = [][2]string{
	{"simple", "complex"},
	{"minimal", "comprehensive"},
	{"fast", "thorough"},
	{"basic", "advanced"},
	{"lightweight", "full-featured"},
}
