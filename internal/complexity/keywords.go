// Package complexity scores natural-language requirements into a
// multi-axis complexity score, using an LLM scoring backend with a
// deterministic heuristic fallback.
package complexity

import "strings"

// Keyword categories that drive heuristic scoring and axis membership.
// Matching is case-insensitive substring matching over the requirement
// description; a requirement can belong to several categories at once.
var (
	// emergingTechCategories each add a point in the heuristic path.
	emergingTechCategories = map[string][]string{
		"machine-learning": {"machine learning", "ml model", "neural network", "deep learning", "ai-powered", "artificial intelligence"},
		"blockchain":       {"blockchain", "smart contract", "distributed ledger", "cryptocurrency"},
		"realtime":         {"real-time", "realtime", "streaming", "websocket", "live updates"},
		"distributed":      {"microservice", "distributed", "event-driven", "kubernetes", "service mesh"},
		"ar-vr":            {"augmented reality", "virtual reality", "computer vision"},
	}

	technicalKeywords = []string{
		"algorithm", "performance", "database", "architecture", "api",
		"encryption", "scalab", "concurrent", "real-time", "machine learning",
		"infrastructure", "migration", "optimization", "cache", "search",
	}

	businessKeywords = []string{
		"workflow", "report", "dashboard", "user", "customer", "billing",
		"invoice", "payment", "compliance", "audit", "approval", "notification",
	}

	integrationKeywords = []string{
		"integration", "third-party", "external", "api", "webhook", "sync",
		"import", "export", "sso", "oauth", "legacy", "gateway",
	}
)

// containsAny reports whether text contains any of the given keywords.
func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// emergingTechCount returns how many emerging-technology categories the
// text matches.
func emergingTechCount(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, keywords := range emergingTechCategories {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				count++
				break
			}
		}
	}
	return count
}
