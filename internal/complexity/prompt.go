package complexity

import (
	"fmt"
	"strings"

	"github.com/jonathan/project-estimator/internal/types"
)

// buildScoringPrompt constructs the LLM prompt for rating a single
// requirement. The model is asked for a bare number; ParseScore on the
// response still tolerates surrounding prose.
func buildScoringPrompt(req types.Requirement, projectContext string) string {
	var sb strings.Builder

	sb.WriteString("You are a senior software engineer estimating implementation complexity.\n")
	sb.WriteString("Rate the following requirement on a scale of 1 to 10, where 1 is trivial and 10 is extremely complex.\n\n")

	if projectContext != "" {
		sb.WriteString("Project context:\n")
		sb.WriteString(projectContext)
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("Requirement (%s, %s priority):\n%s\n", req.Type, req.Priority, req.Description))

	if len(req.AcceptanceCriteria) > 0 {
		sb.WriteString("\nAcceptance criteria:\n")
		for _, c := range req.AcceptanceCriteria {
			sb.WriteString("- ")
			sb.WriteString(c)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\nConsider: technical difficulty, integration surface, testing effort, and unknowns.\n")
	sb.WriteString("Respond ONLY with a single number from 1 to 10. No explanation, no markdown.\n")

	return sb.String()
}
