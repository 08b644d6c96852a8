// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/project-estimator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEstimate outputs a human-readable summary of a project estimate.
func (p *Printer) PrintEstimate(estimate *types.ProjectEstimate) {
	if estimate == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total:      %.1f hours / %.2f %s\n", estimate.TotalHours, estimate.TotalCost, estimate.Currency))
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", estimate.Confidence*100))
	sb.WriteString(fmt.Sprintf("Complexity: %.1f overall (T %.1f / B %.1f / I %.1f)\n",
		estimate.Complexity.Overall, estimate.Complexity.Technical,
		estimate.Complexity.Business, estimate.Complexity.Integration))
	sb.WriteString("\n")

	sb.WriteString("Breakdown:\n")
	for _, b := range estimate.Breakdown {
		sb.WriteString(fmt.Sprintf("  %-14s %7.1fh\n", b.Category, b.Hours))
	}

	if estimate.Risks != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Risk level: %s (%d factors)\n", estimate.Risks.Overall, len(estimate.Risks.Factors)))
	}

	p.printBox(fmt.Sprintf("Estimate %s", estimate.ID), sb.String())
}

// PrintRiskAssessment outputs a human-readable risk summary.
func (p *Printer) PrintRiskAssessment(assessment *types.RiskAssessment) {
	if assessment == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall: %s\n\n", assessment.Overall))

	if len(assessment.Factors) > 0 {
		sb.WriteString("Factors:\n")
		count := min(len(assessment.Factors), maxItemsToShow)
		for i := 0; i < count; i++ {
			f := assessment.Factors[i]
			sb.WriteString(fmt.Sprintf("  • %s (p=%.2f, %s)\n", f.Name, f.Probability, f.Impact))
		}
		if len(assessment.Factors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(assessment.Factors)-maxItemsToShow))
		}
	}

	if len(assessment.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(assessment.Recommendations), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", assessment.Recommendations[i]))
		}
		if len(assessment.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(assessment.Recommendations)-3))
		}
	}

	p.printBox("Risk Assessment", sb.String())
}

// PrintCalibration outputs a human-readable calibration report.
func (p *Printer) PrintCalibration(report *types.CalibrationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Accuracy: %.0f%%\n", report.Accuracy*100))
	sb.WriteString(fmt.Sprintf("Bias:     %+.2f\n", report.Bias))
	sb.WriteString(fmt.Sprintf("Samples:  %d\n", report.SampleSize))

	if len(report.Recommendations) > 0 {
		sb.WriteString("\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("Calibration", sb.String())
}
