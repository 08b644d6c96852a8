// Package types provides type definitions for structured data used throughout the project-estimator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// RequirementType distinguishes functional from non-functional requirements.
type RequirementType string

// Requirement type constants
const (
	RequirementFunctional    RequirementType = "functional"
	RequirementNonFunctional RequirementType = "non-functional"
)

// Priority represents the business priority of a requirement.
type Priority string

// Priority constants
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Requirement represents a single natural-language project requirement.
// The Complexity and EstimatedHours fields are caller-supplied placeholders;
// the engine computes its own values and never trusts them.
type Requirement struct {
	ID                 string          `json:"id" validate:"required"`
	Type               RequirementType `json:"type" validate:"required,oneof=functional non-functional"`
	Priority           Priority        `json:"priority" validate:"required,oneof=low medium high"`
	Description        string          `json:"description" validate:"required"`
	AcceptanceCriteria []string        `json:"acceptance_criteria,omitempty"`
	Complexity         float64         `json:"complexity,omitempty"`
	EstimatedHours     float64         `json:"estimated_hours,omitempty"`
}

// Validate validates the Requirement using the validator.
func (r *Requirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
