package types

import "time"

// ProjectData is a historical record of a completed project, used for
// bias correction and calibration. Appended via AddHistoricalProject;
// the ledger holding these is capped at 100 entries with oldest-first
// eviction.
type ProjectData struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ActualHours    float64   `json:"actual_hours"`
	EstimatedHours float64   `json:"estimated_hours"`
	Requirements   []string  `json:"requirements,omitempty"`
	CompletedAt    time.Time `json:"completed_at"`
}
