// internal/workers/selection/build-selection-report/models.go
package buildselectionreport

import "scholarship-workers/internal/models"

type Input struct {
	RunID           string                `json:"runId"`
	Selected        []models.RankedRecord `json:"selected"`
	TotalApplicants int                   `json:"totalApplicants"`
	Warnings        []models.ParseWarning `json:"warnings,omitempty"`
}

type Output struct {
	RunID      string                `json:"runId"`
	Statistics models.Statistics     `json:"statistics"`
	Warnings   []models.ParseWarning `json:"warnings,omitempty"`
}
