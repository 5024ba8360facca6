// internal/workers/selection/select-scholars/models.go
package selectscholars

import "scholarship-workers/internal/models"

type Input struct {
	RunID      string                   `json:"runId"`
	Applicants []models.ApplicantRecord `json:"applicants"`
	Quota      int                      `json:"quota,omitempty"`
}

type Output struct {
	RunID         string                `json:"runId"`
	Selected      []models.RankedRecord `json:"selected"`
	Ranked        []models.RankedRecord `json:"ranked"`
	SelectedCount int                   `json:"selectedCount"`
	ExcludedCount int                   `json:"excludedCount"`
	Warnings      []models.ParseWarning `json:"warnings"`
}
