// internal/workers/selection/process-scholarship-archive/models.go
package processscholarshiparchive

import "scholarship-workers/internal/models"

type Input struct {
	ArchiveBase64 string `json:"archiveBase64"`
	BatchID       string `json:"batchId,omitempty"`
}

type Output struct {
	RunID           string                   `json:"runId"`
	ApplicantCount  int                      `json:"applicantCount"`
	Applicants      []models.ApplicantRecord `json:"applicants"`
	Warnings        []models.ParseWarning    `json:"warnings"`
	TotalApplicants int                      `json:"totalApplicants"`
}
