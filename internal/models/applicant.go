// internal/models/applicant.go
package models

// DocumentType classifies an applicant document by its content.
type DocumentType string

const (
	DocTypeEligibility DocumentType = "eligibility"
	DocTypeEnrollment  DocumentType = "enrollment"
	DocTypeTranscript  DocumentType = "transcript"
	DocTypeBonus       DocumentType = "bonus"
	DocTypeUnknown     DocumentType = "unknown"
)

// ApplicantRecord accumulates everything parsed from one applicant's
// documents. It is mutated while the archive is processed, finalized by the
// scoring engine, and read-only afterwards.
type ApplicantRecord struct {
	Key  string `json:"key"`
	Name string `json:"name"`

	Grade             int     `json:"grade"`
	MaxGrade          int     `json:"maxGrade"`
	Major             string  `json:"major"`
	CompletedCredits  float64 `json:"completedCredits"`
	GraduationCredits float64 `json:"graduationCredits"`
	GPA               float64 `json:"gpa"`

	HasCertificate bool    `json:"hasCertificate"`
	VolunteerHours float64 `json:"volunteerHours"`
	IsMilitary     bool    `json:"isMilitary"`
	Region         string  `json:"region,omitempty"`

	// Eligibility gates selection. Missing confirmation is a
	// disqualification, not an error.
	IsEligible bool `json:"isEligible"`

	// Presence flags per document type, for audit display only.
	HasEnrollment bool `json:"hasEnrollment"`
	HasTranscript bool `json:"hasTranscript"`
	HasBonusDoc   bool `json:"hasBonusDoc"`

	// Score fields, written once by the scoring engine.
	GradeScore      float64 `json:"gradeScore"`
	CompletionRate  float64 `json:"completionRate"`
	CompletionScore float64 `json:"completionScore"`
	BonusScore      float64 `json:"bonusScore"`
	TotalScore      float64 `json:"totalScore"`

	BonusStem        bool `json:"bonusStem"`
	BonusCertificate bool `json:"bonusCertificate"`
	BonusVolunteer   bool `json:"bonusVolunteer"`

	// Append-only audit trail, never cleared.
	ParseNotes []string `json:"parseNotes"`
}

// AddNote appends an audit note to the record.
func (r *ApplicantRecord) AddNote(note string) {
	r.ParseNotes = append(r.ParseNotes, note)
}

// RankedRecord is an applicant record with its 1-based rank after selection.
type RankedRecord struct {
	ApplicantRecord
	Rank int `json:"rank"`
}

// ParseWarning surfaces a per-applicant parse note to callers.
type ParseWarning struct {
	ApplicantName string `json:"applicantName"`
	Note          string `json:"note"`
}

// Statistics summarizes a finished selection run.
type Statistics struct {
	SelectedCount         int            `json:"selectedCount"`
	TotalApplicants       int            `json:"totalApplicants"`
	SelectionRate         float64        `json:"selectionRate"`
	AverageScore          float64        `json:"averageScore"`
	MinScore              float64        `json:"minScore"`
	MaxScore              float64        `json:"maxScore"`
	AverageCompletionRate float64        `json:"averageCompletionRate"`
	AverageGPA            float64        `json:"averageGpa"`
	GradeDistribution     map[string]int `json:"gradeDistribution"`
	RegionDistribution    map[string]int `json:"regionDistribution"`
	CertificateCount      int            `json:"certificateCount"`
	VolunteerCount        int            `json:"volunteerCount"`
	MilitaryCount         int            `json:"militaryCount"`
	StemCount             int            `json:"stemCount"`
}
