// Package aggregate merges the fields extracted from an applicant's documents
// into a single record. Documents arrive in arbitrary order, so every merge
// rule is either fill-if-empty or an explicit priority tier; a populated
// high-confidence field is never overwritten by a lower-confidence source.
package aggregate

import (
	"fmt"
	"strings"

	"scholarship-workers/internal/models"
	"scholarship-workers/internal/pipeline/classify"
	"scholarship-workers/internal/pipeline/extract"
)

const (
	ineligibleNote = "⛔ 자립지원 대상자 확인서 미확인 — 선발 대상 제외"

	defaultMaxGrade = 4
)

// Params tunes the accumulator.
type Params struct {
	// GraduationCredits seeds graduation_credits when no transcript
	// states it.
	GraduationCredits float64

	// Credit thresholds corroborating an unconfirmed default program
	// length: a graduation requirement below TwoYearCreditMax implies a
	// two-year program, below ThreeYearCreditMax a three-year one.
	TwoYearCreditMax   float64
	ThreeYearCreditMax float64
}

type docText struct {
	docType models.DocumentType
	text    string
}

type entry struct {
	record *models.ApplicantRecord
	texts  []docText

	// Explicit program-length evidence beats the credit-threshold
	// fallback, so track whether max grade was ever confirmed.
	maxGradeConfirmed bool
}

// Accumulator builds one ApplicantRecord per applicant key.
type Accumulator struct {
	params  Params
	entries map[string]*entry
	order   []string
}

// New creates an empty Accumulator.
func New(params Params) *Accumulator {
	if params.GraduationCredits <= 0 {
		params.GraduationCredits = 120
	}
	if params.TwoYearCreditMax <= 0 {
		params.TwoYearCreditMax = 90
	}
	if params.ThreeYearCreditMax <= params.TwoYearCreditMax {
		params.ThreeYearCreditMax = 115
	}
	return &Accumulator{
		params:  params,
		entries: make(map[string]*entry),
	}
}

// Record returns the record for the given key, creating it on first use.
// The key doubles as the name placeholder until a real name is extracted.
func (a *Accumulator) Record(key string) *models.ApplicantRecord {
	return a.entry(key).record
}

func (a *Accumulator) entry(key string) *entry {
	if e, ok := a.entries[key]; ok {
		return e
	}
	e := &entry{
		record: &models.ApplicantRecord{
			Key:               key,
			Name:              key,
			MaxGrade:          defaultMaxGrade,
			GraduationCredits: a.params.GraduationCredits,
		},
	}
	a.entries[key] = e
	a.order = append(a.order, key)
	return e
}

// AddWarning attaches a parse note to the applicant's record, creating the
// record if needed. A file that failed outright still leaves a trace.
func (a *Accumulator) AddWarning(key, note string) {
	a.entry(key).record.AddNote(note)
}

// Apply routes one classified document's fields into the applicant's record.
// The masked text is retained for the final name-resolution pass.
func (a *Accumulator) Apply(key string, docType models.DocumentType, text string) {
	e := a.entry(key)
	r := e.record

	e.texts = append(e.texts, docText{docType: docType, text: text})

	// Region and program length are hunted in every document type.
	if r.Region == "" {
		if region, ok := extract.Region(text); ok {
			r.Region = region
		}
	}
	if years, ok := extract.ProgramLength(text); ok && years >= 2 && years <= 4 {
		if years != r.MaxGrade {
			r.MaxGrade = years
			r.AddNote(fmt.Sprintf("학제 감지: %d년제", years))
		}
		e.maxGradeConfirmed = true
	}

	switch docType {
	case models.DocTypeEligibility:
		r.IsEligible = true

	case models.DocTypeEnrollment:
		r.HasEnrollment = true
		// The enrollment certificate is authoritative for grade and
		// major: its values replace whatever a transcript filled in, so
		// the merged record is the same in either arrival order.
		if grade, ok := extract.Grade(text); ok {
			r.Grade = grade
		}
		if major, ok := extract.Major(text); ok {
			r.Major = major
		}

	case models.DocTypeTranscript:
		r.HasTranscript = true
		completed, cok, graduation, gok := extract.Credits(text)
		if cok {
			r.CompletedCredits = completed
		}
		if gok {
			r.GraduationCredits = graduation
			a.corroborateProgramLength(e, graduation)
		}
		if gpa, ok := extract.GPA(text); ok {
			r.GPA = gpa
		}
		// Fall back for grade and major when no enrollment
		// certificate supplied them.
		if r.Grade == 0 {
			if grade, ok := extract.Grade(text); ok {
				r.Grade = grade
			}
		}
		if r.Major == "" {
			if major, ok := extract.Major(text); ok {
				r.Major = major
			}
		}

	case models.DocTypeBonus:
		r.HasBonusDoc = true
		if extract.HasCertificate(text) {
			r.HasCertificate = true
		}
		if hours := extract.VolunteerHours(text); hours > r.VolunteerHours {
			r.VolunteerHours = hours
		}
		if extract.IsMilitary(text) {
			r.IsMilitary = true
		}

	default:
		a.applyUnknown(e, text)
	}
}

// applyUnknown tries every extractor on an unclassified document, filling
// only still-default fields.
func (a *Accumulator) applyUnknown(e *entry, text string) {
	r := e.record

	for _, kw := range classify.EligibilityKeywords {
		if strings.Contains(text, kw) {
			r.IsEligible = true
			break
		}
	}
	if r.Grade == 0 {
		if grade, ok := extract.Grade(text); ok {
			r.Grade = grade
		}
	}
	if r.Major == "" {
		if major, ok := extract.Major(text); ok {
			r.Major = major
		}
	}
	completed, cok, graduation, gok := extract.Credits(text)
	if cok && r.CompletedCredits == 0 {
		r.CompletedCredits = completed
	}
	if gok {
		r.GraduationCredits = graduation
		a.corroborateProgramLength(e, graduation)
	}
	if gpa, ok := extract.GPA(text); ok && r.GPA == 0 {
		r.GPA = gpa
	}
	if extract.HasCertificate(text) {
		r.HasCertificate = true
	}
	if hours := extract.VolunteerHours(text); hours > r.VolunteerHours {
		r.VolunteerHours = hours
	}
	if extract.IsMilitary(text) {
		r.IsMilitary = true
	}
}

// corroborateProgramLength downgrades an unconfirmed default program length
// based on the graduation-credit requirement. An explicit detection is never
// overridden.
func (a *Accumulator) corroborateProgramLength(e *entry, graduationCredits float64) {
	if e.maxGradeConfirmed || e.record.MaxGrade != defaultMaxGrade {
		return
	}
	switch {
	case graduationCredits < a.params.TwoYearCreditMax:
		e.record.MaxGrade = 2
		e.record.AddNote(fmt.Sprintf("졸업기준학점 %.0f → 2년제로 추정", graduationCredits))
	case graduationCredits < a.params.ThreeYearCreditMax:
		e.record.MaxGrade = 3
		e.record.AddNote(fmt.Sprintf("졸업기준학점 %.0f → 3년제로 추정", graduationCredits))
	}
}

// Finalize resolves names, annotates ineligible records, and returns all
// records in first-seen order. Records stay in the output even when
// ineligible so diagnostics remain visible; exclusion is enforced at
// selection time.
func (a *Accumulator) Finalize() []models.ApplicantRecord {
	results := make([]models.ApplicantRecord, 0, len(a.order))
	for _, key := range a.order {
		e := a.entries[key]
		r := e.record

		// Adopt the first extractable real name across all retained
		// texts, in document arrival order.
		for _, dt := range e.texts {
			if name, ok := extract.Name(dt.text); ok {
				r.Name = name
				break
			}
		}

		if !r.IsEligible {
			r.ParseNotes = append([]string{ineligibleNote}, r.ParseNotes...)
		}

		results = append(results, *r)
	}
	return results
}

// Warnings flattens every record's parse notes into caller-facing warnings.
func Warnings(records []models.ApplicantRecord) []models.ParseWarning {
	var warnings []models.ParseWarning
	for _, r := range records {
		for _, note := range r.ParseNotes {
			warnings = append(warnings, models.ParseWarning{
				ApplicantName: r.Name,
				Note:          note,
			})
		}
	}
	return warnings
}
