// Package classify assigns a document type to extracted text using keyword
// precedence. The first matching keyword set wins, checked in a fixed order,
// so a document mentioning both an enrollment certificate and volunteer work
// is always an enrollment certificate.
package classify

import (
	"strings"

	"scholarship-workers/internal/models"
	"scholarship-workers/internal/pipeline/extract"
)

// EligibilityKeywords identify the self-reliance support confirmation, the
// document that gates eligibility.
var EligibilityKeywords = []string{
	"자립지원 대상자 확인서",
	"자립지원대상자확인서",
	"자립준비청년 확인서",
}

// EnrollmentKeywords identify enrollment certificates.
var EnrollmentKeywords = []string{"재학증명서", "재학 증명서"}

// TranscriptKeywords identify academic transcripts.
var TranscriptKeywords = []string{"성적증명서", "성적표", "학업성적", "성적 증명서"}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Classify returns the document type for the given text.
func Classify(text string) models.DocumentType {
	if containsAny(text, EligibilityKeywords) {
		return models.DocTypeEligibility
	}
	if containsAny(text, EnrollmentKeywords) {
		return models.DocTypeEnrollment
	}
	if containsAny(text, TranscriptKeywords) {
		return models.DocTypeTranscript
	}
	if containsAny(text, extract.CertificateKeywords) ||
		containsAny(text, extract.VolunteerKeywords) ||
		containsAny(text, extract.MilitaryKeywords) {
		return models.DocTypeBonus
	}
	return models.DocTypeUnknown
}
