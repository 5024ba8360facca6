package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scholarship-workers/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.DocumentType
	}{
		{
			name:     "eligibility confirmation",
			text:     "자립지원 대상자 확인서\n성명: 김민준",
			expected: models.DocTypeEligibility,
		},
		{
			name:     "eligibility without spaces",
			text:     "자립지원대상자확인서",
			expected: models.DocTypeEligibility,
		},
		{
			name:     "enrollment certificate",
			text:     "재학증명서\n성명: 이서연\n3학년",
			expected: models.DocTypeEnrollment,
		},
		{
			name:     "transcript",
			text:     "성적증명서\n전체 평점: 3.8",
			expected: models.DocTypeTranscript,
		},
		{
			name:     "certificate counts as bonus",
			text:     "정보처리기사 자격증",
			expected: models.DocTypeBonus,
		},
		{
			name:     "volunteer counts as bonus",
			text:     "봉사활동 확인 내역",
			expected: models.DocTypeBonus,
		},
		{
			name:     "military counts as bonus",
			text:     "병역: 만기전역",
			expected: models.DocTypeBonus,
		},
		{
			name:     "no keywords",
			text:     "기타 안내문",
			expected: models.DocTypeUnknown,
		},
		{
			name:     "empty text",
			text:     "",
			expected: models.DocTypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.text))
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// Eligibility beats enrollment beats transcript beats bonus when
	// several keyword sets match the same document.
	mixed := "자립지원 대상자 확인서 첨부: 재학증명서, 성적증명서, 봉사활동"
	assert.Equal(t, models.DocTypeEligibility, Classify(mixed))

	mixed = "재학증명서 및 성적증명서 발급 안내, 봉사시간 포함"
	assert.Equal(t, models.DocTypeEnrollment, Classify(mixed))

	mixed = "성적증명서 — 봉사활동 과목 포함"
	assert.Equal(t, models.DocTypeTranscript, Classify(mixed))
}
