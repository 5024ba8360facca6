package masking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskResidentID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "split form",
			input:    "주민등록번호: 990101-1234567",
			expected: "주민등록번호: 990101-*******",
		},
		{
			name:     "split form with en dash",
			input:    "990101–1234567",
			expected: "990101-*******",
		},
		{
			name:     "split form with spaces",
			input:    "990101 - 1234567",
			expected: "990101-*******",
		},
		{
			name:     "unsplit thirteen digits",
			input:    "9901011234567",
			expected: "990101*******",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mask(tt.input))
		})
	}
}

func TestMaskPhoneNumber(t *testing.T) {
	masked := Mask("연락처: 010-1234-5678")
	assert.Equal(t, "연락처: 010-****-5678", masked)
}

func TestMaskBankAccount(t *testing.T) {
	masked := Mask("계좌번호: 110-456789-01234")
	assert.Equal(t, "계좌번호: 110-******-01234", masked)
}

func TestMaskedTextNeverContainsOriginalID(t *testing.T) {
	input := "성명: 홍길동 주민번호 990101-1234567 기타사항"
	masked := Mask(input)

	assert.NotContains(t, masked, "1234567")
	assert.Contains(t, masked, "990101")
	assert.Contains(t, masked, "홍길동")
}

func TestMaskLeavesOrdinaryNumbersAlone(t *testing.T) {
	input := "취득 학점: 85.5 졸업 기준 학점: 120"
	assert.Equal(t, input, Mask(input))
}

func TestMaskMultipleOccurrences(t *testing.T) {
	input := "990101-1234567\n980202-2345678"
	masked := Mask(input)
	assert.Equal(t, 2, strings.Count(masked, "*******"))
}
