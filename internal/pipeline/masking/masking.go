// Package masking redacts personally identifying number sequences from
// extracted document text. Masking is irreversible and runs before any text
// is retained, logged, or indexed.
package masking

import "regexp"

var (
	// 주민등록번호 (resident registration number), split and unsplit forms.
	residentIDSplit   = regexp.MustCompile(`(\d{6})\s*[-–]\s*(\d{7})`)
	residentIDUnsplit = regexp.MustCompile(`(\d{6})(\d{7})`)

	// 휴대전화, middle group masked.
	mobilePhone = regexp.MustCompile(`(01\d)\s*[-–]\s*(\d{3,4})\s*[-–]\s*(\d{4})`)

	// 계좌번호-shaped triplets, middle group masked.
	bankAccount = regexp.MustCompile(`(\d{3,4})\s*[-–]\s*(\d{4,6})\s*[-–]\s*(\d{4,7})`)
)

// Mask replaces identifier-shaped digit sequences with partially asterisked
// equivalents. The first group is kept so a reviewer can still distinguish
// documents; the remainder is unrecoverable.
func Mask(text string) string {
	text = residentIDSplit.ReplaceAllString(text, "$1-*******")
	text = residentIDUnsplit.ReplaceAllString(text, "$1*******")
	text = mobilePhone.ReplaceAllString(text, "$1-****-$3")
	text = bankAccount.ReplaceAllString(text, "$1-******-$3")
	return text
}
