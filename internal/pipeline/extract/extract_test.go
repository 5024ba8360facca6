package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Name
// ==========================

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"labeled with colon", "성명: 김민준", "김민준", true},
		{"labeled with fullwidth colon", "성 명： 이서연", "이서연", true},
		{"alternate label", "이름: 박도윤", "박도윤", true},
		{"applicant label", "신청인: 최서현", "최서현", true},
		{"student name label", "학생명: 정예은", "정예은", true},
		{"name before student marker", "강지호 학생의 재학을 증명합니다", "강지호", true},
		{"no label", "이 문서에는 이름이 없습니다", "", false},
		{"single character rejected", "성명: 김", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Name(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// ==========================
// Grade / ProgramLength
// ==========================

func TestGrade(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
		found    bool
	}{
		{"suffix form", "현재 3학년에 재학 중", 3, true},
		{"labeled form", "학년: 2", 2, true},
		{"english label", "Grade: 4", 4, true},
		{"out of range ignored", "7학년", 0, false},
		{"absent", "학적 사항 없음", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Grade(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProgramLength(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
		found    bool
	}{
		{"explicit program years", "수업연한: 3년", 3, true},
		{"n-year program suffix", "본교는 2년제 과정입니다", 2, true},
		{"school system label", "학제: 4년", 4, true},
		{"junior college marker", "한영전문대학 재학증명서", 2, true},
		{"junior college with three year hint", "한영전문대학 3년제 과정", 3, true},
		{"four year spelling of same root", "한영전문대학교 재학증명서", 4, true},
		{"associate degree phrase", "전문학사 학위 과정", 2, true},
		{"university marker", "한영대학교 총장", 4, true},
		{"no signal", "소속: 기계공학과", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ProgramLength(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProgramLengthExplicitBeatsInstitutionName(t *testing.T) {
	// Tier-1 phrasing wins over the institution-name heuristic.
	got, ok := ProgramLength("한영대학교 수업연한: 2년")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

// ==========================
// Major / Credits / GPA
// ==========================

func TestMajor(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"major label", "전공: 컴퓨터공학과", "컴퓨터공학과", true},
		{"department label", "학과: 전자공학과", "전자공학과", true},
		{"faculty label", "학부: 소프트웨어학부", "소프트웨어학부", true},
		{"whitespace normalized", "전공:  기계   공학과", "기계 공학과", true},
		{"absent", "성명: 김민준", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Major(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCredits(t *testing.T) {
	text := "취득 학점: 85.5\n졸업 기준 학점: 130"
	completed, cok, graduation, gok := Credits(text)
	assert.True(t, cok)
	assert.True(t, gok)
	assert.Equal(t, 85.5, completed)
	assert.Equal(t, 130.0, graduation)
}

func TestCreditsIndependentMisses(t *testing.T) {
	completed, cok, _, gok := Credits("이수 학점: 40")
	assert.True(t, cok)
	assert.Equal(t, 40.0, completed)
	assert.False(t, gok)

	_, cok, graduation, gok := Credits("졸업 학점: 120")
	assert.False(t, cok)
	assert.True(t, gok)
	assert.Equal(t, 120.0, graduation)
}

func TestGPA(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
		found    bool
	}{
		{"cumulative label", "전체 평점: 3.85", 3.85, true},
		{"short label", "평점: 4.12", 4.12, true},
		{"english label lowercase", "gpa: 3.50", 3.5, true},
		{"above academic range rejected", "평점: 9.99", 0, false},
		{"integer without decimal rejected", "평점: 4", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GPA(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// ==========================
// Bonus flags / Region
// ==========================

func TestHasCertificate(t *testing.T) {
	assert.True(t, HasCertificate("정보처리기사 자격증 사본"))
	assert.True(t, HasCertificate("toeic 850점"))
	assert.False(t, HasCertificate("재학증명서"))
}

func TestVolunteerHours(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"labeled hours", "봉사 시간: 72", 72},
		{"maximum of several matches", "10시간 + 30시간 = 총 봉사: 40시간", 40},
		{"large but plausible total accepted", "2024시간", 2024},
		{"implausible total rejected", "누적 10000시간", 0},
		{"absent", "성적증명서", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, VolunteerHours(tt.text))
		})
	}
}

func TestIsMilitary(t *testing.T) {
	assert.True(t, IsMilitary("병역: 만기전역"))
	assert.True(t, IsMilitary("군복무 확인서"))
	assert.False(t, IsMilitary("재학증명서"))
}

func TestRegion(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"address label", "주소: 서울특별시 강남구 역삼동", "서울", true},
		{"residence label", "거주지: 전라북도 전주시", "전북", true},
		{"renamed province alias", "현주소: 전북특별자치도 군산시", "전북", true},
		{"bare suffix form", "경기도 수원시 팔달구에 거주", "경기", true},
		{"unknown address", "주소: 화성시 어딘가", "", false},
		{"absent", "성적증명서", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Region(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// ==========================
// Benchmarks
// ==========================

var benchText = `재학증명서
성명: 김민준
학과: 컴퓨터공학과
3학년 재학 중
한영대학교 총장`

func BenchmarkName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Name(benchText)
	}
}

func BenchmarkProgramLength(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ProgramLength(benchText)
	}
}
