package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scholarship-workers/internal/common/config"
	"scholarship-workers/internal/models"
)

func newTestEngine() *Engine {
	return NewEngine(config.ScoringConfig{})
}

func TestGradeScore(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name     string
		grade    int
		maxGrade int
		expected float64
	}{
		{"final year of four-year program", 4, 4, 50},
		{"halfway through four-year program", 2, 4, 25},
		{"first year", 1, 4, 12.5},
		{"final year of three-year program", 3, 3, 50},
		{"final year of two-year program", 2, 2, 50},
		{"missing grade", 0, 4, 0},
		{"missing max grade", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.GradeScore(tt.grade, tt.maxGrade))
		})
	}
}

func TestGradeScoreProgramLengthParity(t *testing.T) {
	// A student in the last year scores the same regardless of how long
	// the program is.
	e := newTestEngine()
	assert.Equal(t, e.GradeScore(2, 2), e.GradeScore(4, 4))
	assert.Equal(t, e.GradeScore(3, 3), e.GradeScore(4, 4))
}

func TestCompletionRate(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, 0.5, e.CompletionRate(60, 120))
	assert.Equal(t, 1.0, e.CompletionRate(120, 120))
	assert.Equal(t, 1.0, e.CompletionRate(150, 120)) // clamped
	assert.Equal(t, 0.0, e.CompletionRate(60, 0))
	assert.Equal(t, 0.0, e.CompletionRate(-5, 120))
}

func TestIsStemMajor(t *testing.T) {
	assert.True(t, IsStemMajor("컴퓨터공학과"))
	assert.True(t, IsStemMajor("국방AI학과"))
	assert.True(t, IsStemMajor("물리학과"))
	assert.False(t, IsStemMajor("경영학과"))
	assert.False(t, IsStemMajor(""))
}

func TestBonusScore(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name     string
		record   models.ApplicantRecord
		expected float64
	}{
		{"no bonuses", models.ApplicantRecord{Major: "경영학과"}, 0},
		{"stem only", models.ApplicantRecord{Major: "기계공학과"}, 5},
		{"certificate only", models.ApplicantRecord{HasCertificate: true}, 3},
		{"volunteer at threshold", models.ApplicantRecord{VolunteerHours: 50}, 2},
		{"volunteer below threshold", models.ApplicantRecord{VolunteerHours: 49.5}, 0},
		{
			"all three",
			models.ApplicantRecord{Major: "전자공학과", HasCertificate: true, VolunteerHours: 120},
			10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.BonusScore(&tt.record))
		})
	}
}

func TestBonusScoreCap(t *testing.T) {
	e := NewEngine(config.ScoringConfig{
		BonusStemPoints: 6,
		BonusCertPoints: 4,
		BonusVolPoints:  3,
		BonusCap:        10,
	})
	r := models.ApplicantRecord{Major: "소프트웨어학부", HasCertificate: true, VolunteerHours: 60}
	assert.Equal(t, 10.0, e.BonusScore(&r))
}

func TestScore(t *testing.T) {
	e := newTestEngine()
	r := models.ApplicantRecord{
		Grade:             3,
		MaxGrade:          4,
		Major:             "컴퓨터공학과",
		CompletedCredits:  90,
		GraduationCredits: 120,
		HasCertificate:    true,
		VolunteerHours:    72,
	}

	total := e.Score(&r)

	assert.Equal(t, 37.5, r.GradeScore)
	assert.Equal(t, 0.75, r.CompletionRate)
	assert.Equal(t, 37.5, r.CompletionScore)
	assert.Equal(t, 10.0, r.BonusScore)
	assert.Equal(t, 85.0, total)
	assert.Equal(t, total, r.TotalScore)
	assert.True(t, r.BonusStem)
	assert.True(t, r.BonusCertificate)
	assert.True(t, r.BonusVolunteer)
}

func TestScoreDeterministic(t *testing.T) {
	e := newTestEngine()
	r := models.ApplicantRecord{
		Grade: 2, MaxGrade: 3, Major: "화학과",
		CompletedCredits: 47, GraduationCredits: 110, GPA: 3.3,
	}

	first := e.Score(&r)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Score(&r))
	}
}

func TestScoreAll(t *testing.T) {
	e := newTestEngine()
	records := []models.ApplicantRecord{
		{Grade: 4, MaxGrade: 4, CompletedCredits: 120, GraduationCredits: 120},
		{Grade: 1, MaxGrade: 4},
	}

	e.ScoreAll(records)

	assert.Equal(t, 100.0, records[0].TotalScore)
	assert.Equal(t, 12.5, records[1].TotalScore)
}

func TestScoreRounding(t *testing.T) {
	e := newTestEngine()
	r := models.ApplicantRecord{
		Grade: 1, MaxGrade: 3, // 16.666... -> 16.67
		CompletedCredits:  40,
		GraduationCredits: 120, // rate 0.333..., score 16.67
	}

	e.Score(&r)
	assert.Equal(t, 16.67, r.GradeScore)
	assert.Equal(t, 16.67, r.CompletionScore)
	assert.Equal(t, 33.34, r.TotalScore)
}
