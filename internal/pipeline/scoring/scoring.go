// Package scoring computes the deterministic score for an applicant record.
// Scores depend only on the record's fields and the configured policy, so the
// same input always produces the same output.
package scoring

import (
	"math"
	"strings"

	"scholarship-workers/internal/common/config"
	"scholarship-workers/internal/models"
)

// StemKeywords mark a major as a science, technology, engineering, or defense
// field for the bonus. Matching is substring-based so "컴퓨터공학과" hits on
// "컴퓨터" and "공학" alike.
var StemKeywords = []string{
	"공학", "이학", "전자", "기계", "컴퓨터", "소프트웨어", "정보", "국방",
	"방산", "항공", "우주", "화학", "물리", "수학", "전기", "통신", "로봇",
	"자동화", "반도체", "에너지", "재료", "토목", "건축", "환경", "생명",
	"바이오", "인공지능", "AI", "데이터", "사이버", "보안", "국방공학",
	"방위산업", "드론", "무기체계", "레이더", "탄약",
}

// Engine applies the scoring policy to applicant records.
type Engine struct {
	cfg config.ScoringConfig
}

// NewEngine creates an Engine, filling unset policy values with the standard
// program defaults.
func NewEngine(cfg config.ScoringConfig) *Engine {
	if cfg.GradeCeiling <= 0 {
		cfg.GradeCeiling = 50
	}
	if cfg.CompletionCeiling <= 0 {
		cfg.CompletionCeiling = 50
	}
	if cfg.BonusStemPoints <= 0 {
		cfg.BonusStemPoints = 5
	}
	if cfg.BonusCertPoints <= 0 {
		cfg.BonusCertPoints = 3
	}
	if cfg.BonusVolPoints <= 0 {
		cfg.BonusVolPoints = 2
	}
	if cfg.BonusCap <= 0 {
		cfg.BonusCap = 10
	}
	if cfg.VolunteerMinHours <= 0 {
		cfg.VolunteerMinHours = 50
	}
	return &Engine{cfg: cfg}
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// IsStemMajor reports whether the major contains any STEM keyword.
func IsStemMajor(major string) bool {
	if major == "" {
		return false
	}
	for _, kw := range StemKeywords {
		if strings.Contains(major, kw) {
			return true
		}
	}
	return false
}

// GradeScore scales academic progress to the grade ceiling. A third-year
// student in a three-year program scores the same as a fourth-year student in
// a four-year program.
func (e *Engine) GradeScore(grade, maxGrade int) float64 {
	if grade <= 0 || maxGrade <= 0 {
		return 0
	}
	return round2(float64(grade) / float64(maxGrade) * e.cfg.GradeCeiling)
}

// CompletionRate returns completed/graduation clamped to [0, 1].
func (e *Engine) CompletionRate(completed, graduation float64) float64 {
	if graduation <= 0 {
		return 0
	}
	rate := completed / graduation
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

// BonusScore sums the STEM, certificate, and volunteer bonuses, capped.
func (e *Engine) BonusScore(r *models.ApplicantRecord) float64 {
	var bonus float64
	r.BonusStem = IsStemMajor(r.Major)
	if r.BonusStem {
		bonus += e.cfg.BonusStemPoints
	}
	r.BonusCertificate = r.HasCertificate
	if r.BonusCertificate {
		bonus += e.cfg.BonusCertPoints
	}
	r.BonusVolunteer = r.VolunteerHours >= e.cfg.VolunteerMinHours
	if r.BonusVolunteer {
		bonus += e.cfg.BonusVolPoints
	}
	if bonus > e.cfg.BonusCap {
		bonus = e.cfg.BonusCap
	}
	return bonus
}

// Score fills the record's score fields in place and returns the total.
func (e *Engine) Score(r *models.ApplicantRecord) float64 {
	r.GradeScore = e.GradeScore(r.Grade, r.MaxGrade)
	r.CompletionRate = e.CompletionRate(r.CompletedCredits, r.GraduationCredits)
	r.CompletionScore = round2(r.CompletionRate * e.cfg.CompletionCeiling)
	r.BonusScore = e.BonusScore(r)
	r.TotalScore = round2(r.GradeScore + r.CompletionScore + r.BonusScore)
	return r.TotalScore
}

// ScoreAll scores every record in place.
func (e *Engine) ScoreAll(records []models.ApplicantRecord) {
	for i := range records {
		e.Score(&records[i])
	}
}
