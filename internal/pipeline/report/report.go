// Package report derives summary statistics from a finished selection run.
package report

import (
	"fmt"
	"math"

	"scholarship-workers/internal/models"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize computes statistics over the selected scholars. totalApplicants is
// the number of applicants that entered selection, selected or not.
func Summarize(selected []models.RankedRecord, totalApplicants int) models.Statistics {
	stats := models.Statistics{
		SelectedCount:      len(selected),
		TotalApplicants:    totalApplicants,
		GradeDistribution:  make(map[string]int),
		RegionDistribution: make(map[string]int),
	}

	if totalApplicants > 0 {
		stats.SelectionRate = round2(float64(len(selected)) / float64(totalApplicants) * 100)
	}
	if len(selected) == 0 {
		return stats
	}

	var scoreSum, rateSum, gpaSum float64
	stats.MinScore = selected[0].TotalScore
	stats.MaxScore = selected[0].TotalScore

	for _, s := range selected {
		scoreSum += s.TotalScore
		rateSum += s.CompletionRate
		gpaSum += s.GPA
		if s.TotalScore < stats.MinScore {
			stats.MinScore = s.TotalScore
		}
		if s.TotalScore > stats.MaxScore {
			stats.MaxScore = s.TotalScore
		}

		stats.GradeDistribution[fmt.Sprintf("%d학년", s.Grade)]++
		if s.Region != "" {
			stats.RegionDistribution[s.Region]++
		}
		if s.HasCertificate {
			stats.CertificateCount++
		}
		if s.BonusVolunteer {
			stats.VolunteerCount++
		}
		if s.IsMilitary {
			stats.MilitaryCount++
		}
		if s.BonusStem {
			stats.StemCount++
		}
	}

	n := float64(len(selected))
	stats.AverageScore = round2(scoreSum / n)
	stats.AverageCompletionRate = round2(rateSum / n)
	stats.AverageGPA = round2(gpaSum / n)

	return stats
}
