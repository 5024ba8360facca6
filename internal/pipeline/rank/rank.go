// Package rank selects scholars from scored applicant records. Selection is
// deterministic: the same records, quota, and exclusion set always yield the
// same ranking.
package rank

import (
	"sort"

	"scholarship-workers/internal/models"
)

const excludedNote = "⛔ 이전 선발자 — 중복 선발 제외"

// Result holds the outcome of a selection run. Ranked carries every eligible,
// non-excluded candidate with a 1-based rank; Selected is the prefix that fits
// the quota.
type Result struct {
	Selected []models.RankedRecord
	Ranked   []models.RankedRecord
}

// Select filters the records to eligible candidates not in the exclusion set,
// orders them by score, and truncates to the quota. Excluded candidates get an
// annotation on the input record so the omission stays visible downstream.
func Select(records []models.ApplicantRecord, quota int, excluded map[string]bool) Result {
	candidates := make([]models.ApplicantRecord, 0, len(records))
	for i := range records {
		r := &records[i]
		// Any record in the exclusion set gets the annotation, eligible
		// or not, before filtering decides who can be a candidate.
		if excluded[r.Name] {
			r.ParseNotes = append([]string{excludedNote}, r.ParseNotes...)
		}
		if !r.IsEligible || excluded[r.Name] {
			continue
		}
		candidates = append(candidates, *r)
	}

	// Stable sort so candidates tied on every criterion keep their input
	// order, which is itself deterministic (first-seen archive order).
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.CompletionRate != b.CompletionRate {
			return a.CompletionRate > b.CompletionRate
		}
		if a.Grade != b.Grade {
			return a.Grade > b.Grade
		}
		return a.GPA > b.GPA
	})

	ranked := make([]models.RankedRecord, 0, len(candidates))
	for i, c := range candidates {
		ranked = append(ranked, models.RankedRecord{
			ApplicantRecord: c,
			Rank:            i + 1,
		})
	}

	selected := ranked
	if quota >= 0 && len(selected) > quota {
		selected = selected[:quota]
	}

	return Result{Selected: selected, Ranked: ranked}
}
