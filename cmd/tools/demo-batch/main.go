// cmd/tools/demo-batch/main.go
//
// Offline demo: generates a deterministic batch of applicants, runs scoring,
// selection, and reporting without any external services, and prints the
// resulting ranking and statistics as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"scholarship-workers/internal/common/config"
	"scholarship-workers/internal/models"
	"scholarship-workers/internal/pipeline/rank"
	"scholarship-workers/internal/pipeline/report"
	"scholarship-workers/internal/pipeline/scoring"
)

var demoNames = []string{
	"김민준", "이서연", "박도윤", "최서현", "정예은", "강지호", "조하은", "윤시우",
	"장지유", "임준서", "한소율", "오은우", "서다은", "신유준", "권서윤", "황지안",
	"안도현", "송채원", "전시은", "홍지후", "고나은", "문건우", "양서아", "손민재",
	"배수아", "백현우", "허윤서", "유주원", "남지민", "심태양",
}

var demoMajors = []string{
	"컴퓨터공학과", "기계공학과", "전자공학과", "경영학과", "국어국문학과",
	"화학공학과", "간호학과", "사회복지학과", "항공우주공학과", "시각디자인학과",
}

var demoRegions = []string{
	"서울", "부산", "대구", "인천", "광주", "대전", "경기", "강원", "충남", "전북", "경남", "제주",
}

func generateApplicants(rng *rand.Rand) []models.ApplicantRecord {
	// Mostly four-year programs, a handful of shorter ones.
	maxGrades := make([]int, 0, len(demoNames))
	for i := 0; i < 22; i++ {
		maxGrades = append(maxGrades, 4)
	}
	for i := 0; i < 5; i++ {
		maxGrades = append(maxGrades, 3)
	}
	for i := 0; i < 3; i++ {
		maxGrades = append(maxGrades, 2)
	}

	records := make([]models.ApplicantRecord, 0, len(demoNames))
	for i, name := range demoNames {
		maxGrade := maxGrades[i]
		grade := 1 + rng.Intn(maxGrade)
		graduation := 120.0
		if maxGrade == 2 {
			graduation = 80
		} else if maxGrade == 3 {
			graduation = 110
		}
		completed := graduation * (0.1 + 0.9*rng.Float64())

		records = append(records, models.ApplicantRecord{
			Key:               name,
			Name:              name,
			Grade:             grade,
			MaxGrade:          maxGrade,
			Major:             demoMajors[rng.Intn(len(demoMajors))],
			CompletedCredits:  float64(int(completed)),
			GraduationCredits: graduation,
			GPA:               float64(int((2.0+2.5*rng.Float64())*100)) / 100,
			HasCertificate:    rng.Float64() < 0.4,
			VolunteerHours:    float64(rng.Intn(120)),
			IsMilitary:        rng.Float64() < 0.2,
			Region:            demoRegions[rng.Intn(len(demoRegions))],
			IsEligible:        rng.Float64() < 0.9,
		})
	}
	return records
}

func main() {
	seed := flag.Int64("seed", 42, "random seed for the generated batch")
	quota := flag.Int("quota", 10, "number of scholars to select")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	records := generateApplicants(rng)

	engine := scoring.NewEngine(config.ScoringConfig{})
	engine.ScoreAll(records)

	result := rank.Select(records, *quota, nil)
	stats := report.Summarize(result.Selected, len(records))

	fmt.Printf("=== 장학생 선발 데모 (지원자 %d명, 정원 %d명) ===\n\n", len(records), *quota)
	for _, s := range result.Selected {
		fmt.Printf("%2d위  %-6s %-12s 총점 %6.2f (학년 %d/%d, 이수율 %.0f%%)\n",
			s.Rank, s.Name, s.Major, s.TotalScore, s.Grade, s.MaxGrade, s.CompletionRate*100)
	}

	fmt.Println("\n=== 통계 ===")
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stats); err != nil {
		fmt.Fprintf(os.Stderr, "encode statistics: %v\n", err)
		os.Exit(1)
	}
}
