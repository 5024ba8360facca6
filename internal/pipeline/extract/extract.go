// Package extract contains the tolerant field extractors. Each extractor
// tries an ordered list of pattern alternatives, most specific first, and
// returns the first structurally valid match. A miss is not an error: the
// caller leaves the field at its default. The strategy is deliberately plain
// ordered regexes so every extracted value stays explainable in the audit
// trail.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`성\s*명\s*[：:]\s*([가-힣]{2,5})`),
	regexp.MustCompile(`이\s*름\s*[：:]\s*([가-힣]{2,5})`),
	regexp.MustCompile(`신청인\s*[：:]\s*([가-힣]{2,5})`),
	regexp.MustCompile(`학생명\s*[：:]\s*([가-힣]{2,5})`),
	regexp.MustCompile(`학\s*생\s*[：:]\s*([가-힣]{2,5})`),
	regexp.MustCompile(`(?m)^([가-힣]{2,5})\s+학생`),
}

// Name extracts a Korean name following a labeled prefix.
func Name(text string) (string, bool) {
	for _, p := range namePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

var gradePatterns = []*regexp.Regexp{
	regexp.MustCompile(`([1-4])\s*학년`),
	regexp.MustCompile(`재학\s*학년\s*[：:\s]*([1-4])`),
	regexp.MustCompile(`학\s*년\s*[：:\s]*([1-4])`),
	regexp.MustCompile(`Grade\s*[：:\s]*([1-4])`),
}

// Grade extracts the current year of study, 1 through 4.
func Grade(text string) (int, bool) {
	for _, p := range gradePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			g, err := strconv.Atoi(m[1])
			if err == nil && g >= 1 && g <= 4 {
				return g, true
			}
		}
	}
	return 0, false
}

var (
	programYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`수업\s*연한\s*[：:\s]*([2-4])\s*년`),
		regexp.MustCompile(`([2-4])\s*년\s*제`),
		regexp.MustCompile(`학\s*제\s*[：:\s]*([2-4])\s*년`),
	}
	// 전문대학교 is a four-year institution despite sharing the junior
	// college root, so the 교 suffix must not follow.
	juniorCollege      = regexp.MustCompile(`전문대학[^교]`)
	juniorCollegeEnd   = regexp.MustCompile(`전문대학$`)
	juniorThreeYear    = regexp.MustCompile(`3\s*년\s*제|수업연한\s*[：:\s]*3`)
	fourYearUniversity = regexp.MustCompile(`[가-힣]+대학교`)
)

// ProgramLength infers the total length of the applicant's program in years.
// Four signal tiers, strongest first: explicit program-years phrasing, a
// junior-college institution marker, an associate-degree phrase, a four-year
// university name.
func ProgramLength(text string) (int, bool) {
	for _, p := range programYearsPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years, true
			}
		}
	}
	if juniorCollege.MatchString(text) || juniorCollegeEnd.MatchString(text) {
		if juniorThreeYear.MatchString(text) {
			return 3, true
		}
		return 2, true
	}
	if strings.Contains(text, "전문학사") {
		return 2, true
	}
	if fourYearUniversity.MatchString(text) {
		return 4, true
	}
	return 0, false
}

var majorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`전\s*공\s*[：:\s]+([^\n\r\t]{2,30})`),
	regexp.MustCompile(`학\s*과\s*[：:\s]+([^\n\r\t]{2,30})`),
	regexp.MustCompile(`학\s*부\s*[：:\s]+([^\n\r\t]{2,30})`),
	regexp.MustCompile(`소\s*속\s*[：:\s]+([^\n\r\t]{2,30})`),
	regexp.MustCompile(`Department\s*[：:\s]+([^\n\r\t]{2,40})`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Major extracts the department or major name, whitespace-normalized and
// length-bounded.
func Major(text string) (string, bool) {
	for _, p := range majorPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			major := strings.TrimSpace(whitespaceRun.ReplaceAllString(m[1], " "))
			if n := len([]rune(major)); n >= 2 && n <= 40 {
				return major, true
			}
		}
	}
	return "", false
}

var graduationCreditPatterns = []*regexp.Regexp{
	regexp.MustCompile(`졸업\s*기준\s*학점\s*[：:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`졸업\s*이수\s*학점\s*[：:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`총\s*졸업\s*학점\s*[：:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`졸업\s*학점\s*[：:\s]*(\d+\.?\d*)`),
}

var completedCreditPatterns = []*regexp.Regexp{
	regexp.MustCompile(`취득\s*학점\s*[：:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`이수\s*학점\s*[：:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`현재\s*이수\s*[：:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`누적\s*학점\s*[：:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`합\s*계\s*[：:\s]*(\d+\.?\d*)\s*학점`),
	regexp.MustCompile(`취득\s*[：:\s]*(\d+\.?\d*)\s*학점`),
}

// Credits extracts the completed and graduation-requirement credit counts
// independently. Either may miss on its own.
func Credits(text string) (completed float64, completedOK bool, graduation float64, graduationOK bool) {
	for _, p := range graduationCreditPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				graduation, graduationOK = v, true
				break
			}
		}
	}
	for _, p := range completedCreditPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				completed, completedOK = v, true
				break
			}
		}
	}
	return completed, completedOK, graduation, graduationOK
}

var gpaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`전체\s*평점\s*[：:\s]*(\d+\.\d+)`),
	regexp.MustCompile(`누적\s*평점\s*[：:\s]*(\d+\.\d+)`),
	regexp.MustCompile(`평\s*점\s*[：:\s]*(\d+\.\d+)`),
	regexp.MustCompile(`평균\s*[：:\s]*(\d+\.\d+)`),
	regexp.MustCompile(`(?i)GPA\s*[：:\s]*(\d+\.\d+)`),
}

// GPA extracts the cumulative grade point average, validated to [0.0, 4.5].
func GPA(text string) (float64, bool) {
	for _, p := range gpaPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err == nil && v >= 0.0 && v <= 4.5 {
				return v, true
			}
		}
	}
	return 0, false
}

// HasCertificate reports whether the text mentions a national certification
// or language test, case-insensitively.
func HasCertificate(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range CertificateKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

var volunteerHourPatterns = []*regexp.Regexp{
	regexp.MustCompile(`봉사\s*시간\s*[：:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`총\s*봉사\s*[：:\s]*(\d+\.?\d*)\s*시간`),
	regexp.MustCompile(`누적\s*봉사\s*[：:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`활동\s*시간\s*[：:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`(\d+\.?\d*)\s*시간`),
}

// VolunteerHours extracts cumulative volunteer hours. When a pattern matches
// several numbers the maximum is taken as the running total; values outside
// (0, 10000) are rejected as stray numbers such as years.
func VolunteerHours(text string) float64 {
	for _, p := range volunteerHourPatterns {
		matches := p.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		var hours float64
		for _, m := range matches {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > hours {
				hours = v
			}
		}
		if hours > 0 && hours < 10000 {
			return hours
		}
	}
	return 0
}

// IsMilitary reports whether the text mentions completed military service.
func IsMilitary(text string) bool {
	for _, kw := range MilitaryKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

var regionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:주소|거주지|현주소|주거지)\s*[：:]\s*([^\n\r]{4,80})`),
	regexp.MustCompile(`([가-힣]+(?:특별시|광역시|특별자치시|특별자치도|도)[^\n\r]{0,30})`),
}

// Region extracts a residence address and maps it onto the closed region
// enumeration through the alias table. No match leaves the region unset.
func Region(text string) (string, bool) {
	for _, p := range regionPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			addr := strings.TrimSpace(m[1])
			for _, region := range regionOrder {
				for _, alias := range RegionAliases[region] {
					if strings.Contains(addr, alias) {
						return region, true
					}
				}
			}
		}
	}
	return "", false
}
