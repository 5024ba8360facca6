package extract

// CertificateKeywords marks possession of a national certification or a
// standardized language test score.
var CertificateKeywords = []string{
	"국가기술자격", "국가전문자격",
	"기사", "산업기사", "기능사", "기능장", "기술사",
	"TOEIC", "TOEFL", "IELTS", "OPIc", "JLPT", "HSK",
	"토익", "토플", "오픽", "텝스", "TEPS",
	"자격증", "면허", "어학성적",
}

// VolunteerKeywords marks volunteer activity documents.
var VolunteerKeywords = []string{"봉사", "자원봉사", "사회봉사", "봉사활동", "봉사시간"}

// MilitaryKeywords marks completed military service.
var MilitaryKeywords = []string{
	"병역", "현역", "예비역", "만기전역", "군필", "복무완료",
	"전역", "군복무", "병역이행",
}

// regionOrder fixes the lookup order so an address mentioning several
// regions always resolves the same way.
var regionOrder = []string{
	"서울", "인천", "경기", "강원", "충북", "충남", "대전", "세종",
	"전북", "전남", "광주", "경북", "대구", "경남", "울산", "부산", "제주",
}

// RegionAliases maps each administrative region to the address spellings that
// identify it.
var RegionAliases = map[string][]string{
	"서울": {"서울특별시"},
	"인천": {"인천광역시"},
	"경기": {"경기도"},
	"강원": {"강원특별자치도", "강원도"},
	"충북": {"충청북도"},
	"충남": {"충청남도"},
	"대전": {"대전광역시"},
	"세종": {"세종특별자치시", "세종시"},
	"전북": {"전북특별자치도", "전라북도"},
	"전남": {"전라남도"},
	"광주": {"광주광역시"},
	"경북": {"경상북도"},
	"대구": {"대구광역시"},
	"경남": {"경상남도"},
	"울산": {"울산광역시"},
	"부산": {"부산광역시"},
	"제주": {"제주특별자치도", "제주도"},
}
