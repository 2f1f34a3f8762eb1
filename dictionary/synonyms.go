package dictionary

// synonyms groups interchangeable query terms under a base term, per
// category, plus a "common" group merged into every category. The groups
// drive query variant expansion and the co-occurrence bonus in ranking.
var synonyms = map[string]map[string][]string{
	"common": {
		"bilingual": {"bilingual", "spanish", "mandarin", "arabic", "polish", "urdu", "cantonese", "taiwanese", "hindi", "yoruba", "kannada", "tamil", "french", "swahili", "tigrinya", "ukrainian"},
		"hours":     {"hours", "open", "closing", "time", "times", "schedule"},
		"address":   {"address", "where", "location"},
		"phone":     {"phone", "number", "call", "contact"},
		"website":   {"website", "site", "link"},
	},
	CategoryHealthcare: {
		"dental":       {"dental", "dentist", "teeth", "tooth", "oral", "mouth"},
		"pediatric":    {"pediatric", "pediatrics", "children", "child", "kid", "kids", "adolescent", "youth"},
		"women":        {"women", "woman", "female", "obgyn", "ob/gyn", "ob-gyn", "ob gyn", "prenatal", "midwifery", "obstetrics", "gynecology"},
		"mental":       {"behavioral", "mental", "counseling", "counselor", "therapy", "therapist", "psychiatry", "psychiatric"},
		"primary":      {"primary", "family", "internal medicine", "family medicine", "adult"},
		"immunization": {"immunization", "immunizations", "vaccination", "vaccinations", "shots", "vaccine", "vaccines"},
	},
	CategoryEducation: {
		"esl": {"esl", "english", "language", "tutoring", "classes", "citizenship", "ged", "literacy", "after-school", "after school", "youth"},
	},
	CategoryResettlement: {
		"legal":        {"legal", "law", "attorney", "immigration", "asylum", "daca", "family reunification"},
		"shelter":      {"shelter", "housing", "emergency", "homeless"},
		"benefits":     {"benefits", "snap", "medicaid", "cash assistance", "311", "food", "pantry"},
		"resettlement": {"resettlement", "case management", "employment", "job readiness", "welcoming center"},
	},
}

// SynonymsFor returns the synonym groups relevant to a category: the common
// groups plus the category's own. Unknown categories get only the common
// groups. The returned map is freshly allocated; callers may not mutate the
// group slices.
func SynonymsFor(category string) map[string][]string {
	merged := make(map[string][]string, len(synonyms["common"]))
	for base, group := range synonyms["common"] {
		merged[base] = group
	}
	for base, group := range synonyms[category] {
		merged[base] = group
	}
	return merged
}
