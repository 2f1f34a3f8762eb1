package dictionary

import "regexp"

// Category names as they appear in source configuration and queries.
const (
	CategoryHealthcare   = "Healthcare"
	CategoryEducation    = "Education"
	CategoryResettlement = "Resettlement / Legal / Shelter"
)

// Services maps listing text to canonical service tags.
var Services = New(
	pat("dental", `\b(dental|dentist|oral|teeth|tooth)\b`),
	pat("pediatric", `\b(pediatric|pediatrician|child|children|kids|baby|infant)\b`),
	pat("mental_health", `\b(mental|therapy|therapist|counseling|counselor|psychology|psychiatric)\b`),
	pat("womens_health", `\b(women|woman|obgyn|ob.?gyn|prenatal|midwifery|obstetrics|gynecology)\b`),
	pat("immunization", `\b(immunizations?|vaccinations?|vaccines?|shots)\b`),
	pat("primary_care", `\b(primary|family|general|internal|medicine|doctor|physician)\b`),
	pat("urgent_care", `\b(urgent|emergency|walk.?in|same.?day)\b`),
	pat("esl", `\b(esl|english|language|learning|class|course|tutoring)\b`),
	pat("ged", `\b(ged|high.?school|diploma|education|adult.?education|citizenship|literacy)\b`),
	pat("legal", `\b(legal|lawyer|attorney|immigration|court|advocacy|asylum|daca)\b`),
	pat("shelter", `\b(shelter|housing|homeless|emergency.?housing)\b`),
	pat("benefits", `\b(benefits|snap|medicaid|cash.?assistance|food.?pantry)\b`),
	pat("resettlement", `\b(resettlement|case.?management|job.?readiness|welcoming.?center)\b`),
)

// Languages maps listing text to canonical language tags. Native-script
// spellings count the same as the English name.
var Languages = New(
	pat("spanish", `\b(spanish|español|española)\b`),
	pat("arabic", `\b(arabic|عربي|arab)\b`),
	pat("french", `\b(french|français|française)\b`),
	pat("polish", `\b(polish|polski)\b`),
	pat("mandarin", `\b(mandarin|chinese|中文|普通话)\b`),
	pat("urdu", `\b(urdu|اردو)\b`),
	pat("hindi", `\b(hindi|हिन्दी)\b`),
	pat("swahili", `\b(swahili|kiswahili)\b`),
	pat("ukrainian", `\b(ukrainian|українська)\b`),
)

// Badges maps listing text to availability badge labels.
var Badges = New(
	pat("Free", `\b(free|no cost|no-cost|complimentary|pro bono)\b`),
	pat("Low Cost", `\b(low cost|low-cost|affordable|sliding scale)\b`),
	pat("Accepts Medicaid", `\b(medicaid|medicare|insurance)\b`),
	pat("Walk-in", `\b(walk.?in|no appointment)\b`),
	pat("Interpreter Available", `\b(interpreter|translation|interpretation)\b`),
	pat("24/7 Available", `\b(24/7|24 hours|around the clock)\b`),
	pat("Appointment Required", `\b(appointment required|by appointment)\b`),
)

// Subcategories maps each category to its coarser UI-facing labels.
// Entry order is priority order for single-label detection.
var Subcategories = map[string]*Dictionary{
	CategoryHealthcare: New(
		pat("Dental", `\b(dental|dentist|teeth|tooth|oral)\b`),
		pat("Pediatric", `\b(pediatric|pediatrician|children|child|kid|kids|youth)\b`),
		pat("Mental Health", `\b(mental|counseling|therapy|psychiatry|behavioral)\b`),
		pat("Women's Health", `\b(women|obgyn|ob.?gyn|prenatal|midwifery)\b`),
		pat("Immunization", `\b(immunizations?|vaccinations?|shots|vaccines?)\b`),
		pat("Primary Care", `\b(primary|family medicine|internal medicine)\b`),
	),
	CategoryEducation: New(
		pat("ESL", `\b(esl|english|language|tutoring|classes)\b`),
		pat("GED/Citizenship", `\b(ged|citizenship|literacy)\b`),
		pat("Youth Programs", `\b(after.?school|youth)\b`),
	),
	CategoryResettlement: New(
		pat("Legal Services", `\b(legal|law|attorney|immigration|asylum|daca)\b`),
		pat("Shelter/Housing", `\b(shelter|housing|emergency|homeless)\b`),
		pat("Benefits Assistance", `\b(benefits|snap|medicaid|cash assistance)\b`),
		pat("Resettlement Services", `\b(resettlement|case management|employment|job readiness)\b`),
	),
}

// QueryServices detects which canonical service tag a query asks for,
// per category, in priority order. The matched entry's pattern doubles as
// the asked-for-service probe against a record's services text.
var QueryServices = map[string]*Dictionary{
	CategoryHealthcare: New(
		pat("dental", `\b(dental|dentist|teeth|tooth|oral)\b`),
		pat("pediatric", `\b(pediatric|children|child|kid|kids|youth)\b`),
		pat("mental_health", `\b(mental|counseling|therapy|psychiatry)\b`),
		pat("womens_health", `\b(women|obgyn|prenatal|midwifery)\b`),
		pat("immunization", `\b(immunizations?|vaccinations?|shots|vaccines?)\b`),
	),
	CategoryEducation: New(
		pat("esl", `\b(esl|english|language|tutoring|classes)\b`),
		pat("ged", `\b(ged|citizenship|literacy)\b`),
	),
	CategoryResettlement: New(
		pat("legal", `\b(legal|law|attorney|immigration|asylum|daca)\b`),
		pat("shelter", `\b(shelter|housing|emergency|homeless)\b`),
		pat("benefits", `\b(benefits|snap|medicaid|cash assistance)\b`),
		pat("resettlement", `\b(resettlement|case management|employment|job readiness)\b`),
	),
}

// DayPatterns matches day names and their common abbreviations, keyed by
// canonical day. Used for both hours parsing and query day detection.
var DayPatterns = map[string]*regexp.Regexp{
	"monday":    regexp.MustCompile(`(?i)\b(monday|mon)\b`),
	"tuesday":   regexp.MustCompile(`(?i)\b(tuesday|tues|tue)\b`),
	"wednesday": regexp.MustCompile(`(?i)\b(wednesday|wed)\b`),
	"thursday":  regexp.MustCompile(`(?i)\b(thursday|thurs|thur|thu)\b`),
	"friday":    regexp.MustCompile(`(?i)\b(friday|fri)\b`),
	"saturday":  regexp.MustCompile(`(?i)\b(saturday|sat)\b`),
	"sunday":    regexp.MustCompile(`(?i)\b(sunday|sun)\b`),
}

// DayIndex maps every accepted day spelling to its Monday-first index,
// for expanding ranges like "Mon-Thu" or the wraparound "Fri-Mon".
var DayIndex = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tues": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thur": 3, "thurs": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

// Concepts links broad query keywords to the concrete terms listings use.
// A query mentioning the keyword scores a small bonus for each concept
// whose related terms appear in the record text.
var Concepts = map[string][]string{
	"health":  {"clinic", "center", "care", "medical", "health"},
	"food":    {"pantry", "meals", "grocery", "nutrition"},
	"help":    {"assistance", "support", "services", "aid"},
	"learn":   {"education", "school", "class", "training"},
	"housing": {"shelter", "apartment", "rent", "housing"},
	"work":    {"job", "employment", "career", "workforce"},
}
