package dictionary

// Misspellings maps frequently seen misspellings to their corrections.
// Used for advisory "did you mean" suggestions only, never silent rewrites.
var Misspellings = map[string]string{
	// healthcare
	"dentall":   "dental",
	"dentel":    "dental",
	"dentle":    "dental",
	"pediatrik": "pediatric",
	"terapy":    "therapy",
	"theraphy":  "therapy",
	"klinik":    "clinic",
	"clinik":    "clinic",

	// education
	"inglish": "english",
	"skool":   "school",
	"klas":    "class",

	// legal / shelter
	"leagal":     "legal",
	"leagle":     "legal",
	"imigration": "immigration",
	"asilum":     "asylum",

	// common words
	"halp":  "help",
	"nead":  "need",
	"faind": "find",
	"neer":  "near",
	"cloes": "close",
}
