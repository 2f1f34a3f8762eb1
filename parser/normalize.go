package parser

import (
	"regexp"
	"strings"
)

var (
	phoneRE    = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)
	nonDigitRE = regexp.MustCompile(`\D`)
	zipRE      = regexp.MustCompile(`\b60\d{3}\b`)
	websiteRE  = regexp.MustCompile(`https?://[^\s<>"']+`)
)

// NormalizePhone extracts the first US phone number from text, returning the
// number as written plus a digits-only form. When no number is present the
// trimmed text is kept as the display phone ("call front desk") with empty
// digits.
func NormalizePhone(text string) (phone, digits string) {
	phone = phoneRE.FindString(text)
	if phone == "" {
		return strings.TrimSpace(text), ""
	}
	return phone, nonDigitRE.ReplaceAllString(phone, "")
}

// NormalizeZip extracts the first Chicago-area ZIP code (60xxx) from text.
func NormalizeZip(text string) string {
	return zipRE.FindString(text)
}

// NormalizeWebsite extracts the first http(s) URL from text, falling back
// to the trimmed text when no URL is present.
func NormalizeWebsite(text string) string {
	if url := websiteRE.FindString(text); url != "" {
		return url
	}
	return strings.TrimSpace(text)
}
