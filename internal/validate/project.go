package validate

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/andy/gigpost/internal/domain"
)

var (
	startsWithLetter = regexp.MustCompile(`^[a-zA-Z]`)
	titleBadChars    = regexp.MustCompile(`[<>{}\[\]();]`)
	tagPattern       = regexp.MustCompile(`^[a-zA-Z&.,\-]+$`)
)

// descriptionBanned are the markup substrings rejected in descriptions,
// matched case-insensitively anywhere in the text
var descriptionBanned = []string{"script", "iframe", "object", "embed"}

// ProjectTitle validates the project title: 5-100 chars after trimming,
// starting with a letter, free of markup characters.
func ProjectTitle(s string) Result {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < 5 {
		return fail("Title must be at least 5 characters")
	}
	if utf8.RuneCountInString(s) > 100 {
		return fail("Title must be at most 100 characters")
	}
	if !startsWithLetter.MatchString(s) {
		return fail("Title must start with a letter")
	}
	if titleBadChars.MatchString(s) {
		return fail("Title must not contain <>{}[]();")
	}
	return ok()
}

// ProjectDescription validates the project description: 10-1024 chars after
// trimming, starting with a letter, free of embedded markup keywords.
func ProjectDescription(s string) Result {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < 10 {
		return fail("Description must be at least 10 characters")
	}
	if utf8.RuneCountInString(s) > 1024 {
		return fail("Description must be at most 1024 characters")
	}
	if !startsWithLetter.MatchString(s) {
		return fail("Description must start with a letter")
	}
	lower := strings.ToLower(s)
	for _, banned := range descriptionBanned {
		if strings.Contains(lower, banned) {
			return fail("Description must not contain " + banned)
		}
	}
	return ok()
}

// WritingLength validates the length of a writing project: a positive integer
// with a unit-dependent floor (50 words or 1 page).
func WritingLength(value string, unit domain.LengthUnit) Result {
	value = strings.TrimSpace(value)
	if value == "" {
		return fail("Length is required for writing projects")
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fail("Length must be a whole number")
	}
	switch unit {
	case domain.LengthUnitWords:
		if n < 50 {
			return fail("Writing length must be at least 50 words")
		}
	case domain.LengthUnitPages:
		if n < 1 {
			return fail("Writing length must be at least 1 page")
		}
	default:
		return fail("Unknown length unit")
	}
	return ok()
}

// CustomTag validates a free-form expertise tag: 3-30 chars, letters plus
// &.,- only, and never a URL. Multi-word tags use hyphens; catalog tags are
// exempt from this charset.
func CustomTag(s string) Result {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < 3 {
		return fail("Tag must be at least 3 characters")
	}
	if utf8.RuneCountInString(s) > 30 {
		return fail("Tag must be at most 30 characters")
	}
	if !tagPattern.MatchString(s) {
		return fail("Tag may only contain letters and &.,-")
	}
	if strings.Contains(strings.ToLower(s), "http") {
		return fail("Tag must not contain links")
	}
	return ok()
}

// Industry requires a non-empty industry string
func Industry(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail("Industry is required")
	}
	return ok()
}

// ImportantFactors enforces the exclusivity of the "none" option: when
// selected it must be the only member of the set.
func ImportantFactors(factors []string) Result {
	if len(factors) <= 1 {
		return ok()
	}
	for _, f := range factors {
		if f == domain.HiringFactorNone {
			return fail("\"" + domain.HiringFactorNone + "\" cannot be combined with other factors")
		}
	}
	return ok()
}

// Attachment validates the optional attached file: PDF only. An empty path
// is valid since the attachment is optional.
func Attachment(path string) Result {
	if strings.TrimSpace(path) == "" {
		return ok()
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fail("Only PDF attachments are accepted")
	}
	return ok()
}
