package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Budget bounds and the anti-abuse range heuristic
const (
	MinBudgetFloor   = 500
	MaxBudgetCeiling = 10_000_000

	// A range wider than this, with a minimum under wideRangeMinCutoff, is
	// rejected outright. Inherited anti-abuse rule; confirm with product
	// before changing.
	wideRangeSpan      = 1_000_000
	wideRangeMinCutoff = 10_000
)

var cityPattern = regexp.MustCompile(`^[a-zA-Z ]+$`)

// vatPatterns maps lowercase country codes to VAT-number shapes. The VAT
// field is optional; an empty value is always valid.
var vatPatterns = map[string]*regexp.Regexp{
	"gb": regexp.MustCompile(`^GB[0-9]{9}([0-9]{3})?$`),
	"de": regexp.MustCompile(`^DE[0-9]{9}$`),
	"fr": regexp.MustCompile(`^FR[A-Za-z0-9]{2}[0-9]{9}$`),
	"in": regexp.MustCompile(`^[0-9]{2}[A-Za-z0-9]{13}$`),
}

var vatFallback = regexp.MustCompile(`^[A-Za-z0-9]{8,14}$`)

// BudgetRange validates the min/max budget pair as entered. Both bounds are
// inclusive: 500 <= min <= max <= 10,000,000. A range spanning more than
// $1M while the minimum sits under $10k is rejected as too wide.
func BudgetRange(minRaw, maxRaw string) Result {
	minRaw = strings.TrimSpace(minRaw)
	maxRaw = strings.TrimSpace(maxRaw)
	if minRaw == "" || maxRaw == "" {
		return fail("Both minimum and maximum budget are required")
	}
	min, err := strconv.Atoi(minRaw)
	if err != nil {
		return fail("Minimum budget must be a whole number")
	}
	max, err := strconv.Atoi(maxRaw)
	if err != nil {
		return fail("Maximum budget must be a whole number")
	}
	if min < MinBudgetFloor {
		return fail("Minimum budget must be at least $500")
	}
	if max > MaxBudgetCeiling {
		return fail("Maximum budget must be at most $10,000,000")
	}
	if min > max {
		return fail("Minimum budget cannot exceed maximum budget")
	}
	// A max pinned at the ceiling means "no estimate yet", not abuse; the
	// heuristic only fires on a deliberately capped range.
	if max < MaxBudgetCeiling && max-min > wideRangeSpan && min < wideRangeMinCutoff {
		return fail("Budget range is too wide")
	}
	return ok()
}

// CompanyName validates a business name: 3-50 chars after trimming
func CompanyName(s string) Result {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < 3 {
		return fail("Company name must be at least 3 characters")
	}
	if utf8.RuneCountInString(s) > 50 {
		return fail("Company name must be at most 50 characters")
	}
	return ok()
}

// City validates a city name: 3-15 letters and spaces
func City(s string) Result {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < 3 || n > 15 {
		return fail("City must be 3-15 characters")
	}
	if !cityPattern.MatchString(s) {
		return fail("City may only contain letters and spaces")
	}
	return ok()
}

// AddressLine1 requires a non-empty first address line
func AddressLine1(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail("Address line 1 is required")
	}
	return ok()
}

// VATNumber validates an optional VAT number against the country's pattern
func VATNumber(vat, country string) Result {
	vat = strings.TrimSpace(vat)
	if vat == "" {
		return ok()
	}
	pattern, found := vatPatterns[strings.ToLower(country)]
	if !found {
		pattern = vatFallback
	}
	if !pattern.MatchString(vat) {
		return fail("Enter a valid VAT number for your country")
	}
	return ok()
}
