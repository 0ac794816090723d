package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	lettersOnly  = regexp.MustCompile(`^[a-zA-Z]+$`)
	digitsOnly   = regexp.MustCompile(`^[0-9]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	upperClass   = regexp.MustCompile(`[A-Z]`)
	lowerClass   = regexp.MustCompile(`[a-z]`)
	digitClass   = regexp.MustCompile(`[0-9]`)
	specialClass = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// disposableDomains is the deny-list of throwaway email providers. Matching
// is by substring containment on the domain, not exact equality, so
// subdomains and TLD variants are caught too.
var disposableDomains = []string{
	"mailinator",
	"guerrillamail",
	"10minutemail",
	"tempmail",
	"throwaway",
	"yopmail",
	"trashmail",
	"getnada",
	"sharklasers",
	"dispostable",
}

// FirstName validates a first name: 3-10 letters
func FirstName(s string) Result {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < 3 || n > 10 {
		return fail("First name must be 3-10 letters")
	}
	if !lettersOnly.MatchString(s) {
		return fail("First name may only contain letters")
	}
	return ok()
}

// LastName validates a last name: 3-20 letters
func LastName(s string) Result {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < 3 || n > 20 {
		return fail("Last name must be 3-20 letters")
	}
	if !lettersOnly.MatchString(s) {
		return fail("Last name may only contain letters")
	}
	return ok()
}

// Email validates address shape and rejects disposable providers
func Email(s string) Result {
	s = strings.TrimSpace(s)
	if s == "" {
		return fail("Email is required")
	}
	if !emailPattern.MatchString(s) {
		return fail("Enter a valid email address")
	}
	at := strings.LastIndex(s, "@")
	domainPart := strings.ToLower(s[at+1:])
	for _, dd := range disposableDomains {
		if strings.Contains(domainPart, dd) {
			return fail("Disposable email addresses are not accepted")
		}
	}
	return ok()
}

// Password validates account-password strength. Three independent conditions
// beyond the length bounds: all four character classes present, no run of 4+
// identical characters, and no "password" substring in any casing.
func Password(s string) Result {
	if utf8.RuneCountInString(s) < 8 {
		return fail("Password must be at least 8 characters")
	}
	if utf8.RuneCountInString(s) > 50 {
		return fail("Password must be at most 50 characters")
	}
	if !upperClass.MatchString(s) {
		return fail("Password must contain an uppercase letter")
	}
	if !lowerClass.MatchString(s) {
		return fail("Password must contain a lowercase letter")
	}
	if !digitClass.MatchString(s) {
		return fail("Password must contain a digit")
	}
	if !specialClass.MatchString(s) {
		return fail("Password must contain a special character")
	}
	if hasRepeatRun(s, 4) {
		return fail("Password must not repeat a character 4 or more times in a row")
	}
	if strings.Contains(strings.ToLower(s), "password") {
		return fail("Password must not contain the word \"password\"")
	}
	return ok()
}

// hasRepeatRun reports whether s contains n or more identical runes in a row
func hasRepeatRun(s string, n int) bool {
	run := 1
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}
	return false
}

// Phone validates a phone number for the given lowercase ISO country code.
// Indian mobiles must be exactly 10 digits starting with 6-9; every other
// locale accepts 7-15 digits. An all-identical-digit number is always
// rejected, whatever the locale.
func Phone(number, country string) Result {
	number = strings.TrimSpace(number)
	if number == "" {
		return fail("Phone number is required")
	}
	if !digitsOnly.MatchString(number) {
		return fail("Phone number may only contain digits")
	}
	if allSameByte(number) {
		return fail("Enter a real phone number")
	}
	if strings.EqualFold(country, "in") {
		if len(number) != 10 {
			return fail("Indian mobile numbers must be exactly 10 digits")
		}
		if number[0] < '6' || number[0] > '9' {
			return fail("Indian mobile numbers must start with 6-9")
		}
		return ok()
	}
	if len(number) < 7 || len(number) > 15 {
		return fail("Phone number must be 7-15 digits")
	}
	return ok()
}

func allSameByte(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// zipPatterns maps lowercase country codes to their postal-code shapes.
// Countries not listed fall back to a permissive alphanumeric check.
var zipPatterns = map[string]*regexp.Regexp{
	"us": regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`),
	"in": regexp.MustCompile(`^[1-9][0-9]{5}$`),
	"gb": regexp.MustCompile(`^[A-Za-z]{1,2}[0-9][A-Za-z0-9]? ?[0-9][A-Za-z]{2}$`),
	"ca": regexp.MustCompile(`^[A-Za-z][0-9][A-Za-z] ?[0-9][A-Za-z][0-9]$`),
	"de": regexp.MustCompile(`^[0-9]{5}$`),
	"au": regexp.MustCompile(`^[0-9]{4}$`),
}

var zipFallback = regexp.MustCompile(`^[A-Za-z0-9 \-]{3,10}$`)

// ZipCode validates a postal code against the country's pattern
func ZipCode(zip, country string) Result {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return fail("Zip code is required")
	}
	pattern, found := zipPatterns[strings.ToLower(country)]
	if !found {
		pattern = zipFallback
	}
	if !pattern.MatchString(zip) {
		return fail("Enter a valid zip code for your country")
	}
	return ok()
}
