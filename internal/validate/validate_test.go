package validate

import (
	"strings"
	"testing"

	"github.com/andy/gigpost/internal/domain"
)

func TestProjectTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		valid bool
	}{
		{"valid", "A Great Technical Manual", true},
		{"valid at min length", "Abcde", true},
		{"valid at max length", "A" + strings.Repeat("b", 99), true},
		{"multibyte at max length", "A" + strings.Repeat("é", 99), true},
		{"multibyte under min length", "Aééé", false},
		{"too short", "Abcd", false},
		{"too long", "A" + strings.Repeat("b", 100), false},
		{"empty", "", false},
		{"whitespace only", "    ", false},
		{"starts with digit", "1 great project", false},
		{"starts with space then letter ok", "  Valid title", true},
		{"angle brackets", "Build <thing> for me", false},
		{"braces", "Project {x}", false},
		{"semicolon", "Do this; then that", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ProjectTitle(tt.title)
			if res.Valid != tt.valid {
				t.Fatalf("ProjectTitle(%q) valid = %v, want %v (%s)", tt.title, res.Valid, tt.valid, res.Error)
			}
			if !res.Valid && res.Error == "" {
				t.Fatal("invalid result must carry an error message")
			}
		})
	}
}

func TestProjectDescription(t *testing.T) {
	tests := []struct {
		name  string
		desc  string
		valid bool
	}{
		{"valid", "This project needs a full technical manual covering setup.", true},
		{"too short", "Short", false},
		{"too long", "A" + strings.Repeat("b", 1024), false},
		{"multibyte at max length", "A" + strings.Repeat("ü", 1023), true},
		{"starts with digit", "99 problems need solving here", false},
		{"script tag", "Please add <script>alert(1)</script> handling", false},
		{"script mixed case", "Embed a SCRIPT in the page", false},
		{"script inside a word", "A description of the work ahead", false},
		{"iframe substring", "We need an iframe replacement", false},
		{"object substring", "Catalog every OBJECT we sell", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ProjectDescription(tt.desc)
			if res.Valid != tt.valid {
				t.Fatalf("ProjectDescription(%q) valid = %v, want %v (%s)", tt.desc, res.Valid, tt.valid, res.Error)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all classes", "Aa1!Aa1!", true},
		{"missing upper", "aa1!aa1!", false},
		{"missing lower", "AA1!AA1!", false},
		{"missing digit", "Aaa!Aaa!", false},
		{"missing special", "Aa1aAa1a", false},
		{"too short", "Aa1!Aa1", false},
		{"too long", "Aa1!" + strings.Repeat("x", 47), false},
		{"multibyte at max length", "Aa1!" + strings.Repeat("éö", 23), true},
		{"multibyte under min length", "Aa1!éöé", false},
		{"multibyte run of four", "Aa1!éééé", false},
		{"four repeated chars", "Aa1!aaaa", false},
		{"three repeated chars ok", "Aa1!aaab", true},
		{"contains password", "Password1!", false},
		{"contains password mixed case", "xPaSsWoRd9$", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Password(tt.password)
			if res.Valid != tt.valid {
				t.Fatalf("Password(%q) valid = %v, want %v (%s)", tt.password, res.Valid, tt.valid, res.Error)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		country string
		valid   bool
	}{
		{"indian mobile", "9876543210", "in", true},
		{"indian starts with 1", "1234567890", "in", false},
		{"indian too short", "987654321", "in", false},
		{"indian too long", "98765432100", "in", false},
		{"all same digits india", "0000000000", "in", false},
		{"all same digits us", "0000000000", "us", false},
		{"us ten digits", "2125551234", "us", true},
		{"international seven digits", "5551234", "de", true},
		{"international fifteen digits", "123456789012345", "de", true},
		{"international six digits", "555123", "de", false},
		{"international sixteen digits", "1234567890123456", "de", false},
		{"letters rejected", "555abc1234", "us", false},
		{"empty", "", "us", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Phone(tt.number, tt.country)
			if res.Valid != tt.valid {
				t.Fatalf("Phone(%q, %q) valid = %v, want %v (%s)", tt.number, tt.country, res.Valid, tt.valid, res.Error)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"valid", "dev@example.com", true},
		{"missing at", "dev.example.com", false},
		{"missing tld", "dev@example", false},
		{"disposable exact", "x@mailinator.com", false},
		{"disposable subdomain", "x@mail.tempmail.io", false},
		{"disposable substring", "x@my10minutemail.net", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Email(tt.email)
			if res.Valid != tt.valid {
				t.Fatalf("Email(%q) valid = %v, want %v (%s)", tt.email, res.Valid, tt.valid, res.Error)
			}
		})
	}
}

func TestBudgetRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
		valid    bool
	}{
		{"full legal range", "500", "10000000", true},
		{"typical", "1000", "5000", true},
		{"min below floor", "499", "1000", false},
		{"min below floor small", "100", "1000", false},
		{"max above ceiling", "500", "10000001", false},
		{"min above max", "5000", "1000", false},
		{"equal bounds", "750", "750", true},
		{"wide range low min", "600", "2000000", false},
		{"wide range high min", "20000", "2000000", true},
		{"wide range at ceiling", "600", "10000000", true},
		{"missing min", "", "1000", false},
		{"missing max", "1000", "", false},
		{"non-numeric", "abc", "1000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := BudgetRange(tt.min, tt.max)
			if res.Valid != tt.valid {
				t.Fatalf("BudgetRange(%q, %q) valid = %v, want %v (%s)", tt.min, tt.max, res.Valid, tt.valid, res.Error)
			}
		})
	}
}

func TestBudgetRangeFloorMessage(t *testing.T) {
	res := BudgetRange("100", "1000")
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	if res.Error != "Minimum budget must be at least $500" {
		t.Fatalf("unexpected message: %q", res.Error)
	}
}

func TestImportantFactors(t *testing.T) {
	tests := []struct {
		name    string
		factors []string
		valid   bool
	}{
		{"empty", nil, true},
		{"single factor", []string{"Industry experience"}, true},
		{"none alone", []string{domain.HiringFactorNone}, true},
		{"none with another", []string{domain.HiringFactorNone, "Budget fit"}, false},
		{"another with none", []string{"Budget fit", domain.HiringFactorNone}, false},
		{"two regular factors", []string{"Budget fit", "Fast turnaround"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ImportantFactors(tt.factors)
			if res.Valid != tt.valid {
				t.Fatalf("ImportantFactors(%v) valid = %v, want %v", tt.factors, res.Valid, tt.valid)
			}
		})
	}
}

func TestWritingLength(t *testing.T) {
	tests := []struct {
		name  string
		value string
		unit  domain.LengthUnit
		valid bool
	}{
		{"200 words", "200", domain.LengthUnitWords, true},
		{"50 words exactly", "50", domain.LengthUnitWords, true},
		{"49 words", "49", domain.LengthUnitWords, false},
		{"1 page", "1", domain.LengthUnitPages, true},
		{"0 pages", "0", domain.LengthUnitPages, false},
		{"empty", "", domain.LengthUnitWords, false},
		{"non-numeric", "lots", domain.LengthUnitWords, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := WritingLength(tt.value, tt.unit)
			if res.Valid != tt.valid {
				t.Fatalf("WritingLength(%q, %s) valid = %v, want %v (%s)", tt.value, tt.unit, res.Valid, tt.valid, res.Error)
			}
		})
	}
}

func TestNames(t *testing.T) {
	if res := FirstName("Jo"); res.Valid {
		t.Fatal("2-letter first name should fail")
	}
	if res := FirstName("Alexandria"); !res.Valid {
		t.Fatalf("10-letter first name should pass: %s", res.Error)
	}
	if res := FirstName("Alexandriaa"); res.Valid {
		t.Fatal("11-letter first name should fail")
	}
	if res := FirstName("Al3x"); res.Valid {
		t.Fatal("digits in first name should fail")
	}
	if res := LastName("Featherstonehaugh"); !res.Valid {
		t.Fatalf("17-letter last name should pass: %s", res.Error)
	}
	if res := LastName(strings.Repeat("a", 21)); res.Valid {
		t.Fatal("21-letter last name should fail")
	}
}

func TestZipCode(t *testing.T) {
	tests := []struct {
		name    string
		zip     string
		country string
		valid   bool
	}{
		{"us five digits", "94103", "us", true},
		{"us zip+4", "94103-1234", "us", true},
		{"us four digits", "9410", "us", false},
		{"india six digits", "560001", "in", true},
		{"india leading zero", "060001", "in", false},
		{"uk", "SW1A 1AA", "gb", true},
		{"canada", "M5V 2T6", "ca", true},
		{"unknown country fallback", "75008", "fr", true},
		{"unknown country too short", "ab", "fr", false},
		{"empty", "", "us", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ZipCode(tt.zip, tt.country)
			if res.Valid != tt.valid {
				t.Fatalf("ZipCode(%q, %q) valid = %v, want %v", tt.zip, tt.country, res.Valid, tt.valid)
			}
		})
	}
}

func TestCustomTag(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		valid bool
	}{
		{"simple", "Statistics", true},
		{"hyphenated", "Machine-Learning", true},
		{"with ampersand", "M&A", true},
		{"with space", "Machine Learning", false},
		{"too short", "Go", false},
		{"too long", strings.Repeat("a", 31), false},
		{"digits", "Web3", false},
		{"url", "httpconsulting", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CustomTag(tt.tag)
			if res.Valid != tt.valid {
				t.Fatalf("CustomTag(%q) valid = %v, want %v (%s)", tt.tag, res.Valid, tt.valid, res.Error)
			}
		})
	}
}

func TestCityAndCompany(t *testing.T) {
	if res := City("San Francisco"); !res.Valid {
		t.Fatalf("city with space should pass: %s", res.Error)
	}
	if res := City("NY"); res.Valid {
		t.Fatal("2-char city should fail")
	}
	if res := City("Winchester-on-Sea"); res.Valid {
		t.Fatal("city over 15 chars with punctuation should fail")
	}
	if res := CompanyName("Acme Corp"); !res.Valid {
		t.Fatalf("company should pass: %s", res.Error)
	}
	if res := CompanyName("AB"); res.Valid {
		t.Fatal("2-char company should fail")
	}
	if res := CompanyName(strings.Repeat("Ø", 50)); !res.Valid {
		t.Fatalf("50-char accented company should pass: %s", res.Error)
	}
}

func TestVATNumber(t *testing.T) {
	if res := VATNumber("", "gb"); !res.Valid {
		t.Fatal("empty VAT is optional and must pass")
	}
	if res := VATNumber("GB123456789", "gb"); !res.Valid {
		t.Fatalf("valid GB VAT should pass: %s", res.Error)
	}
	if res := VATNumber("DE12345", "de"); res.Valid {
		t.Fatal("short DE VAT should fail")
	}
}

func TestAttachment(t *testing.T) {
	if res := Attachment(""); !res.Valid {
		t.Fatal("no attachment is valid")
	}
	if res := Attachment("brief.pdf"); !res.Valid {
		t.Fatalf("pdf should pass: %s", res.Error)
	}
	if res := Attachment("brief.PDF"); !res.Valid {
		t.Fatal("extension check must be case-insensitive")
	}
	if res := Attachment("brief.docx"); res.Valid {
		t.Fatal("non-pdf should fail")
	}
}
