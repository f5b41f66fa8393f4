package customer

import (
	"regexp"
	"time"
	"unicode/utf8"
)

// Field length limits
const (
	MaxNameLength         = 100
	MaxEmailLength        = 254
	MaxCustomerTypeLength = 20
	MaxStatusLength       = 50
	MaxNotesLength        = 500
	MaxStreetLength       = 200
	MaxCityLength         = 100
	MaxStateLength        = 100
	MaxCountryCodeLength  = 5
)

// Inclusive bounds for a date of birth
var (
	MinDateOfBirth = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	MaxDateOfBirth = time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC)
)

var (
	lettersAndSpacesPattern = regexp.MustCompile(`^[a-zA-Z\s]*$`)
	emailPattern            = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	postalCodePattern       = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	countryCodePattern      = regexp.MustCompile(`^\+\d{1,3}$`)
	areaCodePattern         = regexp.MustCompile(`^\d{3}$`)
	localNumberPattern      = regexp.MustCompile(`^\d{7}$`)
)

// IsLettersAndSpaces reports whether s holds only ASCII letters and whitespace.
// The empty string passes.
func IsLettersAndSpaces(s string) bool {
	return lettersAndSpacesPattern.MatchString(s)
}

// IsValidEmail reports whether s is a syntactically valid email address
func IsValidEmail(s string) bool {
	return utf8.RuneCountInString(s) <= MaxEmailLength && emailPattern.MatchString(s)
}

// IsValidPostalCode accepts five digits with an optional four digit suffix (12345 or 12345-6789)
func IsValidPostalCode(s string) bool {
	return postalCodePattern.MatchString(s)
}

// IsValidCountryCode accepts a plus sign followed by one to three digits
func IsValidCountryCode(s string) bool {
	return countryCodePattern.MatchString(s)
}

// IsValidAreaCode accepts exactly three digits
func IsValidAreaCode(s string) bool {
	return areaCodePattern.MatchString(s)
}

// IsValidLocalNumber accepts exactly seven digits
func IsValidLocalNumber(s string) bool {
	return localNumberPattern.MatchString(s)
}

// IsDateOfBirthInRange reports whether t lies within [MinDateOfBirth, MaxDateOfBirth]
func IsDateOfBirthInRange(t time.Time) bool {
	return !t.Before(MinDateOfBirth) && !t.After(MaxDateOfBirth)
}
