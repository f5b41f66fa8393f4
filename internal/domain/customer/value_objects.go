package customer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/crm/backend/internal/domain/shared"
)

// Address is the postal address owned by a Customer.
// It has no identity of its own and is always replaced as a whole.
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
}

// NewAddress creates an Address after trimming and validating every field
func NewAddress(street, city, state, postalCode string) (Address, error) {
	addr := Address{
		Street:     strings.TrimSpace(street),
		City:       strings.TrimSpace(city),
		State:      strings.TrimSpace(state),
		PostalCode: strings.TrimSpace(postalCode),
	}
	if err := addr.Validate(); err != nil {
		return Address{}, err
	}
	return addr, nil
}

// Validate checks that every field is present and well formed
func (a Address) Validate() error {
	switch {
	case a.Street == "" || utf8.RuneCountInString(a.Street) > MaxStreetLength:
		return shared.NewDomainError("INVALID_INPUT", "Street must be between 1 and 200 characters.")
	case a.City == "" || utf8.RuneCountInString(a.City) > MaxCityLength:
		return shared.NewDomainError("INVALID_INPUT", "City must be between 1 and 100 characters.")
	case a.State == "" || utf8.RuneCountInString(a.State) > MaxStateLength:
		return shared.NewDomainError("INVALID_INPUT", "State must be between 1 and 100 characters.")
	case !IsValidPostalCode(a.PostalCode):
		return shared.NewDomainError("INVALID_INPUT", "Invalid postal code format.")
	}
	return nil
}

// Equals compares two addresses field by field
func (a Address) Equals(other Address) bool {
	return a == other
}

// String renders the address on one line
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.PostalCode)
}

// PhoneNumber is the contact number owned by a Customer
type PhoneNumber struct {
	CountryCode string
	AreaCode    string
	Number      string
}

// NewPhoneNumber creates a PhoneNumber after validating every part
func NewPhoneNumber(countryCode, areaCode, number string) (PhoneNumber, error) {
	p := PhoneNumber{
		CountryCode: strings.TrimSpace(countryCode),
		AreaCode:    strings.TrimSpace(areaCode),
		Number:      strings.TrimSpace(number),
	}
	if err := p.Validate(); err != nil {
		return PhoneNumber{}, err
	}
	return p, nil
}

// Validate checks each part against its format
func (p PhoneNumber) Validate() error {
	switch {
	case !IsValidCountryCode(p.CountryCode):
		return shared.NewDomainError("INVALID_INPUT", "Invalid country code format.")
	case !IsValidAreaCode(p.AreaCode):
		return shared.NewDomainError("INVALID_INPUT", "Area code must be exactly 3 digits.")
	case !IsValidLocalNumber(p.Number):
		return shared.NewDomainError("INVALID_INPUT", "Phone number must be exactly 7 digits.")
	}
	return nil
}

// Equals compares two phone numbers part by part
func (p PhoneNumber) Equals(other PhoneNumber) bool {
	return p == other
}

// String renders the number as {countryCode}-{areaCode}-{number}
func (p PhoneNumber) String() string {
	return p.CountryCode + "-" + p.AreaCode + "-" + p.Number
}
