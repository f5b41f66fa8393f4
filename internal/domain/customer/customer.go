package customer

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/crm/backend/internal/domain/shared"
)

// Status represents the lifecycle status of a customer
type Status string

const (
	StatusActive    Status = "Active"
	StatusInactive  Status = "Inactive"
	StatusSuspended Status = "Suspended"
)

// Statuses lists every allowed status
func Statuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusSuspended}
}

// IsValid reports whether s is one of the allowed statuses
func (s Status) IsValid() bool {
	return slices.Contains(Statuses(), s)
}

// String returns the status name
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string to a Status. Matching is exact.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errInvalidStatus
	}
	return status, nil
}

var errInvalidStatus = shared.NewDomainError("INVALID_INPUT", "Status must be Active, Inactive, or Suspended.")

// Customer is the aggregate root for customer records.
// Address and PhoneNumber are owned value objects and are always fully populated.
type Customer struct {
	shared.BaseEntity
	FirstName    string
	MiddleName   string
	LastName     string
	EmailAddress string
	PhoneNumber  PhoneNumber
	DateOfBirth  time.Time
	Address      Address
	CustomerType string
	Status       Status
	Notes        string
}

// Profile holds every mutable field of a customer
type Profile struct {
	FirstName    string
	MiddleName   string
	LastName     string
	EmailAddress string
	PhoneNumber  PhoneNumber
	DateOfBirth  time.Time
	Address      Address
	CustomerType string
	Status       Status
	Notes        string
}

// Changes describes a partial update. Nil fields are left untouched.
type Changes struct {
	FirstName    *string
	MiddleName   *string
	LastName     *string
	EmailAddress *string
	PhoneNumber  *PhoneNumber
	DateOfBirth  *time.Time
	Address      *Address
	CustomerType *string
	Status       *Status
	Notes        *string
}

// New creates a customer with a fresh identity and creation time.
// An empty status defaults to Active.
func New(p Profile) (*Customer, error) {
	p = p.normalize()
	if p.Status == "" {
		p.Status = StatusActive
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	c := &Customer{BaseEntity: shared.NewBaseEntity()}
	c.assign(p)
	return c, nil
}

// Profile returns the current mutable fields
func (c *Customer) Profile() Profile {
	return Profile{
		FirstName:    c.FirstName,
		MiddleName:   c.MiddleName,
		LastName:     c.LastName,
		EmailAddress: c.EmailAddress,
		PhoneNumber:  c.PhoneNumber,
		DateOfBirth:  c.DateOfBirth,
		Address:      c.Address,
		CustomerType: c.CustomerType,
		Status:       c.Status,
		Notes:        c.Notes,
	}
}

// Replace overwrites every mutable field
func (c *Customer) Replace(p Profile) error {
	p = p.normalize()
	if err := p.validate(); err != nil {
		return err
	}
	c.assign(p)
	c.Touch()
	return nil
}

// Apply merges the present fields of ch into the customer
func (c *Customer) Apply(ch Changes) error {
	p := c.Profile()
	if ch.FirstName != nil {
		p.FirstName = *ch.FirstName
	}
	if ch.MiddleName != nil {
		p.MiddleName = *ch.MiddleName
	}
	if ch.LastName != nil {
		p.LastName = *ch.LastName
	}
	if ch.EmailAddress != nil {
		p.EmailAddress = *ch.EmailAddress
	}
	if ch.PhoneNumber != nil {
		p.PhoneNumber = *ch.PhoneNumber
	}
	if ch.DateOfBirth != nil {
		p.DateOfBirth = *ch.DateOfBirth
	}
	if ch.Address != nil {
		p.Address = *ch.Address
	}
	if ch.CustomerType != nil {
		p.CustomerType = *ch.CustomerType
	}
	if ch.Status != nil {
		p.Status = *ch.Status
	}
	if ch.Notes != nil {
		p.Notes = *ch.Notes
	}
	return c.Replace(p)
}

// ChangeAddress replaces the whole address
func (c *Customer) ChangeAddress(a Address) error {
	addr, err := NewAddress(a.Street, a.City, a.State, a.PostalCode)
	if err != nil {
		return err
	}
	c.Address = addr
	c.Touch()
	return nil
}

// ChangePhoneNumber replaces the whole phone number
func (c *Customer) ChangePhoneNumber(p PhoneNumber) error {
	phone, err := NewPhoneNumber(p.CountryCode, p.AreaCode, p.Number)
	if err != nil {
		return err
	}
	c.PhoneNumber = phone
	c.Touch()
	return nil
}

// ChangeStatus sets the customer status
func (c *Customer) ChangeStatus(s Status) error {
	if !s.IsValid() {
		return errInvalidStatus
	}
	c.Status = s
	c.Touch()
	return nil
}

func (c *Customer) assign(p Profile) {
	c.FirstName = p.FirstName
	c.MiddleName = p.MiddleName
	c.LastName = p.LastName
	c.EmailAddress = p.EmailAddress
	c.PhoneNumber = p.PhoneNumber
	c.DateOfBirth = p.DateOfBirth.UTC()
	c.Address = p.Address
	c.CustomerType = p.CustomerType
	c.Status = p.Status
	c.Notes = p.Notes
}

func (p Profile) normalize() Profile {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.MiddleName = strings.TrimSpace(p.MiddleName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.EmailAddress = strings.TrimSpace(p.EmailAddress)
	p.CustomerType = strings.TrimSpace(p.CustomerType)
	return p
}

// validate guards the aggregate invariants. Callers are expected to have
// reported field-level problems already; this returns the first violation.
func (p Profile) validate() error {
	switch {
	case p.FirstName == "" || utf8.RuneCountInString(p.FirstName) > MaxNameLength:
		return shared.NewDomainError("INVALID_INPUT", "First name must be between 1 and 100 characters.")
	case utf8.RuneCountInString(p.MiddleName) > MaxNameLength || !IsLettersAndSpaces(p.MiddleName):
		return shared.NewDomainError("INVALID_INPUT", "Middle name can only contain letters and spaces.")
	case p.LastName == "" || utf8.RuneCountInString(p.LastName) > MaxNameLength || !IsLettersAndSpaces(p.LastName):
		return shared.NewDomainError("INVALID_INPUT", "Last name can only contain letters and spaces.")
	case !IsValidEmail(p.EmailAddress):
		return shared.NewDomainError("INVALID_INPUT", "Invalid email format.")
	case !IsDateOfBirthInRange(p.DateOfBirth):
		return shared.NewDomainError("INVALID_INPUT", "Date of birth must be between 1900-01-01 and 2100-12-31.")
	case p.CustomerType == "" || utf8.RuneCountInString(p.CustomerType) > MaxCustomerTypeLength || !IsLettersAndSpaces(p.CustomerType):
		return shared.NewDomainError("INVALID_INPUT", "Customer type can only contain letters and spaces.")
	case !p.Status.IsValid():
		return errInvalidStatus
	case utf8.RuneCountInString(p.Notes) > MaxNotesLength:
		return shared.NewDomainError("INVALID_INPUT", "Notes must be up to 500 characters long.")
	}
	if err := p.Address.Validate(); err != nil {
		return err
	}
	return p.PhoneNumber.Validate()
}
