package customer

import (
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/google/uuid"
)

// =============================================================================
// Value object inputs
// =============================================================================

// AddressInput is the wire shape of an address
type AddressInput struct {
	Street     string `json:"street" validate:"required,notblank,max=200" example:"1 Main St"`
	City       string `json:"city" validate:"required,notblank,max=100" example:"Springfield"`
	State      string `json:"state" validate:"required,notblank,max=100" example:"IL"`
	PostalCode string `json:"postalCode" validate:"required,postal_code" example:"62701"`
}

// ToDomain converts the input to a customer.Address
func (a AddressInput) ToDomain() customer.Address {
	return customer.Address{
		Street:     strings.TrimSpace(a.Street),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		PostalCode: strings.TrimSpace(a.PostalCode),
	}
}

// PhoneNumberInput is the wire shape of a phone number
type PhoneNumberInput struct {
	CountryCode string `json:"countryCode" validate:"required,max=5,phone_country_code" example:"+1"`
	AreaCode    string `json:"areaCode" validate:"required,len=3,area_code" example:"555"`
	Number      string `json:"number" validate:"required,len=7,local_number" example:"1234567"`
}

// ToDomain converts the input to a customer.PhoneNumber
func (p PhoneNumberInput) ToDomain() customer.PhoneNumber {
	return customer.PhoneNumber{
		CountryCode: strings.TrimSpace(p.CountryCode),
		AreaCode:    strings.TrimSpace(p.AreaCode),
		Number:      strings.TrimSpace(p.Number),
	}
}

// =============================================================================
// Customer inputs
// =============================================================================

// CreateInput represents a request to create a new customer.
// Status defaults to Active when omitted.
type CreateInput struct {
	FirstName    string            `json:"firstName" validate:"required,notblank,max=100" example:"Jane"`
	MiddleName   string            `json:"middleName" validate:"max=100,letters_spaces" example:"Marie"`
	LastName     string            `json:"lastName" validate:"required,notblank,max=100,letters_spaces" example:"Doe"`
	EmailAddress string            `json:"emailAddress" validate:"required,email_address" example:"jane.doe@example.com"`
	PhoneNumber  *PhoneNumberInput `json:"phoneNumber" validate:"required"`
	DateOfBirth  time.Time         `json:"dateOfBirth" validate:"required,dob_range" example:"1990-05-17T00:00:00Z"`
	Address      *AddressInput     `json:"address" validate:"required"`
	CustomerType string            `json:"customerType" validate:"required,notblank,max=20,letters_spaces" example:"Retail"`
	Status       string            `json:"status" validate:"required,max=50,customer_status" example:"Active"`
	Notes        string            `json:"notes" validate:"max=500" example:"Prefers email contact"`
}

// ToProfile converts the input to the aggregate's mutable fields.
// Only call it after validation has passed.
func (in CreateInput) ToProfile() customer.Profile {
	return customer.Profile{
		FirstName:    in.FirstName,
		MiddleName:   in.MiddleName,
		LastName:     in.LastName,
		EmailAddress: in.EmailAddress,
		PhoneNumber:  in.PhoneNumber.ToDomain(),
		DateOfBirth:  in.DateOfBirth,
		Address:      in.Address.ToDomain(),
		CustomerType: in.CustomerType,
		Status:       customer.Status(in.Status),
		Notes:        in.Notes,
	}
}

// UpdateInput represents a full replacement of a customer's fields
type UpdateInput struct {
	FirstName    string            `json:"firstName" validate:"required,notblank,max=100" example:"Jane"`
	MiddleName   string            `json:"middleName" validate:"max=100,letters_spaces" example:"Marie"`
	LastName     string            `json:"lastName" validate:"required,notblank,max=100,letters_spaces" example:"Doe"`
	EmailAddress string            `json:"emailAddress" validate:"required,email_address" example:"jane.doe@example.com"`
	PhoneNumber  *PhoneNumberInput `json:"phoneNumber" validate:"required"`
	DateOfBirth  time.Time         `json:"dateOfBirth" validate:"required,dob_range" example:"1990-05-17T00:00:00Z"`
	Address      *AddressInput     `json:"address" validate:"required"`
	CustomerType string            `json:"customerType" validate:"required,notblank,max=20,letters_spaces" example:"Retail"`
	Status       string            `json:"status" validate:"required,max=50,customer_status" example:"Inactive"`
	Notes        string            `json:"notes" validate:"max=500"`
}

// ToProfile converts the input to the aggregate's mutable fields.
// Only call it after validation has passed.
func (in UpdateInput) ToProfile() customer.Profile {
	return customer.Profile{
		FirstName:    in.FirstName,
		MiddleName:   in.MiddleName,
		LastName:     in.LastName,
		EmailAddress: in.EmailAddress,
		PhoneNumber:  in.PhoneNumber.ToDomain(),
		DateOfBirth:  in.DateOfBirth,
		Address:      in.Address.ToDomain(),
		CustomerType: in.CustomerType,
		Status:       customer.Status(in.Status),
		Notes:        in.Notes,
	}
}

// PatchInput represents a partial update. Absent (nil) fields are left untouched;
// present fields obey the same rules as a full update.
type PatchInput struct {
	FirstName    *string           `json:"firstName,omitempty" validate:"omitempty,notblank,max=100"`
	MiddleName   *string           `json:"middleName,omitempty" validate:"omitempty,max=100,letters_spaces"`
	LastName     *string           `json:"lastName,omitempty" validate:"omitempty,notblank,max=100,letters_spaces"`
	EmailAddress *string           `json:"emailAddress,omitempty" validate:"omitempty,email_address"`
	PhoneNumber  *PhoneNumberInput `json:"phoneNumber,omitempty"`
	DateOfBirth  *time.Time        `json:"dateOfBirth,omitempty" validate:"omitempty,dob_range"`
	Address      *AddressInput     `json:"address,omitempty"`
	CustomerType *string           `json:"customerType,omitempty" validate:"omitempty,notblank,max=20,letters_spaces"`
	Status       *string           `json:"status,omitempty" validate:"omitempty,min=1,max=50,customer_status"`
	Notes        *string           `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToChanges converts the input to a customer.Changes
func (in PatchInput) ToChanges() customer.Changes {
	ch := customer.Changes{
		FirstName:    in.FirstName,
		MiddleName:   in.MiddleName,
		LastName:     in.LastName,
		EmailAddress: in.EmailAddress,
		DateOfBirth:  in.DateOfBirth,
		CustomerType: in.CustomerType,
		Notes:        in.Notes,
	}
	if in.PhoneNumber != nil {
		phone := in.PhoneNumber.ToDomain()
		ch.PhoneNumber = &phone
	}
	if in.Address != nil {
		addr := in.Address.ToDomain()
		ch.Address = &addr
	}
	if in.Status != nil {
		status := customer.Status(*in.Status)
		ch.Status = &status
	}
	return ch
}

// IsEmpty reports whether no field is present
func (in PatchInput) IsEmpty() bool {
	return in.FirstName == nil && in.MiddleName == nil && in.LastName == nil &&
		in.EmailAddress == nil && in.PhoneNumber == nil && in.DateOfBirth == nil &&
		in.Address == nil && in.CustomerType == nil && in.Status == nil && in.Notes == nil
}

// UpdateAddressInput replaces a customer's address
type UpdateAddressInput struct {
	Address *AddressInput `json:"address" validate:"required"`
}

// UpdatePhoneNumberInput replaces a customer's phone number
type UpdatePhoneNumberInput struct {
	PhoneNumber *PhoneNumberInput `json:"phoneNumber" validate:"required"`
}

// UpdateStatusInput sets a customer's status
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,max=50,customer_status" example:"Suspended"`
}

// =============================================================================
// Responses
// =============================================================================

// AddressResponse is the projection of an address
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// PhoneNumberResponse is the projection of a phone number
type PhoneNumberResponse struct {
	CountryCode string `json:"countryCode"`
	AreaCode    string `json:"areaCode"`
	Number      string `json:"number"`
}

// Response represents a customer in API responses
type Response struct {
	ID           uuid.UUID           `json:"id"`
	FirstName    string              `json:"firstName"`
	MiddleName   string              `json:"middleName"`
	LastName     string              `json:"lastName"`
	EmailAddress string              `json:"emailAddress"`
	PhoneNumber  PhoneNumberResponse `json:"phoneNumber"`
	DateOfBirth  time.Time           `json:"dateOfBirth"`
	Address      AddressResponse     `json:"address"`
	CustomerType string              `json:"customerType"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    *time.Time          `json:"updatedAt"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes"`
}

// ToResponse converts a domain Customer to Response
func ToResponse(c *customer.Customer) Response {
	return Response{
		ID:           c.ID,
		FirstName:    c.FirstName,
		MiddleName:   c.MiddleName,
		LastName:     c.LastName,
		EmailAddress: c.EmailAddress,
		PhoneNumber: PhoneNumberResponse{
			CountryCode: c.PhoneNumber.CountryCode,
			AreaCode:    c.PhoneNumber.AreaCode,
			Number:      c.PhoneNumber.Number,
		},
		DateOfBirth: c.DateOfBirth,
		Address: AddressResponse{
			Street:     c.Address.Street,
			City:       c.Address.City,
			State:      c.Address.State,
			PostalCode: c.Address.PostalCode,
		},
		CustomerType: c.CustomerType,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Status:       string(c.Status),
		Notes:        c.Notes,
	}
}

// ToResponses converts a slice of domain Customers
func ToResponses(customers []customer.Customer) []Response {
	responses := make([]Response, len(customers))
	for i := range customers {
		responses[i] = ToResponse(&customers[i])
	}
	return responses
}
