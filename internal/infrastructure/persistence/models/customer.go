package models

import (
	"time"

	"github.com/crm/backend/internal/domain/customer"
)

// AddressColumns holds the embedded address_* columns
type AddressColumns struct {
	Street     string `gorm:"type:varchar(200);not null"`
	City       string `gorm:"type:varchar(100);not null"`
	State      string `gorm:"type:varchar(100);not null"`
	PostalCode string `gorm:"type:varchar(10);not null"`
}

// PhoneNumberColumns holds the embedded phone_* columns
type PhoneNumberColumns struct {
	CountryCode string `gorm:"type:varchar(5);not null"`
	AreaCode    string `gorm:"type:varchar(3);not null"`
	Number      string `gorm:"type:varchar(7);not null"`
}

// CustomerModel is the persistence model for the Customer aggregate.
// Both value objects live in the customers row, so a load always yields a
// fully hydrated aggregate.
type CustomerModel struct {
	BaseModel
	FirstName    string             `gorm:"type:varchar(100);not null"`
	MiddleName   string             `gorm:"type:varchar(100);not null;default:''"`
	LastName     string             `gorm:"type:varchar(100);not null"`
	EmailAddress string             `gorm:"type:varchar(254);not null;uniqueIndex:uk_customers_email_address"`
	PhoneNumber  PhoneNumberColumns `gorm:"embedded;embeddedPrefix:phone_"`
	DateOfBirth  time.Time          `gorm:"not null"`
	Address      AddressColumns     `gorm:"embedded;embeddedPrefix:address_"`
	CustomerType string             `gorm:"type:varchar(20);not null"`
	Status       string             `gorm:"type:varchar(50);not null;default:'Active'"`
	Notes        string             `gorm:"type:varchar(500);not null;default:''"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() *customer.Customer {
	return &customer.Customer{
		BaseEntity:   m.BaseModel.ToDomain(),
		FirstName:    m.FirstName,
		MiddleName:   m.MiddleName,
		LastName:     m.LastName,
		EmailAddress: m.EmailAddress,
		PhoneNumber: customer.PhoneNumber{
			CountryCode: m.PhoneNumber.CountryCode,
			AreaCode:    m.PhoneNumber.AreaCode,
			Number:      m.PhoneNumber.Number,
		},
		DateOfBirth: m.DateOfBirth.UTC(),
		Address: customer.Address{
			Street:     m.Address.Street,
			City:       m.Address.City,
			State:      m.Address.State,
			PostalCode: m.Address.PostalCode,
		},
		CustomerType: m.CustomerType,
		Status:       customer.Status(m.Status),
		Notes:        m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Customer.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.FirstName = c.FirstName
	m.MiddleName = c.MiddleName
	m.LastName = c.LastName
	m.EmailAddress = c.EmailAddress
	m.PhoneNumber = PhoneNumberColumns{
		CountryCode: c.PhoneNumber.CountryCode,
		AreaCode:    c.PhoneNumber.AreaCode,
		Number:      c.PhoneNumber.Number,
	}
	m.DateOfBirth = c.DateOfBirth
	m.Address = AddressColumns{
		Street:     c.Address.Street,
		City:       c.Address.City,
		State:      c.Address.State,
		PostalCode: c.Address.PostalCode,
	}
	m.CustomerType = c.CustomerType
	m.Status = string(c.Status)
	m.Notes = c.Notes
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer.
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
