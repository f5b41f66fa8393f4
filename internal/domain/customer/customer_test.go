package customer

import (
	"strings"
	"testing"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() Profile {
	return Profile{
		FirstName:    "Jane",
		MiddleName:   "Marie",
		LastName:     "Doe",
		EmailAddress: "jane.doe@example.com",
		PhoneNumber:  PhoneNumber{CountryCode: "+1", AreaCode: "555", Number: "1234567"},
		DateOfBirth:  time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		Address:      Address{Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701"},
		CustomerType: "Retail",
		Status:       StatusActive,
		Notes:        "prefers email",
	}
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestNew(t *testing.T) {
	t.Run("creates customer successfully", func(t *testing.T) {
		c, err := New(validProfile())

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.Equal(t, "Jane", c.FirstName)
		assert.Equal(t, "jane.doe@example.com", c.EmailAddress)
		assert.Equal(t, StatusActive, c.Status)
		assert.Equal(t, time.UTC, c.CreatedAt.Location())
		assert.Nil(t, c.UpdatedAt)
	})

	t.Run("defaults status to Active", func(t *testing.T) {
		p := validProfile()
		p.Status = ""

		c, err := New(p)

		require.NoError(t, err)
		assert.Equal(t, StatusActive, c.Status)
	})

	t.Run("trims name fields", func(t *testing.T) {
		p := validProfile()
		p.FirstName = "  Jane "
		p.EmailAddress = " jane.doe@example.com "

		c, err := New(p)

		require.NoError(t, err)
		assert.Equal(t, "Jane", c.FirstName)
		assert.Equal(t, "jane.doe@example.com", c.EmailAddress)
	})

	t.Run("allows empty middle name and notes", func(t *testing.T) {
		p := validProfile()
		p.MiddleName = ""
		p.Notes = ""

		_, err := New(p)

		require.NoError(t, err)
	})

	tests := []struct {
		name   string
		mutate func(p *Profile)
	}{
		{"empty first name", func(p *Profile) { p.FirstName = "" }},
		{"long first name", func(p *Profile) { p.FirstName = strings.Repeat("a", 101) }},
		{"digits in middle name", func(p *Profile) { p.MiddleName = "M4rie" }},
		{"digits in last name", func(p *Profile) { p.LastName = "D0e" }},
		{"invalid email", func(p *Profile) { p.EmailAddress = "invalid" }},
		{"date of birth too early", func(p *Profile) { p.DateOfBirth = time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC) }},
		{"date of birth too late", func(p *Profile) { p.DateOfBirth = time.Date(2101, 1, 1, 0, 0, 0, 0, time.UTC) }},
		{"long customer type", func(p *Profile) { p.CustomerType = strings.Repeat("a", 21) }},
		{"unknown status", func(p *Profile) { p.Status = "Archived" }},
		{"long notes", func(p *Profile) { p.Notes = strings.Repeat("n", 501) }},
		{"bad postal code", func(p *Profile) { p.Address.PostalCode = "1234" }},
		{"bad area code", func(p *Profile) { p.PhoneNumber.AreaCode = "55" }},
	}
	for _, tt := range tests {
		t.Run("fails with "+tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			c, err := New(p)

			assert.Nil(t, c)
			requireDomainCode(t, err, "INVALID_INPUT")
		})
	}
}

func TestCustomerReplace(t *testing.T) {
	c, err := New(validProfile())
	require.NoError(t, err)

	t.Run("overwrites every field and stamps updatedAt", func(t *testing.T) {
		p := validProfile()
		p.FirstName = "Janet"
		p.MiddleName = ""
		p.EmailAddress = "janet@example.com"
		p.Status = StatusSuspended
		p.Notes = ""

		require.NoError(t, c.Replace(p))

		assert.Equal(t, "Janet", c.FirstName)
		assert.Empty(t, c.MiddleName)
		assert.Equal(t, "janet@example.com", c.EmailAddress)
		assert.Equal(t, StatusSuspended, c.Status)
		require.NotNil(t, c.UpdatedAt)
		assert.True(t, c.UpdatedAt.After(c.CreatedAt))
	})

	t.Run("leaves customer untouched on failure", func(t *testing.T) {
		before := *c
		p := validProfile()
		p.EmailAddress = "bad"

		err := c.Replace(p)

		requireDomainCode(t, err, "INVALID_INPUT")
		assert.Equal(t, before, *c)
	})
}

func TestCustomerApply(t *testing.T) {
	t.Run("status only leaves other fields identical", func(t *testing.T) {
		c, err := New(validProfile())
		require.NoError(t, err)
		before := c.Profile()
		status := StatusInactive

		require.NoError(t, c.Apply(Changes{Status: &status}))

		after := c.Profile()
		assert.Equal(t, StatusInactive, after.Status)
		after.Status = before.Status
		assert.Equal(t, before, after)
		assert.NotNil(t, c.UpdatedAt)
	})

	t.Run("merges present value objects", func(t *testing.T) {
		c, err := New(validProfile())
		require.NoError(t, err)
		addr := Address{Street: "2 Elm St", City: "Shelbyville", State: "IL", PostalCode: "62565-1234"}
		notes := ""

		require.NoError(t, c.Apply(Changes{Address: &addr, Notes: &notes}))

		assert.Equal(t, addr, c.Address)
		assert.Empty(t, c.Notes)
		assert.Equal(t, "Jane", c.FirstName)
	})

	t.Run("rejects invalid merged value", func(t *testing.T) {
		c, err := New(validProfile())
		require.NoError(t, err)
		empty := ""

		err = c.Apply(Changes{LastName: &empty})

		requireDomainCode(t, err, "INVALID_INPUT")
		assert.Equal(t, "Doe", c.LastName)
		assert.Nil(t, c.UpdatedAt)
	})
}

func TestCustomerChangeAddress(t *testing.T) {
	c, err := New(validProfile())
	require.NoError(t, err)

	t.Run("replaces the address", func(t *testing.T) {
		addr := Address{Street: "9 Oak Ave", City: "Capital City", State: "IL", PostalCode: "62702"}

		require.NoError(t, c.ChangeAddress(addr))

		assert.Equal(t, addr, c.Address)
		assert.NotNil(t, c.UpdatedAt)
	})

	t.Run("fails with invalid address", func(t *testing.T) {
		err := c.ChangeAddress(Address{Street: "", City: "X", State: "Y", PostalCode: "62702"})

		requireDomainCode(t, err, "INVALID_INPUT")
		assert.Equal(t, "9 Oak Ave", c.Address.Street)
	})
}

func TestCustomerChangePhoneNumber(t *testing.T) {
	c, err := New(validProfile())
	require.NoError(t, err)

	phone := PhoneNumber{CountryCode: "+44", AreaCode: "207", Number: "7654321"}
	require.NoError(t, c.ChangePhoneNumber(phone))
	assert.Equal(t, "+44-207-7654321", c.PhoneNumber.String())
	assert.NotNil(t, c.UpdatedAt)

	err = c.ChangePhoneNumber(PhoneNumber{CountryCode: "44", AreaCode: "207", Number: "7654321"})
	requireDomainCode(t, err, "INVALID_INPUT")
	assert.Equal(t, phone, c.PhoneNumber)
}

func TestCustomerChangeStatus(t *testing.T) {
	c, err := New(validProfile())
	require.NoError(t, err)

	require.NoError(t, c.ChangeStatus(StatusSuspended))
	assert.Equal(t, StatusSuspended, c.Status)

	err = c.ChangeStatus(Status("Archived"))
	requireDomainCode(t, err, "INVALID_INPUT")
	assert.Equal(t, StatusSuspended, c.Status)
}

func TestCustomerChangeAddressTrims(t *testing.T) {
	c, err := New(validProfile())
	require.NoError(t, err)

	require.NoError(t, c.ChangeAddress(Address{Street: " 9 Elm St ", City: "Shelbyville ", State: " IL", PostalCode: "62565 "}))
	assert.Equal(t, Address{Street: "9 Elm St", City: "Shelbyville", State: "IL", PostalCode: "62565"}, c.Address)

	require.NoError(t, c.ChangePhoneNumber(PhoneNumber{CountryCode: " +49", AreaCode: "030 ", Number: "9876543"}))
	assert.Equal(t, "+49-030-9876543", c.PhoneNumber.String())

	err = c.ChangeAddress(Address{Street: "   ", City: "Shelbyville", State: "IL", PostalCode: "62565"})
	requireDomainCode(t, err, "INVALID_INPUT")
	assert.Equal(t, "9 Elm St", c.Address.Street)
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses() {
		parsed, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("active")
	assert.Error(t, err)
	_, err = ParseStatus("")
	assert.Error(t, err)
}
