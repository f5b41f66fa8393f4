// Package models holds the GORM rows behind the customer repository.
//
// The domain package never sees these types. CustomerModel flattens the
// address and phone number value objects into address_* and phone_* columns
// and converts to and from *customer.Customer with FromDomain / ToDomain.
// Timestamps are stored in UTC at microsecond precision so a round trip
// through PostgreSQL returns the values the aggregate held.
package models
