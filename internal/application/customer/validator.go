package customer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validator checks input shapes and reports every rule violation at once
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the customer rule tags registered
func NewValidator() *Validator {
	v := validator.New()

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"letters_spaces":     stringRule(customer.IsLettersAndSpaces),
		"email_address":      stringRule(customer.IsValidEmail),
		"postal_code":        stringRule(customer.IsValidPostalCode),
		"phone_country_code": stringRule(customer.IsValidCountryCode),
		"area_code":          stringRule(customer.IsValidAreaCode),
		"local_number":       stringRule(customer.IsValidLocalNumber),
		"customer_status":    stringRule(func(s string) bool { return customer.Status(s).IsValid() }),
		"dob_range":          dateOfBirthRule,
		"notblank":           validators.NotBlank,
	}
	for tag, fn := range rules {
		// Registration only fails on an empty tag or nil func
		_ = v.RegisterValidation(tag, fn)
	}

	return &Validator{validate: v}
}

// Validate checks input against its struct tags.
// It returns a *shared.ValidationError listing every failure in field order, or nil.
func (v *Validator) Validate(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate input: %w", err)
	}

	result := &shared.ValidationError{}
	for _, fe := range fieldErrs {
		result.Add(fieldPath(fe.Namespace()), validationMessage(fe))
	}
	return result
}

func stringRule(pred func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pred(fl.Field().String())
	}
}

func dateOfBirthRule(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return customer.IsDateOfBirthInRange(t)
}

// fieldPath drops the root struct name from a validator namespace,
// turning "CreateInput.address.postalCode" into "address.postalCode".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

var messages = map[string]string{
	"firstName.required": "First name is required.",
	"firstName.notblank": "First name is required.",
	"firstName.max":      "First name must be between 1 and 100 characters.",

	"middleName.max":            "Middle name must be up to 100 characters long.",
	"middleName.letters_spaces": "Middle name can only contain letters and spaces.",

	"lastName.required":       "Last name is required.",
	"lastName.notblank":       "Last name is required.",
	"lastName.max":            "Last name must be between 1 and 100 characters.",
	"lastName.letters_spaces": "Last name can only contain letters and spaces.",

	"emailAddress.required":      "Email address is required.",
	"emailAddress.email_address": "Invalid email format.",

	"phoneNumber.required": "Phone number is required.",
	"address.required":     "Address is required.",

	"dateOfBirth.required":  "Date of birth is required.",
	"dateOfBirth.dob_range": "Date of birth must be between 1900-01-01 and 2100-12-31.",

	"customerType.required":       "Customer type is required.",
	"customerType.notblank":       "Customer type is required.",
	"customerType.max":            "Customer type must be between 1 and 20 characters.",
	"customerType.letters_spaces": "Customer type can only contain letters and spaces.",

	"status.required":        "Status is required.",
	"status.min":             "Status must be between 1 and 50 characters.",
	"status.max":             "Status must be between 1 and 50 characters.",
	"status.customer_status": "Status must be Active, Inactive, or Suspended.",

	"notes.max": "Notes must be up to 500 characters long.",

	"street.required": "Street is required.",
	"street.notblank": "Street is required.",
	"street.max":      "Street must be between 1 and 200 characters.",
	"city.required":   "City is required.",
	"city.notblank":   "City is required.",
	"city.max":        "City must be between 1 and 100 characters.",
	"state.required":  "State is required.",
	"state.notblank":  "State is required.",
	"state.max":       "State must be between 1 and 100 characters.",

	"postalCode.required":    "Postal code is required.",
	"postalCode.postal_code": "Invalid postal code format.",

	"countryCode.required":           "Country code is required.",
	"countryCode.max":                "Country code must be between 1 and 5 characters.",
	"countryCode.phone_country_code": "Invalid country code format.",

	"areaCode.required":  "Area code is required.",
	"areaCode.len":       "Area code must be exactly 3 digits.",
	"areaCode.area_code": "Invalid area code format.",

	"number.required":     "Phone number is required.",
	"number.len":          "Phone number must be exactly 7 digits.",
	"number.local_number": "Invalid phone number format.",
}

func validationMessage(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid.", fe.Field())
}
