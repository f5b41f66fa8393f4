package handler

import "github.com/crm/backend/internal/interfaces/http/dto"

// APIResponse documents the success envelope in the OpenAPI schema.
// Handlers write dto.Response; this type only gives swag a typed Data field.
// @Description Success envelope; data holds the customer, customer list or system payload
type APIResponse[T any] struct {
	Success bool           `json:"success" example:"true"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// ErrorResponse documents the failure envelope in the OpenAPI schema
// @Description Failure envelope; validation failures list every rejected field in error.details
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}
