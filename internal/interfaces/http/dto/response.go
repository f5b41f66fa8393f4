package dto

import "github.com/crm/backend/internal/domain/shared"

// Response represents a standard API response
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string             `json:"code" example:"ERR_NOT_FOUND"`
	Message   string             `json:"message" example:"Resource not found"`
	RequestID string             `json:"request_id,omitempty" example:"5b0f4a8e-2c53-4a4e-9d0e-6e2f7b1c9a10"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail is a single field violation in an error response
type ValidationDetail struct {
	Field   string `json:"field" example:"address.postalCode"`
	Message string `json:"message" example:"Invalid postal code format."`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return NewErrorResponseWithRequestID(code, message, "")
}

// NewErrorResponseWithRequestID creates an error response carrying the request ID.
// Domain codes are normalized to the API format.
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      NormalizeErrorCode(code),
			Message:   message,
			RequestID: requestID,
		},
	}
}

// NewValidationErrorResponse creates a validation error response with field details
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	resp := NewErrorResponseWithRequestID(ErrCodeValidation, message, requestID)
	resp.Error.Details = details
	return resp
}

// ValidationDetailsFrom converts a ValidationError, keeping its order
func ValidationDetailsFrom(verr *shared.ValidationError) []ValidationDetail {
	if verr == nil {
		return nil
	}
	details := make([]ValidationDetail, len(verr.Errors))
	for i, fe := range verr.Errors {
		details[i] = ValidationDetail{Field: fe.Field, Message: fe.Message}
	}
	return details
}

// IDRequest represents a request with an ID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
