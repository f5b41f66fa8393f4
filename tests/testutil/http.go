package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crm/backend/internal/interfaces/http/dto"
)

// JSONResponse parses the response body as JSON.
func JSONResponse(t *testing.T, tc *TestContext) map[string]any {
	t.Helper()

	var result map[string]any
	err := json.Unmarshal(tc.ResponseBody(), &result)
	require.NoError(t, err, "Failed to parse JSON response")
	return result
}

// JSONResponseAs parses the response body into the provided struct.
func JSONResponseAs[T any](t *testing.T, tc *TestContext) T {
	t.Helper()

	var result T
	err := json.Unmarshal(tc.ResponseBody(), &result)
	require.NoError(t, err, "Failed to parse JSON response")
	return result
}

// APIResponse decodes the response body as the API envelope.
func APIResponse(t *testing.T, tc *TestContext) dto.Response {
	t.Helper()
	return JSONResponseAs[dto.Response](t, tc)
}

// AssertSuccessResponse asserts the response is a successful API response.
func AssertSuccessResponse(t *testing.T, tc *TestContext) {
	t.Helper()

	resp := APIResponse(t, tc)
	assert.True(t, resp.Success, "Expected success to be true")
	assert.Nil(t, resp.Error, "Expected no error")
}

// AssertErrorResponse asserts the response is an error API response
// carrying expectedCode.
func AssertErrorResponse(t *testing.T, tc *TestContext, expectedCode string) *dto.ErrorInfo {
	t.Helper()

	resp := APIResponse(t, tc)
	assert.False(t, resp.Success, "Expected success to be false")
	require.NotNil(t, resp.Error, "Expected error object in response")
	assert.Equal(t, expectedCode, resp.Error.Code, "Unexpected error code")
	return resp.Error
}

// AssertValidationFields asserts a validation error response lists
// exactly the given fields, in order.
func AssertValidationFields(t *testing.T, tc *TestContext, fields ...string) {
	t.Helper()

	info := AssertErrorResponse(t, tc, dto.ErrCodeValidation)
	got := make([]string, 0, len(info.Details))
	for _, d := range info.Details {
		got = append(got, d.Field)
	}
	assert.Equal(t, fields, got, "Unexpected validation fields")
}

// ToJSONReader converts a value to a JSON io.Reader.
func ToJSONReader(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal to JSON")
	return bytes.NewReader(data)
}
