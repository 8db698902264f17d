//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DecodedEnvelope mirrors the API response envelope with the result left
// raw so callers can unmarshal it into the type they expect.
type DecodedEnvelope struct {
	Success       bool            `json:"success"`
	StatusCode    int             `json:"statusCode"`
	Result        json.RawMessage `json:"result"`
	ErrorMessages []string        `json:"errorMessages"`
}

func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) DecodedEnvelope {
	t.Helper()

	var env DecodedEnvelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, fmt.Sprintf("Failed to decode envelope JSON: %s", w.Body.String()))
	return env
}

// AssertSuccessEnvelope checks HTTP status and envelope flags, then
// unmarshals the result into targetResult when one is given. A 204
// envelope travels on HTTP 200 because 204 forbids a body.
func AssertSuccessEnvelope(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetResult any) {
	t.Helper()

	wantHTTP := expectedStatus
	if expectedStatus == http.StatusNoContent {
		wantHTTP = http.StatusOK
	}

	if !assert.Equal(t, wantHTTP, w.Code,
		fmt.Sprintf("Expected HTTP status %d, got %d. Response: %s", wantHTTP, w.Code, w.Body.String())) {
		return
	}

	env := DecodeEnvelope(t, w)
	assert.True(t, env.Success, "Envelope success flag should be true")
	assert.Equal(t, expectedStatus, env.StatusCode, "Envelope statusCode mismatch")
	assert.Empty(t, env.ErrorMessages, "Success envelope should carry no error messages")

	if targetResult != nil {
		require.NotEmpty(t, env.Result, "Success envelope is missing a result")
		err := json.Unmarshal(env.Result, targetResult)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode envelope result: %s", string(env.Result)))
	}
}

// AssertFailureEnvelope checks HTTP status, envelope flags and that every
// expected message is present.
func AssertFailureEnvelope(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsgs ...string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected HTTP status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	env := DecodeEnvelope(t, w)
	assert.False(t, env.Success, "Envelope success flag should be false")
	assert.Equal(t, expectedStatus, env.StatusCode, "Envelope statusCode mismatch")
	assert.Empty(t, env.Result, "Failure envelope should carry no result")

	for _, msg := range expectedMsgs {
		assert.Contains(t, env.ErrorMessages, msg, "Expected error message missing from envelope")
	}
}
