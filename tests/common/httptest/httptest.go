//go:build unit || e2e

// Package httptest drives a gin router in-process and checks the JSON envelopes it writes.
package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"booth-reservation/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RawBody is sent as-is, for requests whose body must not be valid JSON.
type RawBody string

func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	var payload io.Reader = bytes.NewReader(nil)
	switch b := body.(type) {
	case nil:
	case RawBody:
		payload = bytes.NewReader([]byte(b))
	default:
		encoded, err := json.Marshal(b)
		require.NoError(t, err, "encode request body")
		payload = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()
	err := json.Unmarshal(body.Bytes(), target)
	require.NoError(t, err, "decode response body: %s", body.String())
	return err
}

// AssertSuccessResponse checks the status and, for 2xx answers, decodes the body into target.
func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()
	if !assert.Equal(t, expectedStatus, rec.Code, "body: %s", rec.Body.String()) {
		return
	}
	if target == nil || rec.Code >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), "decode body: %s", rec.Body.String())
}

// AssertErrorResponse checks the status and that the error envelope message contains wantMsg.
// The decoded envelope is returned so callers can inspect its detail.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, wantMsg string) httperr.Response {
	t.Helper()
	assert.Equal(t, expectedStatus, rec.Code, "body: %s", rec.Body.String())

	var resp httperr.Response
	if !assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "decode error envelope: %s", rec.Body.String()) {
		return resp
	}
	if wantMsg != "" {
		assert.Contains(t, resp.Error.Message, wantMsg)
	}
	return resp
}

func AssertHeaders(t *testing.T, rec *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		assert.Equal(t, want, rec.Header().Get(name), "header %s", name)
	}
}
