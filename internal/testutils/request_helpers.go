package testutils

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carespace/carespace-api/internal/api/middleware"
	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateTestRequestWithClaims builds a request as it looks after the Logging
// and Authenticate middleware ran.
func CreateTestRequestWithClaims(method, target string, body io.Reader, claims *models.Claims, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutContext(method, target, body, pathParams)

	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)

	return req.WithContext(ctx)
}

func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	claims := &models.Claims{UserID: userID, Email: "staff@carespace.in"}

	return CreateTestRequestWithClaims(method, target, body, claims, pathParams)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// JSONBody marshals v for use as a request body.
func JSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return strings.NewReader(string(b))
}

// DecodeError decodes the error envelope written by response.Error.
func DecodeError(t *testing.T, rr *httptest.ResponseRecorder) *response.ErrorResponse {
	t.Helper()

	var body response.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.False(t, body.Success)
	require.NotNil(t, body.Error)

	return body.Error
}
