package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carespace/carespace-api/internal/api/handlers"
	"github.com/carespace/carespace-api/internal/api/middleware"
	"github.com/carespace/carespace-api/internal/config"
	appErrors "github.com/carespace/carespace-api/internal/errors"
	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/services/mocks"
	"github.com/carespace/carespace-api/internal/testutils"
	"github.com/carespace/carespace-api/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSecurity = config.Security{
	JWTKey:       "test-secret-key-123456789012345",
	SessionTTL:   24 * time.Hour,
	SecureCookie: true,
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rr.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}

	require.FailNow(t, "session cookie not set")

	return nil
}

func TestGoogleLogin(t *testing.T) {
	t.Run("Success - Session Cookie Set", func(t *testing.T) {
		// Arrange
		mockAuthService := mocks.NewAuthService(t)
		authHandler := handlers.NewAuthHandler(mockAuthService, testSecurity)

		reqBody := models.GoogleLoginRequest{IDToken: "google.id.token", Email: "owner@carespace.in", GoogleID: "g-123", FullName: strPtr("Owner")}
		user := &models.User{ID: uuid.New(), Email: reqBody.Email, FullName: reqBody.FullName, IsActive: true, IsAdmin: true}

		mockAuthService.On("GoogleLogin", mock.Anything, &reqBody).Return(user, "signed.jwt.token", nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/google-login", testutils.JSONBody(t, reqBody), nil)

		// Act
		authHandler.GoogleLogin().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		cookie := sessionCookie(t, rr)
		assert.Equal(t, "signed.jwt.token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

		var got models.LoginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.True(t, got.Success)
		assert.True(t, got.IsAdmin)
		assert.Equal(t, user.ID, got.UserID)
	})

	t.Run("Failure - Rejected ID Token", func(t *testing.T) {
		// Arrange
		mockAuthService := mocks.NewAuthService(t)
		authHandler := handlers.NewAuthHandler(mockAuthService, testSecurity)

		mockAuthService.On("GoogleLogin", mock.Anything, mock.Anything).
			Return(nil, "", appErrors.UnauthorizedError("Invalid Google ID token")).Once()

		rr := httptest.NewRecorder()
		body := testutils.JSONBody(t, models.GoogleLoginRequest{IDToken: "forged", Email: "owner@carespace.in"})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/google-login", body, nil)

		// Act
		authHandler.GoogleLogin().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("Failure - Inactive User", func(t *testing.T) {
		// Arrange
		mockAuthService := mocks.NewAuthService(t)
		authHandler := handlers.NewAuthHandler(mockAuthService, testSecurity)

		mockAuthService.On("GoogleLogin", mock.Anything, mock.Anything).
			Return(nil, "", appErrors.ForbiddenError("Account is disabled")).Once()

		rr := httptest.NewRecorder()
		body := testutils.JSONBody(t, models.GoogleLoginRequest{IDToken: "google.id.token"})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/google-login", body, nil)

		// Act
		authHandler.GoogleLogin().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
	})
}

func TestMe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockAuthService := mocks.NewAuthService(t)
		authHandler := handlers.NewAuthHandler(mockAuthService, testSecurity)

		userID := uuid.New()
		user := &models.User{ID: userID, Email: "staff@carespace.in", IsActive: true}
		mockAuthService.On("CurrentUser", mock.Anything, userID).Return(user, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/auth/me", nil, userID, nil)

		// Act
		authHandler.Me().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"email":"staff@carespace.in"`)
	})

	t.Run("Failure - User Removed Since Login", func(t *testing.T) {
		// Arrange
		mockAuthService := mocks.NewAuthService(t)
		authHandler := handlers.NewAuthHandler(mockAuthService, testSecurity)

		userID := uuid.New()
		mockAuthService.On("CurrentUser", mock.Anything, userID).Return(nil, appErrors.NotFoundError("User not found")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/auth/me", nil, userID, nil)

		// Act
		authHandler.Me().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Failure - No Claims", func(t *testing.T) {
		// Arrange
		mockAuthService := mocks.NewAuthService(t)
		authHandler := handlers.NewAuthHandler(mockAuthService, testSecurity)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/auth/me", nil, nil)

		// Act
		authHandler.Me().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestLogout(t *testing.T) {
	// Arrange
	authHandler := handlers.NewAuthHandler(mocks.NewAuthService(t), testSecurity)

	rr := httptest.NewRecorder()
	req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/logout", nil, nil)

	// Act
	authHandler.Logout().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	cookie := sessionCookie(t, rr)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)

	var got response.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.True(t, got.Success)
}
