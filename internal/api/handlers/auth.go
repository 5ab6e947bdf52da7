package handlers

import (
	"log/slog"
	"net/http"

	"github.com/carespace/carespace-api/internal/api/middleware"
	"github.com/carespace/carespace-api/internal/config"
	"github.com/carespace/carespace-api/internal/errors"
	"github.com/carespace/carespace-api/internal/models"
	service "github.com/carespace/carespace-api/internal/services"
	"github.com/carespace/carespace-api/internal/utils/response"
)

type AuthHandler struct {
	authService service.AuthService
	security    config.Security
}

func NewAuthHandler(authService service.AuthService, security config.Security) *AuthHandler {
	return &AuthHandler{authService: authService, security: security}
}

// GoogleLogin godoc
// @Summary      Start a session for a Google-authenticated user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.GoogleLoginRequest  true  "Google ID token"
// @Success      200    {object}  models.LoginResponse
// @Failure      400    {object}  response.APIResponse
// @Failure      401    {object}  response.APIResponse
// @Router       /auth/google-login [post]
func (h *AuthHandler) GoogleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.GoogleLoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, token, err := h.authService.GoogleLogin(r.Context(), &req)
		if err != nil {
			fail(w, r, "Google login failed", err)
			return
		}

		http.SetCookie(w, h.sessionCookie(token, int(h.security.SessionTTL.Seconds())))

		middleware.LoggerFromContext(r.Context()).Info("User logged in", slog.String("userId", user.ID.String()), slog.Bool("admin", user.IsAdmin))
		response.WriteJson(w, http.StatusOK, models.LoginResponse{
			Success:  true,
			UserID:   user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			IsAdmin:  user.IsAdmin,
			Message:  "Login successful",
		})
	}
}

// Me godoc
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  response.APIResponse
// @Security     SessionCookie
// @Router       /auth/me [get]
func (h *AuthHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		user, err := h.authService.CurrentUser(r.Context(), claims.UserID)
		if err != nil {
			if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeNotFound {
				// The session outlived its user.
				err = errors.UnauthorizedError("Authentication required").WithError(err)
			}
			fail(w, r, "Failed to load session user", err)
			return
		}

		response.WriteJson(w, http.StatusOK, user)
	}
}

// Logout godoc
// @Summary      End the session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.APIResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		http.SetCookie(w, h.sessionCookie("", -1))

		response.WriteJson(w, http.StatusOK, response.APIResponse{Success: true, Data: map[string]string{"message": "Logged out"}})
	}
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.security.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
