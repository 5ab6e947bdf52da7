package service

import (
	"context"
	"strings"

	"github.com/carespace/carespace-api/internal/config"
	appErrors "github.com/carespace/carespace-api/internal/errors"
	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/pkg/clock"
	repository "github.com/carespace/carespace-api/internal/repositories"
	"github.com/carespace/carespace-api/internal/validation"
	"github.com/carespace/carespace-api/pkg/googleauth"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService interface {
	// GoogleLogin verifies the Google ID token, records the user it names and
	// returns the user with a signed session token.
	GoogleLogin(ctx context.Context, req *models.GoogleLoginRequest) (*models.User, string, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type authService struct {
	repo     repository.UserRepository
	verifier googleauth.Verifier
	security config.Security
	clock    clock.Clock
	validate *validator.Validate
}

func NewAuthService(repo repository.UserRepository, verifier googleauth.Verifier, security config.Security, clk clock.Clock) AuthService {
	return &authService{
		repo:     repo,
		verifier: verifier,
		security: security,
		clock:    clk,
		validate: validation.New(),
	}
}

func (s *authService) GoogleLogin(ctx context.Context, req *models.GoogleLoginRequest) (*models.User, string, error) {

	req.IDToken = strings.TrimSpace(req.IDToken)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.GoogleID = strings.TrimSpace(req.GoogleID)
	req.FullName = optionalText(req.FullName)

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, "", err
	}

	identity, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, "", appErrors.UnauthorizedError("Invalid Google ID token").WithError(err)
	}

	email := strings.ToLower(strings.TrimSpace(identity.Email))

	if email == "" || !identity.EmailVerified {
		return nil, "", appErrors.UnauthorizedError("Google account email is not verified")
	}

	if (req.Email != "" && req.Email != email) || (req.GoogleID != "" && req.GoogleID != identity.Subject) {
		return nil, "", appErrors.UnauthorizedError("Google identity does not match ID token")
	}

	fullName := req.FullName
	if name := strings.TrimSpace(identity.Name); name != "" {
		fullName = &name
	}

	googleID := identity.Subject

	user := &models.User{
		ID:       uuid.New(),
		Email:    email,
		FullName: fullName,
		GoogleID: &googleID,
		IsActive: true,
		IsAdmin:  s.security.IsAdminEmail(email),
	}

	if err := s.repo.UpsertGoogleUser(ctx, user); err != nil {
		return nil, "", appErrors.DatabaseError("Failed to save user").WithError(err)
	}

	if !user.IsActive {
		return nil, "", appErrors.ForbiddenError("User account is disabled")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", appErrors.InternalError("Failed to generate session token").WithError(err)
	}

	return user, token, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, repoError(err, "User not found", "Failed to fetch user")
	}

	if !user.IsActive {
		return nil, appErrors.UnauthorizedError("User account is disabled")
	}

	return user, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {

	now := s.clock.Now()

	claims := &models.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.security.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.security.JWTKey))
}
