package googleauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/carespace/carespace-api/internal/models"
	"google.golang.org/api/idtoken"
)

var ErrMissingSubject = errors.New("id token has no subject")

type Verifier interface {
	Verify(ctx context.Context, idToken string) (*models.GoogleIdentity, error)
}

// ValidateFunc checks the signature, expiry and audience of a Google ID token.
type ValidateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type verifier struct {
	clientID string
	validate ValidateFunc
}

func NewVerifier(clientID string) Verifier {
	return &verifier{clientID: clientID, validate: idtoken.Validate}
}

// NewVerifierWithValidator replaces the call to Google's token endpoint.
func NewVerifierWithValidator(clientID string, validate ValidateFunc) Verifier {
	return &verifier{clientID: clientID, validate: validate}
}

func (v *verifier) Verify(ctx context.Context, idToken string) (*models.GoogleIdentity, error) {

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("validating google id token: %w", err)
	}

	if payload.Subject == "" {
		return nil, ErrMissingSubject
	}

	identity := &models.GoogleIdentity{Subject: payload.Subject}

	identity.Email, _ = payload.Claims["email"].(string)
	identity.Name, _ = payload.Claims["name"].(string)

	// Google encodes email_verified as a bool, older tokens as a string.
	switch verified := payload.Claims["email_verified"].(type) {
	case bool:
		identity.EmailVerified = verified
	case string:
		identity.EmailVerified = verified == "true"
	}

	return identity, nil
}
