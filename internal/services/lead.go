package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	appErrors "github.com/carespace/carespace-api/internal/errors"
	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/pkg/clock"
	repository "github.com/carespace/carespace-api/internal/repositories"
	"github.com/carespace/carespace-api/internal/validation"
	"github.com/carespace/carespace-api/pkg/sendGrid"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

const (
	notificationTimeout = 5 * time.Second
	maxSanitizePasses   = 8
)

// RateLimiter admits or rejects an attempt for key. It returns whether the
// attempt is allowed, the attempts left and the seconds until a retry.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, int, int, error)
}

type LeadService interface {
	CreateLead(ctx context.Context, req *models.CreateLeadRequest) (*models.Lead, error)
	ListLeads(ctx context.Context) ([]*models.Lead, error)
	GetLeadByID(ctx context.Context, id string) (*models.Lead, error)
}

type leadService struct {
	repo       repository.LeadRepository
	limiter    RateLimiter
	email      sendGrid.EmailService
	clock      clock.Clock
	salesInbox string
	sanitizer  *bluemonday.Policy
	validate   *validator.Validate
}

// NewLeadService builds the lead service. limiter and email may be nil to
// disable rate limiting and sales notifications.
func NewLeadService(repo repository.LeadRepository, limiter RateLimiter, email sendGrid.EmailService, clk clock.Clock, salesInbox string) LeadService {
	return &leadService{
		repo:       repo,
		limiter:    limiter,
		email:      email,
		clock:      clk,
		salesInbox: salesInbox,
		sanitizer:  bluemonday.StrictPolicy(),
		validate:   validation.New(),
	}
}

func (s *leadService) CreateLead(ctx context.Context, req *models.CreateLeadRequest) (*models.Lead, error) {

	req.Name = s.plainText(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Source = strings.TrimSpace(req.Source)
	req.Product = s.optionalPlainText(req.Product)
	req.PageURL = optionalText(req.PageURL)
	req.Message = s.optionalPlainText(req.Message)

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	if s.limiter != nil {
		allowed, _, retryAfter, err := s.limiter.Allow(ctx, req.Phone)

		switch {
		case err != nil:
			// Fail open.
			slog.WarnContext(ctx, "Lead rate limit check failed", slog.String("error", err.Error()))
		case !allowed:
			return nil, appErrors.TooManyRequestsError("Too many submissions. Please try again later.").
				WithDetails(fmt.Sprintf("Retry after %d seconds", retryAfter))
		}
	}

	lead := &models.Lead{
		ID:        uuid.New(),
		Name:      req.Name,
		Phone:     req.Phone,
		Source:    req.Source,
		Product:   req.Product,
		PageURL:   req.PageURL,
		Message:   req.Message,
		CreatedAt: s.clock.Now().UTC(),
	}

	if err := s.repo.CreateLead(ctx, lead); err != nil {
		return nil, appErrors.DatabaseError("Failed to create lead").WithError(err)
	}

	s.notifySales(ctx, lead)

	return lead, nil
}

// ListLeads returns all leads, newest first.
func (s *leadService) ListLeads(ctx context.Context) ([]*models.Lead, error) {

	leads, err := s.repo.ListLeads(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch leads").WithError(err)
	}

	return leads, nil
}

// GetLeadByID treats a malformed id the same as an unknown one.
func (s *leadService) GetLeadByID(ctx context.Context, id string) (*models.Lead, error) {

	leadID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, appErrors.NotFoundError("Lead not found").WithError(err)
	}

	lead, err := s.repo.GetLeadByID(ctx, leadID)
	if err != nil {
		return nil, repoError(err, "Lead not found", "Failed to fetch lead")
	}

	return lead, nil
}

// notifySales emails the sales inbox about a stored lead. Failures are logged
// only; the lead is already committed.
func (s *leadService) notifySales(ctx context.Context, lead *models.Lead) {

	if s.email == nil || s.salesInbox == "" {
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)
	defer cancel()

	req := &models.EmailNotificationRequest{
		To:      s.salesInbox,
		Subject: fmt.Sprintf("New %s lead: %s", lead.Source, lead.Name),
		Content: leadSummary(lead),
	}

	if err := s.email.Send(notifyCtx, req); err != nil {
		slog.WarnContext(ctx, "Failed to send lead notification", slog.String("leadId", lead.ID.String()), slog.String("error", err.Error()))
	}
}

func leadSummary(lead *models.Lead) string {

	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "Phone: %s\n", lead.Phone)
	fmt.Fprintf(&b, "Source: %s\n", lead.Source)

	if lead.Product != nil {
		fmt.Fprintf(&b, "Product: %s\n", *lead.Product)
	}
	if lead.PageURL != nil {
		fmt.Fprintf(&b, "Page: %s\n", *lead.PageURL)
	}
	if lead.Message != nil {
		fmt.Fprintf(&b, "Message: %s\n", *lead.Message)
	}

	fmt.Fprintf(&b, "Received: %s\n", lead.CreatedAt.Format(time.RFC3339))

	return b.String()
}

// plainText strips markup and returns the trimmed text content. Entity
// encoded markup is decoded and stripped again until the text is stable.
func (s *leadService) plainText(raw string) string {
	text := raw

	for range maxSanitizePasses {
		next := html.UnescapeString(s.sanitizer.Sanitize(text))
		if next == text {
			return strings.TrimSpace(text)
		}

		text = next
	}

	// Still changing: keep the escaped form so nothing decodes into markup.
	return strings.TrimSpace(s.sanitizer.Sanitize(text))
}

func (s *leadService) optionalPlainText(raw *string) *string {
	if raw == nil {
		return nil
	}

	text := s.plainText(*raw)

	return optionalText(&text)
}
