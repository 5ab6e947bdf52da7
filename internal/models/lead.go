package models

import (
	"time"

	"github.com/google/uuid"
)

// Conventional lead sources. The set is not enforced.
const (
	LeadSourceWhatsApp = "whatsapp"
	LeadSourceCall     = "call"
	LeadSourcePopup    = "popup"
	LeadSourceForm     = "form"
)

type Lead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Source    string    `json:"source"`
	Product   *string   `json:"product"`
	PageURL   *string   `json:"page_url"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateLeadRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Phone   string  `json:"phone" validate:"required,max=32"`
	Source  string  `json:"source" validate:"required,max=50"`
	Product *string `json:"product,omitempty" validate:"omitempty,max=255"`
	PageURL *string `json:"page_url,omitempty" validate:"omitempty,max=2048"`
	Message *string `json:"message,omitempty" validate:"omitempty,max=5000"`
}
