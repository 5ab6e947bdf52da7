package handlers

import (
	"log/slog"
	"net/http"

	"github.com/carespace/carespace-api/internal/api/middleware"
	"github.com/carespace/carespace-api/internal/metrics"
	"github.com/carespace/carespace-api/internal/models"
	service "github.com/carespace/carespace-api/internal/services"
	"github.com/carespace/carespace-api/internal/utils/response"
)

type LeadHandler struct {
	leadService service.LeadService
}

func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLead godoc
// @Summary      Capture a customer inquiry
// @Description  Free text is stripped of markup. Submissions are rate limited per phone number.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead  body      models.CreateLeadRequest  true  "Lead"
// @Success      201   {object}  models.Lead
// @Failure      400   {object}  response.APIResponse
// @Failure      429   {object}  response.APIResponse
// @Failure      500   {object}  response.APIResponse
// @Router       /api/leads [post]
func (h *LeadHandler) CreateLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateLeadRequest
		if !decodeBody(w, r, &req) {
			return
		}

		lead, err := h.leadService.CreateLead(r.Context(), &req)
		if err != nil {
			fail(w, r, "Lead capture failed", err, slog.String("source", req.Source))
			return
		}

		metrics.LeadCreated(lead.Source)

		middleware.LoggerFromContext(r.Context()).Info("Lead captured", slog.String("leadId", lead.ID.String()), slog.String("source", lead.Source))
		response.WriteJson(w, http.StatusCreated, lead)
	}
}

// ListLeads godoc
// @Summary      List all leads, newest first
// @Tags         leads
// @Produce      json
// @Success      200  {array}   models.Lead
// @Failure      500  {object}  response.APIResponse
// @Router       /api/leads [get]
func (h *LeadHandler) ListLeads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		leads, err := h.leadService.ListLeads(r.Context())
		if err != nil {
			fail(w, r, "Failed to fetch leads", err)
			return
		}

		response.WriteJson(w, http.StatusOK, leads)
	}
}

// GetLead godoc
// @Summary      Get a lead by id
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead id"
// @Success      200  {object}  models.Lead
// @Failure      404  {object}  response.APIResponse
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")

		lead, err := h.leadService.GetLeadByID(r.Context(), id)
		if err != nil {
			fail(w, r, "Failed to fetch lead", err, slog.String("leadId", id))
			return
		}

		response.WriteJson(w, http.StatusOK, lead)
	}
}
