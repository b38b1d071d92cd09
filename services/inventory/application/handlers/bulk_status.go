package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/atelier/pkg/errhttp"
	"github.com/ghuser/atelier/pkg/httpx"
	pkgvalidator "github.com/ghuser/atelier/pkg/validator"
	appsvcs "github.com/ghuser/atelier/services/inventory/application/services"
	"github.com/ghuser/atelier/services/inventory/domain"
	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// BulkStatusRequest is the request body for POST /items/bulk-status.
type BulkStatusRequest struct {
	ItemIDs []uuid.UUID `json:"item_ids" validate:"required,min=1,max=500"`
	Status  string      `json:"status" validate:"required,oneof=available reserved sold workshop transferred damaged returned" example:"available"`
	Reason  string      `json:"reason" validate:"omitempty,max=500"`
} // @name BulkStatusRequest

// BulkStatusHandler handles POST /items/bulk-status requests.
type BulkStatusHandler struct {
	svc *appsvcs.Services
}

// NewBulkStatusHandler returns a BulkStatusHandler backed by the given services.
func NewBulkStatusHandler(svc *appsvcs.Services) *BulkStatusHandler {
	return &BulkStatusHandler{svc: svc}
}

// Execute applies the same status transition to each listed item
// independently. Responds 200 even on partial failure; per-item failures
// carry their own taxonomy codes.
//
//	@Summary		Bulk update item status
//	@Description	Each item is transitioned independently; one failure never blocks the rest.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BulkStatusRequest	true	"Bulk status request"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/items/bulk-status [post]
func (h *BulkStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, userID, ok := identity(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[BulkStatusRequest](w, r)
	if !ok {
		return
	}

	status := models.ItemStatus(req.Status)
	if !status.IsValid() {
		errhttp.WriteError(w, domain.ErrValidation)
		return
	}

	result := h.svc.Item.BulkUpdateStatus(r.Context(), orgID, userID, req.ItemIDs, status, req.Reason)
	httpx.Success(w, http.StatusOK, result)
}
