package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/atelier/pkg/errhttp"
	"github.com/ghuser/atelier/pkg/httpx"
	pkgvalidator "github.com/ghuser/atelier/pkg/validator"
	appsvcs "github.com/ghuser/atelier/services/inventory/application/services"
	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// UpdateStatusRequest is the request body for PUT /items/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available reserved sold workshop transferred damaged returned" example:"reserved"`
	// Reason, when present, is appended to the item's description trail.
	Reason string `json:"reason" validate:"omitempty,max=500" example:"held for customer pickup"`
} // @name UpdateStatusRequest

// PutItemStatusHandler handles PUT /items/{id}/status requests.
type PutItemStatusHandler struct {
	svc *appsvcs.Services
}

// NewPutItemStatusHandler returns a PutItemStatusHandler backed by the given services.
func NewPutItemStatusHandler(svc *appsvcs.Services) *PutItemStatusHandler {
	return &PutItemStatusHandler{svc: svc}
}

// Execute transitions an item through the lifecycle state machine.
//
//	@Summary		Update item status
//	@Description	Validates the transition against the state machine, then performs the versioned write.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateStatusRequest	true	"Status update request"
//	@Success		200		{object}	ItemResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{id}/status [put]
func (h *PutItemStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, userID, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateStatusRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.UpdateStatus(r.Context(), orgID, userID, id, models.ItemStatus(req.Status), req.Reason)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Success(w, http.StatusOK, toItemResponse(item))
}
