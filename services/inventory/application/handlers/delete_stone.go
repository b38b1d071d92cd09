package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/atelier/pkg/errhttp"
	"github.com/ghuser/atelier/pkg/httpx"
	appsvcs "github.com/ghuser/atelier/services/inventory/application/services"
)

// DeleteStoneHandler handles DELETE /stones/{id} requests.
type DeleteStoneHandler struct {
	svc *appsvcs.Services
}

// NewDeleteStoneHandler returns a DeleteStoneHandler backed by the given services.
func NewDeleteStoneHandler(svc *appsvcs.Services) *DeleteStoneHandler {
	return &DeleteStoneHandler{svc: svc}
}

// Execute detaches a stone and decrements the parent item's derived
// stone-weight total, clamped at zero.
//
//	@Summary	Detach stone
//	@Tags		stones
//	@Produce	json
//	@Param		id	path		string	true	"Stone ID"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/stones/{id} [delete]
func (h *DeleteStoneHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := identity(w, r)
	if !ok {
		return
	}
	stoneID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.svc.Stone.Detach(r.Context(), orgID, stoneID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Success(w, http.StatusOK, map[string]string{"id": stoneID.String()})
}
