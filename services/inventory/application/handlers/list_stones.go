package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/atelier/pkg/errhttp"
	"github.com/ghuser/atelier/pkg/httpx"
	appsvcs "github.com/ghuser/atelier/services/inventory/application/services"
)

// ListStonesHandler handles GET /items/{id}/stones requests.
type ListStonesHandler struct {
	svc *appsvcs.Services
}

// NewListStonesHandler returns a ListStonesHandler backed by the given services.
func NewListStonesHandler(svc *appsvcs.Services) *ListStonesHandler {
	return &ListStonesHandler{svc: svc}
}

// Execute lists the stones attached to an item, newest first.
//
//	@Summary	List item stones
//	@Tags		stones
//	@Produce	json
//	@Param		id	path		string	true	"Item ID"
//	@Success	200	{array}		StoneResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/items/{id}/stones [get]
func (h *ListStonesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := identity(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	stones, err := h.svc.Stone.ListByItem(r.Context(), orgID, itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]StoneResponse, 0, len(stones))
	for _, stone := range stones {
		out = append(out, toStoneResponse(stone))
	}
	httpx.Success(w, http.StatusOK, out)
}
