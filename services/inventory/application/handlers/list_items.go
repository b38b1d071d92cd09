package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/atelier/pkg/errhttp"
	"github.com/ghuser/atelier/pkg/httpx"
	appsvcs "github.com/ghuser/atelier/services/inventory/application/services"
	"github.com/ghuser/atelier/services/inventory/domain/models"
	"github.com/ghuser/atelier/services/inventory/domain/repositories"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListItemsResponse is the paginated item listing.
type ListItemsResponse struct {
	Items  []ItemResponse `json:"items"`
	Total  int            `json:"total"  example:"42"`
	Limit  int            `json:"limit"  example:"20"`
	Offset int            `json:"offset" example:"0"`
} // @name ListItemsResponse

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists the tenant's live items, newest first.
//
//	@Summary	List inventory items
//	@Tags		items
//	@Produce	json
//	@Param		limit	query		int		false	"Page size (max 100)"
//	@Param		offset	query		int		false	"Offset"
//	@Param		status	query		string	false	"Filter to a single status"
//	@Success	200		{object}	ListItemsResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := identity(w, r)
	if !ok {
		return
	}

	opts := repositories.QueryOpts{
		Limit:  queryInt(r, "limit", defaultPageSize),
		Offset: queryInt(r, "offset", 0),
		Status: models.ItemStatus(r.URL.Query().Get("status")),
	}
	if opts.Limit < 1 || opts.Limit > maxPageSize {
		opts.Limit = defaultPageSize
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	items, total, err := h.svc.Item.List(r.Context(), orgID, opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	httpx.Success(w, http.StatusOK, ListItemsResponse{
		Items:  out,
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
