package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/atelier/pkg/errhttp"
	"github.com/ghuser/atelier/pkg/httpx"
	pkgvalidator "github.com/ghuser/atelier/pkg/validator"
	appsvcs "github.com/ghuser/atelier/services/inventory/application/services"
	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// AttachStoneRequest is the request body for POST /items/{id}/stones.
type AttachStoneRequest struct {
	StoneTypeID uuid.UUID `json:"stone_type_id" validate:"required"`

	WeightCarats decimal.Decimal `json:"weight_carats" validate:"-" example:"0.52"`
	StoneCount   int             `json:"stone_count" validate:"omitempty,gte=1" example:"1"`

	Clarity        string           `json:"clarity" validate:"omitempty,max=32" example:"VS1"`
	Color          string           `json:"color" validate:"omitempty,max=32" example:"F"`
	Cut            string           `json:"cut" validate:"omitempty,max=64" example:"brilliant"`
	Position       string           `json:"position" validate:"omitempty,max=64" example:"center"`
	EstimatedValue *decimal.Decimal `json:"estimated_value" validate:"-"`
	Notes          string           `json:"notes" validate:"omitempty,max=2000"`
} // @name AttachStoneRequest

// PostStoneHandler handles POST /items/{id}/stones requests.
type PostStoneHandler struct {
	svc *appsvcs.Services
}

// NewPostStoneHandler returns a PostStoneHandler backed by the given services.
func NewPostStoneHandler(svc *appsvcs.Services) *PostStoneHandler {
	return &PostStoneHandler{svc: svc}
}

// Execute attaches a stone to an item and increments the item's derived
// stone-weight total in the same transaction.
//
//	@Summary		Attach stone
//	@Tags			stones
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		AttachStoneRequest	true	"Stone attach request"
//	@Success		201		{object}	StoneResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{id}/stones [post]
func (h *PostStoneHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := identity(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AttachStoneRequest](w, r)
	if !ok {
		return
	}

	stone, err := h.svc.Stone.Attach(r.Context(), orgID, itemID, models.NewStoneParams{
		StoneTypeID:    req.StoneTypeID,
		WeightCarats:   req.WeightCarats,
		StoneCount:     req.StoneCount,
		Clarity:        req.Clarity,
		Color:          req.Color,
		Cut:            req.Cut,
		Position:       req.Position,
		EstimatedValue: req.EstimatedValue,
		Notes:          req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Success(w, http.StatusCreated, toStoneResponse(stone))
}
