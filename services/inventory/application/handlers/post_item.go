package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/atelier/pkg/errhttp"
	"github.com/ghuser/atelier/pkg/httpx"
	pkgvalidator "github.com/ghuser/atelier/pkg/validator"
	appsvcs "github.com/ghuser/atelier/services/inventory/application/services"
	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// CreateItemRequest is the request body for POST /items. SKU and barcode
// are optional; absent identifiers are generated server-side.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255" example:"Solitaire Ring"`
	Description string `json:"description" validate:"max=2000"`
	SKU         string `json:"sku" validate:"omitempty,max=64"`
	Barcode     string `json:"barcode" validate:"omitempty,max=64"`

	ItemType      string `json:"item_type" validate:"required,oneof=finished raw_material component" example:"finished"`
	OwnershipType string `json:"ownership_type" validate:"required,oneof=owned consignment memo" example:"owned"`

	WeightGrams   decimal.Decimal `json:"weight_grams" validate:"-" example:"4.25"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"-" example:"1250.00"`
	Currency      string          `json:"currency" validate:"omitempty,len=3,alpha" example:"USD"`

	CategoryID    *uuid.UUID `json:"category_id" validate:"-"`
	MetalTypeID   *uuid.UUID `json:"metal_type_id" validate:"-"`
	MetalPurityID *uuid.UUID `json:"metal_purity_id" validate:"-"`
	StoneTypeID   *uuid.UUID `json:"stone_type_id" validate:"-"`
	SizeID        *uuid.UUID `json:"size_id" validate:"-"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new inventory item.
//
//	@Summary		Create inventory item
//	@Description	Creates an item in the available state at version 1. Missing SKU/barcode are generated.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, userID, ok := identity(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), orgID, userID, models.NewItemParams{
		Name:          req.Name,
		Description:   req.Description,
		SKU:           req.SKU,
		Barcode:       req.Barcode,
		ItemType:      models.ItemType(req.ItemType),
		OwnershipType: models.OwnershipType(req.OwnershipType),
		WeightGrams:   req.WeightGrams,
		PurchasePrice: req.PurchasePrice,
		Currency:      req.Currency,
		References: models.References{
			CategoryID:    req.CategoryID,
			MetalTypeID:   req.MetalTypeID,
			MetalPurityID: req.MetalPurityID,
			StoneTypeID:   req.StoneTypeID,
			SizeID:        req.SizeID,
		},
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Success(w, http.StatusCreated, toItemResponse(item))
}
