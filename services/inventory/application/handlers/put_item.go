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

// UpdateItemRequest is the request body for PUT /items/{id}. Omitted fields
// are left unchanged. ExpectedVersion must match the item's current version
// or the update is rejected with concurrent_modification.
type UpdateItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	SKU         *string `json:"sku" validate:"omitempty,min=1,max=64"`
	Barcode     *string `json:"barcode" validate:"omitempty,min=1,max=64"`

	ItemType      *string `json:"item_type" validate:"omitempty,oneof=finished raw_material component"`
	OwnershipType *string `json:"ownership_type" validate:"omitempty,oneof=owned consignment memo"`

	WeightGrams   *decimal.Decimal `json:"weight_grams" validate:"-"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"-"`
	Currency      *string          `json:"currency" validate:"omitempty,len=3,alpha"`

	// References replaces the full reference set when present.
	References *ReferencesPayload `json:"references" validate:"-"`

	ExpectedVersion int `json:"expected_version" validate:"required,gte=1" example:"1"`
} // @name UpdateItemRequest

// ReferencesPayload carries the lookup references of an item.
type ReferencesPayload struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	MetalTypeID   *uuid.UUID `json:"metal_type_id"`
	MetalPurityID *uuid.UUID `json:"metal_purity_id"`
	StoneTypeID   *uuid.UUID `json:"stone_type_id"`
	SizeID        *uuid.UUID `json:"size_id"`
} // @name ReferencesPayload

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute applies a versioned field update to an item.
//
//	@Summary		Update inventory item
//	@Description	Conditional write: succeeds only when expected_version matches the stored version.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Item update request"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, userID, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	params := appsvcs.UpdateItemParams{
		Name:            req.Name,
		Description:     req.Description,
		SKU:             req.SKU,
		Barcode:         req.Barcode,
		WeightGrams:     req.WeightGrams,
		PurchasePrice:   req.PurchasePrice,
		Currency:        req.Currency,
		ExpectedVersion: req.ExpectedVersion,
	}
	if req.ItemType != nil {
		t := models.ItemType(*req.ItemType)
		params.ItemType = &t
	}
	if req.OwnershipType != nil {
		o := models.OwnershipType(*req.OwnershipType)
		params.OwnershipType = &o
	}
	if req.References != nil {
		params.References = &models.References{
			CategoryID:    req.References.CategoryID,
			MetalTypeID:   req.References.MetalTypeID,
			MetalPurityID: req.References.MetalPurityID,
			StoneTypeID:   req.References.StoneTypeID,
			SizeID:        req.References.SizeID,
		}
	}

	item, err := h.svc.Item.Update(r.Context(), orgID, userID, id, params)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Success(w, http.StatusOK, toItemResponse(item))
}
