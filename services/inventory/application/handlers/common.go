// Package handlers contains the HTTP handlers of the inventory bounded
// context. Each handler lives in its own file, decodes and validates its
// request, resolves the tenant identity from the request context, and
// delegates to the application services.
package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/atelier/pkg/auth"
	"github.com/ghuser/atelier/pkg/errhttp"
	"github.com/ghuser/atelier/services/inventory/domain"
	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// ItemResponse is the full item representation returned by reads and
// mutations. Version must be echoed back as expected_version on updates.
type ItemResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Solitaire Ring"`
	Description string    `json:"description,omitempty"`
	SKU         string    `json:"sku"         example:"TAJ-RIN-482913-K7Q2"`
	Barcode     string    `json:"barcode"     example:"550e84-1736951234567-0042"`

	ItemType      string `json:"item_type"      example:"finished"`
	OwnershipType string `json:"ownership_type" example:"owned"`
	Status        string `json:"status"         example:"available"`

	WeightGrams       decimal.Decimal `json:"weight_grams"        example:"4.25"`
	StoneWeightCarats decimal.Decimal `json:"stone_weight_carats" example:"0.52"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"      example:"1250.00"`
	Currency          string          `json:"currency"            example:"USD"`

	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	MetalTypeID   *uuid.UUID `json:"metal_type_id,omitempty"`
	MetalPurityID *uuid.UUID `json:"metal_purity_id,omitempty"`
	StoneTypeID   *uuid.UUID `json:"stone_type_id,omitempty"`
	SizeID        *uuid.UUID `json:"size_id,omitempty"`

	Version   int       `json:"version"    example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// StoneResponse is the stone representation returned on attach and listing.
type StoneResponse struct {
	ID          uuid.UUID `json:"id"`
	ItemID      uuid.UUID `json:"item_id"`
	StoneTypeID uuid.UUID `json:"stone_type_id"`

	WeightCarats decimal.Decimal `json:"weight_carats" example:"0.52"`
	StoneCount   int             `json:"stone_count"   example:"1"`

	Clarity        string           `json:"clarity,omitempty"  example:"VS1"`
	Color          string           `json:"color,omitempty"    example:"F"`
	Cut            string           `json:"cut,omitempty"      example:"brilliant"`
	Position       string           `json:"position,omitempty" example:"center"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
	Notes          string           `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
} // @name StoneResponse

// ErrorResponse documents the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"   example:"inventory item not found"`
	Code    string `json:"code"    example:"not_found"`
} // @name ErrorResponse

// identity resolves the tenant and user from the authenticated request
// context. On failure it writes the 401 envelope and returns ok=false.
func identity(w http.ResponseWriter, r *http.Request) (orgID, userID uuid.UUID, ok bool) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, domain.ErrUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}
	userID, err = auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, domain.ErrUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}
	return orgID, userID, true
}

// pathID parses the named URL parameter as a UUID. On failure it writes the
// 404 envelope and returns ok=false, treating a malformed id like an absent
// resource.
func pathID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		errhttp.WriteError(w, domain.ErrItemNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func toItemResponse(item *models.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:                item.ID,
		Name:              item.Name,
		Description:       item.Description,
		SKU:               item.SKU,
		Barcode:           item.Barcode,
		ItemType:          string(item.ItemType),
		OwnershipType:     string(item.OwnershipType),
		Status:            string(item.Status),
		WeightGrams:       item.WeightGrams,
		StoneWeightCarats: item.StoneWeightCarats,
		PurchasePrice:     item.PurchasePrice,
		Currency:          item.Currency,
		CategoryID:        item.References.CategoryID,
		MetalTypeID:       item.References.MetalTypeID,
		MetalPurityID:     item.References.MetalPurityID,
		StoneTypeID:       item.References.StoneTypeID,
		SizeID:            item.References.SizeID,
		Version:           item.Version,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

func toStoneResponse(stone *models.ItemStone) StoneResponse {
	return StoneResponse{
		ID:             stone.ID,
		ItemID:         stone.ItemID,
		StoneTypeID:    stone.StoneTypeID,
		WeightCarats:   stone.WeightCarats,
		StoneCount:     stone.StoneCount,
		Clarity:        stone.Clarity,
		Color:          stone.Color,
		Cut:            stone.Cut,
		Position:       stone.Position,
		EstimatedValue: stone.EstimatedValue,
		Notes:          stone.Notes,
		CreatedAt:      stone.CreatedAt,
	}
}
