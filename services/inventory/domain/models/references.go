package models

import "github.com/google/uuid"

// RefKind names a referenced lookup table. The validator reports the first
// missing reference using these names.
type RefKind string

const (
	RefCategory    RefKind = "category"
	RefMetalType   RefKind = "metal_type"
	RefMetalPurity RefKind = "metal_purity"
	RefStoneType   RefKind = "stone_type"
	RefSize        RefKind = "size"
)

// References holds the optional foreign references of an item. Each non-nil
// id must point at an existing, non-deleted row of the same tenant.
type References struct {
	CategoryID    *uuid.UUID
	MetalTypeID   *uuid.UUID
	MetalPurityID *uuid.UUID
	StoneTypeID   *uuid.UUID
	SizeID        *uuid.UUID
}

// Each yields the supplied (non-nil) references in a fixed validation order.
func (r References) Each() []struct {
	Kind RefKind
	ID   uuid.UUID
} {
	var out []struct {
		Kind RefKind
		ID   uuid.UUID
	}
	add := func(kind RefKind, id *uuid.UUID) {
		if id != nil && *id != uuid.Nil {
			out = append(out, struct {
				Kind RefKind
				ID   uuid.UUID
			}{kind, *id})
		}
	}
	add(RefCategory, r.CategoryID)
	add(RefMetalType, r.MetalTypeID)
	add(RefMetalPurity, r.MetalPurityID)
	add(RefStoneType, r.StoneTypeID)
	add(RefSize, r.SizeID)
	return out
}
