// Package events defines the domain events published by the inventory
// bounded context. Events are published transactionally with the mutation
// that produced them (outbox pattern); the worker process consumes them to
// maintain the Redis read-model cache.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory service.
const (
	TopicItemCreated       = "inventory.item.created"
	TopicItemUpdated       = "inventory.item.updated"
	TopicItemStatusChanged = "inventory.item.status_changed"
	TopicItemDeleted       = "inventory.item.deleted"
	TopicStoneAttached     = "inventory.stone.attached"
	TopicStoneDetached     = "inventory.stone.detached"
)

// ItemCreatedEvent is published after a new item is persisted.
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	ItemID     uuid.UUID `json:"item_id"`
	OrgID      uuid.UUID `json:"org_id"`
	SKU        string    `json:"sku"`
	Barcode    string    `json:"barcode"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemUpdatedEvent is published after a successful conditional field update.
type ItemUpdatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	ItemID     uuid.UUID `json:"item_id"`
	OrgID      uuid.UUID `json:"org_id"`
	Version    int       `json:"version"` // version after the write
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemStatusChangedEvent is published after a successful status transition.
type ItemStatusChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	ItemID     uuid.UUID `json:"item_id"`
	OrgID      uuid.UUID `json:"org_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Version    int       `json:"version"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after an item is soft-deleted.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	ItemID     uuid.UUID `json:"item_id"`
	OrgID      uuid.UUID `json:"org_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StoneAttachedEvent is published after a stone is attached and the parent
// aggregate adjusted.
type StoneAttachedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	StoneID      uuid.UUID `json:"stone_id"`
	ItemID       uuid.UUID `json:"item_id"`
	OrgID        uuid.UUID `json:"org_id"`
	WeightCarats string    `json:"weight_carats"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// StoneDetachedEvent is published after a stone is detached and the parent
// aggregate adjusted.
type StoneDetachedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	StoneID      uuid.UUID `json:"stone_id"`
	ItemID       uuid.UUID `json:"item_id"`
	OrgID        uuid.UUID `json:"org_id"`
	WeightCarats string    `json:"weight_carats"`
	OccurredAt   time.Time `json:"occurred_at"`
}
