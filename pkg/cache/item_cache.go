package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// ItemCacheTTL is the time-to-live for cached inventory items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "inventory_item"
)

// CachedItem is the denormalized inventory-item read model stored in Redis
// as a JSON value. It mirrors the full aggregate so a cache hit can serve
// reads without touching Postgres.
type CachedItem struct {
	ID    uuid.UUID `json:"id"`
	OrgID uuid.UUID `json:"org_id"`

	Name        string `json:"name"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	Barcode     string `json:"barcode"`

	ItemType      string `json:"item_type"`
	OwnershipType string `json:"ownership_type"`
	Status        string `json:"status"`

	WeightGrams       decimal.Decimal `json:"weight_grams"`
	StoneWeightCarats decimal.Decimal `json:"stone_weight_carats"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	Currency          string          `json:"currency"`

	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	MetalTypeID   *uuid.UUID `json:"metal_type_id,omitempty"`
	MetalPurityID *uuid.UUID `json:"metal_purity_id,omitempty"`
	StoneTypeID   *uuid.UUID `json:"stone_type_id,omitempty"`
	SizeID        *uuid.UUID `json:"size_id,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy uuid.UUID `json:"created_by"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy uuid.UUID `json:"updated_by"`
}

// ItemCache provides structured read/write operations for inventory-item
// cache entries. Keys are scoped by orgID to prevent cross-tenant data
// leakage. Key format: "inventory_item:{orgID}:{itemID}".
//
// The cache is strictly advisory: every successful mutation invalidates the
// entry fire-and-forget, and the worker re-warms it from mutation events.
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by org + item ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, orgID, itemID uuid.UUID) (*CachedItem, error) {
	data, err := c.client.Client().Get(ctx, c.key(orgID, itemID)).Bytes()
	if err != nil {
		return nil, err // redis.Nil on miss
	}
	var item CachedItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("cache decode item: %w", err)
	}
	return &item, nil
}

// Set writes a cached item as a JSON value with a 24-hour TTL.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cache encode item: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(item.OrgID, item.ID), data, ItemCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item. This is the post-mutation invalidation hook.
func (c *ItemCache) Delete(ctx context.Context, orgID, itemID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(orgID, itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "inventory_item:{orgID}:{itemID}"
func (c *ItemCache) key(orgID, itemID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", itemCacheKeyPrefix, orgID, itemID)
}
