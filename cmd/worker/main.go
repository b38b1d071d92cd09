package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/atelier/pkg/app"
	"github.com/ghuser/atelier/pkg/cache"
	"github.com/ghuser/atelier/pkg/config"
	"github.com/ghuser/atelier/pkg/database"
	"github.com/ghuser/atelier/pkg/events"
	"github.com/ghuser/atelier/pkg/logger"
	"github.com/ghuser/atelier/pkg/telemetry"
	appsvcs "github.com/ghuser/atelier/services/inventory/application/services"
	invdomain "github.com/ghuser/atelier/services/inventory/domain"
	invevents "github.com/ghuser/atelier/services/inventory/domain/events"
	"github.com/ghuser/atelier/services/inventory/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Cfg:      cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits for in-flight handlers.
	log.Info("worker stopped")
}

// cacheMaintainer keeps the Redis item read model in sync with the mutation
// events. Every item mutation re-warms the cache from Postgres; deletion
// drops the entry.
type cacheMaintainer struct {
	repo  *postgres.ItemRepository
	cache *cache.ItemCache
	log   logger.Logger
}

// registerSubscribers wires all inventory event handlers. Handlers must be
// idempotent: the EventBus retries on failure and delivery is at-least-once.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	m := &cacheMaintainer{
		repo:  postgres.NewItemRepository(a.Db, nil),
		cache: cache.NewItemCache(a.Redis),
		log:   a.Logger,
	}

	topics := map[string]func(context.Context, *message.Message) error{
		invevents.TopicItemCreated:       m.handleItemMutation,
		invevents.TopicItemUpdated:       m.handleItemMutation,
		invevents.TopicItemStatusChanged: m.handleItemMutation,
		invevents.TopicItemDeleted:       m.handleItemDeleted,
		invevents.TopicStoneAttached:     m.handleStoneMutation,
		invevents.TopicStoneDetached:     m.handleStoneMutation,
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		registered = append(registered, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// itemRef is the envelope shared by all item mutation event payloads.
type itemRef struct {
	ItemID uuid.UUID `json:"item_id"`
	OrgID  uuid.UUID `json:"org_id"`
}

func (m *cacheMaintainer) handleItemMutation(ctx context.Context, msg *message.Message) error {
	var ref itemRef
	if err := json.Unmarshal(msg.Payload, &ref); err != nil {
		return err
	}
	return m.warm(ctx, ref)
}

// handleStoneMutation re-warms the parent item: the stone ledger changed its
// derived stone-weight total.
func (m *cacheMaintainer) handleStoneMutation(ctx context.Context, msg *message.Message) error {
	var ref itemRef
	if err := json.Unmarshal(msg.Payload, &ref); err != nil {
		return err
	}
	return m.warm(ctx, ref)
}

func (m *cacheMaintainer) handleItemDeleted(ctx context.Context, msg *message.Message) error {
	var ref itemRef
	if err := json.Unmarshal(msg.Payload, &ref); err != nil {
		return err
	}
	if err := m.cache.Delete(ctx, ref.OrgID, ref.ItemID); err != nil {
		m.log.WarnContext(ctx, "cache delete failed", "item_id", ref.ItemID, "error", err)
	}
	return nil
}

// warm re-reads the item from Postgres and writes the cache entry. Cache
// warming is best-effort; an item deleted between event and warm simply
// drops the entry.
func (m *cacheMaintainer) warm(ctx context.Context, ref itemRef) error {
	item, err := m.repo.GetByID(ctx, ref.OrgID, ref.ItemID)
	if errors.Is(err, invdomain.ErrItemNotFound) {
		_ = m.cache.Delete(ctx, ref.OrgID, ref.ItemID)
		return nil
	}
	if err != nil {
		return err
	}

	if err := m.cache.Set(ctx, appsvcs.ToCachedItem(item)); err != nil {
		m.log.WarnContext(ctx, "cache warm failed", "item_id", ref.ItemID, "error", err)
		return nil
	}

	m.log.InfoContext(ctx, "cache warmed", "item_id", ref.ItemID, "org_id", ref.OrgID)
	return nil
}
