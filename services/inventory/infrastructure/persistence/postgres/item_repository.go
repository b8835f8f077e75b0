package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/stageops/pkg/database"
	"github.com/ghuser/stageops/pkg/events"
	invdomain "github.com/ghuser/stageops/services/inventory/domain"
	domainevents "github.com/ghuser/stageops/services/inventory/domain/events"
	"github.com/ghuser/stageops/services/inventory/domain/models"
	"github.com/ghuser/stageops/services/inventory/domain/repositories"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus publishes inventory events transactionally with
// each write.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same
// transaction. Returns ErrItemAlreadyExists on unique constraint violations.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO items (id, name, category, quantity, min_threshold, unit, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.Name.String(), item.Category, item.Quantity,
			item.MinThreshold, item.Unit, item.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return invdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, name, category, quantity, min_threshold, unit, created_at
		FROM items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// List retrieves a paginated list of items plus the total count.
func (r *ItemRepository) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, category, quantity, min_threshold, unit, created_at
		FROM items ORDER BY name LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	items, err := collectItems(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx, `SELECT count(*) FROM items`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}
	return items, total, nil
}

// LowStock retrieves items at or under their reorder threshold.
func (r *ItemRepository) LowStock(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, category, quantity, min_threshold, unit, created_at
		FROM items WHERE quantity <= min_threshold ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query low stock: %w", err)
	}
	defer rows.Close() //nolint:errcheck
	return collectItems(rows)
}

// AdjustQuantity applies delta atomically with a guard that keeps the
// quantity non-negative. The row update serializes concurrent adjustments for
// the same item; a StockAdjustedEvent is published in the same transaction.
func (r *ItemRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int, reason string) (int, error) {
	var quantity int
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			UPDATE items SET quantity = quantity + $2
			WHERE id = $1 AND quantity + $2 >= 0
			RETURNING quantity`, id, delta,
		).Scan(&quantity)
		if errors.Is(err, sql.ErrNoRows) {
			// Distinguish a missing item from a guard rejection.
			var exists bool
			if chkErr := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists); chkErr != nil {
				return fmt.Errorf("check item: %w", chkErr)
			}
			if !exists {
				return invdomain.ErrItemNotFound
			}
			return fmt.Errorf("%w: item %s cannot absorb delta %d", invdomain.ErrInsufficientStock, id, delta)
		}
		if err != nil {
			return fmt.Errorf("adjust quantity: %w", err)
		}

		if r.bus != nil {
			if err := r.publishAdjusted(tx, id, delta, quantity, reason); err != nil {
				return fmt.Errorf("publish stock adjusted: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return quantity, nil
}

// Exists reports whether an item with the given ID exists.
func (r *ItemRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Category:   item.Category,
		Quantity:   item.Quantity,
		OccurredAt: item.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicItemCreated, event.EventID, event)
}

func (r *ItemRepository) publishAdjusted(tx *sql.Tx, itemID uuid.UUID, delta, quantity int, reason string) error {
	event := domainevents.StockAdjustedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     itemID,
		Delta:      delta,
		Quantity:   quantity,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicStockAdjusted, event.EventID, event)
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item models.Item
		name string
	)
	if err := row.Scan(&item.ID, &name, &item.Category, &item.Quantity,
		&item.MinThreshold, &item.Unit, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.Name = models.ItemName(name)
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]*models.Item, error) {
	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
