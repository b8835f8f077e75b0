package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/stageops/pkg/database"
	"github.com/ghuser/stageops/pkg/events"
	supdomain "github.com/ghuser/stageops/services/supplier/domain"
	domainevents "github.com/ghuser/stageops/services/supplier/domain/events"
	"github.com/ghuser/stageops/services/supplier/domain/models"
)

// SupplierRepository implements repositories.SupplierRepository against PostgreSQL.
type SupplierRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewSupplierRepository returns a SupplierRepository backed by the given
// connection pool and event bus.
func NewSupplierRepository(db *database.Database, bus *events.EventBus) *SupplierRepository {
	return &SupplierRepository{db: db, bus: bus}
}

// Save persists a new supplier and publishes a SupplierCreatedEvent within
// the same transaction. Returns ErrSupplierAlreadyExists on unique constraint
// violations.
func (r *SupplierRepository) Save(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO suppliers (id, name, contact, phone, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			supplier.ID, supplier.Name, supplier.Contact, supplier.Phone, supplier.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return supdomain.ErrSupplierAlreadyExists
			}
			return fmt.Errorf("insert supplier: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, supplier); err != nil {
				return fmt.Errorf("publish supplier created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a supplier by ID. Returns ErrSupplierNotFound if not found.
func (r *SupplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var s models.Supplier
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT id, name, contact, phone, created_at
		FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Contact, &s.Phone, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, supdomain.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("query supplier: %w", err)
	}
	return &s, nil
}

// List retrieves all suppliers ordered by name.
func (r *SupplierRepository) List(ctx context.Context) ([]*models.Supplier, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, contact, phone, created_at
		FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query suppliers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var suppliers []*models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Phone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *SupplierRepository) publishCreated(tx *sql.Tx, supplier *models.Supplier) error {
	event := domainevents.SupplierCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		SupplierID: supplier.ID,
		Name:       supplier.Name,
		OccurredAt: supplier.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicSupplierCreated, msg)
}
