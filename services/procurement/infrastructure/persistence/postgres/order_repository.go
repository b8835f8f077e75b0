package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/stageops/pkg/database"
	"github.com/ghuser/stageops/pkg/events"
	invdomain "github.com/ghuser/stageops/services/inventory/domain"
	procdomain "github.com/ghuser/stageops/services/procurement/domain"
	domainevents "github.com/ghuser/stageops/services/procurement/domain/events"
	"github.com/ghuser/stageops/services/procurement/domain/models"
	"github.com/ghuser/stageops/services/procurement/domain/repositories"
)

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
// Every write publishes its domain event in the same transaction (outbox via
// the watermill-sql bus), and every update carries an optimistic version
// check so concurrent transitions on one order serialize.
type OrderRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewOrderRepository returns an OrderRepository backed by the given
// connection pool and event bus.
func NewOrderRepository(db *database.Database, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{db: db, bus: bus}
}

const orderColumns = `
	id, item_id, item_name, supplier_id, supplier_name,
	quantity, unit_price, total_cost,
	status, rejection_reason, tracking_number,
	payment_status, amount_paid, payment_method, transaction_ref, payment_notes,
	submitted_by, submitted_at, payment_approved_by,
	processed_by, processed_at,
	payment_rejected_by, payment_rejected_at, payment_rejection_reason,
	supplier_confirmed, confirmed_by_name, confirmed_at, transaction_proof,
	created_at, delivery_date, received_at, version`

// Save persists a new order and publishes an OrderCreatedEvent within the
// same transaction.
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32)`,
			orderArgs(order)...,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, order); err != nil {
				return fmt.Errorf("publish order created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an order by ID. Returns ErrOrderNotFound if not found.
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, procdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}
	return order, nil
}

// Update persists a transitioned order with an optimistic version check and
// publishes an OrderChangedEvent in the same transaction. The order's
// Version is incremented in place on success.
func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return r.updateTx(ctx, tx, order)
	})
}

// UpdateReceived persists the Received transition and credits the ordered
// quantity to the item's stock in the same transaction, so the status write
// and the ledger effect commit or roll back together.
func (r *OrderRepository) UpdateReceived(ctx context.Context, order *models.Order) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.updateTx(ctx, tx, order); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE items SET quantity = quantity + $2 WHERE id = $1`,
			order.Item.ID, order.Quantity,
		)
		if err != nil {
			return fmt.Errorf("credit stock: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("credit stock rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("credit stock: %w", invdomain.ErrItemNotFound)
		}
		return nil
	})
}

func (r *OrderRepository) updateTx(ctx context.Context, tx *sql.Tx, order *models.Order) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE orders SET
			status = $3, rejection_reason = $4, tracking_number = $5,
			payment_status = $6, amount_paid = $7, payment_method = $8,
			transaction_ref = $9, payment_notes = $10,
			submitted_by = $11, submitted_at = $12, payment_approved_by = $13,
			processed_by = $14, processed_at = $15,
			payment_rejected_by = $16, payment_rejected_at = $17, payment_rejection_reason = $18,
			supplier_confirmed = $19, confirmed_by_name = $20, confirmed_at = $21, transaction_proof = $22,
			delivery_date = $23, received_at = $24,
			version = version + 1
		WHERE id = $1 AND version = $2`,
		order.ID, order.Version,
		order.Status.String(), order.RejectionReason, order.TrackingNumber,
		order.Payment.Status.String(), order.Payment.AmountPaid, string(order.Payment.Method),
		order.Payment.TransactionRef, order.Payment.Notes,
		order.Payment.SubmittedBy, nullTime(order.Payment.SubmittedAt), order.Payment.ApprovedBy,
		order.Payment.ProcessedBy, nullTime(order.Payment.ProcessedAt),
		order.Payment.RejectedBy, nullTime(order.Payment.RejectedAt), order.Payment.RejectionReason,
		order.Payment.SupplierConfirmed, order.Payment.ConfirmedByName, nullTime(order.Payment.ConfirmedAt), order.Payment.TransactionProof,
		nullTime(order.DeliveryDate), nullTime(order.ReceivedAt),
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order rows: %w", err)
	}
	if affected == 0 {
		return procdomain.ErrVersionConflict
	}
	order.Version++

	if r.bus != nil {
		if err := r.publishChanged(tx, order); err != nil {
			return fmt.Errorf("publish order changed: %w", err)
		}
	}
	return nil
}

// Search retrieves orders matching q, newest first, plus the total count
// ignoring pagination. Free text matches the item name, the tail of the
// order id, or the tracking number.
func (r *OrderRepository) Search(ctx context.Context, q repositories.SearchQuery) ([]*models.Order, int, error) {
	where := []string{"1 = 1"}
	args := []any{}

	if q.Text != "" {
		args = append(args, "%"+strings.ToLower(q.Text)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(lower(item_name) LIKE $%d OR lower(id::text) LIKE $%d OR lower(tracking_number) LIKE $%d)",
			n, n, n))
	}
	if q.Status != nil {
		args = append(args, q.Status.String())
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if q.SupplierID != uuid.Nil {
		args = append(args, q.SupplierID)
		where = append(where, fmt.Sprintf("supplier_id = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM orders WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	args = append(args, q.Limit, q.Offset)
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE `+cond+
			fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, total, nil
}

// StatusCounts computes the dashboard projection in one aggregate query,
// optionally scoped to a supplier.
func (r *OrderRepository) StatusCounts(ctx context.Context, supplierID uuid.UUID) (repositories.StatusCounts, error) {
	query := `
		SELECT
			count(*) FILTER (WHERE status = 'pending'),
			count(*) FILTER (WHERE status = 'approved'),
			count(*) FILTER (WHERE status = 'rejected'),
			count(*) FILTER (WHERE status = 'delivered'),
			count(*) FILTER (WHERE status = 'received'),
			count(*) FILTER (WHERE status = 'paid'),
			count(*) FILTER (WHERE payment_status = 'submitted'),
			count(*) FILTER (WHERE payment_status = 'paid' AND NOT supplier_confirmed)
		FROM orders`
	args := []any{}
	if supplierID != uuid.Nil {
		query += ` WHERE supplier_id = $1`
		args = append(args, supplierID)
	}

	var c repositories.StatusCounts
	err := r.db.DB().QueryRowContext(ctx, query, args...).Scan(
		&c.Pending, &c.Approved, &c.Rejected, &c.Delivered, &c.Received, &c.Paid,
		&c.PaymentsSubmitted, &c.AwaitingConfirmation,
	)
	if err != nil {
		return repositories.StatusCounts{}, fmt.Errorf("status counts: %w", err)
	}
	return c, nil
}

func (r *OrderRepository) publishCreated(tx *sql.Tx, order *models.Order) error {
	event := domainevents.OrderCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		OrderID:    order.ID,
		ItemID:     order.Item.ID,
		ItemName:   order.Item.Name,
		SupplierID: order.Supplier.ID,
		Quantity:   order.Quantity,
		TotalCost:  order.TotalCost.String(),
		OccurredAt: order.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicOrderCreated, event.EventID, event)
}

func (r *OrderRepository) publishChanged(tx *sql.Tx, order *models.Order) error {
	event := domainevents.OrderChangedEvent{
		EventID:       uuid.New(),
		Version:       1,
		OrderID:       order.ID,
		SupplierID:    order.Supplier.ID,
		Status:        order.Status.String(),
		PaymentStatus: order.Payment.Status.String(),
		OccurredAt:    time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicOrderChanged, event.EventID, event)
}

func (r *OrderRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
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

// orderArgs flattens an order into the insert argument list matching
// orderColumns.
func orderArgs(o *models.Order) []any {
	return []any{
		o.ID, o.Item.ID, o.Item.Name, o.Supplier.ID, o.Supplier.Name,
		o.Quantity, o.UnitPrice, o.TotalCost,
		o.Status.String(), o.RejectionReason, o.TrackingNumber,
		o.Payment.Status.String(), o.Payment.AmountPaid, string(o.Payment.Method),
		o.Payment.TransactionRef, o.Payment.Notes,
		o.Payment.SubmittedBy, nullTime(o.Payment.SubmittedAt), o.Payment.ApprovedBy,
		o.Payment.ProcessedBy, nullTime(o.Payment.ProcessedAt),
		o.Payment.RejectedBy, nullTime(o.Payment.RejectedAt), o.Payment.RejectionReason,
		o.Payment.SupplierConfirmed, o.Payment.ConfirmedByName, nullTime(o.Payment.ConfirmedAt), o.Payment.TransactionProof,
		o.CreatedAt, nullTime(o.DeliveryDate), nullTime(o.ReceivedAt), o.Version,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		o                                           models.Order
		status, paymentStatus, method               string
		submittedAt, processedAt, rejectedAt        sql.NullTime
		confirmedAt, deliveryDate, receivedAt       sql.NullTime
	)
	err := row.Scan(
		&o.ID, &o.Item.ID, &o.Item.Name, &o.Supplier.ID, &o.Supplier.Name,
		&o.Quantity, &o.UnitPrice, &o.TotalCost,
		&status, &o.RejectionReason, &o.TrackingNumber,
		&paymentStatus, &o.Payment.AmountPaid, &method,
		&o.Payment.TransactionRef, &o.Payment.Notes,
		&o.Payment.SubmittedBy, &submittedAt, &o.Payment.ApprovedBy,
		&o.Payment.ProcessedBy, &processedAt,
		&o.Payment.RejectedBy, &rejectedAt, &o.Payment.RejectionReason,
		&o.Payment.SupplierConfirmed, &o.Payment.ConfirmedByName, &confirmedAt, &o.Payment.TransactionProof,
		&o.CreatedAt, &deliveryDate, &receivedAt, &o.Version,
	)
	if err != nil {
		return nil, err
	}

	o.Status = models.OrderStatus(status)
	o.Payment.Status = models.PaymentStatus(paymentStatus)
	o.Payment.Method = models.PaymentMethod(method)
	o.Payment.SubmittedAt = submittedAt.Time
	o.Payment.ProcessedAt = processedAt.Time
	o.Payment.RejectedAt = rejectedAt.Time
	o.Payment.ConfirmedAt = confirmedAt.Time
	o.DeliveryDate = deliveryDate.Time
	o.ReceivedAt = receivedAt.Time
	return &o, nil
}

// nullTime maps a zero time to SQL NULL.
func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
