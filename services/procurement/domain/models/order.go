package models

import (
	"encoding/base32"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stageops/services/procurement/domain"
)

// ItemRef is a snapshot of the ordered item taken at creation time.
type ItemRef struct {
	ID   uuid.UUID
	Name string
}

// SupplierRef is a snapshot of the supplier taken at creation time.
type SupplierRef struct {
	ID   uuid.UUID
	Name string
}

// Order is the central procurement aggregate. It owns the fulfillment status
// and embeds the Payment record; all transitions go through the methods below
// so the two dimensions can never skew.
//
// Every mutating method returns (changed, err). changed=false with a nil
// error means the transition was already applied with identical parameters
// and the retry is a no-op; callers must not persist or re-run side effects
// in that case.
type Order struct {
	ID       uuid.UUID
	Item     ItemRef
	Supplier SupplierRef

	Quantity  int
	UnitPrice decimal.Decimal
	TotalCost decimal.Decimal

	Status          OrderStatus
	RejectionReason string
	TrackingNumber  string

	Payment Payment

	CreatedAt    time.Time
	DeliveryDate time.Time
	ReceivedAt   time.Time

	// Version is the optimistic concurrency token; incremented on every
	// persisted mutation.
	Version int64
}

// NewOrder constructs a Pending order with a computed total cost.
func NewOrder(item ItemRef, supplier SupplierRef, quantity int, unitPrice decimal.Decimal) (*Order, error) {
	if item.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: item is required", domain.ErrValidation)
	}
	if supplier.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: supplier is required", domain.ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price must be positive", domain.ErrValidation)
	}

	o := &Order{
		ID:        uuid.New(),
		Item:      item,
		Supplier:  supplier,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Status:    OrderPending,
		Payment:   NewPayment(),
		CreatedAt: time.Now().UTC(),
		Version:   1,
	}
	o.recomputeTotal()
	return o, nil
}

// recomputeTotal derives TotalCost from quantity and unit price. It is the
// only writer of TotalCost.
func (o *Order) recomputeTotal() {
	o.TotalCost = o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// Approve moves a pending order to Approved. Retrying on an already-approved
// order is a no-op.
func (o *Order) Approve(actor Actor) (bool, error) {
	if o.Status == OrderApproved {
		return false, nil
	}
	if o.Status != OrderPending {
		return false, domain.NewOrderTransitionError(o.Status.String(), OrderApproved.String())
	}
	o.Status = OrderApproved
	return true, nil
}

// Reject moves a pending order to Rejected, recording an optional reason.
// Rejected is terminal for the fulfillment dimension. A retry with the same
// reason is a no-op; a retry with a different reason is a conflict.
func (o *Order) Reject(actor Actor, reason string) (bool, error) {
	if o.Status == OrderRejected {
		if o.RejectionReason == reason {
			return false, nil
		}
		return false, fmt.Errorf("%w: order already rejected with a different reason", domain.ErrConflict)
	}
	if o.Status != OrderPending {
		return false, domain.NewOrderTransitionError(o.Status.String(), OrderRejected.String())
	}
	o.Status = OrderRejected
	o.RejectionReason = reason
	return true, nil
}

// MarkDelivered moves an approved order to Delivered, generating the tracking
// number and stamping the delivery date. The tracking number is assigned here
// exactly once and never supplied by a caller.
func (o *Order) MarkDelivered(actor Actor) (bool, error) {
	if o.Status == OrderDelivered {
		return false, nil
	}
	if o.Status != OrderApproved {
		return false, domain.NewOrderTransitionError(o.Status.String(), OrderDelivered.String())
	}
	o.Status = OrderDelivered
	o.TrackingNumber = newTrackingNumber()
	o.DeliveryDate = time.Now().UTC()
	return true, nil
}

// MarkReceived moves a delivered order to Received. The caller credits the
// stock ledger in the same transaction when (and only when) this returns
// changed=true, so a duplicate call can never add stock twice.
func (o *Order) MarkReceived(actor Actor) (bool, error) {
	if o.Status == OrderReceived || o.Status == OrderPaid {
		return false, nil
	}
	if o.Status != OrderDelivered {
		return false, domain.NewOrderTransitionError(o.Status.String(), OrderReceived.String())
	}
	o.Status = OrderReceived
	o.ReceivedAt = time.Now().UTC()
	return true, nil
}

// SubmitPayment opens the payment sub-workflow on a received order. A
// rejected payment may be resubmitted; the prior rejection stamps are
// cleared. If amount is zero the order's total cost is requested.
func (o *Order) SubmitPayment(actor Actor, amount decimal.Decimal, method PaymentMethod, notes string) (bool, error) {
	if amount.IsZero() {
		amount = o.TotalCost
	}
	if !amount.IsPositive() {
		return false, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !method.IsValid() {
		return false, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, string(method))
	}

	switch o.Payment.Status {
	case PaymentSubmitted:
		if o.Payment.sameSubmission(actor, amount, method, notes) {
			return false, nil
		}
		return false, fmt.Errorf("%w: payment already submitted with different details", domain.ErrConflict)
	case PaymentPending, PaymentRejected:
		// fall through to guard on the fulfillment dimension
	default:
		return false, domain.NewPaymentTransitionError(o.Payment.Status.String(), PaymentSubmitted.String())
	}

	if o.Status != OrderReceived {
		return false, domain.NewOrderTransitionError(o.Status.String(), "payment submission")
	}

	o.Payment.clearRejection()
	o.Payment.Status = PaymentSubmitted
	o.Payment.AmountPaid = amount
	o.Payment.Method = method
	o.Payment.Notes = notes
	o.Payment.SubmittedBy = actor.Name
	o.Payment.SubmittedAt = time.Now().UTC()
	return true, nil
}

// ApprovePayment records a finance approval of a submitted payment. Retrying
// is a no-op only for the actor that already approved; anyone else racing a
// concurrent decision observes the guard failure.
func (o *Order) ApprovePayment(actor Actor) (bool, error) {
	if o.Payment.Status == PaymentApproved {
		if o.Payment.ApprovedBy == actor.Name {
			return false, nil
		}
		return false, domain.NewPaymentTransitionError(o.Payment.Status.String(), PaymentApproved.String())
	}
	if o.Payment.Status != PaymentSubmitted {
		return false, domain.NewPaymentTransitionError(o.Payment.Status.String(), PaymentApproved.String())
	}
	o.Payment.Status = PaymentApproved
	o.Payment.ApprovedBy = actor.Name
	return true, nil
}

// RejectPayment records a finance rejection of a submitted payment. The
// rejection is soft-terminal: the order stays Received and the payment may be
// resubmitted later.
func (o *Order) RejectPayment(actor Actor, reason string) (bool, error) {
	if o.Payment.Status == PaymentRejected {
		if o.Payment.RejectedBy == actor.Name && o.Payment.RejectionReason == reason {
			return false, nil
		}
		return false, fmt.Errorf("%w: payment already rejected with different details", domain.ErrConflict)
	}
	if o.Payment.Status != PaymentSubmitted {
		return false, domain.NewPaymentTransitionError(o.Payment.Status.String(), PaymentRejected.String())
	}
	o.Payment.Status = PaymentRejected
	o.Payment.RejectedBy = actor.Name
	o.Payment.RejectedAt = time.Now().UTC()
	o.Payment.RejectionReason = reason
	return true, nil
}

// ProcessPayment settles an approved payment. The order's fulfillment status
// moves to Paid in the same aggregate write, so the two dimensions can never
// skew. Validation failures leave the payment untouched at Approved.
func (o *Order) ProcessPayment(actor Actor, amountPaid decimal.Decimal, method PaymentMethod, transactionRef, notes string) (bool, error) {
	if !amountPaid.IsPositive() {
		return false, fmt.Errorf("%w: amount paid must be positive", domain.ErrValidation)
	}
	if !method.IsValid() {
		return false, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, string(method))
	}
	if method.RequiresTransactionRef() && transactionRef == "" {
		return false, fmt.Errorf("%w: transaction reference is required for %s payments", domain.ErrValidation, method)
	}

	if o.Payment.Status == PaymentPaid {
		if o.Payment.sameSettlement(actor, amountPaid, method, transactionRef) {
			return false, nil
		}
		return false, fmt.Errorf("%w: payment already settled with different details", domain.ErrConflict)
	}
	if o.Payment.Status != PaymentApproved {
		return false, domain.NewPaymentTransitionError(o.Payment.Status.String(), PaymentPaid.String())
	}

	o.Payment.Status = PaymentPaid
	o.Payment.AmountPaid = amountPaid
	o.Payment.Method = method
	o.Payment.TransactionRef = transactionRef
	if notes != "" {
		o.Payment.Notes = notes
	}
	o.Payment.ProcessedBy = actor.Name
	o.Payment.ProcessedAt = time.Now().UTC()
	o.Status = OrderPaid
	return true, nil
}

// MarkPaymentPaid is the finance shortcut for ProcessPayment: the method,
// amount, and transaction reference already on the record are reused.
func (o *Order) MarkPaymentPaid(actor Actor) (bool, error) {
	if o.Payment.Status == PaymentPaid {
		if o.Payment.ProcessedBy == actor.Name {
			return false, nil
		}
		return false, domain.NewPaymentTransitionError(o.Payment.Status.String(), PaymentPaid.String())
	}
	if o.Payment.Status != PaymentApproved {
		return false, domain.NewPaymentTransitionError(o.Payment.Status.String(), PaymentPaid.String())
	}
	return o.ProcessPayment(actor, o.Payment.AmountPaid, o.Payment.Method, o.Payment.TransactionRef, "")
}

// ConfirmPaymentReceipt records the supplier's acknowledgment of a settled
// payment. Requires a non-empty proof; a retry with the same proof is a
// no-op, a retry with a different proof is a conflict.
func (o *Order) ConfirmPaymentReceipt(actor Actor, transactionProof string) (bool, error) {
	if transactionProof == "" {
		return false, fmt.Errorf("%w: transaction proof is required", domain.ErrValidation)
	}
	if o.Payment.SupplierConfirmed {
		if o.Payment.TransactionProof == transactionProof {
			return false, nil
		}
		return false, fmt.Errorf("%w: receipt already confirmed with a different proof", domain.ErrConflict)
	}
	if o.Payment.Status != PaymentPaid {
		return false, domain.NewPaymentTransitionError(o.Payment.Status.String(), "supplier confirmation")
	}
	o.Payment.SupplierConfirmed = true
	o.Payment.ConfirmedByName = actor.Name
	o.Payment.ConfirmedAt = time.Now().UTC()
	o.Payment.TransactionProof = transactionProof
	return true, nil
}

// AwaitingConfirmation reports whether the payment has settled but the
// supplier has not yet acknowledged receipt.
func (o *Order) AwaitingConfirmation() bool {
	return o.Payment.Status == PaymentPaid && !o.Payment.SupplierConfirmed
}

// trackingEncoding is unpadded base32 so tracking numbers stay short and
// unambiguous in print.
var trackingEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// newTrackingNumber derives a "TRK-" prefixed code from a random UUID.
func newTrackingNumber() string {
	id := uuid.New()
	return "TRK-" + trackingEncoding.EncodeToString(id[:])[:10]
}
