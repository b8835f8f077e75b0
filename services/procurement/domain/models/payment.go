package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the sub-record embedded in every Order. It carries its own
// status machine plus attribution stamps for each decision.
type Payment struct {
	Status         PaymentStatus
	AmountPaid     decimal.Decimal
	Method         PaymentMethod
	TransactionRef string
	Notes          string

	SubmittedBy string
	SubmittedAt time.Time

	ApprovedBy string

	ProcessedBy string
	ProcessedAt time.Time

	RejectedBy      string
	RejectedAt      time.Time
	RejectionReason string

	SupplierConfirmed bool
	ConfirmedByName   string
	ConfirmedAt       time.Time
	TransactionProof  string
}

// NewPayment returns the zero-value payment record every order starts with.
func NewPayment() Payment {
	return Payment{Status: PaymentPending}
}

// sameSubmission reports whether a retried submission matches what is
// already recorded, making the retry a no-op.
func (p Payment) sameSubmission(actor Actor, amount decimal.Decimal, method PaymentMethod, notes string) bool {
	return p.SubmittedBy == actor.Name &&
		p.AmountPaid.Equal(amount) &&
		p.Method == method &&
		p.Notes == notes
}

// sameSettlement reports whether a retried ProcessPayment matches the
// settlement already recorded.
func (p Payment) sameSettlement(actor Actor, amount decimal.Decimal, method PaymentMethod, ref string) bool {
	return p.ProcessedBy == actor.Name &&
		p.AmountPaid.Equal(amount) &&
		p.Method == method &&
		p.TransactionRef == ref
}

// clearRejection removes the stamps of a prior soft-terminal rejection when
// the payment is resubmitted.
func (p *Payment) clearRejection() {
	p.RejectedBy = ""
	p.RejectedAt = time.Time{}
	p.RejectionReason = ""
}
