package models

// OrderStatus is the fulfillment dimension of an order's lifecycle.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderRejected  OrderStatus = "rejected"
	OrderDelivered OrderStatus = "delivered"
	OrderReceived  OrderStatus = "received"
	OrderPaid      OrderStatus = "paid"
)

// IsValid reports whether s is a member of the closed OrderStatus set.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderRejected, OrderDelivered, OrderReceived, OrderPaid:
		return true
	}
	return false
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the fulfillment dimension may move from s
// to target. This table is the single source of truth for fulfillment
// transitions; the aggregate methods consult it before mutating anything.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderPending:
		return target == OrderApproved || target == OrderRejected
	case OrderApproved:
		return target == OrderDelivered
	case OrderDelivered:
		return target == OrderReceived
	case OrderReceived:
		// Paid is reached only through the payment sub-workflow.
		return target == OrderPaid
	case OrderRejected, OrderPaid:
		return false
	}
	return false
}

// PaymentStatus is the payment dimension of an order's lifecycle, tracked on
// the embedded Payment record independently of fulfillment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSubmitted PaymentStatus = "submitted"
	PaymentApproved  PaymentStatus = "approved"
	PaymentRejected  PaymentStatus = "rejected"
	PaymentPaid      PaymentStatus = "paid"
)

// IsValid reports whether s is a member of the closed PaymentStatus set.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentSubmitted, PaymentApproved, PaymentRejected, PaymentPaid:
		return true
	}
	return false
}

// String returns the string representation of the status.
func (s PaymentStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the payment dimension may move from s to
// target. Rejected is soft-terminal: the business may resubmit, so
// Rejected -> Submitted is a legal edge. No edge ever moves backwards past a
// decision that has been acted on.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return target == PaymentSubmitted
	case PaymentSubmitted:
		return target == PaymentApproved || target == PaymentRejected
	case PaymentApproved:
		return target == PaymentPaid
	case PaymentRejected:
		return target == PaymentSubmitted
	case PaymentPaid:
		return false
	}
	return false
}

// PaymentMethod is the closed set of supported settlement methods.
type PaymentMethod string

const (
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodMPesa        PaymentMethod = "MPesa"
	MethodCheque       PaymentMethod = "Cheque"
	MethodCash         PaymentMethod = "Cash"
	MethodOther        PaymentMethod = "Other"
)

// IsValid reports whether m is a member of the closed PaymentMethod set.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodBankTransfer, MethodMPesa, MethodCheque, MethodCash, MethodOther:
		return true
	}
	return false
}

// String returns the string representation of the method.
func (m PaymentMethod) String() string {
	return string(m)
}

// RequiresTransactionRef reports whether the method needs an external
// transaction reference. Cash settlements are the only exception.
func (m PaymentMethod) RequiresTransactionRef() bool {
	return m != MethodCash
}
