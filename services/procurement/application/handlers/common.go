// Package handlers exposes the procurement HTTP surface. Each handler parses
// and validates raw input into a typed command at the boundary, resolves the
// acting credential, and hands both to the matching role gateway.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/stageops/pkg/auth"
	"github.com/ghuser/stageops/pkg/httpx"
	"github.com/ghuser/stageops/services/procurement/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"order cannot move from \"pending\" to \"delivered\""`
} // @name OrderErrorResponse

// PaymentResponse is the embedded payment record in an order response.
type PaymentResponse struct {
	Status            string     `json:"status"              example:"submitted"`
	AmountPaid        string     `json:"amount_paid"         example:"2500"`
	Method            string     `json:"method,omitempty"    example:"MPesa"`
	TransactionRef    string     `json:"transaction_ref,omitempty" example:"ABC123"`
	Notes             string     `json:"notes,omitempty"`
	SubmittedBy       string     `json:"submitted_by,omitempty"`
	SubmittedAt       *time.Time `json:"submitted_at,omitempty"`
	ApprovedBy        string     `json:"approved_by,omitempty"`
	ProcessedBy       string     `json:"processed_by,omitempty"`
	ProcessedAt       *time.Time `json:"processed_at,omitempty"`
	RejectedBy        string     `json:"rejected_by,omitempty"`
	RejectedAt        *time.Time `json:"rejected_at,omitempty"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	SupplierConfirmed bool       `json:"supplier_confirmed"`
	ConfirmedByName   string     `json:"confirmed_by_name,omitempty"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
	TransactionProof  string     `json:"transaction_proof,omitempty"`
} // @name PaymentResponse

// OrderResponse is the JSON shape for a single order.
type OrderResponse struct {
	ID              uuid.UUID       `json:"id"`
	ItemID          uuid.UUID       `json:"item_id"`
	ItemName        string          `json:"item_name"       example:"Stage paint (black)"`
	SupplierID      uuid.UUID       `json:"supplier_id"`
	SupplierName    string          `json:"supplier_name"   example:"Nairobi Stagecraft Ltd"`
	Quantity        int             `json:"quantity"        example:"10"`
	UnitPrice       string          `json:"unit_price"      example:"250"`
	TotalCost       string          `json:"total_cost"      example:"2500"`
	Status          string          `json:"status"          example:"pending"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	TrackingNumber  string          `json:"tracking_number,omitempty" example:"TRK-A1B2C3D4E5"`
	Payment         PaymentResponse `json:"payment"`
	CreatedAt       time.Time       `json:"created_at"`
	DeliveryDate    *time.Time      `json:"delivery_date,omitempty"`
	ReceivedAt      *time.Time      `json:"received_at,omitempty"`
} // @name OrderResponse

// toOrderResponse maps a domain order to its JSON shape.
func toOrderResponse(o *models.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		ItemID:          o.Item.ID,
		ItemName:        o.Item.Name,
		SupplierID:      o.Supplier.ID,
		SupplierName:    o.Supplier.Name,
		Quantity:        o.Quantity,
		UnitPrice:       o.UnitPrice.String(),
		TotalCost:       o.TotalCost.String(),
		Status:          o.Status.String(),
		RejectionReason: o.RejectionReason,
		TrackingNumber:  o.TrackingNumber,
		Payment:         toPaymentResponse(o.Payment),
		CreatedAt:       o.CreatedAt,
		DeliveryDate:    timePtr(o.DeliveryDate),
		ReceivedAt:      timePtr(o.ReceivedAt),
	}
}

func toPaymentResponse(p models.Payment) PaymentResponse {
	return PaymentResponse{
		Status:            p.Status.String(),
		AmountPaid:        p.AmountPaid.String(),
		Method:            string(p.Method),
		TransactionRef:    p.TransactionRef,
		Notes:             p.Notes,
		SubmittedBy:       p.SubmittedBy,
		SubmittedAt:       timePtr(p.SubmittedAt),
		ApprovedBy:        p.ApprovedBy,
		ProcessedBy:       p.ProcessedBy,
		ProcessedAt:       timePtr(p.ProcessedAt),
		RejectedBy:        p.RejectedBy,
		RejectedAt:        timePtr(p.RejectedAt),
		RejectionReason:   p.RejectionReason,
		SupplierConfirmed: p.SupplierConfirmed,
		ConfirmedByName:   p.ConfirmedByName,
		ConfirmedAt:       timePtr(p.ConfirmedAt),
		TransactionProof:  p.TransactionProof,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// actorFromRequest resolves the acting credential injected by the auth
// middleware and parses its role into the closed domain type. Writes the
// error response and returns ok=false on failure.
func actorFromRequest(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	identity, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return models.Actor{}, false
	}
	role, err := models.ParseRole(identity.Role)
	if err != nil {
		httpx.JSONError(w, http.StatusForbidden, "unrecognized role")
		return models.Actor{}, false
	}
	return models.Actor{
		ID:         identity.ID,
		Name:       identity.Name,
		Role:       role,
		SupplierID: identity.SupplierID,
	}, true
}

// orderIDFromRequest parses the {id} path parameter. Writes the error
// response and returns ok=false on failure.
func orderIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid order id")
		return uuid.Nil, false
	}
	return id, true
}
