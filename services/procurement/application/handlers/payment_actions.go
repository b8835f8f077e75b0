package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stageops/pkg/errhttp"
	"github.com/ghuser/stageops/pkg/httpx"
	pkgvalidator "github.com/ghuser/stageops/pkg/validator"
	appsvcs "github.com/ghuser/stageops/services/procurement/application/services"
	"github.com/ghuser/stageops/services/procurement/domain/models"
)

// SubmitPaymentRequest is the request body for POST /orders/{id}/payment/submit.
// An empty amount requests the order's full total cost.
type SubmitPaymentRequest struct {
	Amount string `json:"amount" validate:"omitempty" example:"2500"`
	Method string `json:"method" validate:"required" example:"MPesa"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
} // @name SubmitPaymentRequest

// RejectPaymentRequest is the request body for POST /orders/{id}/payment/reject.
type RejectPaymentRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500" example:"amount exceeds approved budget"`
} // @name RejectPaymentRequest

// ProcessPaymentRequest is the request body for POST /orders/{id}/payment/process.
type ProcessPaymentRequest struct {
	AmountPaid     string `json:"amount_paid" validate:"required" example:"2500"`
	Method         string `json:"method" validate:"required" example:"MPesa"`
	TransactionRef string `json:"transaction_ref" validate:"omitempty,max=100" example:"ABC123"`
	Notes          string `json:"notes" validate:"omitempty,max=500"`
} // @name ProcessPaymentRequest

// ConfirmPaymentRequest is the request body for POST /orders/{id}/payment/confirm.
type ConfirmPaymentRequest struct {
	TransactionProof string `json:"transaction_proof" validate:"required,min=1,max=500" example:"mpesa-receipt-QX123"`
} // @name ConfirmPaymentRequest

// PaymentActionsHandler handles the payment sub-workflow transitions.
type PaymentActionsHandler struct {
	svc *appsvcs.Services
}

// NewPaymentActionsHandler returns a PaymentActionsHandler backed by the given services.
func NewPaymentActionsHandler(svc *appsvcs.Services) *PaymentActionsHandler {
	return &PaymentActionsHandler{svc: svc}
}

// Submit opens the payment sub-workflow on a received order.
//
//	@Summary		Submit payment
//	@Description	Inventory submits a payment request for a received order
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Order ID"
//	@Param			request	body		SubmitPaymentRequest	true	"Payment submission"
//	@Success		200		{object}	OrderResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/orders/{id}/payment/submit [post]
func (h *PaymentActionsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SubmitPaymentRequest](w, r)
	if !ok {
		return
	}

	amount := decimal.Zero
	if req.Amount != "" {
		var err error
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "amount must be a decimal number")
			return
		}
	}

	order, err := h.svc.Inventory.SubmitPayment(r.Context(), actor, appsvcs.SubmitPaymentCommand{
		OrderID: orderID,
		Amount:  amount,
		Method:  models.PaymentMethod(req.Method),
		Notes:   req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// Approve approves a submitted payment.
//
//	@Summary		Approve payment
//	@Description	Finance approves a submitted payment
//	@Tags			payments
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	OrderResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{id}/payment/approve [post]
func (h *PaymentActionsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	order, err := h.svc.Finance.ApprovePayment(r.Context(), actor, orderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// Reject rejects a submitted payment; inventory may resubmit later.
//
//	@Summary		Reject payment
//	@Description	Finance rejects a submitted payment with a reason (soft-terminal)
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Order ID"
//	@Param			request	body		RejectPaymentRequest	true	"Rejection reason"
//	@Success		200		{object}	OrderResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/orders/{id}/payment/reject [post]
func (h *PaymentActionsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[RejectPaymentRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Finance.RejectPayment(r.Context(), actor, orderID, req.Reason)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// Process settles an approved payment with final details.
//
//	@Summary		Process payment
//	@Description	Finance settles an approved payment; the order reaches Paid in the same write
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Order ID"
//	@Param			request	body		ProcessPaymentRequest	true	"Settlement details"
//	@Success		200		{object}	OrderResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/orders/{id}/payment/process [post]
func (h *PaymentActionsHandler) Process(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ProcessPaymentRequest](w, r)
	if !ok {
		return
	}

	amountPaid, err := decimal.NewFromString(req.AmountPaid)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "amount_paid must be a decimal number")
		return
	}

	order, err := h.svc.Finance.ProcessPayment(r.Context(), actor, appsvcs.ProcessPaymentCommand{
		OrderID:        orderID,
		AmountPaid:     amountPaid,
		Method:         models.PaymentMethod(req.Method),
		TransactionRef: req.TransactionRef,
		Notes:          req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// MarkPaid settles an approved payment reusing the recorded details.
//
//	@Summary		Mark payment paid
//	@Description	Finance shortcut: settle with the method and reference already on the record
//	@Tags			payments
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	OrderResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/orders/{id}/payment/mark-paid [post]
func (h *PaymentActionsHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	order, err := h.svc.Finance.MarkAsPaid(r.Context(), actor, orderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// Confirm records the supplier's acknowledgment of a settled payment.
//
//	@Summary		Confirm payment receipt
//	@Description	Supplier confirms receipt of a settled payment with transaction proof
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Order ID"
//	@Param			request	body		ConfirmPaymentRequest	true	"Confirmation proof"
//	@Success		200		{object}	OrderResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/orders/{id}/payment/confirm [post]
func (h *PaymentActionsHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ConfirmPaymentRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Supplier.ConfirmPaymentReceipt(r.Context(), actor, orderID, req.TransactionProof)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}
