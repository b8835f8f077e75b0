package handlers

import (
	"net/http"

	"github.com/ghuser/stageops/pkg/errhttp"
	"github.com/ghuser/stageops/pkg/httpx"
	pkgvalidator "github.com/ghuser/stageops/pkg/validator"
	appsvcs "github.com/ghuser/stageops/services/procurement/application/services"
)

// RejectOrderRequest is the request body for POST /orders/{id}/reject.
type RejectOrderRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500" example:"cannot source this item"`
} // @name RejectOrderRequest

// OrderActionsHandler handles the fulfillment transitions on an order.
type OrderActionsHandler struct {
	svc *appsvcs.Services
}

// NewOrderActionsHandler returns an OrderActionsHandler backed by the given services.
func NewOrderActionsHandler(svc *appsvcs.Services) *OrderActionsHandler {
	return &OrderActionsHandler{svc: svc}
}

// Approve accepts a pending order.
//
//	@Summary		Approve order
//	@Description	Supplier accepts a pending order
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	OrderResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{id}/approve [post]
func (h *OrderActionsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	order, err := h.svc.Supplier.ApproveOrder(r.Context(), actor, orderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// Reject declines a pending order.
//
//	@Summary		Reject order
//	@Description	Supplier declines a pending order with an optional reason; terminal
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Order ID"
//	@Param			request	body		RejectOrderRequest	false	"Rejection reason"
//	@Success		200		{object}	OrderResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/orders/{id}/reject [post]
func (h *OrderActionsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[RejectOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Supplier.RejectOrder(r.Context(), actor, orderID, req.Reason)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// Deliver marks an approved order as dispatched.
//
//	@Summary		Mark order delivered
//	@Description	Supplier marks an approved order delivered; the server assigns the tracking number
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	OrderResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{id}/deliver [post]
func (h *OrderActionsHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	order, err := h.svc.Supplier.MarkDelivered(r.Context(), actor, orderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// Receive confirms physical receipt and credits the stock ledger.
//
//	@Summary		Mark order received
//	@Description	Inventory confirms receipt; item stock is credited in the same transaction
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	OrderResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/orders/{id}/receive [post]
func (h *OrderActionsHandler) Receive(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	order, err := h.svc.Inventory.MarkReceived(r.Context(), actor, orderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}
