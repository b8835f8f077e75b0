package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stageops/pkg/errhttp"
	"github.com/ghuser/stageops/pkg/httpx"
	pkgvalidator "github.com/ghuser/stageops/pkg/validator"
	appsvcs "github.com/ghuser/stageops/services/procurement/application/services"
)

// CreateOrderRequest is the request body for POST /orders. Price arrives as a
// string and is parsed strictly; anything non-numeric is rejected before the
// domain sees it.
type CreateOrderRequest struct {
	ItemID     uuid.UUID `json:"item_id" validate:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	SupplierID uuid.UUID `json:"supplier_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Quantity   int       `json:"quantity" validate:"required,gt=0" example:"10"`
	UnitPrice  string    `json:"unit_price" validate:"required" example:"250"`
} // @name CreateOrderRequest

// PostOrderHandler handles POST /orders requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderHandler returns a PostOrderHandler backed by the given services.
func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute creates a procurement order.
//
//	@Summary		Create order
//	@Description	Creates a pending procurement order against an item and a supplier (inventory role)
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order creation request"
//	@Success		201		{object}	OrderResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/orders [post]
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "unit_price must be a decimal number")
		return
	}

	order, err := h.svc.Inventory.CreateOrder(r.Context(), actor, appsvcs.CreateOrderCommand{
		ItemID:     req.ItemID,
		SupplierID: req.SupplierID,
		Quantity:   req.Quantity,
		UnitPrice:  unitPrice,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toOrderResponse(order))
}
