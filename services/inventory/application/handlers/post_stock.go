package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/stageops/pkg/errhttp"
	"github.com/ghuser/stageops/pkg/httpx"
	pkgvalidator "github.com/ghuser/stageops/pkg/validator"
	appsvcs "github.com/ghuser/stageops/services/inventory/application/services"
)

// AdjustStockRequest is the request body for restock and consume endpoints.
type AdjustStockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0" example:"25"`
} // @name AdjustStockRequest

// StockResponse reports the stock level after an adjustment.
type StockResponse struct {
	ItemID   uuid.UUID `json:"item_id"  example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity int       `json:"quantity" example:"65"`
} // @name StockResponse

// PostRestockHandler handles POST /items/{id}/restock requests.
type PostRestockHandler struct {
	svc *appsvcs.Services
}

// NewPostRestockHandler returns a PostRestockHandler backed by the given services.
func NewPostRestockHandler(svc *appsvcs.Services) *PostRestockHandler {
	return &PostRestockHandler{svc: svc}
}

// Execute credits stock outside the order flow.
//
//	@Summary		Restock item
//	@Description	Credits stock directly, outside the order lifecycle
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		AdjustStockRequest	true	"Restock request"
//	@Success		200		{object}	StockResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{id}/restock [post]
func (h *PostRestockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AdjustStockRequest](w, r)
	if !ok {
		return
	}

	quantity, err := h.svc.Stock.Restock(r.Context(), itemID, req.Quantity)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, StockResponse{ItemID: itemID, Quantity: quantity})
}

// PostConsumeHandler handles POST /items/{id}/consume requests, used by
// material-request fulfillment to draw down stock.
type PostConsumeHandler struct {
	svc *appsvcs.Services
}

// NewPostConsumeHandler returns a PostConsumeHandler backed by the given services.
func NewPostConsumeHandler(svc *appsvcs.Services) *PostConsumeHandler {
	return &PostConsumeHandler{svc: svc}
}

// Execute debits stock; fails when the debit would go negative.
//
//	@Summary		Consume stock
//	@Description	Debits stock for a material request; rejects debits that would go negative
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		AdjustStockRequest	true	"Consume request"
//	@Success		200		{object}	StockResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/items/{id}/consume [post]
func (h *PostConsumeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AdjustStockRequest](w, r)
	if !ok {
		return
	}

	quantity, err := h.svc.Stock.Decrement(r.Context(), itemID, req.Quantity, appsvcs.ReasonConsumed)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, StockResponse{ItemID: itemID, Quantity: quantity})
}
