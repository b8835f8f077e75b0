package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/stageops/pkg/errhttp"
	"github.com/ghuser/stageops/pkg/httpx"
	appsvcs "github.com/ghuser/stageops/services/procurement/application/services"
	"github.com/ghuser/stageops/services/procurement/domain/models"
	"github.com/ghuser/stageops/services/procurement/domain/repositories"
)

// OrderListResponse is the paginated order list shape.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total" example:"42"`
	Limit  int             `json:"limit" example:"20"`
	Offset int             `json:"offset" example:"0"`
} // @name OrderListResponse

// DashboardResponse is the per-role landing summary.
type DashboardResponse struct {
	Role                 string `json:"role" example:"finance"`
	Pending              int    `json:"pending"`
	Approved             int    `json:"approved"`
	Rejected             int    `json:"rejected"`
	Delivered            int    `json:"delivered"`
	Received             int    `json:"received"`
	Paid                 int    `json:"paid"`
	PaymentsSubmitted    int    `json:"payments_submitted"`
	AwaitingConfirmation int    `json:"awaiting_confirmation"`
} // @name DashboardResponse

// GetOrdersHandler serves the procurement read side.
type GetOrdersHandler struct {
	svc *appsvcs.Services
}

// NewGetOrdersHandler returns a GetOrdersHandler backed by the given services.
func NewGetOrdersHandler(svc *appsvcs.Services) *GetOrdersHandler {
	return &GetOrdersHandler{svc: svc}
}

// List searches orders.
//
//	@Summary		List orders
//	@Description	Lists orders newest first; suppliers only ever see their own
//	@Tags			orders
//	@Produce		json
//	@Param			q		query		string	false	"Match item name, order id, or tracking number"
//	@Param			status	query		string	false	"Filter by order status"
//	@Param			limit	query		int		false	"Page size (default 20, max 100)"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	OrderListResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/orders [get]
func (h *GetOrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	q := repositories.SearchQuery{
		Text:   r.URL.Query().Get("q"),
		Limit:  intQuery(r, "limit", 20),
		Offset: intQuery(r, "offset", 0),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.OrderStatus(raw)
		if !status.IsValid() {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "unknown order status")
			return
		}
		q.Status = &status
	}

	orders, total, err := h.svc.Projection.Search(r.Context(), actor, q)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := OrderListResponse{
		Orders: make([]OrderResponse, 0, len(orders)),
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Get returns a single order.
//
//	@Summary		Get order
//	@Description	Returns one order; suppliers may only read orders bound to them
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	OrderResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id} [get]
func (h *GetOrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	orderID, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	order, err := h.svc.Projection.GetOrder(r.Context(), actor, orderID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// Dashboard returns the calling role's status counts.
//
//	@Summary		Role dashboard
//	@Description	Status counts for the calling role, recomputed from the order store
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	DashboardResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/dashboard [get]
func (h *GetOrdersHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	dash, err := h.svc.Projection.Dashboard(r.Context(), actor)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, DashboardResponse{
		Role:                 dash.Role.String(),
		Pending:              dash.Counts.Pending,
		Approved:             dash.Counts.Approved,
		Rejected:             dash.Counts.Rejected,
		Delivered:            dash.Counts.Delivered,
		Received:             dash.Counts.Received,
		Paid:                 dash.Counts.Paid,
		PaymentsSubmitted:    dash.Counts.PaymentsSubmitted,
		AwaitingConfirmation: dash.Counts.AwaitingConfirmation,
	})
}

func intQuery(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
