package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/stageops/pkg/errhttp"
	"github.com/ghuser/stageops/pkg/httpx"
	appsvcs "github.com/ghuser/stageops/services/inventory/application/services"
	"github.com/ghuser/stageops/services/inventory/domain/repositories"
)

// ListItemsResponse is the paginated item list.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total" example:"42"`
} // @name ListItemsResponse

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists stocked items.
//
//	@Summary		List items
//	@Description	Returns stocked items, paginated
//	@Tags			inventory
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 20, max 100)"
//	@Param			offset	query		int	false	"Offset"
//	@Success		200		{object}	ListItemsResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	opts := repositories.QueryOpts{Limit: 20}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		opts.Limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		opts.Offset = v
	}

	items, total, err := h.svc.Item.List(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListItemsResponse{Items: make([]ItemResponse, len(items)), Total: total}
	for i, item := range items {
		resp.Items[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// GetLowStockHandler handles GET /items/low-stock requests.
type GetLowStockHandler struct {
	svc *appsvcs.Services
}

// NewGetLowStockHandler returns a GetLowStockHandler backed by the given services.
func NewGetLowStockHandler(svc *appsvcs.Services) *GetLowStockHandler {
	return &GetLowStockHandler{svc: svc}
}

// Execute lists items at or under their reorder threshold.
//
//	@Summary		List low-stock items
//	@Description	Returns items whose quantity is at or under the reorder threshold
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{object}	ListItemsResponse
//	@Router			/items/low-stock [get]
func (h *GetLowStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.LowStock(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListItemsResponse{Items: make([]ItemResponse, len(items)), Total: len(items)}
	for i, item := range items {
		resp.Items[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
