package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/pkg/errhttp"
	"github.com/ghuser/stageops/pkg/httpx"
	pkgvalidator "github.com/ghuser/stageops/pkg/validator"
	appsvcs "github.com/ghuser/stageops/services/inventory/application/services"
	"github.com/ghuser/stageops/services/inventory/domain/models"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255" example:"Stage paint (black)"`
	Category     string `json:"category" validate:"required,min=1,max=100" example:"scenery"`
	Quantity     int    `json:"quantity" validate:"gte=0" example:"40"`
	MinThreshold int    `json:"min_threshold" validate:"gte=0" example:"10"`
	Unit         string `json:"unit" validate:"required,min=1,max=50" example:"litre"`
} // @name CreateItemRequest

// ItemResponse is the JSON shape for a single item.
type ItemResponse struct {
	ID           uuid.UUID `json:"id"            example:"123e4567-e89b-12d3-a456-426614174000"`
	Name         string    `json:"name"          example:"Stage paint (black)"`
	Category     string    `json:"category"      example:"scenery"`
	Quantity     int       `json:"quantity"      example:"40"`
	MinThreshold int       `json:"min_threshold" example:"10"`
	Unit         string    `json:"unit"          example:"litre"`
	LowStock     bool      `json:"low_stock"     example:"false"`
	CreatedAt    time.Time `json:"created_at"    example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name InventoryErrorResponse

// toItemResponse maps a domain item to its JSON shape.
func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		Name:         item.Name.String(),
		Category:     item.Category,
		Quantity:     item.Quantity,
		MinThreshold: item.MinThreshold,
		Unit:         item.Unit,
		LowStock:     item.BelowThreshold(),
		CreatedAt:    item.CreatedAt,
	}
}

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new stocked item.
//
//	@Summary		Create item
//	@Description	Registers a new stocked material
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, req.Category, req.Quantity, req.MinThreshold, req.Unit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
