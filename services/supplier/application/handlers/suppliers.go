package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/pkg/errhttp"
	"github.com/ghuser/stageops/pkg/httpx"
	pkgvalidator "github.com/ghuser/stageops/pkg/validator"
	appsvcs "github.com/ghuser/stageops/services/supplier/application/services"
)

// CreateSupplierRequest is the request body for POST /suppliers.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255" example:"Nairobi Stagecraft Ltd"`
	Contact string `json:"contact" validate:"omitempty,max=255" example:"sales@stagecraft.example"`
	Phone   string `json:"phone" validate:"omitempty,max=50" example:"+254700000000"`
} // @name CreateSupplierRequest

// SupplierResponse is the JSON shape for a single supplier.
type SupplierResponse struct {
	ID        uuid.UUID `json:"id"         example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name"       example:"Nairobi Stagecraft Ltd"`
	Contact   string    `json:"contact"    example:"sales@stagecraft.example"`
	Phone     string    `json:"phone"      example:"+254700000000"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name SupplierResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"supplier not found"`
} // @name SupplierErrorResponse

// PostSupplierHandler handles POST /suppliers requests.
type PostSupplierHandler struct {
	svc *appsvcs.Services
}

// NewPostSupplierHandler returns a PostSupplierHandler backed by the given services.
func NewPostSupplierHandler(svc *appsvcs.Services) *PostSupplierHandler {
	return &PostSupplierHandler{svc: svc}
}

// Execute registers a new supplier.
//
//	@Summary		Create supplier
//	@Description	Registers a new external supplier
//	@Tags			suppliers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSupplierRequest	true	"Supplier creation request"
//	@Success		201		{object}	SupplierResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/suppliers [post]
func (h *PostSupplierHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateSupplierRequest](w, r)
	if !ok {
		return
	}

	supplier, err := h.svc.Supplier.Create(r.Context(), req.Name, req.Contact, req.Phone)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, SupplierResponse{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Contact:   supplier.Contact,
		Phone:     supplier.Phone,
		CreatedAt: supplier.CreatedAt,
	})
}

// GetSuppliersHandler handles GET /suppliers requests.
type GetSuppliersHandler struct {
	svc *appsvcs.Services
}

// NewGetSuppliersHandler returns a GetSuppliersHandler backed by the given services.
func NewGetSuppliersHandler(svc *appsvcs.Services) *GetSuppliersHandler {
	return &GetSuppliersHandler{svc: svc}
}

// Execute lists registered suppliers.
//
//	@Summary		List suppliers
//	@Description	Returns all registered suppliers
//	@Tags			suppliers
//	@Produce		json
//	@Success		200	{array}	SupplierResponse
//	@Router			/suppliers [get]
func (h *GetSuppliersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.Supplier.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		resp[i] = SupplierResponse{
			ID:        s.ID,
			Name:      s.Name,
			Contact:   s.Contact,
			Phone:     s.Phone,
			CreatedAt: s.CreatedAt,
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
