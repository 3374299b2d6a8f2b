package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger/split"
	"github.com/Katoo2706/lunch-byte-buddies/pkg/response"
)

// Handler handles HTTP requests for order operations
type Handler struct {
	service *Service
}

// NewHandler creates a new order handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for order endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /orders
// @Summary      Record an order
// @Description  Record an individual or team lunch order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body CreateOrderRequest true "Order creation request"
// @Success      201 {object} response.APIResponse{data=OrderResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /orders [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	o, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPersonNotFound):
			response.NotFound(w, err.Error())
		case isValidationError(err):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to create order")
		}
		return
	}

	response.JSON(w, http.StatusCreated, ToResponse(*o))
}

// List handles GET /orders
// @Summary      List orders
// @Description  Get all orders, optionally filtered to a single date
// @Tags         orders
// @Produce      json
// @Param        date query string false "Filter by date (YYYY-MM-DD)"
// @Success      200 {object} response.APIResponse{data=[]OrderResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /orders [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var date *ledger.Date
	if q := r.URL.Query().Get("date"); q != "" {
		parsed, err := ledger.ParseDate(q)
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}
		date = &parsed
	}

	orders := h.service.List(r.Context(), date)

	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToResponse(o)
	}

	response.JSON(w, http.StatusOK, responses)
}

// Delete handles DELETE /orders/{id}
// @Summary      Delete an order
// @Description  Delete an order by its ID
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /orders/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete order")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

func isValidationError(err error) bool {
	for _, candidate := range []error{
		ErrPayerRequired,
		ErrNegativePrice,
		ErrNoTeamMembers,
		ErrSharesMismatch,
		ErrExactSharesTotal,
		ledger.ErrInvalidDate,
		split.ErrNoMembers,
		split.ErrNegativeAmount,
		split.ErrMissingPercentage,
		split.ErrInvalidPercentages,
		split.ErrPercentageOutOfRange,
		split.ErrMissingExactAmount,
		split.ErrZeroExactTotal,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}
