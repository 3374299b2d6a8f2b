package person

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Katoo2706/lunch-byte-buddies/pkg/response"
)

// Handler handles HTTP requests for person operations
type Handler struct {
	service *Service
}

// NewHandler creates a new person handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for person endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/balances", h.Balances)
	r.Put("/{id}", h.Update)
	r.Put("/{id}/default-payer", h.SetDefaultPayer)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /people
// @Summary      Add a person
// @Description  Add a person to the lunch group
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        request body CreatePersonRequest true "Person creation request"
// @Success      201 {object} response.APIResponse{data=PersonResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /people [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) || errors.Is(err, ErrInvalidGender) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create person")
		return
	}

	response.JSON(w, http.StatusCreated, ToResponse(*p))
}

// List handles GET /people
// @Summary      List people
// @Description  Get every person in the lunch group
// @Tags         people
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]PersonResponse}
// @Router       /people [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	people := h.service.List(r.Context())

	responses := make([]*PersonResponse, len(people))
	for i, p := range people {
		responses[i] = ToResponse(p)
	}

	response.JSON(w, http.StatusOK, responses)
}

// Balances handles GET /people/balances
// @Summary      Get balances
// @Description  Recompute every person's net balance from the full order and settlement history
// @Tags         people
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]BalanceResponse}
// @Router       /people/balances [get]
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	balances := h.service.Balances(r.Context())

	responses := make([]*BalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = &BalanceResponse{PersonID: b.PersonID, Amount: b.Amount}
	}

	response.JSON(w, http.StatusOK, responses)
}

// Update handles PUT /people/{id}
// @Summary      Update a person
// @Description  Update a person's name or gender
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        id path string true "Person ID"
// @Param        request body UpdatePersonRequest true "Person update request"
// @Success      200 {object} response.APIResponse{data=PersonResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /people/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPersonNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidGender):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update person")
		}
		return
	}

	response.JSON(w, http.StatusOK, ToResponse(*p))
}

// SetDefaultPayer handles PUT /people/{id}/default-payer
// @Summary      Set the default payer
// @Description  Flag the person as default payer, clearing the flag on any previous holder
// @Tags         people
// @Produce      json
// @Param        id path string true "Person ID"
// @Success      200 {object} response.APIResponse{data=PersonResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /people/{id}/default-payer [put]
func (h *Handler) SetDefaultPayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.SetDefaultPayer(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to set default payer")
		return
	}

	response.JSON(w, http.StatusOK, ToResponse(*p))
}

// Delete handles DELETE /people/{id}
// @Summary      Delete a person
// @Description  Delete a person and cascade to their orders and settlements
// @Tags         people
// @Produce      json
// @Param        id path string true "Person ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /people/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete person")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Person deleted successfully"})
}
