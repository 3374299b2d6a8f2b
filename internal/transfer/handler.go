package transfer

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger"
	"github.com/Katoo2706/lunch-byte-buddies/internal/storage"
	"github.com/Katoo2706/lunch-byte-buddies/pkg/response"
)

// maxImportSize caps import request bodies.
const maxImportSize = 10 << 20 // 10 MiB

// Handler handles HTTP requests for data import and export
type Handler struct {
	keeper *storage.Keeper
}

// NewHandler creates a new transfer handler with the snapshot keeper injected
func NewHandler(keeper *storage.Keeper) *Handler {
	return &Handler{keeper: keeper}
}

// Routes returns the router for transfer endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/export", h.Export)
	r.Post("/import", h.Import)

	return r
}

// Export handles GET /transfer/export
// @Summary      Export all data
// @Description  Download the full data set as a timestamped JSON file
// @Tags         transfer
// @Produce      json
// @Success      200 {string} string "Pretty-printed snapshot JSON"
// @Failure      500 {object} response.APIResponse
// @Router       /transfer/export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var text string
	var err error
	h.keeper.View(func(snap *ledger.Snapshot) {
		text, err = Export(snap)
	})
	if err != nil {
		response.InternalError(w, "Failed to export data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", Filename(time.Now())))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, text)
}

// Import handles POST /transfer/import
// @Summary      Import data
// @Description  Replace the full data set with previously exported JSON; invalid payloads leave existing data untouched
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /transfer/import [post]
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportSize))
	if err != nil {
		response.BadRequest(w, "Failed to read request body")
		return
	}

	snap, err := Import(string(body))
	if err != nil {
		if errors.Is(err, ErrInvalidSnapshot) {
			response.BadRequest(w, err.Error())
			return
		}
		response.BadRequest(w, "Import is not valid JSON")
		return
	}

	h.keeper.Replace(r.Context(), snap)

	response.JSON(w, http.StatusOK, map[string]string{"message": "Data imported successfully"})
}
