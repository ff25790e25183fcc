package addresses

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/liviaspereira/HomeCleanup-API/internal/platform/httpx"
	"github.com/liviaspereira/HomeCleanup-API/internal/shared"
)

// Handler manages address endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *shared.Validator
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, validator *shared.Validator) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, validator: validator}
}

// MountRoutes registers address routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/{id}", h.Show)
	r.Delete("/{id}", h.Delete)
}

// Create handles POST /address/.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := httpx.ReadBody(r)
	if err != nil {
		h.fail(w, "read address body", err)
		return
	}
	req, err := httpx.Decode[CreateAddressRequest](body, h.validator)
	if err != nil {
		h.fail(w, "decode address", err)
		return
	}
	if _, err := h.service.Create(r.Context(), req); err != nil {
		h.fail(w, "create address", err)
		return
	}
	httpx.Empty(w, http.StatusCreated)
}

// Show handles GET /address/{id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		h.fail(w, "parse address id", err)
		return
	}
	address, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.fail(w, "get address", err)
		return
	}
	httpx.JSON(w, http.StatusOK, address)
}

// Delete handles DELETE /address/{id}; 204 on success.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		h.fail(w, "parse address id", err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.fail(w, "delete address", err)
		return
	}
	httpx.Empty(w, http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	if !errors.Is(err, shared.ErrMissingBody) && !errors.Is(err, shared.ErrValidation) && !errors.Is(err, shared.ErrNotFound) {
		h.logger.Error(op+" failed", slog.Any("error", err), slog.String("component", "addresses"))
	}
	httpx.RespondError(w, err)
}
