package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"item-api/internal/model"
	"item-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps item request bodies.
const maxBodyBytes = 1 << 20

// ItemHandler handles item-related HTTP requests.
type ItemHandler struct {
	service service.ItemService
	logger  zerolog.Logger
}

// NewItemHandler creates a new item handler.
func NewItemHandler(service service.ItemService, logger zerolog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger.With().Str("handler", "item").Logger(),
	}
}

// RegisterRoutes mounts the item routes on r.
func (h *ItemHandler) RegisterRoutes(r chi.Router) {
	r.Route("/items", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /api/v1/items requests.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreatePayload
	if !h.decode(w, r, &payload) {
		return
	}

	item, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.fail(w, r, err, "failed to create item")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// List handles GET /api/v1/items requests with skip/limit pagination.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	params := model.DefaultListParams()
	query := r.URL.Query()

	if value := query.Get("skip"); value != "" {
		skip, err := strconv.Atoi(value)
		if err != nil {
			writeErrorDetails(w, r, http.StatusBadRequest, model.ErrCodeInvalidPagination, "invalid pagination parameters",
				map[string]string{"skip": "must be an integer"}, h.logger)
			return
		}
		params.Skip = skip
	}

	if value := query.Get("limit"); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil {
			writeErrorDetails(w, r, http.StatusBadRequest, model.ErrCodeInvalidPagination, "invalid pagination parameters",
				map[string]string{"limit": "must be an integer"}, h.logger)
			return
		}
		params.Limit = limit
	}

	items, err := h.service.List(r.Context(), params)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			writeErrorDetails(w, r, http.StatusBadRequest, model.ErrCodeInvalidPagination, "invalid pagination parameters",
				validationErr.Fields, h.logger)
			return
		}
		h.fail(w, r, err, "failed to retrieve items")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByID handles GET /api/v1/items/{id} requests.
func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "failed to retrieve item")
		return
	}

	if item == nil {
		writeError(w, r, http.StatusNotFound, model.ErrCodeItemNotFound, "item not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Update handles PUT /api/v1/items/{id} requests. Only the fields present in the body change.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	var payload model.UpdatePayload
	if !h.decode(w, r, &payload) {
		return
	}

	item, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		h.fail(w, r, err, "failed to update item")
		return
	}

	if item == nil {
		writeError(w, r, http.StatusNotFound, model.ErrCodeItemNotFound, "item not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/v1/items/{id} requests.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "failed to delete item")
		return
	}

	if !deleted {
		writeError(w, r, http.StatusNotFound, model.ErrCodeItemNotFound, "item not found", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// itemID parses the {id} path parameter, writing a 400 response when it is not an integer.
func (h *ItemHandler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "item ID must be an integer", h.logger)
		return 0, false
	}
	return id, true
}

// decode reads the JSON body into dst, writing a 400 response on failure.
func (h *ItemHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			writeErrorDetails(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid input data",
				validationErr.Fields, h.logger)
			return false
		}
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return false
	}
	return true
}

// fail maps a service error to a response. Storage failures are logged in full
// but reported to the client without detail.
func (h *ItemHandler) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		writeErrorDetails(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid input data",
			validationErr.Fields, h.logger)
		return
	}

	event := h.logger.Error().Err(err)
	var storageErr *model.StorageError
	if errors.As(err, &storageErr) {
		event = event.Str("storage_op", storageErr.Op).Str("storage_kind", string(storageErr.Kind))
	}
	event.Msg(message)

	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", h.logger)
}
