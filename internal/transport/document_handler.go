package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"mercado/internal/domain"
	"mercado/internal/middleware"
	"mercado/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DocumentHandler exposes the plain REST surface of one document collection
// on the resource server: raw arrays and objects, no result bag, no form
// rules. This is the surface the storefront's resource client consumes.
type DocumentHandler[T any, PT domain.RecordPtr[T]] struct {
	store  store.Store[T, PT]
	kind   string
	logger *zap.Logger
}

// NewDocumentHandler creates a handler over one backing store.
func NewDocumentHandler[T any, PT domain.RecordPtr[T]](s store.Store[T, PT], kind string, logger *zap.Logger) *DocumentHandler[T, PT] {
	return &DocumentHandler[T, PT]{store: s, kind: kind, logger: logger}
}

// RegisterRoutes mounts the collection at /{kind}.
func (h *DocumentHandler[T, PT]) RegisterRoutes(r chi.Router) {
	r.Route("/"+h.kind, func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *DocumentHandler[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list documents", zap.String("kind", h.kind), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list "+h.kind)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, items)
}

func (h *DocumentHandler[T, PT]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	item, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "not found")
			return
		}
		h.logger.Error("Failed to load document", zap.String("kind", h.kind), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load "+h.kind)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, item)
}

func (h *DocumentHandler[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := json.NewDecoder(r.Body).Decode(PT(&item)); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.store.Create(r.Context(), item)
	if err != nil {
		h.logger.Error("Failed to create document", zap.String("kind", h.kind), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create "+h.kind)
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *DocumentHandler[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var item T
	if err := json.NewDecoder(r.Body).Decode(PT(&item)); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.store.Update(r.Context(), id, item)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "not found")
			return
		}
		h.logger.Error("Failed to update document", zap.String("kind", h.kind), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update "+h.kind)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *DocumentHandler[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "not found")
			return
		}
		h.logger.Error("Failed to delete document", zap.String("kind", h.kind), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete "+h.kind)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
