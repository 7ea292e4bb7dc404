package transport

import (
	"encoding/json"
	"net/http"

	"mercado/internal/domain"
	"mercado/internal/listing"
	"mercado/internal/middleware"
	"mercado/internal/service"
	"mercado/internal/validate"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// ListResponse wraps a processed page of a collection.
type ListResponse[T any] struct {
	Data          []T            `json:"data"`
	Source        service.Source `json:"source"`
	Page          int            `json:"page"`
	TotalPages    int            `json:"totalPages"`
	TotalMatching int            `json:"totalMatching"`
}

// ItemResponse wraps a single record.
type ItemResponse[T any] struct {
	Data   *T             `json:"data"`
	Source service.Source `json:"source"`
}

// ResourceHandler serves the CRUD surface for one entity kind. The collection
// endpoint runs the shared listing pipeline, and writes run the entity's form
// rules against the current collection before anything is stored.
type ResourceHandler[T any, PT domain.RecordPtr[T]] struct {
	svc      *service.Resource[T, PT]
	fields   listing.Fields[T]
	validate func(T, []T, domain.ID) validate.Errors
	pageSize int
	logger   *zap.Logger
}

// NewResourceHandler creates a handler for one entity kind. A nil validate
// function disables form rules for that kind.
func NewResourceHandler[T any, PT domain.RecordPtr[T]](
	svc *service.Resource[T, PT],
	fields listing.Fields[T],
	validateFn func(T, []T, domain.ID) validate.Errors,
	pageSize int,
	logger *zap.Logger,
) *ResourceHandler[T, PT] {
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}
	return &ResourceHandler[T, PT]{
		svc:      svc,
		fields:   fields,
		validate: validateFn,
		pageSize: pageSize,
		logger:   logger,
	}
}

// RegisterRoutes mounts the CRUD routes. Reads are public; writes go through
// the guard when one is given. openCreate additionally leaves POST public,
// which the registration kinds (clients, providers) need.
func (h *ResourceHandler[T, PT]) RegisterRoutes(r chi.Router, path string, guard func(http.Handler) http.Handler, openCreate bool) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		if guard == nil {
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
			return
		}

		if openCreate {
			r.Post("/", h.Create)
		}
		r.Group(func(r chi.Router) {
			r.Use(guard)
			if !openCreate {
				r.Post("/", h.Create)
			}
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// List serves the processed collection page.
func (h *ResourceHandler[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	col, err := h.svc.GetAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to load collection", zap.String("kind", h.svc.Kind()), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load collection")
		return
	}

	page := listing.Process(col.Data, q, h.fields)
	middleware.RespondWithJSON(w, http.StatusOK, ListResponse[T]{
		Data:          page.Items,
		Source:        col.Source,
		Page:          page.Page,
		TotalPages:    page.TotalPages,
		TotalMatching: page.TotalMatching,
	})
}

// Get serves one record.
func (h *ResourceHandler[T, PT]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	item, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load record")
		return
	}
	if item.Data == nil {
		middleware.RespondWithError(w, http.StatusNotFound, "record not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ItemResponse[T]{Data: item.Data, Source: item.Source})
}

// Create validates and stores a new record.
func (h *ResourceHandler[T, PT]) Create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := json.NewDecoder(r.Body).Decode(PT(&item)); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.runRules(w, r, item, 0) {
		return
	}

	created, err := h.svc.Create(r.Context(), item)
	if err != nil {
		h.logger.Error("Failed to create record", zap.String("kind", h.svc.Kind()), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create record")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, ItemResponse[T]{Data: created.Data, Source: created.Source})
}

// Update validates and replaces an existing record.
func (h *ResourceHandler[T, PT]) Update(w http.ResponseWriter, r *http.Request) {
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

	if !h.runRules(w, r, item, id) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, item)
	if err != nil {
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update record")
		return
	}
	if updated.Data == nil {
		middleware.RespondWithError(w, http.StatusNotFound, "record not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ItemResponse[T]{Data: updated.Data, Source: updated.Source})
}

// Delete removes a record.
func (h *ResourceHandler[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete record")
		return
	}
	if !deleted.Success {
		middleware.RespondWithError(w, http.StatusNotFound, "record not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, deleted)
}

// runRules applies the entity form rules; it responds and reports false when
// the submission is blocked.
func (h *ResourceHandler[T, PT]) runRules(w http.ResponseWriter, r *http.Request, item T, editingID domain.ID) bool {
	if h.validate == nil {
		return true
	}

	col, err := h.svc.GetAll(r.Context())
	if err != nil {
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load collection")
		return false
	}

	if errs := h.validate(item, col.Data, editingID); !errs.Valid() {
		middleware.RespondWithFieldErrors(w, errs)
		return false
	}
	return true
}

func (h *ResourceHandler[T, PT]) parseQuery(r *http.Request) (listing.Query, error) {
	values := r.URL.Query()

	q := listing.Query{
		Search:   values.Get("search"),
		Sort:     listing.Sort(values.Get("sort")),
		Page:     1,
		PageSize: h.pageSize,
	}

	if v := values.Get("page"); v != "" {
		page, err := cast.ToIntE(v)
		if err != nil {
			return q, errInvalidParam("page")
		}
		q.Page = page
	}
	if v := values.Get("pageSize"); v != "" {
		size, err := cast.ToIntE(v)
		if err != nil {
			return q, errInvalidParam("pageSize")
		}
		q.PageSize = size
	}
	if v := values.Get("category"); v != "" {
		id, err := domain.ParseID(v)
		if err != nil {
			return q, errInvalidParam("category")
		}
		q.Category = &id
	}
	if v := values.Get("minPrice"); v != "" {
		min, err := cast.ToFloat64E(v)
		if err != nil {
			return q, errInvalidParam("minPrice")
		}
		q.MinPrice = &min
	}
	if v := values.Get("maxPrice"); v != "" {
		max, err := cast.ToFloat64E(v)
		if err != nil {
			return q, errInvalidParam("maxPrice")
		}
		q.MaxPrice = &max
	}

	return q, nil
}

type paramError string

func errInvalidParam(name string) error { return paramError(name) }

func (p paramError) Error() string { return "invalid query parameter: " + string(p) }
