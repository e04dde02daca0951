// Package http contains the chi HTTP handlers for the findings dashboard API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/jineuihong-coder/iso-findings/internal/engine"
	apierrors "github.com/jineuihong-coder/iso-findings/internal/errors"
)

// FindingsHandler serves search, summary and filter-option requests.
type FindingsHandler struct {
	service      FindingsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewFindingsHandler creates a findings handler.
func NewFindingsHandler(service FindingsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *FindingsHandler {
	return &FindingsHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "findings_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the findings routes.
func (h *FindingsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.Search)
	r.Post("/search", h.SearchJSON)
	r.Get("/summary", h.Summary)
	r.Get("/options", h.Options)

	return r
}

// Search handles GET /api/findings with criteria taken from query parameters:
// clause, subclause and category repeat; keyword and clause_search are single.
func (h *FindingsHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.respondSearch(w, r, criteriaFromQuery(r))
}

// SearchJSON handles POST /api/findings/search with a Criteria JSON body.
func (h *FindingsHandler) SearchJSON(w http.ResponseWriter, r *http.Request) {
	var criteria engine.Criteria
	if err := render.DecodeJSON(r.Body, &criteria); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format", err.Error()))
		return
	}
	if err := h.validate.Struct(criteria); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", err.Error()))
		return
	}
	h.respondSearch(w, r, criteria)
}

func (h *FindingsHandler) respondSearch(w http.ResponseWriter, r *http.Request, criteria engine.Criteria) {
	reqID := middleware.GetReqID(r.Context())

	result, err := h.service.Search(r.Context(), criteria)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "search failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   result,
		"count":  result.Len(),
	})
}

// Summary handles GET /api/findings/summary; the aggregates are computed over
// the rows matching the same query-parameter criteria as Search.
func (h *FindingsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Summary(r.Context(), criteriaFromQuery(r))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   report,
	})
}

// Options handles GET /api/findings/options for the sidebar multiselects.
func (h *FindingsHandler) Options(w http.ResponseWriter, r *http.Request) {
	opts, err := h.service.FilterOptions(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   opts,
	})
}

func criteriaFromQuery(r *http.Request) engine.Criteria {
	q := r.URL.Query()
	return engine.Criteria{
		Clauses:      q["clause"],
		Subclauses:   q["subclause"],
		Categories:   q["category"],
		Keyword:      q.Get("keyword"),
		ClauseSearch: q.Get("clause_search"),
	}
}
