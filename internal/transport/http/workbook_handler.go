package http

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "github.com/jineuihong-coder/iso-findings/internal/errors"
)

// WorkbookHandler manages the uploaded workbook lifecycle: upload, status,
// and reset back to the built-in dataset.
type WorkbookHandler struct {
	service      FindingsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	maxSizeBytes int64
}

// NewWorkbookHandler creates a workbook handler.
func NewWorkbookHandler(service FindingsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxSizeBytes int64) *WorkbookHandler {
	return &WorkbookHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "workbook_handler")),
		errorHandler: errorHandler,
		maxSizeBytes: maxSizeBytes,
	}
}

// Routes returns the workbook routes.
func (h *WorkbookHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.Status)
	r.Post("/", h.Upload)
	r.Delete("/", h.Reset)

	return r
}

// Upload handles POST /api/workbook with a multipart "file" part holding an
// xlsx workbook. On success the loaded snapshot replaces the current one.
func (h *WorkbookHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSizeBytes)

	if err := r.ParseMultipartForm(h.maxSizeBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest, "INVALID_REQUEST", "Invalid multipart request", err.Error()))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "A workbook file is required"))
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".xlsx" {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "Only .xlsx workbooks are accepted"))
		return
	}

	if err := h.service.LoadWorkbook(r.Context(), file, header.Filename); err != nil {
		h.logger.ErrorContext(r.Context(), "workbook load failed",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()),
		)
		h.errorHandler.HandleError(w, r, apierrors.ErrWorkbookRejected(err))
		return
	}

	status := h.service.Status(r.Context())
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   status,
	})
}

// Status handles GET /api/workbook and reports the current snapshot source.
func (h *WorkbookHandler) Status(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   h.service.Status(r.Context()),
	})
}

// Reset handles DELETE /api/workbook, discarding uploaded data in favor of
// the built-in defaults.
func (h *WorkbookHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.service.Reset(r.Context())
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   h.service.Status(r.Context()),
	})
}
