package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shoply/backend/internal/application/importapp"
	"github.com/shoply/backend/internal/infrastructure/config"
	"github.com/shoply/backend/internal/infrastructure/tabular"
	"github.com/shoply/backend/internal/interfaces/http/dto"
)

// ImportHandler handles bulk product import uploads
type ImportHandler struct {
	BaseHandler
	importService *importapp.ProductImportService
	maxFileSize   int64
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(importService *importapp.ProductImportService, cfg config.ImportConfig) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		maxFileSize:   cfg.MaxFileSize,
	}
}

// ImportProducts imports products from an uploaded CSV or Excel file.
// Form fields: file (required), sheet, dry_run, verbose.
func (h *ImportHandler) ImportProducts(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the maximum upload size")
		return
	}

	opts := importapp.Options{
		Sheet:   c.PostForm("sheet"),
		DryRun:  c.PostForm("dry_run") == "true",
		Verbose: c.PostForm("verbose") == "true",
	}

	stats, err := h.importService.ImportFile(c.Request.Context(), file, header.Filename, opts)
	if err != nil {
		h.handleFileError(c, err)
		return
	}

	h.Success(c, stats)
}

// handleFileError maps file-level import failures to API error codes
func (h *ImportHandler) handleFileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tabular.ErrUnsupportedFormat):
		h.Error(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", "only .csv, .xlsx and .xls files are supported")
	case errors.Is(err, tabular.ErrEncoding):
		h.Error(c, http.StatusBadRequest, "ENCODING_ERROR", "file encoding could not be detected")
	case errors.Is(err, tabular.ErrEmptyFile):
		h.Error(c, http.StatusBadRequest, "EMPTY_FILE", "file contains no data")
	case errors.Is(err, tabular.ErrMissingHeader):
		h.Error(c, http.StatusBadRequest, "MISSING_HEADER", "file is missing its header row")
	case errors.Is(err, tabular.ErrSheetNotFound):
		h.Error(c, http.StatusBadRequest, "SHEET_NOT_FOUND", "requested worksheet does not exist")
	default:
		h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "failed to import file")
	}
}
