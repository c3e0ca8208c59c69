package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/store"
)

// maxImportBytes caps the accepted import payload. The document of a busy
// user is well under a megabyte.
const maxImportBytes = 16 << 20

// DataHandler manages whole-document export, import and reset
type DataHandler struct {
	store *store.Store
	now   func() time.Time
}

// NewDataHandler creates a new DataHandler
func NewDataHandler(st *store.Store, now func() time.Time) *DataHandler {
	if now == nil {
		now = time.Now
	}
	return &DataHandler{store: st, now: now}
}

// Export handles downloading the full document
// @Summary     Export data
// @Description Download the full document as a pretty-printed JSON file. The
// @Description format is identical to the backup file format.
// @Tags        data
// @Produce     json
// @Security    BearerAuth
// @Success     200 {file} file "expenses-backup JSON"
// @Router      /data/export [get]
func (h *DataHandler) Export(c *gin.Context) {
	data, err := h.store.Export()
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("expenses-backup-%s.json", h.now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}

// Import handles replacing the document wholesale
// @Summary     Import data
// @Description Replace the entire document with the uploaded JSON. On a parse
// @Description failure the current document is left untouched.
// @Tags        data
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       document body object true "Full document JSON"
// @Success     200 {object} map[string]interface{} "Imported document counts"
// @Failure     400 {object} ErrorResponse "Malformed document"
// @Router      /data/import [post]
func (h *DataHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	doc, err := h.store.ImportReplace(raw)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Data imported",
		"transactions": len(doc.Transactions),
		"categories":   len(doc.Categories),
	})
}

// Reset handles wiping all data
// @Summary     Reset all data
// @Description Delete every transaction and category and restore the default
// @Description categories. The PIN, if set, is preserved.
// @Tags        data
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Data reset"
// @Router      /data/reset [post]
func (h *DataHandler) Reset(c *gin.Context) {
	h.store.ResetAll()
	c.JSON(http.StatusOK, gin.H{"message": "All data reset"})
}
