package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kharcha/internal/backup"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/store"
)

// BackupHandler manages the external backup file connection
type BackupHandler struct {
	store *store.Store
	sync  *backup.Synchronizer
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(st *store.Store, sync *backup.Synchronizer) *BackupHandler {
	return &BackupHandler{store: st, sync: sync}
}

// ConnectRequest represents the payload for connecting a backup file
type ConnectRequest struct {
	// Path is the file chosen in the picker. Empty means the prompt was
	// dismissed.
	Path string `json:"path"`
}

// Status handles the backup status view
// @Summary     Backup status
// @Description Whether a backup file is connected, its reference, the last
// @Description completed backup, and whether an automatic backup is due
// @Tags        backup
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Status"
// @Router      /backup/status [get]
func (h *BackupHandler) Status(c *gin.Context) {
	settings := h.store.Settings()
	resp := gin.H{
		"connected":  false,
		"lastBackup": settings.LastBackup,
		"due":        h.sync.IsDue(settings),
	}
	if handle := h.sync.Handle(); handle != nil {
		resp["connected"] = true
		resp["ref"] = handle.Ref()
	}
	c.JSON(http.StatusOK, resp)
}

// Connect handles choosing (or re-choosing) the backup file
// @Summary     Connect backup file
// @Description Run the file prompt and connect the chosen file as the backup
// @Description target, then write an immediate backup. A dismissed prompt is
// @Description a silent no-op.
// @Tags        backup
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ConnectRequest true "Chosen file"
// @Success     200 {object} map[string]interface{} "Connection result"
// @Failure     400 {object} ErrorResponse "Invalid target"
// @Failure     501 {object} ErrorResponse "File capability unavailable"
// @Router      /backup/connect [post]
func (h *BackupHandler) Connect(c *gin.Context) {
	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	handle, err := h.sync.ChooseFile(c.Request.Context(), req.Path)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if handle == nil {
		// Prompt dismissed.
		c.JSON(http.StatusOK, gin.H{"connected": h.sync.Handle() != nil})
		return
	}

	completed, err := h.sync.Sync(c.Request.Context(), "connected")
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":  true,
		"ref":        handle.Ref(),
		"lastBackup": completed,
	})
}

// Disconnect handles forgetting the backup file
// @Summary     Disconnect backup file
// @Description Forget the connected backup file. The file itself is untouched.
// @Tags        backup
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Disconnected"
// @Router      /backup [delete]
func (h *BackupHandler) Disconnect(c *gin.Context) {
	h.sync.Disconnect()
	c.JSON(http.StatusOK, gin.H{"message": "Backup file disconnected"})
}

// SyncNow handles a manual backup request
// @Summary     Back up now
// @Description Write the document to the connected backup file immediately.
// @Description No-ops if a backup is already in flight.
// @Tags        backup
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Backup result"
// @Failure     409 {object} ErrorResponse "No file connected or permission lost"
// @Router      /backup/sync [post]
func (h *BackupHandler) SyncNow(c *gin.Context) {
	completed, err := h.sync.Sync(c.Request.Context(), "manual")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if completed.IsZero() {
		c.JSON(http.StatusOK, gin.H{"message": "Backup already in progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lastBackup": completed})
}

// Check handles the app focus/open backup check
// @Summary     Daily backup check
// @Description Run an automatic backup if one is due. Called on app focus
// @Description and open; never fails the caller.
// @Tags        backup
// @Produce     json
// @Security    BearerAuth
// @Success     202 {object} MessageResponse "Check ran"
// @Router      /backup/check [post]
func (h *BackupHandler) Check(c *gin.Context) {
	h.sync.CheckDailyBackup(c.Request.Context())
	c.JSON(http.StatusAccepted, gin.H{"message": "Backup check completed"})
}
