package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kharcha/internal/auth"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/middleware"
	"kharcha/internal/models"
	"kharcha/internal/store"
)

// LockHandler manages the PIN/biometric app lock
type LockHandler struct {
	store      *store.Store
	credential auth.CredentialVerifier
}

// NewLockHandler creates a new LockHandler
func NewLockHandler(st *store.Store, credential auth.CredentialVerifier) *LockHandler {
	return &LockHandler{store: st, credential: credential}
}

// PINRequest represents a PIN entry payload
type PINRequest struct {
	PIN string `json:"pin" binding:"required,pin_code"`
}

// BiometricRequest represents the biometric toggle payload
type BiometricRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// Status handles the lock status view
// @Summary     Lock status
// @Description Whether a PIN is set and whether the biometric toggle is on
// @Tags        lock
// @Produce     json
// @Success     200 {object} map[string]interface{} "Lock status"
// @Router      /lock/status [get]
func (h *LockHandler) Status(c *gin.Context) {
	settings := h.store.Settings()
	c.JSON(http.StatusOK, gin.H{
		"pinSet":    settings.PINHash != "",
		"biometric": settings.Biometric,
	})
}

// SetPIN handles setting or changing the PIN
// @Summary     Set PIN
// @Description Set a four digit PIN. Locks the app from the next session on.
// @Tags        lock
// @Accept      json
// @Produce     json
// @Param       request body PINRequest true "New PIN"
// @Success     200 {object} map[string]interface{} "PIN set, with a fresh session token"
// @Failure     400 {object} ErrorResponse "Not a four digit PIN"
// @Router      /lock/pin [post]
func (h *LockHandler) SetPIN(c *gin.Context) {
	var req PINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	hash, err := auth.HashPIN(req.PIN)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	h.store.MutateSettings(func(s *models.Settings) {
		s.PINHash = hash
	})

	token, err := middleware.GenerateSessionToken()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PIN set", "token": token})
}

// RemovePIN handles clearing the PIN
// @Summary     Remove PIN
// @Description Clear the PIN and turn the biometric toggle off. The current
// @Description PIN must be supplied.
// @Tags        lock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PINRequest true "Current PIN"
// @Success     200 {object} MessageResponse "PIN removed"
// @Failure     401 {object} ErrorResponse "Wrong PIN"
// @Router      /lock/pin [delete]
func (h *LockHandler) RemovePIN(c *gin.Context) {
	var req PINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	settings := h.store.Settings()
	if settings.PINHash == "" {
		respondWithError(c, apperrors.ErrPINNotSet)
		return
	}
	if !auth.VerifyPIN(req.PIN, settings.PINHash) {
		respondWithError(c, apperrors.ErrWrongPIN)
		return
	}

	h.store.MutateSettings(func(s *models.Settings) {
		s.PINHash = ""
		s.Biometric = false
	})
	c.JSON(http.StatusOK, gin.H{"message": "PIN removed"})
}

// Unlock handles unlocking with the PIN
// @Summary     Unlock
// @Description Verify the PIN and issue a session token
// @Tags        lock
// @Accept      json
// @Produce     json
// @Param       request body PINRequest true "PIN"
// @Success     200 {object} map[string]interface{} "Session token"
// @Failure     401 {object} ErrorResponse "Wrong PIN"
// @Router      /lock/unlock [post]
func (h *LockHandler) Unlock(c *gin.Context) {
	var req PINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	settings := h.store.Settings()
	if settings.PINHash == "" {
		respondWithError(c, apperrors.ErrPINNotSet)
		return
	}
	if !auth.VerifyPIN(req.PIN, settings.PINHash) {
		respondWithError(c, apperrors.ErrWrongPIN)
		return
	}

	token, err := middleware.GenerateSessionToken()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// SetBiometric handles the biometric toggle
// @Summary     Toggle biometric unlock
// @Description Enable or disable biometric unlock. Enabling runs the
// @Description credential registration ceremony; it requires a PIN to be set
// @Description as the fallback.
// @Tags        lock
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BiometricRequest true "Toggle"
// @Success     200 {object} map[string]interface{} "New toggle state"
// @Failure     400 {object} ErrorResponse "No PIN set"
// @Failure     501 {object} ErrorResponse "No platform authenticator"
// @Router      /lock/biometric [put]
func (h *LockHandler) SetBiometric(c *gin.Context) {
	var req BiometricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	if !*req.Enabled {
		h.store.MutateSettings(func(s *models.Settings) {
			s.Biometric = false
		})
		c.JSON(http.StatusOK, gin.H{"biometric": false})
		return
	}

	if h.store.Settings().PINHash == "" {
		respondWithError(c, apperrors.ErrPINNotSet)
		return
	}
	if err := h.credential.Register(c.Request.Context()); err != nil {
		if errors.Is(err, auth.ErrCredentialUnsupported) {
			respondWithError(c, apperrors.Wrap(apperrors.ErrUnsupported, err))
			return
		}
		respondWithError(c, apperrors.Wrap(apperrors.ErrUnauthorized, err))
		return
	}

	h.store.MutateSettings(func(s *models.Settings) {
		s.Biometric = true
	})
	c.JSON(http.StatusOK, gin.H{"biometric": true})
}

// BiometricUnlock handles unlocking with the platform credential
// @Summary     Biometric unlock
// @Description Run the credential check and issue a session token on success.
// @Description If the host has no authenticator or no registered credential
// @Description the toggle is switched off and the caller must fall back to
// @Description the PIN.
// @Tags        lock
// @Produce     json
// @Success     200 {object} map[string]interface{} "Session token"
// @Failure     401 {object} ErrorResponse "Check denied"
// @Failure     501 {object} ErrorResponse "No platform authenticator"
// @Router      /lock/biometric/unlock [post]
func (h *LockHandler) BiometricUnlock(c *gin.Context) {
	settings := h.store.Settings()
	if settings.PINHash == "" {
		respondWithError(c, apperrors.ErrPINNotSet)
		return
	}
	if !settings.Biometric {
		respondWithError(c, apperrors.ErrNoCredential)
		return
	}

	if err := h.credential.Verify(c.Request.Context()); err != nil {
		switch {
		case errors.Is(err, auth.ErrCredentialUnsupported), errors.Is(err, auth.ErrNoCredential):
			// The credential is gone for good. Drop the toggle so the
			// caller stops offering it.
			h.store.MutateSettings(func(s *models.Settings) {
				s.Biometric = false
			})
			respondWithError(c, apperrors.Wrap(apperrors.ErrNoCredential, err))
		default:
			respondWithError(c, apperrors.Wrap(apperrors.ErrUnauthorized, err))
		}
		return
	}

	token, err := middleware.GenerateSessionToken()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
