package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/logger"
	"kharcha/internal/period"
)

// ErrorResponse documents the error payload shape for swagger.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// MessageResponse documents simple message payloads for swagger.
type MessageResponse struct {
	Message string `json:"message"`
}

// cursorQuery binds the period cursor from the mode/offset query parameters.
type cursorQuery struct {
	Mode   string `form:"mode,default=month" binding:"omitempty,period_mode"`
	Offset int    `form:"offset"`
}

// parseCursor reads the period cursor from the query string. Defaults to the
// current month.
func parseCursor(c *gin.Context) (period.Cursor, error) {
	var q cursorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return period.Cursor{}, apperrors.Wrap(apperrors.ErrValidation, err)
	}
	return period.Cursor{Mode: period.Mode(q.Mode), Offset: q.Offset}, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
