package response

import (
	"errors"
	"net/http"

	domainerrors "bedrijvengids.backend/internal/domain/errors"
	"github.com/gin-gonic/gin"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Sentinel domain errors map to their
// HTTP status; anything unrecognized becomes a 500 without leaking the
// underlying error text.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest("invalid input")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("authentication required")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("insufficient permissions")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "invalid email or password", err)
	case errors.Is(err, domainerrors.ErrInvalidCode):
		return domainerrors.NewAppError(http.StatusUnprocessableEntity, domainerrors.CodeInvalidCode, "verification code is not valid", err)
	case errors.Is(err, domainerrors.ErrCodeExpired):
		return domainerrors.NewAppError(http.StatusUnprocessableEntity, domainerrors.CodeCodeExpired, "verification code has expired", err)
	case errors.Is(err, domainerrors.ErrCodeConsumed):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeCodeConsumed, "verification code was already used", err)
	case errors.Is(err, domainerrors.ErrTooManyAttempts):
		return domainerrors.TooManyRequests("too many verification attempts, try again later")
	case errors.Is(err, domainerrors.ErrMailDispatch):
		return domainerrors.NewAppError(http.StatusBadGateway, domainerrors.CodeMailDispatch, "could not deliver verification email", err)
	}

	return domainerrors.InternalError(err)
}
