package handlers

import (
	"context"
	"errors"
	"net/http"

	sessionRepo "letsheal/database/repository/session"
	"letsheal/middleware"
	"letsheal/models"
	"letsheal/services/booking"
	"letsheal/services/remote"
	"letsheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errorResponder writes every domain error in one shape. An expired backend token
// also drops the caller's stored session.
type errorResponder struct {
	sessions sessionRepo.Store
}

// respond writes err. forbidden, when set, replaces the generic 403 message.
func (r errorResponder) respond(c *gin.Context, err error, forbidden string) {
	var (
		verr *booking.ValidationError
		nerr *remote.NetworkError
		serr *remote.ServerError
	)
	switch {
	case errors.Is(err, booking.ErrAbandoned), errors.Is(err, context.Canceled):
		zap.L().Debug("Caller went away, discarding result", zap.String("path", c.FullPath()))
		c.Abort()
	case errors.As(err, &verr):
		utils.JSONErrorBody(c, http.StatusUnprocessableEntity, utils.ErrorResponse{
			Message:     "Please correct the highlighted fields",
			FieldErrors: verr.Fields,
		})
	case errors.Is(err, booking.ErrUnauthenticated):
		utils.JSONErrorBody(c, http.StatusUnauthorized, utils.ErrorResponse{Message: err.Error(), Relogin: true})
	case errors.Is(err, remote.ErrAuthExpired):
		if clearErr := middleware.ClearSession(context.WithoutCancel(c.Request.Context()), c, r.sessions); clearErr != nil {
			zap.L().Error("Failed to clear expired session", zap.Error(clearErr))
		}
		utils.JSONErrorBody(c, http.StatusUnauthorized, utils.ErrorResponse{Message: err.Error(), Relogin: true})
	case errors.Is(err, remote.ErrForbidden):
		msg := forbidden
		if msg == "" {
			msg = err.Error()
		}
		utils.JSONError(c, http.StatusForbidden, msg, "")
	case errors.Is(err, booking.ErrDuplicateSubmission):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, booking.ErrCancellationClosed):
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error(), "")
	case errors.Is(err, booking.ErrMissingTherapist), errors.Is(err, models.ErrInvalidID):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.As(err, &nerr):
		utils.JSONErrorBody(c, http.StatusBadGateway, utils.ErrorResponse{
			Message:   "Could not reach the server. Please try again.",
			Details:   nerr.Error(),
			Retryable: true,
		})
	case errors.As(err, &serr):
		status := serr.Status
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		utils.JSONError(c, status, serr.Message, "")
	default:
		zap.L().Error("Unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
}
