package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SessionExpiredResponse tells the client to sign in again.
type SessionExpiredResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// LoadingResponse is returned while the user's identity is still being resolved.
type LoadingResponse struct {
	Loading bool `json:"loading"`
}

const sessionExpiredMessage = "Your session has expired. Please sign in again."

// classify maps a service error to a status code and the message shown to
// the user. Server supplied messages are passed through.
func classify(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrSubmitInFlight):
		return http.StatusConflict, "A submission is already in progress"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, apperrors.Message(err, "Invalid username or password")
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, apperrors.Message(err, "You do not have permission to perform this action")
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, apperrors.Message(err, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, apperrors.Message(err, "Not found")
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, apperrors.Message(err, err.Error())
	case errors.Is(err, apperrors.ErrTransport):
		return http.StatusBadGateway, "The banking service is unavailable. Please try again later."
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway, apperrors.Message(err, fallback)
	default:
		return http.StatusInternalServerError, fallback
	}
}

// respondError answers a failed service call. An expired session answers
// the login redirect and an unresolved identity answers the loading state.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if errors.Is(err, apperrors.ErrSessionExpired) {
		logger.Info("Session expired during request", slog.String("error", err.Error()))
		middleware.AbortSessionExpired(c, sessionExpiredMessage)
		return
	}
	if errors.Is(err, apperrors.ErrIdentityUnresolved) {
		c.JSON(http.StatusAccepted, LoadingResponse{Loading: true})
		return
	}

	status, msg := classify(err, fallback)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

// respondFormError answers a failed form command together with the form as
// it stands after the failure.
func respondFormError(c *gin.Context, err error, snap *domain.FormSnapshot, fallback string) {
	if snap == nil || errors.Is(err, apperrors.ErrSessionExpired) || errors.Is(err, apperrors.ErrIdentityUnresolved) {
		respondError(c, err, fallback)
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, msg := classify(err, fallback)
	logger.Info("Form command failed",
		slog.String("kind", string(snap.Kind)),
		slog.String("state", string(snap.State)),
		slog.Int("status", status),
		slog.String("error", err.Error()))
	c.JSON(status, dto.FormErrorResponse{Error: msg, Form: snap})
}

// currentSession returns the session resolved by SessionAuth.
func currentSession(c *gin.Context) (*domain.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session not found in context")
		middleware.AbortSessionExpired(c, sessionExpiredMessage)
		return nil, false
	}
	return sess, true
}

// int64Param parses the named path parameter.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body into req and answers 400 on failure.
func bindJSON(c *gin.Context, req any, op string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for "+op, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}
