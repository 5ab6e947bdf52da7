package handlers

import (
	"log/slog"
	"net/http"

	"github.com/carespace/carespace-api/internal/api/middleware"
	"github.com/carespace/carespace-api/internal/errors"
	"github.com/carespace/carespace-api/internal/utils"
	"github.com/carespace/carespace-api/internal/utils/response"
)

// decodeBody writes a 400 and returns false when the body is not valid JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {

	if err := utils.DecodeJSONBody(r, dest); err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Invalid request body", slog.String("error", err.Error()))
		response.Error(w, errors.BadRequestError("Invalid request body").WithDetails(err.Error()))
		return false
	}

	return true
}

// fail logs err at a level matching its status and writes the error envelope.
func fail(w http.ResponseWriter, r *http.Request, msg string, err error, attrs ...any) {

	logger := middleware.LoggerFromContext(r.Context())
	attrs = append(attrs, slog.String("error", err.Error()))

	if appErr, ok := errors.IsAppError(err); ok && appErr.StatusCode < http.StatusInternalServerError {
		logger.Warn(msg, attrs...)
	} else {
		if ok && appErr.Err != nil {
			attrs = append(attrs, slog.String("cause", appErr.Err.Error()))
		}
		logger.Error(msg, attrs...)
	}

	response.Error(w, err)
}
