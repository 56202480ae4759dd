package middleware

import (
	"errors"
	"net/http"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the "error" member of a failed response.
type ErrorBody struct {
	Type       string            `json:"type"`
	Message    string            `json:"message"`
	StatusCode int               `json:"statusCode"`
	Details    []string          `json:"details,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
}

// ErrorResponse is the envelope of every failed response.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   ErrorBody `json:"error"`
}

// ErrorHandler is the application's fiber.ErrorHandler. In production the
// text of 5xx errors never reaches the client.
func ErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := toAppError(err)

		fields := []any{
			"status", appErr.Status,
			"type", appErr.Type(),
			"method", c.Method(),
			"path", c.OriginalURL(),
			"ip", c.IP(),
			"request_id", requestID(c),
		}
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error(err.Error(), fields...)
		} else {
			logger.Warn(appErr.Message, fields...)
		}

		body := ErrorBody{
			Type:       appErr.Type(),
			Message:    appErr.Message,
			StatusCode: appErr.Status,
			Details:    appErr.Details,
			Fields:     appErr.Fields,
		}
		if appErr.Status >= http.StatusInternalServerError {
			body.Message = "Internal server error"
			body.Details = nil
			if !production && appErr.Err != nil {
				body.Details = []string{appErr.Err.Error()}
			}
		}

		return c.Status(appErr.Status).JSON(ErrorResponse{
			Success: false,
			Message: body.Message,
			Error:   body,
		})
	}
}

func toAppError(err error) *apperrors.AppError {
	var verr *validation.Errors
	if errors.As(err, &verr) {
		return &apperrors.AppError{
			Status:  http.StatusBadRequest,
			Message: "Validation failed",
			Details: verr.Details(),
			Fields:  verr.Fields,
		}
	}

	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code >= http.StatusInternalServerError {
			return apperrors.Wrap(err, fiberErr.Code, fiberErr.Message)
		}
		return apperrors.New(fiberErr.Code, fiberErr.Message)
	}

	return apperrors.Internal(err)
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
