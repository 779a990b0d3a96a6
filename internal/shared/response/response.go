package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"paintpro-backend/internal/shared/apperror"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes a success envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// ErrorResponse writes an error envelope.
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// FromError maps any error through the shared taxonomy.
// Unclassified errors are treated as persistence failures: logged with the
// underlying cause, surfaced with a generic message.
func FromError(c *gin.Context, err error) {
	if appErr, ok := apperror.As(err); ok {
		if appErr.Kind == apperror.KindPersistence {
			log.Error().
				Str("request_id", c.GetString("request_id")).
				Err(appErr.Err).
				Msg(appErr.Message)
			ErrorResponse(c, appErr.HTTPStatus(), appErr.Code, "Failed to persist content")
			return
		}
		ErrorResponse(c, appErr.HTTPStatus(), appErr.Code, appErr.Message)
		return
	}

	log.Error().
		Str("request_id", c.GetString("request_id")).
		Err(err).
		Msg("Unhandled error")
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
