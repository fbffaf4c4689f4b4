package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jobtrail/jobtrail/pkg/apperrors"
)

// ErrorResponse is the envelope every failed request gets.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse wraps all successful payloads.
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func errorToHTTPStatus(err error) int {
	def, ok := err.(apperrors.Definition)
	if !ok {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return http.StatusNotFound
		}
		return http.StatusInternalServerError
	}

	switch def.Code {
	case "UNAUTHORIZED":
		return http.StatusUnauthorized
	case "APPLICATION_NOT_FOUND", "REMINDER_NOT_FOUND":
		return http.StatusNotFound
	case "EMAIL_TAKEN":
		return http.StatusConflict
	case "INVALID_CREDENTIALS":
		return http.StatusUnauthorized
	case "INVALID_STATUS", "INVALID_PRIORITY", "INVALID_THEME", "INVALID_DATE",
		"FOLLOW_UP_DAYS_OUT_OF_RANGE",
		"RESET_TOKEN_INVALID", "RESET_TOKEN_EXPIRED":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Data: data})
}

// NoContent is used for logout, deletes and the reset-request endpoint.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, err error) {
	status := errorToHTTPStatus(err)

	code, message := "INTERNAL_ERROR", "Internal server error"
	if def, ok := err.(apperrors.Definition); ok {
		code, message = def.Code, def.Message
	} else if status == http.StatusNotFound {
		code, message = "NOT_FOUND", "Resource not found"
	}

	c.JSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// BindError reports a request body that failed binding/validation.
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
	})
}
