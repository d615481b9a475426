package utils

import (
	"errors"
	"net/http"

	"fleetflow/internal/models"

	"github.com/gin-gonic/gin"
)

// APIResponse is the success envelope: {"success": true, "data": ...}.
// Errors are a bare {"message": ...} paired with the status code.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, message)
}

func ForbiddenResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, message)
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, ErrInternalServer)
}

// HandleServiceError maps the error taxonomy to status codes: validation and
// business-rule conflicts are 400, missing entities 404, everything else 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrDuplicateKey):
		BadRequestResponse(c, err.Error())
	case models.IsConflict(err):
		BadRequestResponse(c, err.Error())
	default:
		InternalServerErrorResponse(c)
	}
}
