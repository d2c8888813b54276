package helper

import (
	"errors"
	"net/http"

	"newshub/models"

	"github.com/gin-gonic/gin"
)

// GetStatusCode maps the service error taxonomy onto HTTP status codes.
func GetStatusCode(err error) int {
	var verr *models.ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes the error response for a failed service call. Field
// errors are included for validation failures; everything else renders
// only the taxonomy message, never internal detail.
func SendError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid input data",
			"errors":  verr.Fields,
		})
		return
	}

	status := GetStatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = models.ErrInternal.Error()
	}
	c.JSON(status, gin.H{"message": message})
}

// Paginate builds the pagination block of a list response.
func Paginate(total int64, limit, offset int) models.Pagination {
	return models.Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+limit) < total,
	}
}
