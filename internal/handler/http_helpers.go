package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lovedays/internal/service"
	"github.com/lovedays/internal/timeline"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// respondServiceError maps service errors onto HTTP statuses. Validation
// failures become 400s with the service message; unknown failures collapse to
// the generic "Server error" the clients expect.
func respondServiceError(c *gin.Context, err error) {
	var invalidDate *timeline.InvalidDateError

	switch {
	case errors.Is(err, service.ErrCoupleNotFound),
		errors.Is(err, service.ErrMemoryNotFound),
		errors.Is(err, service.ErrImportantDateNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCoupleExists):
		respondError(c, http.StatusConflict, err.Error())
	case errors.As(err, &invalidDate),
		errors.Is(err, service.ErrMissingPartnerName),
		errors.Is(err, service.ErrMissingCoupleID),
		errors.Is(err, service.ErrMissingMemoryTitle),
		errors.Is(err, service.ErrMissingDateTitle),
		errors.Is(err, service.ErrInvalidDateType):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "Server error")
	}
}
