package handlers

import (
	"errors"
	"net/http"
	"trade_manager/internal/services"

	"github.com/gin-gonic/gin"
)

var statusByError = map[error]int{
	services.ErrMissingFields:        http.StatusBadRequest,
	services.ErrMissingEmail:         http.StatusBadRequest,
	services.ErrInvalidClientType:    http.StatusBadRequest,
	services.ErrWeakPassword:         http.StatusBadRequest,
	services.ErrInvalidQuantity:      http.StatusBadRequest,
	services.ErrInvalidStatus:        http.StatusBadRequest,
	services.ErrInvalidAmount:        http.StatusBadRequest,
	services.ErrInvalidPaymentMethod: http.StatusBadRequest,

	services.ErrInvalidCredentials: http.StatusUnauthorized,

	services.ErrForbidden:    http.StatusForbidden,
	services.ErrSelfEdit:     http.StatusForbidden,
	services.ErrSelfDeletion: http.StatusForbidden,

	services.ErrUserNotFound:    http.StatusNotFound,
	services.ErrUnknownRole:     http.StatusNotFound,
	services.ErrClientNotFound:  http.StatusNotFound,
	services.ErrProductNotFound: http.StatusNotFound,
	services.ErrOrderNotFound:   http.StatusNotFound,

	services.ErrDuplicateUsername: http.StatusConflict,
	services.ErrDuplicateEmail:    http.StatusConflict,
	services.ErrDuplicateRole:     http.StatusConflict,
	services.ErrDuplicatePayment:  http.StatusConflict,
	services.ErrInsufficientStock: http.StatusConflict,
}

// respondError translates a service error into a status code. Anything not
// in the taxonomy is an infrastructure failure and stays generic.
func respondError(c *gin.Context, err error) {
	for sentinel, status := range statusByError {
		if errors.Is(err, sentinel) {
			c.JSON(status, gin.H{"error": sentinel.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
