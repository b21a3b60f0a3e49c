package http

import (
	"errors"
	"log"
	"net/http"

	"lecturehub/internal/domain"

	"github.com/gin-gonic/gin"
)

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	StatusCode int                  `json:"statusCode"`
	Message    string               `json:"message"`
	Errors     []fieldErrorResponse `json:"errors,omitempty"`
}

// writeError maps domain errors to HTTP statuses. Status codes are
// assigned here only; the inner layers speak the domain taxonomy.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make([]fieldErrorResponse, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		c.JSON(http.StatusBadRequest, errorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    "validation failed",
			Errors:     fields,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrBadCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	}
	if status == http.StatusInternalServerError {
		log.Printf("http: internal error: %v", err)
		writeErrorStatus(c, status, "internal error")
		return
	}
	writeErrorStatus(c, status, err.Error())
}

func writeErrorStatus(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{StatusCode: status, Message: message})
}
