package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondOutcomeError maps a library sentinel error to a status code.
func respondOutcomeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrBookNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: outcomeCode(err)})
	case errors.Is(err, entities.ErrUnavailable),
		errors.Is(err, entities.ErrNotBorrowed),
		errors.Is(err, entities.ErrDuplicateUser):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: outcomeCode(err)})
	default:
		respondInternalError(c, err, "library operation")
	}
}

func outcomeCode(err error) string {
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		return string(entities.OutcomeUserNotFound)
	case errors.Is(err, entities.ErrBookNotFound):
		return string(entities.OutcomeBookNotFound)
	case errors.Is(err, entities.ErrUnavailable):
		return string(entities.OutcomeUnavailable)
	case errors.Is(err, entities.ErrNotBorrowed):
		return string(entities.OutcomeNotBorrowed)
	case errors.Is(err, entities.ErrDuplicateUser):
		return string(entities.OutcomeDuplicateUser)
	}
	return ""
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message and optional data.
func respondSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message, Data: data})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondAccepted sends a 202 Accepted response (for queued work).
func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message, Data: data})
}

// --- Parameter Parsing ---

// parseIDParam extracts an integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (int, bool) {
	id, err := strconv.Atoi(c.Param(paramName))
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return id, true
}
