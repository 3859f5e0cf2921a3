package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	library   LibraryStore
	processor RequestRunner
	version   string
}

func NewHealthController(library LibraryStore, processor RequestRunner, version string) *HealthController {
	return &HealthController{
		library:   library,
		processor: processor,
		version:   version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.library != nil {
		checks["books"] = strconv.Itoa(len(h.library.Books()))
		checks["users"] = strconv.Itoa(len(h.library.Users()))
		checks["pending_requests"] = strconv.Itoa(len(h.library.PendingRequests()))
	} else {
		checks["library"] = "not configured"
		status = "unhealthy"
	}

	switch {
	case h.processor == nil:
		checks["request_processor"] = "not configured"
	case h.processor.IsRunning():
		checks["request_processor"] = "running"
	default:
		checks["request_processor"] = "stopped"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
