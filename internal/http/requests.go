package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/services"
)

// EnqueueRequest uses pointers so that a missing field is distinguishable
// from id 0.
type EnqueueRequest struct {
	UserID *int `json:"user_id" binding:"required"`
	BookID *int `json:"book_id" binding:"required"`
}

type RequestsController struct {
	library   LibraryStore
	processor RequestRunner
}

func NewRequestsController(library LibraryStore, processor RequestRunner) *RequestsController {
	return &RequestsController{
		library:   library,
		processor: processor,
	}
}

func (controller *RequestsController) GetPending(c *gin.Context) {
	pending := controller.library.PendingRequests()
	c.IndentedJSON(http.StatusOK, gin.H{"requests": pending, "count": len(pending)})
}

// Enqueue accepts any ids; unknown users or books are skipped when the
// queue is processed.
func (controller *RequestsController) Enqueue(c *gin.Context) {
	var req EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "user_id and book_id are required")
		return
	}

	controller.library.Request(*req.UserID, *req.BookID)
	respondAccepted(c, "request queued", entities.Request{UserID: *req.UserID, BookID: *req.BookID})
}

func (controller *RequestsController) Process(c *gin.Context) {
	if controller.processor == nil {
		respondInternalError(c, errProcessorMissing, "process requests")
		return
	}

	processed := controller.processor.RunNow(services.TriggerAPI)
	c.IndentedJSON(http.StatusOK, gin.H{"processed": processed, "count": len(processed)})
}
