package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	health := NewHealthController(cfg.Library, cfg.Processor, cfg.Version)
	router.GET("/health", health.Status)

	books := NewBooksController(cfg.Library)
	users := NewUsersController(cfg.Library)
	reqs := NewRequestsController(cfg.Library, cfg.Processor)

	api := router.Group("/api")
	api.Use(ReadOnlyMiddleware(cfg.ReadOnly))
	{
		api.GET("/books", books.GetAllBooks)
		api.POST("/books", books.AddBook)
		api.GET("/books/:id", books.GetBook)

		api.GET("/users", users.GetAllUsers)
		api.POST("/users", users.AddUser)
		api.GET("/users/:id", users.GetUser)
		api.POST("/users/:id/borrow/:bookId", users.Borrow)
		api.POST("/users/:id/return/:bookId", users.Return)

		api.GET("/requests", reqs.GetPending)
		api.POST("/requests", reqs.Enqueue)
		api.POST("/requests/process", reqs.Process)
	}

	return router
}
