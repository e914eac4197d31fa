package handlers

import (
	"net/http"

	"contact_management/internal/logger"
	"contact_management/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Browser-facing pages and auth endpoints (session checks inline)
	router.GET("/", h.index)
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.GET("/logout", h.logout)
	router.GET("/dashboard", h.dashboard)

	// JSON API (protected by the session middleware)
	h.registerAPIRoutes(router)

	// Live contact-count stream — same port, cookie-authenticated
	router.GET("/ws/stats", h.wsStats)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api", h.sessionMiddleware)
	{
		api.POST("/contacts", h.createContact)
		api.PUT("/contacts/:id", h.updateContact)
		api.DELETE("/contacts/:id", h.deleteContact)
		api.GET("/stats", h.getStats)
	}
}

// respondError writes the uniform failure envelope.
func respondError(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, gin.H{"success": false, "message": message})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
