package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/config"
	"go-jobboard-client/internal/delivery/http/middleware"
	"go-jobboard-client/internal/delivery/http/response"
	"go-jobboard-client/internal/domain"
	"go-jobboard-client/internal/notifier"
	"go-jobboard-client/internal/session"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	CVUC          domain.CVUsecase
	AdminUC       domain.AdminUsecase
	Monitors      *notifier.Manager
	Feed          *notifier.Feed
	Sessions      session.Store
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(deps.Config.GinMode)
	r := gin.New()

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.LoadSession(deps.Sessions, deps.Config.CookieName))

	r.LoadHTMLGlob(deps.Config.TemplatesGlob)
	r.Static("/static", deps.Config.StaticDir)

	// Health Check
	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Route groups: public pages, signed-in pages, admin pages and the JSON
	// endpoints the dashboard/toast scripts call.
	public := r.Group("")

	protected := r.Group("")
	protected.Use(middleware.RequireAuth())

	adminPages := r.Group("")
	adminPages.Use(middleware.RequireAuth(), middleware.RequireAdmin())

	adminAPI := r.Group("/v1")
	adminAPI.Use(middleware.RequireAuth(), middleware.RequireAdmin())

	NewAuthHandler(public, protected, deps.AuthUC, deps.Config)
	NewJobHandler(public, adminPages, adminAPI, deps.JobUC, deps.CVUC)
	NewApplicationHandler(protected, adminAPI, deps.ApplicationUC, deps.Monitors)
	NewCVHandler(protected, adminAPI, deps.CVUC)
	NewProfileHandler(protected, deps.AuthUC, deps.CVUC)
	NewAdminHandler(adminPages, adminAPI, deps.AdminUC, deps.JobUC, deps.ApplicationUC, deps.CVUC)
	NewNotificationHandler(protected, deps.Feed)
	NewErrorPageHandler(public)

	r.NoRoute(func(c *gin.Context) {
		render(c, http.StatusNotFound, "error", gin.H{
			"Code":    http.StatusNotFound,
			"Title":   errorTitle(http.StatusNotFound),
			"Message": "The page you are looking for does not exist.",
		})
	})

	return r
}
