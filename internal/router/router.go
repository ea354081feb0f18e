package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/handler"
	"github.com/noah-isme/school-portal-api/internal/middleware"
	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/service"
	"github.com/noah-isme/school-portal-api/pkg/config"
	"github.com/noah-isme/school-portal-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-portal-api/pkg/middleware/requestid"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	Tenant  *handler.TenantHandler
	User    *handler.UserHandler
	Survey  *handler.SurveyHandler
	File    *handler.FileHandler
	Data    *handler.DataHandler
	Metrics *handler.MetricsHandler
}

// New assembles the gin engine: ambient middleware, operational endpoints,
// and the versioned API surface.
func New(cfg *config.Config, logr *zap.Logger, auth *service.AuthService, metrics *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", h.Metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout)
	api.GET("/auth/me", h.Auth.Me)
	api.GET("/auth/guard", h.Auth.Guard)

	// Public intake: published surveys only, no session required. Claims are
	// attached when present so signed-in respondents are identified.
	public := api.Group("/public")
	public.Use(middleware.OptionalJWT(auth))
	{
		public.GET("/surveys", h.Survey.PublicList)
		public.GET("/surveys/:id", h.Survey.PublicGet)
		public.POST("/surveys/:id/responses", h.Survey.SubmitResponse)
	}

	authed := api.Group("")
	authed.Use(middleware.JWT(auth))
	{
		authed.GET("/tenants", h.Tenant.List)
		authed.GET("/tenants/active", h.Tenant.Active)
		authed.GET("/branding", h.Tenant.Branding)
		authed.GET("/users", h.User.List)
		authed.GET("/surveys", h.Survey.List)
		authed.GET("/surveys/:id", h.Survey.Get)
		authed.GET("/files", h.File.List)

		staff := authed.Group("")
		staff.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
		{
			staff.POST("/surveys", h.Survey.Create)
			staff.PUT("/surveys/:id", h.Survey.Update)
			staff.DELETE("/surveys/:id", h.Survey.Delete)
			staff.GET("/surveys/:id/responses", h.Survey.Responses)
			staff.GET("/surveys/:id/responses/export", h.Survey.ExportResponses)
			staff.GET("/responses", h.Survey.AllResponses)
			staff.POST("/files", h.File.Create)
			staff.DELETE("/files/:id", h.File.Delete)
		}

		admin := authed.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.POST("/tenants", h.Tenant.Create)
			admin.PUT("/tenants/active", h.Tenant.SetActive)
			admin.PUT("/tenants/:id", h.Tenant.Update)
			admin.DELETE("/tenants/:id", h.Tenant.Delete)
			admin.PUT("/branding", h.Tenant.SaveBranding)
			admin.POST("/users", h.User.Create)
			admin.PUT("/users/:id", h.User.Update)
			admin.DELETE("/users/:id", h.User.Delete)
			admin.GET("/data/export", h.Data.Export)
			admin.POST("/data/import", h.Data.Import)
			admin.DELETE("/data", h.Data.Wipe)
			admin.GET("/status", h.Metrics.Status)
		}
	}

	return r
}
