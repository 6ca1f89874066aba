package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	"github.com/mikiasgoitom/newsdesk/internal/handler/http/dto"
	"github.com/mikiasgoitom/newsdesk/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

type Router struct {
	userHandler       *UserHandler
	newsHandler       *NewsHandler
	communityHandler  *CommunityHandler
	eventHandler      *EventHandler
	moderationHandler *ModerationHandler
	dashboardHandler  *DashboardHandler
	userUsecase       usecasecontract.IUserUseCase
	config            usecasecontract.IConfigProvider
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	newsUsecase usecasecontract.INewsUseCase,
	communityUsecase usecasecontract.ICommunityUseCase,
	eventUsecase usecasecontract.IEventUseCase,
	moderationUsecase usecasecontract.IModerationUseCase,
	activityUsecase usecasecontract.IActivityUseCase,
	analyticsUsecase usecasecontract.IAnalyticsUseCase,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		userHandler:       NewUserHandler(userUsecase),
		newsHandler:       NewNewsHandler(newsUsecase),
		communityHandler:  NewCommunityHandler(communityUsecase),
		eventHandler:      NewEventHandler(eventUsecase),
		moderationHandler: NewModerationHandler(moderationUsecase),
		dashboardHandler:  NewDashboardHandler(activityUsecase, analyticsUsecase),
		userUsecase:       userUsecase,
		config:            config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.GetCORSAllowOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.Metrics())
	// rate limiter configuration
	router.Use(middleware.RateLimiter(middleware.NewLimiter(r.config.GetRateLimitPerSecond())))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})

	api := router.Group("/api")
	auth := middleware.AuthMiddleware(r.userUsecase)
	adminOnly := middleware.RequireRole(entity.UserRoleAdmin)

	// Public routes (no authentication required)
	users := api.Group("/users")
	{
		users.POST("/register", middleware.OptionalAuth(r.userUsecase), r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.POST("/forgot-password", r.userHandler.ForgotPassword)
		users.POST("/verify-otp", r.userHandler.VerifyOTP)
		users.POST("/reset-password", r.userHandler.ResetPassword)
	}

	// Protected routes (authentication required)
	protectedUsers := users.Group("", auth)
	{
		protectedUsers.GET("", r.userHandler.GetUsers)
		protectedUsers.GET("/role/reporters", r.userHandler.GetReporters)
		protectedUsers.GET("/:id", r.userHandler.GetUser)
		protectedUsers.PUT("/status/:id", adminOnly, r.userHandler.UpdateUserStatus)
		protectedUsers.DELETE("/:id", adminOnly, r.userHandler.DeleteUser)
	}

	news := api.Group("/news", auth)
	{
		news.POST("", r.newsHandler.CreateNews)
		news.GET("", r.newsHandler.GetNews)
		news.GET("/:id", r.newsHandler.GetNewsByID)
		news.PATCH("/:id/status", adminOnly, r.newsHandler.UpdateNewsStatus)
		news.DELETE("/:id", adminOnly, r.newsHandler.DeleteNews)
	}

	communities := api.Group("/communities", auth)
	{
		communities.POST("", adminOnly, r.communityHandler.CreateCommunity)
		communities.GET("", r.communityHandler.GetCommunities)
		communities.POST("/posts", r.communityHandler.CreatePost)
		communities.GET("/posts", r.communityHandler.GetPosts)
		communities.PATCH("/:id/status", adminOnly, r.communityHandler.UpdateCommunityStatus)
		communities.DELETE("/:id", adminOnly, r.communityHandler.DeleteCommunity)
		communities.POST("/:id/members", adminOnly, r.communityHandler.AddMember)
		communities.DELETE("/:id/members/:userId", adminOnly, r.communityHandler.RemoveMember)
	}

	events := api.Group("/events", auth)
	{
		events.POST("", r.eventHandler.CreateEvent)
		events.GET("", r.eventHandler.GetEvents)
		events.PATCH("/:id/status", adminOnly, r.eventHandler.UpdateEventStatus)
	}

	moderation := api.Group("/moderation", auth)
	{
		moderation.GET("", r.moderationHandler.GetReports)
		moderation.POST("", r.moderationHandler.CreateReport)
		moderation.PATCH("/:id/status", adminOnly, r.moderationHandler.UpdateReportStatus)
	}

	activity := api.Group("/activity", auth)
	{
		activity.GET("/logs", r.dashboardHandler.GetLogs)
		activity.GET("/dashboard", r.dashboardHandler.GetDashboardStats)
	}

	analytics := api.Group("/analytics", auth)
	{
		analytics.GET("/dashboard", r.dashboardHandler.GetDashboardAnalytics)
		analytics.GET("/reports", r.dashboardHandler.GetReportsAnalytics)
		analytics.GET("/status", r.dashboardHandler.GetStatusBreakdown)
	}
}
