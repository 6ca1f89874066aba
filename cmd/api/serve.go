package main

import (
	"context"

	"github.com/gin-gonic/gin"

	handlerHttp "github.com/mikiasgoitom/newsdesk/internal/handler/http"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/validator"
)

func runServe(ctx context.Context) error {
	app, err := newApplication(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		app.users, app.news, app.community, app.events, app.moderation,
		app.activity, app.analytics, app.config,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := app.config.GetServerPort()
	app.logger.Infof("Server running on port %s", port)
	return router.Run(":" + port)
}
