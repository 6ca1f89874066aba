package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	redisclient "github.com/mikiasgoitom/newsdesk/internal/infrastructure/cache"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/config"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/database"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/newsdesk/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/newsdesk/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/store"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/validator"
	"github.com/mikiasgoitom/newsdesk/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// application holds the wired dependency graph shared by serve and seed.
type application struct {
	config      usecasecontract.IConfigProvider
	logger      usecasecontract.IAppLogger
	mongoClient *database.MongoDBClient
	db          *mongo.Database
	rdb         *redis.Client

	users      *usecase.UserUsecase
	news       *usecase.NewsUseCase
	community  *usecase.CommunityUseCase
	events     *usecase.EventUseCase
	moderation *usecase.ModerationUseCase
	activity   *usecase.ActivityUseCase
	analytics  *usecase.AnalyticsUseCase
}

func newApplication(ctx context.Context) (*application, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewAppLogger(appConfig.GetLogLevel())

	if appConfig.GetMongoURI() == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable not set")
	}
	if appConfig.GetJWTSecret() == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.GetMongoURI())
	if err != nil {
		return nil, err
	}
	db := mongoClient.Client.Database(appConfig.GetMongoDBName())
	if err := database.EnsureIndexes(ctx, db); err != nil {
		_ = mongoClient.Disconnect()
		return nil, err
	}

	// Dependency Injection: Services
	appValidator := validator.NewValidator()
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(appConfig.GetJWTSecret(), appConfig.GetAccessTokenExpiry()))
	mailService := external_services.NewEmailService(
		appConfig.GetEmailHost(),
		appConfig.GetEmailPort(),
		appConfig.GetEmailUsername(),
		appConfig.GetEmailAppPassword(),
		appConfig.GetEmailFrom(),
	)
	mailTemplates := external_services.NewMailTemplates(appConfig.GetAppName(), appConfig.GetAppBaseURL())
	uuidGenerator := uuidgen.NewGenerator()
	randomGenerator := randomgenerator.NewRandomGenerator()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection(database.UsersCollection), appValidator)
	newsRepo := mongodb.NewNewsRepository(db, appValidator)
	communityRepo := mongodb.NewCommunityRepository(db, appValidator)
	postRepo := mongodb.NewPostRepository(db, appValidator)
	eventRepo := mongodb.NewEventRepository(db, appValidator)
	reportRepo := mongodb.NewModerationRepository(db, appValidator)
	logRepo := mongodb.NewActivityLogRepository(db, appValidator)

	// Dependency Injection: Usecases
	activityUsecase := usecase.NewActivityUseCase(logRepo, newsRepo, userRepo, reportRepo, uuidGenerator, appLogger)
	analyticsUsecase := usecase.NewAnalyticsUseCase(newsRepo, communityRepo, postRepo, eventRepo, reportRepo, appLogger)

	app := &application{
		config:      appConfig,
		logger:      appLogger,
		mongoClient: mongoClient,
		db:          db,
		activity:    activityUsecase,
		analytics:   analyticsUsecase,
	}

	// Optional Dependency Injection: Redis cache
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, redisURL)
		if err != nil {
			appLogger.Warnf("analytics cache disabled: %v", err)
		} else {
			app.rdb = rdb
			analyticsUsecase.SetCache(store.NewAnalyticsCacheStore(rdb, appConfig.GetAnalyticsCacheTTL()))
		}
	}

	app.users = usecase.NewUserUsecase(userRepo, hasher, jwtService, mailService, mailTemplates, appLogger, appConfig,
		appValidator, uuidGenerator, randomGenerator, activityUsecase, analyticsUsecase)
	app.news = usecase.NewNewsUseCase(newsRepo, uuidGenerator, appLogger, activityUsecase, analyticsUsecase)
	app.community = usecase.NewCommunityUseCase(communityRepo, postRepo, userRepo, uuidGenerator, appLogger, activityUsecase, analyticsUsecase)
	app.events = usecase.NewEventUseCase(eventRepo, uuidGenerator, appLogger, activityUsecase, analyticsUsecase)
	app.moderation = usecase.NewModerationUseCase(reportRepo, uuidGenerator, appLogger, activityUsecase, analyticsUsecase)

	return app, nil
}

func (a *application) Close() {
	if err := redisclient.Close(a.rdb); err != nil {
		a.logger.Warnf("failed to close redis: %v", err)
	}
	if err := a.mongoClient.Disconnect(); err != nil {
		a.logger.Warnf("failed to disconnect mongodb: %v", err)
	}
}
