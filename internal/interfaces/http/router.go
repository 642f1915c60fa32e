package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminusecases "dropcircle/internal/application/admin/usecases"
	artifactusecases "dropcircle/internal/application/artifact/usecases"
	betausecases "dropcircle/internal/application/betarequest/usecases"
	circleusecases "dropcircle/internal/application/circle/usecases"
	feedbackusecases "dropcircle/internal/application/feedback/usecases"
	inviteusecases "dropcircle/internal/application/invite/usecases"
	"dropcircle/internal/infrastructure/config"
	"dropcircle/internal/infrastructure/email"
	"dropcircle/internal/infrastructure/identity"
	"dropcircle/internal/infrastructure/ratelimit"
	"dropcircle/internal/infrastructure/repository"
	"dropcircle/internal/infrastructure/storage"
	adminhandlers "dropcircle/internal/interfaces/http/handlers/admin"
	betahandlers "dropcircle/internal/interfaces/http/handlers/beta"
	circlehandlers "dropcircle/internal/interfaces/http/handlers/circle"
	drophandlers "dropcircle/internal/interfaces/http/handlers/drop"
	"dropcircle/internal/interfaces/http/middleware"
	"dropcircle/internal/interfaces/http/routes"
	"dropcircle/internal/shared/db"
	"dropcircle/internal/shared/logger"
	"dropcircle/internal/shared/services/sanitize"
)

// Router wires repositories, use cases, handlers, and middleware into a
// single Gin engine.
type Router struct {
	engine        *gin.Engine
	cfg           *config.Config
	log           logger.Interface
	redisClient   *redis.Client
	betaHandler   *betahandlers.BetaHandler
	adminHandler  *adminhandlers.AdminHandler
	circleHandler *circlehandlers.CircleHandler
	dropHandler   *drophandlers.DropHandler
	operatorAuth  *middleware.OperatorAuth
	creatorAuth   *middleware.CreatorAuth
	limiter       ratelimit.RateLimiter
}

// NewRouter builds the full dependency graph on top of an established
// database connection.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	requestRepo := repository.NewBetaRequestRepository(database)
	circleRepo := repository.NewCircleRepository(database)
	artifactRepo := repository.NewArtifactRepository(database)
	feedbackRepo := repository.NewFeedbackRepository(database)

	txManager := db.NewTransactionManager(database)
	sanitizer := sanitize.NewService()

	blobStore, err := storage.NewFilesystemStore(cfg.Storage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}

	verifier, err := identity.NewVerifierFromConfig(&cfg.Identity)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity verifier: %w", err)
	}

	var notifier betausecases.RequestNotifier
	if cfg.Email.NotifyNewRequest && cfg.Email.OperatorAddress != "" {
		notifier = email.NewSMTPEmailService(email.SMTPConfig{
			Host:            cfg.Email.SMTPHost,
			Port:            cfg.Email.SMTPPort,
			Username:        cfg.Email.SMTPUser,
			Password:        cfg.Email.SMTPPassword,
			FromAddress:     cfg.Email.FromAddress,
			FromName:        cfg.Email.FromName,
			OperatorAddress: cfg.Email.OperatorAddress,
		})
	} else {
		log.Infow("email notifications disabled")
	}

	redisClient, limiter := initRateLimiter(cfg, log)

	submitRequestUC := betausecases.NewSubmitRequestUseCase(requestRepo, notifier, sanitizer, log)
	updateNoteUC := betausecases.NewUpdateNoteUseCase(requestRepo, sanitizer, log)
	reviewRequestUC := betausecases.NewReviewRequestUseCase(requestRepo, notifier, log)
	provisionAccountUC := betausecases.NewProvisionAccountUseCase(requestRepo, log)
	getRequestByEmailUC := betausecases.NewGetRequestByEmailUseCase(requestRepo, log)
	listRequestsUC := betausecases.NewListRequestsUseCase(requestRepo, log)

	createCircleUC := circleusecases.NewCreateCircleUseCase(circleRepo, requestRepo, txManager, log)
	renameCircleUC := circleusecases.NewRenameCircleUseCase(circleRepo, log)
	setLiveUC := circleusecases.NewSetLiveUseCase(circleRepo, log)
	listCirclesUC := circleusecases.NewListCirclesUseCase(circleRepo, log)

	attachArtifactUC := artifactusecases.NewAttachArtifactUseCase(artifactRepo, circleRepo, blobStore, log)
	listArtifactsUC := artifactusecases.NewListArtifactsUseCase(artifactRepo, circleRepo, log)

	resolveInviteUC := inviteusecases.NewResolveInviteUseCase(circleRepo, artifactRepo, log)

	submitFeedbackUC := feedbackusecases.NewSubmitFeedbackUseCase(feedbackRepo, sanitizer, log)
	listFeedbackUC := feedbackusecases.NewListFeedbackUseCase(feedbackRepo, log)

	listVisionariesUC := adminusecases.NewListVisionariesUseCase(requestRepo, circleRepo, artifactRepo, log)

	return &Router{
		engine:      engine,
		cfg:         cfg,
		log:         log,
		redisClient: redisClient,
		betaHandler: betahandlers.NewBetaHandler(submitRequestUC, updateNoteUC),
		adminHandler: adminhandlers.NewAdminHandler(
			listRequestsUC, reviewRequestUC, provisionAccountUC,
			getRequestByEmailUC, listVisionariesUC, listFeedbackUC,
		),
		circleHandler: circlehandlers.NewCircleHandler(
			createCircleUC, renameCircleUC, setLiveUC, listCirclesUC,
			attachArtifactUC, listArtifactsUC,
		),
		dropHandler:  drophandlers.NewDropHandler(resolveInviteUC, submitFeedbackUC),
		operatorAuth: middleware.NewOperatorAuth(cfg.Operator.KeyHash, log),
		creatorAuth:  middleware.NewCreatorAuth(verifier, log),
		limiter:      limiter,
	}, nil
}

// initRateLimiter connects to Redis when it is enabled. Public endpoints
// stay unthrottled otherwise.
func initRateLimiter(cfg *config.Config, log logger.Interface) (*redis.Client, ratelimit.RateLimiter) {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, rate limiting is off")
		return nil, ratelimit.NewNoopRateLimiter()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Errorw("failed to connect to Redis, rate limiting is off", "error", err)
		return nil, ratelimit.NewNoopRateLimiter()
	}
	log.Infow("Redis connection established successfully")

	return redisClient, ratelimit.NewRedisRateLimiter(redisClient)
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	submitLimit := middleware.RateLimit(r.limiter, "beta-submit", ratelimit.Limits{
		RequestsPerMinute: r.cfg.RateLimit.SubmitPerMinute,
		RequestsPerHour:   r.cfg.RateLimit.SubmitPerHour,
	}, r.log)
	feedbackLimit := middleware.RateLimit(r.limiter, "feedback", ratelimit.Limits{
		RequestsPerMinute: r.cfg.RateLimit.FeedbackPerMinute,
		RequestsPerHour:   r.cfg.RateLimit.FeedbackPerHour,
	}, r.log)

	routes.SetupBetaRoutes(r.engine, &routes.BetaRouteConfig{
		BetaHandler: r.betaHandler,
		SubmitLimit: submitLimit,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler: r.adminHandler,
		OperatorAuth: r.operatorAuth,
	})

	routes.SetupCircleRoutes(r.engine, &routes.CircleRouteConfig{
		CircleHandler: r.circleHandler,
		CreatorAuth:   r.creatorAuth,
	})

	routes.SetupDropRoutes(r.engine, &routes.DropRouteConfig{
		DropHandler:   r.dropHandler,
		FeedbackLimit: feedbackLimit,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Close releases the Redis connection when one was opened.
func (r *Router) Close() error {
	if r.redisClient != nil {
		return r.redisClient.Close()
	}
	return nil
}
