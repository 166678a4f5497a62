package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	identityusecases "orgjet/internal/application/identity/usecases"
	"orgjet/internal/application/notification"
	requestusecases "orgjet/internal/application/request/usecases"
	typeusecases "orgjet/internal/application/requesttype/usecases"
	"orgjet/internal/domain/shared/events"
	"orgjet/internal/infrastructure/auth"
	"orgjet/internal/infrastructure/config"
	"orgjet/internal/infrastructure/email"
	"orgjet/internal/infrastructure/ratelimit"
	"orgjet/internal/infrastructure/repository"
	"orgjet/internal/infrastructure/storage"
	authhandlers "orgjet/internal/interfaces/http/handlers/auth"
	boardhandlers "orgjet/internal/interfaces/http/handlers/board"
	requesthandlers "orgjet/internal/interfaces/http/handlers/request"
	typehandlers "orgjet/internal/interfaces/http/handlers/requesttype"
	"orgjet/internal/interfaces/http/middleware"
	"orgjet/internal/interfaces/http/routes"
	"orgjet/internal/shared/db"
	"orgjet/internal/shared/logger"
	"orgjet/internal/shared/services/markdown"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine         *gin.Engine
	requestHandler *requesthandlers.RequestHandler
	boardHandler   *boardhandlers.BoardHandler
	typeHandler    *typehandlers.TypeHandler
	authHandler    *authhandlers.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      gin.HandlerFunc
	fileStore      *storage.LocalStore
	cfg            *config.Config
}

// NewRouter builds the full dependency graph. The dispatcher must already be
// started; notification handlers are registered here.
func NewRouter(database *gorm.DB, cfg *config.Config, dispatcher events.EventDispatcher, log logger.Interface) (*Router, error) {
	engine := gin.New()

	requestRepo := repository.NewRequestRepository(database)
	eventRepo := repository.NewRequestEventRepository(database)
	assigneeRepo := repository.NewRequestAssigneeRepository(database)
	subRepo := repository.NewSubscriptionRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	typeRepo := repository.NewRequestTypeRepository(database)
	userRepo := repository.NewUserRepository(database)
	teamRepo := repository.NewTeamRepository(database)

	txManager := db.NewTransactionManager(database)

	fileStore, err := storage.NewLocalStore(cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT)

	var sender notification.EmailSender
	if cfg.Email.Enabled {
		sender = email.NewSMTPSender(cfg.Email)
	}
	notifier := notification.NewService(subRepo, userRepo, sender, markdown.NewService(), log)
	if err := notifier.Register(dispatcher); err != nil {
		return nil, err
	}

	requestHandler := requesthandlers.NewRequestHandler(
		requestusecases.NewCreateRequestUseCase(requestRepo, eventRepo, subRepo, typeRepo, userRepo, log),
		requestusecases.NewUpdateRequestUseCase(requestRepo, eventRepo, log),
		requestusecases.NewAssignRequestUseCase(requestRepo, eventRepo, assigneeRepo, subRepo, dispatcher, log),
		requestusecases.NewAddAssigneesUseCase(requestRepo, eventRepo, assigneeRepo, subRepo, dispatcher, log),
		requestusecases.NewRemoveAssigneeUseCase(requestRepo, eventRepo, assigneeRepo, log),
		requestusecases.NewAddCommentUseCase(requestRepo, eventRepo, dispatcher, log),
		requestusecases.NewCreatePostUseCase(requestRepo, eventRepo, attachmentRepo, fileStore, dispatcher, log),
		requestusecases.NewUploadAttachmentsUseCase(requestRepo, eventRepo, attachmentRepo, fileStore, log),
		requestusecases.NewDeleteRequestUseCase(requestRepo, eventRepo, assigneeRepo, subRepo, attachmentRepo, fileStore, txManager, log),
		requestusecases.NewGetRequestUseCase(requestRepo, eventRepo, attachmentRepo, typeRepo, teamRepo, userRepo, assigneeRepo, log),
		requestusecases.NewListRequestsUseCase(requestRepo, typeRepo, teamRepo, userRepo, assigneeRepo, log),
		requestusecases.NewSubscribeUseCase(requestRepo, subRepo, log),
		requestusecases.NewUnsubscribeUseCase(requestRepo, subRepo, log),
	)

	boardHandler := boardhandlers.NewBoardHandler(
		requestusecases.NewGetBoardUseCase(requestRepo, typeRepo, teamRepo, userRepo, assigneeRepo, log),
	)

	typeHandler := typehandlers.NewTypeHandler(
		typeusecases.NewListTypesUseCase(typeRepo, log),
		typeusecases.NewValidateMetadataUseCase(typeRepo, log),
	)

	authHandler := authhandlers.NewAuthHandler(
		identityusecases.NewLoginUseCase(userRepo, jwtSvc, log),
		identityusecases.NewGetMeUseCase(userRepo, teamRepo, log),
	)

	var limit gin.HandlerFunc
	if cfg.RateLimit.Enabled && cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limit = middleware.RateLimit(ratelimit.NewRedisLimiter(client), cfg.RateLimit.RequestsPerMin)
	}

	return &Router{
		engine:         engine,
		requestHandler: requestHandler,
		boardHandler:   boardHandler,
		typeHandler:    typeHandler,
		authHandler:    authHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
		rateLimit:      limit,
		fileStore:      fileStore,
		cfg:            cfg,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	if r.rateLimit != nil {
		r.engine.Use(r.rateLimit)
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Attachment binaries are public by URL; the random stored name is the
	// only access control, matching how the URLs appear in event payloads.
	r.engine.Static(r.cfg.Storage.PublicPrefix, r.fileStore.Dir())

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupRequestRoutes(r.engine, &routes.RequestRouteConfig{
		RequestHandler: r.requestHandler,
		BoardHandler:   r.boardHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTypeRoutes(r.engine, &routes.TypeRouteConfig{
		TypeHandler:    r.typeHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
