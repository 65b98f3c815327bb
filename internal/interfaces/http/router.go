package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"devicedesk/internal/application/notification"
	"devicedesk/internal/application/ticket/usecases"
	"devicedesk/internal/infrastructure/auth"
	"devicedesk/internal/infrastructure/cache"
	"devicedesk/internal/infrastructure/config"
	"devicedesk/internal/infrastructure/email"
	"devicedesk/internal/infrastructure/repository"
	"devicedesk/internal/infrastructure/services"
	tickethandlers "devicedesk/internal/interfaces/http/handlers/ticket"
	"devicedesk/internal/interfaces/http/middleware"
	"devicedesk/internal/interfaces/http/routes"
	"devicedesk/internal/shared/logger"
	"devicedesk/internal/shared/services/markdown"
	"devicedesk/internal/shared/utils"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine           *gin.Engine
	ticketHandler    *tickethandlers.TicketHandler
	authMiddleware   *middleware.AuthMiddleware
	tenantMiddleware *middleware.TenantMiddleware
	logger           logger.Interface
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	eventRepo := repository.NewStatusEventRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	numberGen := services.NewTicketNumberGenerator(db)
	emailService := email.NewSMTPEmailService(cfg.Email)
	builder := notification.NewBuilder(markdown.NewService())

	var listCache usecases.ListCache
	if redisClient != nil {
		listCache = cache.NewRedisTicketListCache(
			redisClient,
			time.Duration(cfg.Cache.ListTTLSeconds)*time.Second,
			log,
		)
	}

	createTicketUC := usecases.NewCreateTicketUseCase(ticketRepo, customerRepo, numberGen, listCache, log)
	transitionUC := usecases.NewTransitionTicketUseCase(
		ticketRepo,
		eventRepo,
		messageRepo,
		customerRepo,
		tenantRepo,
		builder,
		emailService,
		listCache,
		log,
		usecases.WithSendTimeout(time.Duration(cfg.Email.SendTimeoutSeconds)*time.Second),
	)
	getTicketUC := usecases.NewGetTicketUseCase(ticketRepo, eventRepo, messageRepo, mediaRepo, log)
	listTicketsUC := usecases.NewListTicketsUseCase(ticketRepo, listCache, log)
	addMessageUC := usecases.NewAddMessageUseCase(ticketRepo, messageRepo, log)
	listMediaUC := usecases.NewListMediaUseCase(ticketRepo, mediaRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC,
		transitionUC,
		getTicketUC,
		listTicketsUC,
		addMessageUC,
		listMediaUC,
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	tenantMiddleware := middleware.NewTenantMiddleware(tenantRepo, log)

	return &Router{
		engine:           engine,
		ticketHandler:    ticketHandler,
		authMiddleware:   authMiddleware,
		tenantMiddleware: tenantMiddleware,
		logger:           log,
	}
}

// SetupRoutes registers global middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:    r.ticketHandler,
		AuthMiddleware:   r.authMiddleware,
		TenantMiddleware: r.tenantMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
