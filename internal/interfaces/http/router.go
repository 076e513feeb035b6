package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	kbusecases "helpdesk/internal/application/kb/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
	kbhandlers "helpdesk/internal/interfaces/http/handlers/kb"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/interfaces/web"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

// Router wires repositories, use cases and handlers into a Gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.SecurityHeaders())
	if len(cfg.Server.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}

	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	articleRepo := repository.NewArticleRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(ticketRepo, log)
	addNoteUC := ticketusecases.NewAddNoteUseCase(ticketRepo, log)

	registerUC := userusecases.NewRegisterUseCase(userRepo, sessionRepo, hasher, &cfg.Auth, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, sessionRepo, hasher, &cfg.Auth, log)
	logoutUC := userusecases.NewLogoutUseCase(sessionRepo, log)
	currentUserUC := userusecases.NewCurrentUserUseCase(userRepo, log)

	listArticlesUC := kbusecases.NewListArticlesUseCase(articleRepo, log)
	getArticleUC := kbusecases.NewGetArticleUseCase(articleRepo, log)

	authMiddleware := middleware.NewAuthMiddleware(sessionRepo, userRepo, &cfg.Auth.Cookie, log)

	markdownSvc := markdown.NewMarkdownService()

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, changeStatusUC, addNoteUC,
		&cfg.Upload, log)
	authHandler := authhandlers.NewAuthHandler(
		registerUC, loginUC, logoutUC, currentUserUC, &cfg.Auth, log)
	kbHandler := kbhandlers.NewKBHandler(listArticlesUC, getArticleUC, markdownSvc, log)

	renderer, err := web.NewRenderer(cfg.Server.TemplatesPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up view renderer: %w", err)
	}
	viewHandler := web.NewViewHandler(
		renderer, listTicketsUC, getTicketUC, listArticlesUC,
		markdownSvc, log)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupKBRoutes(engine, &routes.KBRouteConfig{
		KBHandler:      kbHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupWebRoutes(engine, &routes.WebRouteConfig{
		ViewHandler:    viewHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
	}, nil
}

// Engine exposes the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	addr := r.cfg.Server.GetAddr()
	r.logger.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production", "prod":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
