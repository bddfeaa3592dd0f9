package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/connecta/agency-system/internal/api/handler"
	"github.com/connecta/agency-system/internal/api/middleware"
	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/service"
	"github.com/connecta/agency-system/internal/infrastructure/config"
	mongodb "github.com/connecta/agency-system/internal/infrastructure/db/mongo"
	redisdb "github.com/connecta/agency-system/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every route registered. This is
// the single authoritative route set.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("connecta"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	ticketRepo := mongodb.NewTicketRepository(db)
	fileStore, err := mongodb.NewGridFSStore(db)
	if err != nil {
		return nil, err
	}
	revocations := redisdb.NewRevocationStore(rdb)

	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, cfg.RememberTTL)
	authService := service.NewAuthService(userRepo, tokens, revocations, log)
	accountService := service.NewAccountService(userRepo, log)
	catalogService := service.NewCatalogService(serviceRepo, userRepo, log)
	ticketService := service.NewTicketService(ticketRepo, log)
	contractService := service.NewContractService(userRepo, fileStore, log)
	fileService := service.NewFileService(fileStore, log)

	authHandler := handler.NewAuthHandler(authService, cfg.CookieSecure)
	dashboardHandler := handler.NewDashboardHandler()
	accountHandler := handler.NewAccountHandler(accountService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	contractHandler := handler.NewContractHandler(contractService)
	fileHandler := handler.NewFileHandler(fileService)

	pageSession := middleware.Session(authService, middleware.FailWithRedirect)
	apiSession := middleware.Session(authService, middleware.FailWithStatus)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee)

	// --- Login / logout ---
	e.GET("/", authHandler.LoginPage)
	e.POST("/", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Page routes (redirect to login on auth failure) ---
	pages := e.Group("", pageSession)
	pages.GET("/dashboard", dashboardHandler.Show)
	pages.GET("/services", serviceHandler.List)
	pages.GET("/services/:id", serviceHandler.View)
	pages.GET("/services/:id/accept", serviceHandler.Accept)

	// --- File routes ---
	files := e.Group("", apiSession)
	files.POST("/upload", fileHandler.Upload)
	files.GET("/download/:id", fileHandler.Download)
	files.GET("/image/:id", fileHandler.Image)

	// --- API routes (401 on auth failure) ---
	apiGroup := e.Group("/api", apiSession)

	apiGroup.POST("/users", accountHandler.Register, adminOnly)
	apiGroup.GET("/users/:id", accountHandler.Get, staffOnly)
	apiGroup.DELETE("/users/:id", accountHandler.Delete, adminOnly)
	apiGroup.GET("/clients", accountHandler.ListClients, staffOnly)

	apiGroup.POST("/services", serviceHandler.Create, adminOnly)
	apiGroup.PATCH("/services/:id", serviceHandler.UpdateStatus, adminOnly)
	apiGroup.DELETE("/services/:id", serviceHandler.Delete, adminOnly)

	apiGroup.POST("/tickets", ticketHandler.Create)
	apiGroup.GET("/tickets", ticketHandler.List)
	apiGroup.GET("/tickets/:id", ticketHandler.Get)
	apiGroup.PATCH("/tickets/:id", ticketHandler.UpdateStatus, staffOnly)
	apiGroup.DELETE("/tickets/:id", ticketHandler.Delete, adminOnly)

	apiGroup.POST("/contracts/:user", contractHandler.Add, adminOnly)
	apiGroup.GET("/contracts/:user/:id/file", contractHandler.DownloadFile, staffOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
