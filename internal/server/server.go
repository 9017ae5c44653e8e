package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"joyjuncture/internal/auth"
	"joyjuncture/internal/catalog"
	"joyjuncture/internal/config"
	"joyjuncture/internal/content"
	"joyjuncture/internal/email"
	"joyjuncture/internal/event"
	"joyjuncture/internal/game"
	"joyjuncture/internal/user"
	"joyjuncture/internal/wallet"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	walletHandler := wallet.NewHandler(db, cfg.WelcomeBonusPoints)
	ledger := walletHandler.Service()

	userHandler := user.NewHandler(db, cfg.JWTSecret, emailService)
	catalogHandler := catalog.NewHandler(db, ledger)
	eventHandler := event.NewHandler(db, ledger, emailService)
	gameHandler := game.NewHandler(ledger)
	contentHandler := content.NewHandler(db)

	authRoutes := router.Group("/auth")
	authRoutes.Use(RateLimitMiddleware(5, 10))
	{
		authRoutes.POST("/register", userHandler.Register)
		authRoutes.POST("/login", userHandler.Login)
		authRoutes.POST("/refresh", userHandler.RefreshToken)
	}

	// Public reads: catalog, events, blog, and the daily puzzle.
	router.GET("/products", catalogHandler.ListProducts)
	router.GET("/products/:productID", catalogHandler.GetProduct)
	router.GET("/events", eventHandler.ListEvents)
	router.GET("/events/:eventID", eventHandler.GetEvent)
	router.GET("/blog", contentHandler.ListPosts)
	router.GET("/play/sudoku", gameHandler.DailySudoku)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/wallet", walletHandler.GetBalance)
		protected.GET("/wallet/transactions", walletHandler.ListTransactions)
		protected.POST("/products/:productID/purchase", catalogHandler.Purchase)
		protected.POST("/events/:eventID/register", eventHandler.Register)
		protected.GET("/events/registrations", eventHandler.ListMyRegistrations)
		protected.POST("/play/sudoku", gameHandler.SubmitSudoku)
		protected.POST("/play/riddle", gameHandler.SubmitRiddle)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
