package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"portfolio-backend/internal/cloudinary"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handler"
	"portfolio-backend/internal/mailer"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/notify"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router    *gin.Engine
	db        *sqlx.DB
	cfg       *config.Config
	logger    *zap.Logger
	accessLog *logrus.Logger
	mailer    mailer.Mailer
	gallery   *cloudinary.Client
	notifier  notify.Notifier
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger, accessLog *logrus.Logger, m mailer.Mailer, gallery *cloudinary.Client, notifier notify.Notifier) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.AccessLog(accessLog))

	s := &Server{
		router:    router,
		db:        db,
		cfg:       cfg,
		logger:    logger,
		accessLog: accessLog,
		mailer:    m,
		gallery:   gallery,
		notifier:  notifier,
	}

	// Setup routes
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Repositories
	photographerRepo := repository.NewPhotographerRepository(s.db, s.logger)
	recoveryRepo := repository.NewRecoveryTokenRepository(s.db, s.logger)
	denylistRepo := repository.NewDenylistRepository(s.db, s.logger)
	auditRepo := repository.NewAuditLogRepository(s.db, s.logger)
	contactRepo := repository.NewContactRepository(s.db, s.logger)

	// Services
	audit := service.NewAuditRecorder(auditRepo, s.logger)
	authService := service.NewAuthService(
		photographerRepo, recoveryRepo, denylistRepo, s.mailer, s.logger,
		[]byte(s.cfg.Auth.JWTSecret), s.cfg.Auth.TokenTTL, s.cfg.Auth.RecoveryTTL,
	)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, audit, s.logger)
	contactHandler := handler.NewContactHandler(contactRepo, s.notifier, audit, s.logger)
	methodsHandler := handler.NewContactMethodsHandler(contactRepo, audit, s.logger)
	galleryHandler := handler.NewGalleryHandler(s.gallery, audit, s.logger)

	authRequired := middleware.AuthMiddleware([]byte(s.cfg.Auth.JWTSecret), denylistRepo, s.logger)

	// Health check
	s.router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Olá, estou online!")
	})

	// Authentication routes
	authGroup := s.router.Group("/api/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/cadastro", authHandler.Register)
	authGroup.POST("/recuperar-senha", authHandler.RequestRecovery)
	authGroup.POST("/resetar-senha", authHandler.ResetPassword)
	authGroup.POST("/logout", authRequired, authHandler.Logout)

	// Public contact form
	s.router.POST("/api/contatos", contactHandler.Create)

	// Contact methods
	methods := s.router.Group("/api/formas-contato")
	methods.GET("", methodsHandler.ListPublic)
	methods.GET("/admin", authRequired, methodsHandler.ListAdmin)
	methods.PUT("/:id", authRequired, methodsHandler.Update)

	// Gallery proxy
	s.router.POST("/api/cloudinary/fotos", galleryHandler.ListPhotos)
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests before
// returning.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	go func() {
		s.logger.Info("Server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	s.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
