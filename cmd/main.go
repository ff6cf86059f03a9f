package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"medical-directory/config"
	_ "medical-directory/docs"
	"medical-directory/internal/handler"
	"medical-directory/internal/migrations"
	"medical-directory/internal/ports"
	"medical-directory/internal/repository"
	"medical-directory/internal/security"
	"medical-directory/internal/service"
	"medical-directory/internal/util"
)

const tokenPurgeInterval = time.Hour

// @title Medical directory API
// @version 1.0
// @description Authentication and doctor directory REST API

// @host localhost:5000

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("loading configuration failed: %v", err)
	}

	db, err := config.SetupDatabase(&cfg.DatabaseConfig)
	if err != nil {
		log.Fatalf("connecting to the database failed: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("closing the database failed: %v", err)
		}
	}()

	if cfg.DatabaseConfig.MigrateOnStart {
		if err := migrations.Up(ctx, db.DB.DB); err != nil {
			log.Fatalf("migrating the database failed: %v", err)
		}
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("connecting to redis failed: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("closing redis failed: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.App.ServerAddr)
	responder := util.NewResponder(cfg.IsDevelopment())

	userRepo := repository.NewUserRepository(db)
	jwtRepo := repository.NewJWTRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, config.Duration(cfg.TTL.DoctorsCache))

	var avatars ports.S3Storage
	if cfg.S3Config.Bucket != "" {
		s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
		if err != nil {
			log.Printf("avatar storage disabled: %v", err)
		} else {
			avatars = s3Service
		}
	}

	jwtService, err := security.NewJWTService(&cfg.JWT)
	if err != nil {
		log.Fatalf("creating the JWT service failed: %v", err)
	}
	tokenService := service.NewTokenService(jwtService, jwtRepo, userRepo)
	authService := service.NewAuthenticationService(userRepo, tokenService, security.NewBcryptHasher(cfg.Security.BcryptCost))
	doctorService := service.NewDoctorService(doctorRepo, cacheRepo, avatars, config.Duration(cfg.TTL.AvatarURL))

	authHandler := handler.NewAuthenticationHandler(authService, responder)
	doctorHandler := handler.NewDoctorHandler(doctorService, responder)
	healthHandler := handler.NewHealthHandler(db, responder)

	router.Use(config.CORSMiddleware(&cfg.App))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/health", healthHandler.Health)

	authMiddleware := security.JWTMiddleware(tokenService, userRepo, responder)
	setupAuthRoutes(router, authHandler, authMiddleware)
	setupDoctorRoutes(router, doctorHandler)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responder.Fail(w, http.StatusNotFound, "route not found")
	})

	go purgeExpiredTokens(ctx, tokenService, tokenPurgeInterval)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.RefreshToken)
		r.Post("/logout", h.Logout)
		r.Get("/email-available", h.EmailAvailable)
		r.Get("/phone-available", h.PhoneAvailable)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/profile", h.Profile)
			r.Patch("/password", h.ChangePassword)
		})
	})
}

func setupDoctorRoutes(r chi.Router, h *handler.DoctorHandler) {
	r.Route("/api/doctors", func(r chi.Router) {
		r.Get("/", h.ListDoctors)
		r.Get("/specialties", h.ListSpecialties)
	})
}

// purgeExpiredTokens : periodically drops refresh tokens nobody can rotate any more
func purgeExpiredTokens(ctx context.Context, tokenService *service.TokenService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := tokenService.PurgeExpired(ctx)
			if err == nil && deleted > 0 {
				log.Printf("purged %d expired refresh tokens", deleted)
			}
		}
	}
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("server listening on " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
			return
		}
	case sig := <-signalChannel:
		log.Printf("received %v, shutting down", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("server shutdown failed: %v", err)
	} else {
		log.Println("server stopped")
	}
}
