package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/admins"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/contact"
	"portfolio-backend/internal/db"
	"portfolio-backend/internal/experience"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/notifications"
	"portfolio-backend/internal/profile"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/skills"
	"portfolio-backend/internal/stats"
	"portfolio-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	jwtManager := &auth.Manager{
		Secret:    []byte(cfg.JWTSecret),
		AccessTTL: time.Duration(cfg.AccessTTLMinutes) * time.Minute,
		Issuer:    "portfolio-backend",
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.OwnerEmail)
	if mailer == nil {
		logger.Info("contact notifications disabled")
	} else {
		logger.Info("contact notifications enabled", slog.String("owner", cfg.OwnerEmail))
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	adminRepo := admins.NewRepository(cols.Admins)
	adminService := admins.NewService(adminRepo, jwtManager)
	adminHandler := admins.NewHandler(adminService, val, logger)

	profileRepo := profile.NewRepository(cols.Profiles)
	profileService := profile.NewService(profileRepo)
	profileHandler := profile.NewHandler(profileService, val, logger, cacheStore, cacheTTL, cfg.PublicBaseURL)

	projectRepo := projects.NewRepository(cols.Projects)
	projectService := projects.NewService(projectRepo)
	projectHandler := projects.NewHandler(projectService, val, logger, cacheStore, cacheTTL, cfg.PublicBaseURL)

	experienceRepo := experience.NewRepository(cols.Experiences)
	experienceService := experience.NewService(experienceRepo)
	experienceHandler := experience.NewHandler(experienceService, val, logger)

	skillRepo := skills.NewRepository(cols.Skills)
	skillService := skills.NewService(skillRepo)
	skillHandler := skills.NewHandler(skillService, val, logger)

	contactRepo := contact.NewRepository(cols.ContactMessages)
	contactService := contact.NewService(contactRepo)
	var notifier contact.Notifier
	if mailer != nil {
		notifier = mailer
	}
	contactHandler := contact.NewHandler(contactService, val, logger, notifier)

	statsHandler := stats.NewHandler(projectService, experienceService, skillService, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	window := time.Duration(cfg.RateLimitWindowSec) * time.Second
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, window)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimitLogin, window)

	adminGate := middleware.AdminAuth(jwtManager, adminService)

	r.Route("/api", func(api chi.Router) {
		api.Route("/public", func(public chi.Router) {
			public.Get("/home", profileHandler.PublicGet)
			public.Get("/projects", projectHandler.PublicList)
			public.Get("/projects/{id}", projectHandler.PublicGet)
			public.Get("/experiences", experienceHandler.PublicList)
			public.Get("/skills", skillHandler.PublicList)
			public.Get("/stats", statsHandler.PublicStats)
			public.With(contactLimiter.Middleware).Post("/contact", contactHandler.PublicCreate)
		})

		api.Route("/auth", func(authRouter chi.Router) {
			authRouter.Post("/signup", adminHandler.Signup)
			authRouter.With(loginLimiter.Middleware).Post("/login", adminHandler.Login)
			authRouter.Get("/check-admin", adminHandler.CheckAdmin)
			authRouter.With(adminGate).Get("/me", adminHandler.Me)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(adminGate)

			admin.Get("/home", profileHandler.AdminGet)
			admin.Post("/home", profileHandler.AdminUpsert)

			admin.Get("/projects", projectHandler.AdminList)
			admin.Post("/projects", projectHandler.AdminCreate)
			admin.Put("/projects/{id}", projectHandler.AdminUpdate)
			admin.Delete("/projects/{id}", projectHandler.AdminDelete)

			admin.Get("/experiences", experienceHandler.AdminList)
			admin.Post("/experiences", experienceHandler.AdminCreate)
			admin.Put("/experiences/{id}", experienceHandler.AdminUpdate)
			admin.Delete("/experiences/{id}", experienceHandler.AdminDelete)

			admin.Get("/skills", skillHandler.AdminList)
			admin.Post("/skills", skillHandler.AdminCreate)
			admin.Put("/skills/{id}", skillHandler.AdminUpdate)
			admin.Delete("/skills/{id}", skillHandler.AdminDelete)

			admin.Get("/contacts", contactHandler.AdminList)
			admin.Put("/contacts/{id}/read", contactHandler.AdminMarkRead)
			admin.Put("/contacts/{id}/reply", contactHandler.AdminReply)
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
