package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/pantheon-service/internal/api/http"
	"github.com/spec-kit/pantheon-service/internal/api/http/handlers"
	"github.com/spec-kit/pantheon-service/internal/auth"
	"github.com/spec-kit/pantheon-service/internal/config"
	"github.com/spec-kit/pantheon-service/internal/events"
	"github.com/spec-kit/pantheon-service/internal/observability"
	"github.com/spec-kit/pantheon-service/internal/persistence"
	"github.com/spec-kit/pantheon-service/internal/repository"
	"github.com/spec-kit/pantheon-service/internal/service"
	"github.com/spec-kit/pantheon-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	godRepo := repository.NewGodRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	followRepo := repository.NewFollowRepository(pool)
	chatRepo := repository.NewChatRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	presenceService := service.NewPresenceService(redis, logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		GodRepo:    godRepo,
		Presence:   presenceService,
		Dispatcher: dispatcher,
	})
	userService := service.NewUserService(userRepo, presenceService)
	godService := service.NewGodService(godRepo)
	postService := service.NewPostService(postRepo, dispatcher)
	commentService := service.NewCommentService(commentRepo, postRepo, dispatcher)
	followService := service.NewFollowService(followRepo, userRepo, dispatcher)
	chatService := service.NewChatService(chatRepo, userRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager())

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService, cfg.App.IsProduction()),
		Users:          handlers.NewUsersHandler(userService),
		Gods:           handlers.NewGodsHandler(godService),
		Posts:          handlers.NewPostsHandler(postService),
		Comments:       handlers.NewCommentsHandler(commentService),
		Follows:        handlers.NewFollowsHandler(followService),
		Chat:           handlers.NewChatHandler(chatService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
