package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "dearly/internal/app/http"
	"dearly/internal/config"
	"dearly/internal/lib/throttle"
	"dearly/internal/repository"
	accessservice "dearly/internal/services/access_service"
	albumservice "dearly/internal/services/album_service"
	"dearly/internal/services/auth"
	mediaservice "dearly/internal/services/media_service"
	tokenservice "dearly/internal/services/token_service"
	userservice "dearly/internal/services/user_service"
	"dearly/internal/storage/postgresql"
	redisapp "dearly/internal/storage/redis"
	httprouters "dearly/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	repo  *repository.Repository
	redis *redisapp.Client
}

// New builds the process-wide pool, the Redis client and every service on top
// of them.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	pool, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	if err := rdb.HealthCheck(ctx); err != nil {
		pool.Close()
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: redis: %w", op, err)
	}

	repo := repository.NewRepository(pool)
	tokenRepo := repository.NewRedisTokenRepo(rdb)

	limiter := throttle.New(cfg.Throttle.SignInAttempts, cfg.Throttle.SignInWindow)

	authService := auth.New(log, repo.User, repo.User, repo.User, limiter)
	tokenService := tokenservice.NewTokenService(log, tokenRepo, []byte(cfg.Auth.JWTSecret), cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	accessService := accessservice.NewAccessService(log, repo.Profile)
	userService := userservice.NewUserService(log, authService, tokenService, repo.Family, repo.Profile)
	albumService := albumservice.NewAlbumService(log, repo.Album, repo.Media, accessService)
	mediaService := mediaservice.NewMediaService(log, repo.Media, repo.Album, accessService)

	routers := httprouters.NewRouter(log, userService, albumService, mediaService, httprouters.CookieOptions{
		Secure: cfg.Auth.SecureCookies,
	})

	server := httpapp.New(log, httpapp.Options{
		Host:            cfg.HTTP.Host,
		Port:            cfg.HTTP.Port,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		AllowOrigins:    cfg.HTTP.AllowOrigins,
		CookieSecret:    cfg.Auth.CookieSecret,
	}, tokenService, routers, map[string]httpapp.HealthCheck{
		"postgres": pool.Ping,
		"redis":    rdb.HealthCheck,
	})

	return &App{
		HTTPServer: server,
		repo:       repo,
		redis:      rdb,
	}, nil
}

// Close releases the pool and the Redis connection. Call it after the HTTP
// server has stopped.
func (a *App) Close() error {
	a.repo.Close()
	return a.redis.Close()
}
