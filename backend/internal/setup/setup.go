package setup

import (
	"context"
	"time"

	"github.com/leerobin22/forum-api/backend/internal/handler"
	"github.com/leerobin22/forum-api/backend/internal/service"
	"github.com/leerobin22/forum-api/backend/internal/storage/pg"
	"github.com/leerobin22/forum-api/shared/config"
	"github.com/leerobin22/forum-api/shared/jwt"
	mw "github.com/leerobin22/forum-api/shared/middleware"
	rl "github.com/leerobin22/forum-api/shared/middleware/ratelimiter"
	"github.com/leerobin22/forum-api/shared/utils"
)

// idle identities are forgotten by the limiters after this long
const limiterExpiration = time.Hour

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	Jwt            jwt.JwtService
	WriteLimiter   *rl.UserRateLimiter
	GlobalLimiter  *rl.UserRateLimiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg.PgDSN(), utils.NewIdGenerator())
	if err != nil {
		return nil, err
	}

	deps := Wire(cfg, storage)
	deps.Storage = storage
	return deps, nil
}

// Repositories is everything the services and probes need from storage.
type Repositories interface {
	service.ThreadRepository
	service.CommentRepository
	service.ReplyRepository
	handler.HealthChecker
}

// Wire builds services, handler and middleware on top of the given storage.
func Wire(cfg *config.Config, repos Repositories) *Dependencies {
	sanitizer := utils.NoopSanitizer()
	if cfg.Public.SanitizeHTML {
		sanitizer = utils.NewHTMLSanitizer()
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	h := handler.New(
		service.NewThread(repos, repos, repos, sanitizer),
		service.NewComment(repos, repos, sanitizer),
		service.NewReply(repos, repos, repos, sanitizer),
		repos,
	)

	return &Dependencies{
		Config:         cfg,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(jwtService),
		Jwt:            jwtService,
		WriteLimiter:   rl.New(cfg.Public.WriteRps, int(cfg.Public.WriteRps)+1, limiterExpiration),
		GlobalLimiter:  rl.New(cfg.Public.GlobalRps, int(cfg.Public.GlobalRps)+1, limiterExpiration),
	}
}

// Close stops the limiters and releases the database pool.
func (d *Dependencies) Close() error {
	d.WriteLimiter.Stop()
	d.GlobalLimiter.Stop()
	if d.Storage != nil {
		return d.Storage.Cleanup()
	}
	return nil
}
