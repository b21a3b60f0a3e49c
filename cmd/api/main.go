package main

import (
	"context"
	"log"

	"lecturehub/internal/config"
	"lecturehub/internal/domain"
	httpapi "lecturehub/internal/http"
	"lecturehub/internal/infra/auth"
	"lecturehub/internal/infra/db"
	"lecturehub/internal/infra/password"
	"lecturehub/internal/infra/ratelimit"
	"lecturehub/internal/infra/token"
	"lecturehub/internal/usecase"
)

func main() {
	cfg := config.FromEnv()

	store, err := db.NewStore(cfg)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	lectureRepo := db.NewLectureRepository(store.DB)
	identityRepo := db.NewIdentityRepository(store.DB)

	tokens, err := token.NewService(cfg.JWTSecret, cfg.TokenTTL(), identityRepo)
	if err != nil {
		log.Fatalf("failed to init token service: %v", err)
	}

	gate := auth.NewGate()
	identitySvc := usecase.NewIdentityService(identityRepo, password.BcryptHasher{}, tokens)
	identitySvc.Limiter = loginLimiter(cfg)
	identitySvc.LoginLimit = cfg.LoginRateLimit
	identitySvc.LoginWindow = cfg.LoginRateWindow()
	lectureSvc := usecase.NewLectureService(lectureRepo, identityRepo, gate)

	if cfg.SeedAccounts {
		if err := usecase.SeedAccounts(context.Background(), identitySvc); err != nil {
			log.Fatalf("failed to seed accounts: %v", err)
		}
	}

	srv := httpapi.NewServer(cfg, httpapi.ServerDeps{
		Lectures:   lectureSvc,
		Identities: identitySvc,
		Resolver:   auth.NewIdentityResolver(tokens),
		Gate:       gate,
	})
	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func loginLimiter(cfg config.Config) domain.RateLimiter {
	if cfg.LoginRateLimit <= 0 {
		return nil
	}
	if cfg.RedisAddr != "" {
		limiter, err := ratelimit.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err == nil {
			return limiter
		}
		log.Printf("redis limiter unavailable, using memory: %v", err)
	}
	return ratelimit.NewMemoryLimiter(ratelimit.MemoryConfig{MaxKeys: cfg.RateLimitMaxKeys})
}
