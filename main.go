package main

import (
	"context"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"socialsphere/internal/auth"
	"socialsphere/internal/config"
	"socialsphere/internal/handler"
	"socialsphere/internal/media"
	"socialsphere/internal/repository"
	"socialsphere/internal/repository/memory"
	"socialsphere/internal/service"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	var (
		userStore   service.UserStore
		followStore service.FollowStore
		postStore   service.PostStore
	)

	if cfg.UseMemoryStore() {
		log.Warn().Msg("using in-memory store; data will not survive restarts")
		store := memory.New()
		userStore = store.Users
		followStore = store.Follows
		postStore = store.Posts
	} else {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()

		userStore = repository.NewUserRepository(pool)
		followStore = repository.NewFollowRepository(pool)
		postStore = repository.NewPostRepository(pool)
	}

	mediaStore, err := media.NewDiskStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init media store")
	}

	authenticator := auth.New(cfg.JWTSecret, cfg.TokenTTL)

	h := handler.New(
		service.NewUsers(userStore, followStore),
		service.NewFollows(userStore, followStore),
		service.NewPosts(postStore, mediaStore, log),
		service.NewFeed(followStore, postStore),
		service.NewEngagement(postStore),
		authenticator,
		mediaStore,
		log,
	)

	log.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := http.ListenAndServe(cfg.Addr, h.Routes(cfg.AllowedOrigins, mediaStore.Dir())); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
