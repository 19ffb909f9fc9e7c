package app

import (
	"context"
	"log/slog"
	"time"

	httpapp "lifestream/internal/app/http"
	"lifestream/internal/metrics"
	"lifestream/internal/repository"
	contactservice "lifestream/internal/services/contact_service"
	feedservice "lifestream/internal/services/feed_service"
	pageservice "lifestream/internal/services/page_service"
	postservice "lifestream/internal/services/post_service"
	profileservice "lifestream/internal/services/profile_service"
	"lifestream/internal/storage/postgresql"
	httprouters "lifestream/internal/transport/http"
)

const poolStatsInterval = 15 * time.Second

type App struct {
	HTTPServer *httpapp.Server

	storage   *postgresql.Storage
	poolStats *metrics.PoolStatsCollector
}

func New(log *slog.Logger, dsn, templatesDir, sessionSecret, httpHost, httpPort string) *App {
	storage, err := postgresql.New(context.Background(), dsn)
	if err != nil {
		panic(err)
	}

	posts := repository.NewPostRepository(storage.Pool())
	categories := repository.NewCategoryRepository(storage.Pool())
	tags := repository.NewTagRepository(storage.Pool())
	pages := repository.NewPageRepository(storage.Pool())
	media := repository.NewMediaRepository(storage.Pool())
	contacts := repository.NewContactRepository(storage.Pool())
	profiles := repository.NewProfileRepository(storage.Pool())

	feedService := feedservice.NewFeedService(log, posts, categories, tags, media)
	postService := postservice.NewPostService(log, posts, tags, media, categories)
	pageService := pageservice.NewPageService(log, pages)
	contactService := contactservice.NewContactService(log, contacts)
	profileService := profileservice.NewProfileService(log, profiles)

	routers := httprouters.NewRouter(log, feedService, postService, pageService, contactService, profileService)

	renderer, err := httprouters.NewTemplateRenderer(templatesDir)
	if err != nil {
		panic(err)
	}

	poolStats := metrics.NewPoolStatsCollector(storage.Pool())
	poolStats.Start(poolStatsInterval)

	server := httpapp.New(log, sessionSecret, httpHost, httpPort, routers, renderer)

	return &App{
		HTTPServer: server,
		storage:    storage,
		poolStats:  poolStats,
	}
}

func (a *App) Stop() error {
	a.poolStats.Stop()

	if err := a.HTTPServer.Stop(); err != nil {
		return err
	}

	a.storage.Stop()

	return nil
}
