package app

import (
	"net/http"

	"campus-clubs-go/internal/config"
	"campus-clubs-go/internal/db"
	clubdomain "campus-clubs-go/internal/domain/club"
	eventdomain "campus-clubs-go/internal/domain/event"
	gallerydomain "campus-clubs-go/internal/domain/gallery"
	joinrequestdomain "campus-clubs-go/internal/domain/joinrequest"
	memberdomain "campus-clubs-go/internal/domain/member"
	clubrepo "campus-clubs-go/internal/repository/postgres/club"
	eventrepo "campus-clubs-go/internal/repository/postgres/event"
	galleryrepo "campus-clubs-go/internal/repository/postgres/gallery"
	joinrequestrepo "campus-clubs-go/internal/repository/postgres/joinrequest"
	memberrepo "campus-clubs-go/internal/repository/postgres/member"
	"campus-clubs-go/internal/transport/httpserver"
	"campus-clubs-go/internal/transport/httpserver/handler"
	"campus-clubs-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg := config.Load()

	log.Info("app: opening database", "driver", cfg.DB.Driver)
	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	log.Info("app: seeding sample data if empty")
	if err := db.Seed(dbConn); err != nil {
		return nil, err
	}

	handlers := handler.New(
		clubdomain.NewService(clubrepo.NewPostgres(dbConn), log),
		memberdomain.NewService(memberrepo.NewPostgres(dbConn), log),
		eventdomain.NewService(eventrepo.NewPostgres(dbConn), log),
		gallerydomain.NewService(galleryrepo.NewPostgres(dbConn), log),
		joinrequestdomain.NewService(joinrequestrepo.NewPostgres(dbConn), log),
		cfg.Limits,
		log,
	)

	router := httpserver.NewRouter(cfg, handlers)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
