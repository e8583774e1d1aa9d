package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/CurtisFaughnan/Lanyard-APP-WEB/api/swagger"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/handler"
	internalmiddleware "github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/middleware"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/repository"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/service"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/cache"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/config"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/database"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/logger"
	corsmiddleware "github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/middleware/cors"
	reqidmiddleware "github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/middleware/requestid"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/sheets"
)

// @title Lanyard API
// @version 1.0.0
// @description Student scan-count lookup backed by the lanyard spreadsheet
// @BasePath /
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	store, closer := buildStore(ctx, cfg, logr)
	if closer != nil {
		closers = append(closers, closer)
	}

	metricsSvc := service.NewMetricsService()

	cacheRepo := repository.NewCacheRepository(nil)
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("roster cache disabled: redis unavailable", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client)
			closers = append(closers, cacheRepo)
		}
	}
	rosterCache := service.NewRosterCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled)

	lookupSvc := service.NewLookupService(service.LookupServiceParams{
		Store:   store,
		Cache:   rosterCache,
		Metrics: metricsSvc,
		Logger:  logr,
		Timeout: cfg.Store.Timeout,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	handler.SetupRoutes(r, handler.NewLookupHandler(lookupSvc), handler.NewMetricsHandler(metricsSvc))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver, "store_ready", store.Ready())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildStore never fails the process: a store that cannot be initialised is
// reported as unavailable and lookups answer with a configuration error.
func buildStore(ctx context.Context, cfg *config.Config, logr *zap.Logger) (service.StoreState, io.Closer) {
	layout := repository.Layout{
		StudentTab:    cfg.Store.StudentTab,
		ScanLogTab:    cfg.Store.ScanLogTab,
		ScanLogColumn: cfg.Store.ScanLogColumn,
	}

	switch cfg.Store.Driver {
	case config.StoreWorkbook:
		return service.Available(repository.NewWorkbookRepository(cfg.Workbook.Path, layout)), nil

	case config.StorePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logr.Warn("postgres store unavailable", zap.Error(err))
			return service.Unavailable(err), nil
		}
		return service.Available(repository.NewPostgresRepository(db)), db

	case config.StoreSheets, "":
		client, err := sheets.New(ctx, []byte(cfg.Google.Credentials))
		if err != nil {
			logr.Warn("failed to load Google credentials", zap.Error(err))
			return service.Unavailable(err), nil
		}
		return service.Available(repository.NewSheetsRepository(client, cfg.Google.SpreadsheetName, cfg.Google.SpreadsheetID, layout)), nil

	default:
		err := fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
		logr.Warn("store unavailable", zap.Error(err))
		return service.Unavailable(err), nil
	}
}
