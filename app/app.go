package app

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/the1kimko/book-rental-management-system/cache"
	"github.com/the1kimko/book-rental-management-system/config"
	"github.com/the1kimko/book-rental-management-system/db"
	"github.com/the1kimko/book-rental-management-system/inmemory"
	"github.com/the1kimko/book-rental-management-system/store"
)

// Aliases to keep handler signatures short.
type Ctx = gin.Context
type H = gin.H

// App aggregates the shared dependencies. There are no package-level
// singletons; everything hangs off this value.
type App struct {
	Router  *gin.Engine
	DB      *gorm.DB      // nil when running on the in-memory store
	RDB     *redis.Client // nil when Redis is not configured
	Store   store.Store
	Catalog *cache.Catalog
	Config  config.Config
}

func MustNew() *App {
	cfg := config.Load()

	var (
		st     store.Store
		dbConn *gorm.DB
	)
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("open db: ", err)
		}
		dbConn = conn
		st = db.NewRepo(conn)
		slog.Info("database connected")
	} else {
		mem, err := inmemory.New()
		if err != nil {
			log.Fatal("init in-memory store: ", err)
		}
		st = mem
		slog.Warn("DATABASE_URL not set, running on the in-memory store")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("redis: ", err)
		}
		slog.Info("redis connected", "addr", cfg.RedisAddr)
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)
	r.Use(RequestID())

	return &App{
		Router:  r,
		DB:      dbConn,
		RDB:     rdb,
		Store:   st,
		Catalog: cache.NewCatalog(rdb, cfg.CatalogTTL),
		Config:  cfg,
	}
}

func (a *App) Close() {
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
}
