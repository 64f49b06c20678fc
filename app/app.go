package app

import (
	"Gin_postgres_redis_library_api/db"
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// 简化别名，便于 handlers 调用
type Ctx = gin.Context
type H = gin.H

// App 聚合各依赖
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config Config
}

// Config 从环境变量读取
type Config struct {
	AuthHeader         string
	CheckoutPeriodDays int
	MaxCheckouts       int
	RedisAddr          string
	RedisPwd           string
	RoleCacheTTL       time.Duration
	WebOrigin          string
}

func MustNew() *App {
	cfg := loadConfig()

	// --- DB: Postgres ---
	dbConn := db.ConnectDB()

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin, cfg.AuthHeader)
	return &App{Router: r, DB: dbConn, RDB: rdb, Config: cfg}
}

func (a *App) Close() { _ = a.RDB.Close() }

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	getInt := func(k string, def int) int {
		if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
			return n
		}
		return def
	}

	// 角色只写一次，缓存 TTL 只是控制 Redis 占用
	ttl := 10 * time.Minute
	if d, err := time.ParseDuration(get("ROLE_CACHE_TTL_SECONDS", "600") + "s"); err == nil {
		ttl = d
	}

	return Config{
		AuthHeader:         get("AUTH_HEADER", "x-api-token"),
		CheckoutPeriodDays: getInt("CHECKOUT_PERIOD", 14),
		MaxCheckouts:       getInt("MAX_CHECKOUTS", 3),
		RedisAddr:          get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:           os.Getenv("REDIS_PASSWORD"),
		RoleCacheTTL:       ttl,
		WebOrigin:          get("WEB_ORIGIN", "http://localhost:5173"),
	}
}
