package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/config"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/database"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/routes"
)

func main() {
	config.Load()

	if os.Getenv("PAYSTACK_SECRET_KEY") == "" {
		log.Fatal("❌ Cannot start: PAYSTACK_SECRET_KEY missing")
	}
	log.Println("✅ Paystack initialized")

	database.ConnectDatabases()

	warmupRedisCache()

	r := gin.Default()
	r.Use(cors.New(corsConfig()))
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Universe of Hair server listening on port", port)
	r.Run(":" + port)
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

// warmupRedisCache pings Redis at boot so the first request does not pay
// the connection cost.
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Redis cache warmed up")
	}
}
