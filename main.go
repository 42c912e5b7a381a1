package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"routerdash/internal/config"
	"routerdash/internal/controllers"
	"routerdash/internal/logger"
	"routerdash/internal/middleware"
	"routerdash/internal/routeros"
	"routerdash/internal/routes"
	"routerdash/internal/services"
	"routerdash/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Component("main")

	services.InitAuthService(cfg.AuthSecret, cfg.TokenExpiry)

	manager := routeros.NewManager(cfg.Devices, logger.Base())
	defer manager.CloseAll()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open history store failed")
	}
	defer store.Close()

	connections := services.NewConnectionStatsService(manager, cfg.CacheTTL, logger.Base())
	dhcp := services.NewDHCPStatsService(manager, cfg.CacheTTL, logger.Base())
	bandwidth := services.NewBandwidthStatsService(manager, cfg.CacheTTL, logger.Base())
	traffic := services.NewTrafficStatsService(manager, cfg.CacheTTL, cfg.TopTalkers, logger.Base())
	system := services.NewSystemStatsService(manager, cfg.CacheTTL, logger.Base())

	controllers.Init(cfg, connections, dhcp, bandwidth, traffic, system, store)

	deviceIDs := make([]int, 0, len(cfg.Devices))
	for _, d := range cfg.Devices {
		deviceIDs = append(deviceIDs, d.ID)
	}

	collector := services.NewHistoryCollector(deviceIDs, connections, traffic, bandwidth, store, cfg.CollectInterval, logger.Base())
	collector.Start()
	defer collector.Stop()

	services.InitWebSocketHub(deviceIDs, connections, dhcp, bandwidth, cfg.CollectInterval, logger.Base())
	defer services.StopWebSocketHub()

	r := gin.Default()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(rate.Limit(100), 200)))

	routes.RegisterAuthRoutes(r)
	routes.RegisterAPIRoutes(r)

	log.Info().Str("addr", cfg.Addr).Int("devices", len(cfg.Devices)).Msg("routerdash listening")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
