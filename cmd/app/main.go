package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BirtasevicLazar/barberbook-go/internal/adapters/in/bot"
	"github.com/BirtasevicLazar/barberbook-go/internal/adapters/in/web"
	"github.com/BirtasevicLazar/barberbook-go/internal/adapters/out/backend"
	"github.com/BirtasevicLazar/barberbook-go/internal/adapters/out/cache"
	"github.com/BirtasevicLazar/barberbook-go/internal/adapters/out/logger"
	"github.com/BirtasevicLazar/barberbook-go/internal/adapters/out/tokenstore"
	"github.com/BirtasevicLazar/barberbook-go/internal/config"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/services"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"telegramEnabled": cfg.Telegram.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	backendClient := backend.NewClient(cfg, mainLogger)

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, mainLogger)
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	} else {
		log.Info("app.cache.disabled", out.LogFields{
			"message": "Catalog cache is disabled",
		})
	}

	tokenStore, err := tokenstore.NewFileStore(cfg, mainLogger)
	if err != nil {
		log.Error("app.tokenstore.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	authService := services.NewAuthService(backendClient, tokenStore, mainLogger)
	bookingService := services.NewBookingService(backendClient, cacheAdapter, mainLogger)
	ownerService := services.NewOwnerService(backendClient, cacheAdapter, mainLogger)
	barberAreaService := services.NewBarberAreaService(backendClient, authService, mainLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := authService.Restore(ctx); err != nil {
		log.Warn("app.session.restore_failed", out.LogFields{
			"error": err.Error(),
		})
	}

	router := gin.Default()
	web.NewBookingController(bookingService).RegisterRoutes(router)
	web.NewOwnerController(ownerService).RegisterRoutes(router)

	if cfg.Telegram.Enabled {
		barberBot, err := bot.NewBarberBot(cfg, authService, barberAreaService, mainLogger)
		if err != nil {
			log.Error("app.bot.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		go barberBot.Start(ctx)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
