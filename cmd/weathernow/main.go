package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/i474232898/weathernow/internal/app"
	"github.com/i474232898/weathernow/internal/backend"
	"github.com/i474232898/weathernow/internal/config"
	"github.com/i474232898/weathernow/internal/favorites"
	"github.com/i474232898/weathernow/internal/store"
	"github.com/i474232898/weathernow/internal/web"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	slots, err := openSlots(cfg.FavoritesDB)
	if err != nil {
		log.Fatalf("failed to open favorites storage %s: %v", cfg.FavoritesDB, err)
	}
	defer slots.Close()

	favs := favorites.NewStore(favorites.NewSlotRepository(slots))
	log.Printf("INFO: loaded %d favorite cities from %s", len(favs.List()), cfg.FavoritesDB)

	client := backend.NewClient(cfg.BackendURL, &http.Client{Timeout: cfg.HTTPTimeout})
	state := app.New(client, favs)

	server := fiber.New(fiber.Config{
		AppName:               "weathernow",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          2 * cfg.HTTPTimeout,
		ErrorHandler:          web.ErrorHandler,
	})

	server.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	server.Use(logger.New())
	server.Use(recover.New())

	server.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weathernow",
			"backend": cfg.BackendURL,
		})
	})

	web.RegisterRoutes(server, state)

	go func() {
		log.Printf("INFO: weathernow listening on :%s (backend %s)", cfg.Port, cfg.BackendURL)
		if err := server.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

// openSlots returns durable SQLite storage for favorites, or an in-memory
// store when path is ":memory:".
func openSlots(path string) (store.Slots, error) {
	if path == ":memory:" {
		log.Println("INFO: favorites are kept in memory only")
		return store.NewMemoryStore(), nil
	}
	return store.NewSQLite(path)
}
