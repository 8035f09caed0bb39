package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/mealtally/internal/api"
	"github.com/terraincognita07/mealtally/internal/cli"
	"github.com/terraincognita07/mealtally/internal/db"
	"github.com/terraincognita07/mealtally/internal/metrics"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if len(os.Args) > 1 {
		os.Exit(runCommand(cfg, os.Args[1:], os.Stdout, os.Stderr))
	}

	database, err := db.Open(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	collectors := metrics.New()
	handler := api.NewHandler(database, collectors)
	app := newApp(handler, collectors, api.NewOriginPolicy(cfg.AllowOrigins, cfg.HostingDomain))

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	dialect, _ := db.ResolveDatabaseURL(cfg.DatabaseURL)
	log.Printf("mealtally listening on http://0.0.0.0:%s (db: %s)", cfg.Port, dialect)
	if err := app.Listen(":" + cfg.Port); err != nil {
		_ = db.Close(database)
		log.Fatalf("server exited: %v", err)
	}

	if err := db.Close(database); err != nil {
		log.Printf("database close failed: %v", err)
	}
}

func newApp(handler *api.Handler, collectors *metrics.Metrics, policy *api.OriginPolicy) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "mealtally",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(api.CORSConfig(policy)))
	app.Use(collectors.Middleware)

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func runCommand(cfg config, args []string, stdout io.Writer, stderr io.Writer) int {
	switch args[0] {
	case "summary":
		if len(args) != 2 {
			fmt.Fprintln(stderr, "usage: mealtally summary <date>")
			return 2
		}
		if err := cli.RunSummaryCommand(cfg.DatabaseURL, args[1], stdout); err != nil {
			fmt.Fprintf(stderr, "summary failed: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\nusage: mealtally [summary <date>]\n", args[0])
		return 2
	}
}
