package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"oficina_mecanica/internal/adapter/http/routes"
	"oficina_mecanica/internal/infrastructure/config"
	"oficina_mecanica/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// @title           Oficina Mecanica API
// @version         1.0
// @description     Repair-shop work orders with customers, mechanics, services and parts.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, logger); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
