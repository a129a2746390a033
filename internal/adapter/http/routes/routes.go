package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "oficina_mecanica/docs" // registers the swagger spec
	"oficina_mecanica/internal/adapter/http/handlers"
	"oficina_mecanica/internal/infrastructure/config"
	"oficina_mecanica/internal/infrastructure/metrics"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	WorkOrders *handlers.WorkOrderHandler
	Customers  *handlers.CustomerHandler
	Mechanics  *handlers.MechanicHandler
	Services   *handlers.ServiceHandler
	Parts      *handlers.PartHandler
}

// Run wires storage, use cases and handlers from cfg and serves until ctx is
// done or the listener fails.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	gin.SetMode(cfg.GinMode)

	uow, closeStorage, err := newUnitOfWork(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("storage %s: %w", cfg.StorageDriver, err)
	}
	defer closeStorage()

	workOrders := usecase.NewWorkOrderUseCase(uow, metrics.NewWorkOrderMetrics(), logger.WithField("component", "workorder-usecase"))
	router := NewRouter(Handlers{
		WorkOrders: handlers.NewWorkOrderHandler(workOrders),
		Customers:  handlers.NewCustomerHandler(usecase.NewCustomerUseCase(uow)),
		Mechanics:  handlers.NewMechanicHandler(usecase.NewMechanicUseCase(uow)),
		Services:   handlers.NewServiceHandler(usecase.NewServiceUseCase(uow)),
		Parts:      handlers.NewPartHandler(usecase.NewPartUseCase(uow)),
	}, logger)

	srv := &http.Server{Addr: cfg.Addr(), Handler: router, ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		logger.WithFields(log.Fields{"addr": cfg.Addr(), "storage": cfg.StorageDriver}).Info("starting http server")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func NewRouter(h Handlers, logger *log.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(router, h)
	return router
}

func getRoutes(router *gin.Engine, h Handlers) {
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, h.WorkOrders)
	addCatalogRoutes(v1, h)
}

func setMiddlewares(router *gin.Engine, logger *log.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"panic":  recovered,
		}).Error("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
