package api

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/garrettborunda-lab/movefitrx-poc/config"
	"github.com/garrettborunda-lab/movefitrx-poc/credentials"
	"github.com/garrettborunda-lab/movefitrx-poc/events"
	"github.com/garrettborunda-lab/movefitrx-poc/lmn"
	"github.com/garrettborunda-lab/movefitrx-poc/logger"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	"github.com/garrettborunda-lab/movefitrx-poc/progress"
	"github.com/garrettborunda-lab/movefitrx-poc/render"
	"github.com/garrettborunda-lab/movefitrx-poc/results"
	"github.com/garrettborunda-lab/movefitrx-poc/seed"
	"github.com/garrettborunda-lab/movefitrx-poc/store"
	"github.com/garrettborunda-lab/movefitrx-poc/views"
	"github.com/garrettborunda-lab/movefitrx-poc/workflows"
)

const storeDriverMongo = "mongo"

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Repositories initialize first; lifecycle hooks run in
			// topological order.
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

// SeedDemoData loads the deterministic startup fixture unless disabled.
func SeedDemoData(cfg *config.Config, pool credentials.Pool, patientsRepo patients.Repository, resultsRepo results.Repository, log *zap.SugaredLogger, lifecycle fx.Lifecycle) {
	if !cfg.SeedDemoData {
		return
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return seed.Demo(ctx, pool, patientsRepo, resultsRepo, log)
		},
	})
}

func NewCredentialPool() credentials.Pool {
	return credentials.NewPool(seed.Credentials())
}

// Dependencies assembles the DI graph. The storage driver is selected from
// the environment before the graph is built, so the mongo client is only
// constructed when it will actually be used.
func Dependencies() []fx.Option {
	opts := []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.New,
			events.NewBus,
			NewCredentialPool,
			progress.NewCalculator,
			workflows.NewService,
			lmn.NewGenerator,
			NewConsoleRenderer,
			views.NewSynchronizer,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}

	if strings.EqualFold(os.Getenv("MOVEFITRX_STORE_DRIVER"), storeDriverMongo) {
		opts = append(opts, fx.Provide(
			store.NewConfig,
			store.NewClient,
			store.NewDatabase,
			patients.NewMongoRepository,
			results.NewMongoRepository,
		))
	} else {
		opts = append(opts, fx.Provide(
			patients.NewMemoryRepository,
			results.NewMemoryRepository,
		))
	}

	return opts
}

func NewConsoleRenderer() views.Renderer {
	return render.NewConsoleRenderer(os.Stdout)
}

func MainLoop() {
	opts := append(
		Dependencies(),
		fx.Invoke(SeedDemoData),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(opts...).Run()
}
