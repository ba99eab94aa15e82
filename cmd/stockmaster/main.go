package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/stockmaster/stockmaster/internal/application/auth"
	"github.com/stockmaster/stockmaster/internal/application/inventory"
	"github.com/stockmaster/stockmaster/internal/application/usecase"
	"github.com/stockmaster/stockmaster/internal/infrastructure/memory"
	"github.com/stockmaster/stockmaster/internal/interfaces/cli"
	"github.com/stockmaster/stockmaster/pkg/config"
	"github.com/stockmaster/stockmaster/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Todo el estado vive en memoria y se siembra al arrancar; al salir se
	// pierde, igual que al recargar el tablero original.
	store := memory.NewStore(memory.SeedState())

	productRepo := memory.NewProductRepository(store)
	operationRepo := memory.NewOperationRepository(store)
	locationRepo := memory.NewLocationRepository(store)
	uow := memory.NewUnitOfWork(store)

	productUC := usecase.NewProductUseCase(productRepo, log)
	warehouseUC := usecase.NewWarehouseUseCase(locationRepo, log)
	operationUC := inventory.NewOperationUseCase(uow, operationRepo, productRepo, log)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, operationRepo, cfg.Dashboard.LowStockThreshold)

	session := auth.NewSessionFlow(auth.Config{
		Code:  cfg.Auth.OTPCode,
		Delay: cfg.Auth.Delay(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.New(cli.Deps{
		Products:   productUC,
		Warehouses: warehouseUC,
		Operations: operationUC,
		Dashboard:  dashboardUC,
		Session:    session,
		Log:        log,
	}, os.Stdin, os.Stdout)

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("sesión finalizada con error")
		os.Exit(1)
	}

	log.Info().Msg("aplicación detenida")
}
