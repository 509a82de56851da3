// seed crea los datos mínimos de arranque: el usuario administrador y el
// aprovisionamiento de un centro de costo inicial (bodega principal más las
// cuatro secundarias fijas).
//
// Uso: go run ./cmd/seed [centro-de-costo]
// Por defecto aprovisiona el centro de costo "CC-001".
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/costcenter"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "cambiar-ahora"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}

	userRepo := postgres.NewUserRepository(pool)
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	switch err := userRepo.Create(admin); {
	case err == nil:
		log.Info().Str("username", admin.Username).Msg("usuario administrador creado")
	case errors.Is(err, domain.ErrUsernameAlreadyTaken):
		log.Info().Str("username", admin.Username).Msg("el administrador ya existe, sin cambios")
	default:
		log.Fatal().Err(err).Msg("crear administrador")
	}

	costCenter := "CC-001"
	if len(os.Args) > 1 {
		costCenter = os.Args[1]
	}
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	ccUC := costcenter.NewUseCase(postgres.NewCostCenterTxRunner(pool), warehouseRepo)
	warehouses, err := ccUC.EnsurePrincipal(ctx, costCenter, "")
	if err != nil {
		log.Fatal().Err(err).Str("cost_center", costCenter).Msg("aprovisionar centro de costo")
	}
	log.Info().
		Str("cost_center", costCenter).
		Int("warehouses", len(warehouses)).
		Msg("centro de costo aprovisionado")
}
