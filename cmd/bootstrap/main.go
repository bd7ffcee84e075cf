// bootstrap prepara una base nueva: aplica el esquema embebido y da de alta el primer ADMIN.
//
// Uso: go run ./cmd/bootstrap -admin admin -password <clave>
// La clave también puede venir en BOOTSTRAP_ADMIN_PASSWORD. Sin -admin solo migra.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/jhoicas/sistock-api/internal/application/auth"
	"github.com/jhoicas/sistock-api/internal/application/dto"
	"github.com/jhoicas/sistock-api/internal/domain"
	"github.com/jhoicas/sistock-api/internal/domain/entity"
	"github.com/jhoicas/sistock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/sistock-api/migrations"
	"github.com/jhoicas/sistock-api/pkg/config"
	"github.com/jhoicas/sistock-api/pkg/logger"
)

func main() {
	adminUser := flag.String("admin", "", "username del primer administrador")
	adminPass := flag.String("password", os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"), "clave del administrador")
	adminEmail := flag.String("email", "", "email del administrador")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("bootstrap")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool, migrations.FS, log)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Int("applied", len(applied)).Msg("esquema al día")

	if *adminUser == "" {
		return
	}
	if *adminPass == "" {
		log.Fatal().Msg("falta -password o BOOTSTRAP_ADMIN_PASSWORD")
	}

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{})
	user, err := authUC.ProvisionUser(ctx, dto.ProvisionUserRequest{
		Username: *adminUser,
		Email:    *adminEmail,
		Password: *adminPass,
		Role:     entity.RoleAdmin,
	})
	switch {
	case errors.Is(err, domain.ErrUsernameAlreadyExists):
		log.Warn().Str("username", *adminUser).Msg("el administrador ya existe")
	case err != nil:
		log.Fatal().Err(err).Msg("alta del administrador")
	default:
		log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("administrador creado")
	}
}
