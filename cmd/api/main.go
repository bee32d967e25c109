package main

import (
	"context"
	"log"

	"programhub/internal/adapters/rest"
	"programhub/internal/application"
	"programhub/internal/config"
	"programhub/internal/infrastructure/database"
	"programhub/internal/infrastructure/i18n"
	"programhub/pkg/clock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	programRepo := database.NewProgramRepository(pool)
	enrollmentRepo := database.NewEnrollmentRepository(pool)
	accounting := database.NewAdmissionLedger(pool)

	clk := clock.System{}
	programs := application.NewProgramService(programRepo, clk)
	enrollments := application.NewEnrollmentService(enrollmentRepo, programRepo, clk)

	translator := i18n.NewTranslator(cfg.DefaultLocale)

	router := rest.NewRouter(programs, enrollments, accounting, translator)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
