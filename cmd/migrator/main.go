package main

import (
	"log"

	"github.com/Houeta/dsm44-seeder/internal/config"
	"github.com/Houeta/dsm44-seeder/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

func main() {
	cfg := config.MustLoad()

	if !cfg.JournalEnabled() {
		log.Fatal("postgres.host is empty, nothing to migrate")
	}

	dbpool, dbErr := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}

	if migrationErr := goose.Up(dtb, "migrations"); migrationErr != nil {
		log.Fatal(migrationErr) //nolint:gocritic // deferred closes are not needed on fatal exit
	}

	log.Println("✅ Migrations applied successfully")
}
