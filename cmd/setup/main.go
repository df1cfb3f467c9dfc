package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/InventoryApp_Go/internal/bootstrap"
	"github.com/osse101/InventoryApp_Go/internal/config"
)

const maintenanceDB = "postgres"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.UsesPostgres() {
		log.Fatalf("Setup needs STORAGE_DRIVER=%s, got %q", config.StorageDriverPostgres, cfg.StorageDriver)
	}

	ctx := context.Background()

	// 1. Connect to the maintenance database to create the new database
	conn, err := pgx.Connect(ctx, cfg.ConnStringFor(maintenanceDB))
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", maintenanceDB, err)
	}

	// 2. Check if database exists
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		conn.Close(ctx)
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err = conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			conn.Close(ctx)
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	conn.Close(ctx)

	// 3. Connect to the new database, migrate and seed
	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer repos.Close()

	if err := bootstrap.SeedStorage(ctx, cfg, repos); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Setup completed successfully.")
}
