package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/InventoryApp_Go/internal/config"
	"github.com/osse101/InventoryApp_Go/internal/database"
)

const maintenanceDB = "postgres"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Connect to PostgreSQL server (maintenance database to manage other databases)
	serverPool, err := database.NewPool(ctx, cfg.ConnStringFor(maintenanceDB), database.PoolSettings{
		MaxConns:        2,
		MaxConnIdleTime: 30 * time.Minute,
		MaxConnLifetime: time.Hour,
	})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	dbIdent := pgx.Identifier{cfg.DBName}.Sanitize()

	// Terminate existing connections to the database
	log.Printf("Terminating existing connections to database %s...\n", cfg.DBName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, cfg.DBName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	log.Printf("Dropping database %s if it exists...\n", cfg.DBName)
	if _, err = serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+dbIdent); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", cfg.DBName)
	if _, err = serverPool.Exec(ctx, "CREATE DATABASE "+dbIdent); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	log.Println("Database reset complete.")
	log.Println("Next step: run cmd/setup or start the server to apply migrations")
}
