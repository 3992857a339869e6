package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/cufit/cufit-backend/internal/database"
	"github.com/cufit/cufit-backend/internal/seed"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	withPlans := flag.Bool("plans", false, "also insert demo billing plans")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.ConnectDB(ctx, dbURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	err := pgx.BeginFunc(ctx, database.DB, func(tx pgx.Tx) error {
		_, err := seed.Run(ctx, tx, seed.Options{Plans: *withPlans})
		return err
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
