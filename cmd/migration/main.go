package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/latoulicious/meeple/pkg/database"
)

// Standalone migration runner for the catalog cache database. The main
// binary migrates on startup too; this exists for operating the schema
// without starting the tracker.
func main() {
	resetFlag := flag.Bool("reset", false, "Drop all tables before migrating")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded: %v", err)
	}

	dsn := os.Getenv("MEEPLE_DATABASE_URL")
	if dsn == "" {
		log.Fatal("MEEPLE_DATABASE_URL is not set")
	}

	if *resetFlag {
		db, err := database.NewGormDBWithoutMigration(dsn)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		log.Println("Resetting database...")
		err = db.Exec(`
			DO $$ DECLARE
			r RECORD;
			BEGIN
				FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
					EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
				END LOOP;
			END $$;
		`).Error
		if err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Database reset successfully")

		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	log.Println("Running migrations...")

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL database: %v", err)
	}
	defer sqlDB.Close()

	log.Println("Migrations completed successfully")
}
