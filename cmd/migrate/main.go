package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"clubhub/config"
	"clubhub/pkg/database"

	"gorm.io/gorm"
)

const usage = `
ClubHub - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Run all migrations
  status      Show database connection status
  seed        Seed the database with default accounts
  reset       Drop all tables and re-run migrations (DANGEROUS)
  truncate    Truncate all tables (DANGEROUS)

Flags:
  -admin-user string  Admin username for seeding (default "admin")
  -admin-pass string  Admin password for seeding (default "admin123")

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed
  go run cmd/migrate/main.go reset
`

var tables = []string{
	"operation_logs",
	"finance_records",
	"meeting_records",
	"shared_links",
	"vendors",
	"design_files",
	"activity_files",
	"user_sessions",
	"users",
}

func main() {
	adminUser := flag.String("admin-user", "admin", "Admin username for seeding")
	adminPass := flag.String("admin-pass", "admin123", "Admin password for seeding")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	cfg := config.LoadConfig()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer database.Close(db)

	switch command {
	case "up":
		runMigrationsUp(db)
	case "status":
		showStatus(db)
	case "seed":
		runSeed(db, *adminUser, *adminPass)
	case "reset":
		runReset(db)
	case "truncate":
		runTruncate(db)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runMigrationsUp(db *gorm.DB) {
	log.Println("Running migrations...")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully")
}

func showStatus(db *gorm.DB) {
	log.Println("Checking database status...")

	if err := database.Ping(db); err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Database connection: OK")

	for _, table := range tables {
		if database.TableExists(db, table) {
			log.Printf("Table %-16s present", table)
		} else {
			log.Printf("Table %-16s MISSING", table)
		}
	}
}

func runSeed(db *gorm.DB, adminUser, adminPass string) {
	log.Println("Seeding database...")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	cfg := database.DefaultSeedConfig()
	cfg.AdminUsername = adminUser
	cfg.AdminPassword = adminPass

	if err := database.Seed(db, cfg); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed successfully")
}

func runReset(db *gorm.DB) {
	log.Println("Dropping all tables...")

	for _, table := range tables {
		if err := db.Migrator().DropTable(table); err != nil {
			log.Fatalf("Failed to drop table %s: %v", table, err)
		}
	}

	runMigrationsUp(db)
	log.Println("Reset completed successfully")
}

func runTruncate(db *gorm.DB) {
	log.Println("Truncating all tables...")

	for _, table := range tables {
		if !database.TableExists(db, table) {
			continue
		}
		if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			log.Fatalf("Failed to truncate table %s: %v", table, err)
		}
	}

	log.Println("Truncate completed successfully")
}
