package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/m04kA/MEC-VenueBookingService/internal/config"
)

// Утилита миграций схемы: go run ./cmd/migrate up|down|drop
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: migrate up|down|drop")
		os.Exit(1)
	}

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mig, err := newMigrate(cfg)
	if err != nil {
		fmt.Printf("Failed to create migrate instance: %v\n", err)
		os.Exit(1)
	}
	defer mig.Close()

	switch os.Args[1] {
	case "up":
		err = mig.Up()
	case "down":
		err = mig.Steps(-1)
	case "drop":
		err = mig.Down()
	default:
		fmt.Println("Invalid direction. Use 'up', 'down' or 'drop'")
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migrations applied successfully")
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	url := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		cfg.Database.Password,
		net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port)),
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	return migrate.New("file://migrations", url)
}
