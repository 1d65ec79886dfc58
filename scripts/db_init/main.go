// Initializes the store: runs migrations and seeds empty collections.
package main

import (
	"context"
	"fmt"
	"os"

	dbfs "github.com/harborworks/fleetdeck/db"
	"github.com/harborworks/fleetdeck/internal/config"
	"github.com/harborworks/fleetdeck/internal/db"
	"github.com/harborworks/fleetdeck/internal/store"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	if err := store.New(database, nil).Seed(ctx, dbfs.SeedFiles); err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Store initialized successfully.")
}
