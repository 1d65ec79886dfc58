// Restores collections from a JSON snapshot produced by db_backup. Every
// kind present in the snapshot fully replaces the stored collection.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/harborworks/fleetdeck/internal/config"
	"github.com/harborworks/fleetdeck/internal/db"
	"github.com/harborworks/fleetdeck/internal/store"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: db_restore <snapshot.json>")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	b, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}

	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(b, &snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	st := store.New(conn, nil)
	for kind, data := range snapshot {
		if err := st.Save(ctx, kind, data); err != nil {
			fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Store restore completed.")
}
