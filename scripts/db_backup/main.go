// Dumps every stored collection to a timestamped JSON snapshot next to the
// database file. The snapshot is plain JSON keyed by collection kind, so it
// can be inspected or replayed without SQLite tooling.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/harborworks/fleetdeck/internal/config"
	"github.com/harborworks/fleetdeck/internal/db"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	rows, err := conn.Query(ctx, `SELECT kind, data FROM collections ORDER BY kind`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}
	defer rows.Close()

	snapshot := make(map[string]json.RawMessage)
	for rows.Next() {
		var kind string
		var data []byte
		if err := rows.Scan(&kind, &data); err != nil {
			fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
			os.Exit(1)
		}
		snapshot[kind] = json.RawMessage(data)
	}
	if err := rows.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}

	dst := fmt.Sprintf("%s.%s.json", cfg.DatabasePath, time.Now().UTC().Format("20060102T150405"))
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Store snapshot written to %s\n", dst)
}
