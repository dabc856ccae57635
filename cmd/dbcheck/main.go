// Command dbcheck verifies that the configured database is reachable and
// reports how many items it holds.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"item-api/internal/config"

	"github.com/jackc/pgx/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	if err := conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n", dbName)

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT to_regclass('public.items') IS NOT NULL").Scan(&exists); err != nil {
		fmt.Fprintf(os.Stderr, "Schema lookup failed: %v\n", err)
		os.Exit(1)
	}
	if !exists {
		fmt.Println("Table items does not exist yet; it is created when the API starts.")
		return
	}

	var count int64
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		fmt.Fprintf(os.Stderr, "Count failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Table items holds %d rows\n", count)
}
