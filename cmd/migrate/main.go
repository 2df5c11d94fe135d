// Command migrate applies the embedded goose migrations.
//
// Usage:
//
//	migrate [--dsn DSN] up|down|status
//
// The DSN defaults to DATABASE_DSN.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/fordrm/the-a-team-sub000/internal/adapter/postgres"
)

func main() {
	dsn := flag.String("dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL connection string")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("migrate: no DSN (set --dsn or DATABASE_DSN)")
	}
	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, *dsn, cmd); err != nil {
		log.Fatalf("migrate %s: %v", cmd, err)
	}
}

func run(ctx context.Context, dsn, cmd string) error {
	provider, db, err := postgres.OpenMigrator(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	switch cmd {
	case "up":
		results, err := provider.Up(ctx)
		for _, r := range results {
			fmt.Println(r)
		}
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("no pending migrations")
		}
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-6d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", cmd)
	}
	return nil
}
