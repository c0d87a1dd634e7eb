package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"assistencia_os/internal/infrastructure/config"
	"assistencia_os/internal/infrastructure/database"
	"assistencia_os/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	wait := flag.Duration("wait", 2*time.Minute, "how long to wait for tables to become ACTIVE")
	dryRun := flag.Bool("dry-run", false, "print the table names without creating anything")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	tables := []string{
		cfg.Dynamo.OrdersTable,
		cfg.Dynamo.ResalesTable,
		cfg.Dynamo.OrderSharesTable,
		cfg.Dynamo.ResaleSharesTable,
	}

	if *dryRun {
		for _, t := range tables {
			fmt.Println(t)
		}
		return
	}

	ctx := context.Background()
	client, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		log.Fatal("Failed to connect to DynamoDB", zap.Error(err))
	}

	if err := database.EnsureTables(ctx, client, log, tables...); err != nil {
		log.Fatal("Failed to create tables", zap.Error(err))
	}
	if err := database.WaitForTables(ctx, client, *wait, tables...); err != nil {
		log.Fatal("Tables did not become active", zap.Error(err))
	}

	log.Info("Tables ready", zap.Strings("tables", tables))
}
