// Command teller settles batches of transaction records against client
// accounts. Each batch is a CSV stream of deposits, withdrawals and
// dispute lifecycle records; the result is one balance snapshot per
// client, written as CSV. Batches from a yaml config run concurrently,
// each on its own account registry.
//
// Usage:
//
//	teller transactions.csv
//	teller -output snapshots.csv transactions.csv
//	teller -config batches.yaml
//	teller setup
package main

import (
	"context"
	"log"
	"os"

	"github.com/vadiminshakov/teller/config"
	"github.com/vadiminshakov/teller/internal"
	"github.com/vadiminshakov/teller/internal/setup"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "setup" {
		if err := setup.RunTUI(); err != nil {
			log.Fatal(err)
		}
		return
	}

	configs, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	g, ctx := errgroup.WithContext(context.Background())
	for _, conf := range configs {
		settler, err := internal.NewSettler(conf)
		if err != nil {
			logger.Fatal("failed to create settler", zap.Error(err))
		}

		g.Go(func() error {
			return settler.Run(ctx, logger)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Fatal("settlement failed", zap.Error(err))
	}
}
