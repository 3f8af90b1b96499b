package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/gearbay/config"
	"github.com/shashiranjanraj/gearbay/database/seeders"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

// gearbay seed — load development fixtures into the document store.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the document store with development data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := store.Connect(ctx, config.MongoURI(), config.MongoDB())
		if err != nil {
			return err
		}
		defer db.Disconnect(context.Background())

		return seeders.Run(ctx, db)
	},
}
