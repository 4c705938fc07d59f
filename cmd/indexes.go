package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anything2image/gallery-api/internal/infrastructure/config"
	mongodb "github.com/anything2image/gallery-api/internal/infrastructure/db/mongo"
)

var indexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the MongoDB indexes (unique email, gallery lookups)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}

		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		if err := ensureIndexes(ctx, db); err != nil {
			return err
		}
		fmt.Println("indexes ensured")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewAccountRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("account indexes: %w", err)
	}
	if err := mongodb.NewGalleryRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("gallery indexes: %w", err)
	}
	return nil
}
