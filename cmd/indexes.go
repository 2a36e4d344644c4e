package cmd

import (
	"context"
	"fmt"

	"happy-thoughts-api/bootstrap"
	"happy-thoughts-api/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Apply the thoughts collection validator and indexes, then exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), Cfg.StoreTimeout)
		defer cancel()

		client, err := database.ConnectMongo(ctx, Cfg.MongoURI)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		if err := bootstrap.EnsureThoughtCollection(ctx, client.Database(Cfg.MongoDB)); err != nil {
			return fmt.Errorf("ensure thought collection: %w", err)
		}
		Log.Info("thought collection ready", zap.String("database", Cfg.MongoDB))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(indexesCmd)
}
