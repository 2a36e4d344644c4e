package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"happy-thoughts-api/bootstrap"
	"happy-thoughts-api/database"
	"happy-thoughts-api/internal/repository"
	"happy-thoughts-api/internal/routes"
	"happy-thoughts-api/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var useMemory bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&useMemory, "memory", false, "keep thoughts in memory instead of MongoDB")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := services.NewThoughtService(store, Log, Cfg.StoreTimeout)
	app := routes.NewApp(routes.Deps{
		Thoughts:    svc,
		Log:         Log,
		CORSOrigins: Cfg.CORSOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		Log.Info("server running", zap.String("addr", "http://localhost:"+Cfg.Port))
		errCh <- app.Listen(":" + Cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	Log.Info("shutting down", zap.Duration("timeout", Cfg.ShutdownTimeout))
	if err := app.ShutdownWithTimeout(Cfg.ShutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore returns the thought store selected by --memory and a func releasing it.
func openStore(ctx context.Context) (repository.ThoughtRepository, func(), error) {
	if useMemory {
		Log.Warn("using in-memory store, thoughts are lost on exit")
		return repository.NewMemoryThoughtRepository(), func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, Cfg.StoreTimeout)
	defer cancel()

	client, err := database.ConnectMongo(connectCtx, Cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	Log.Info("connected to mongodb", zap.String("database", Cfg.MongoDB))

	db := client.Database(Cfg.MongoDB)
	if err := bootstrap.EnsureThoughtCollection(connectCtx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ensure thought collection: %w", err)
	}

	closeFn := func() {
		if err := client.Disconnect(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
			Log.Warn("mongodb disconnect", zap.Error(err))
		}
	}
	return repository.NewMongoThoughtRepository(db), closeFn, nil
}
