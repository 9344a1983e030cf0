package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"shotdiff.dev/pkg/shotdiff/internal/api"
)

var serveAddressFlag string
var serveShutdownTimeoutFlag int64

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison API",
		Long: `Serve the HTTP API used by the report UI and by test suites that record
screenshots. The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(func() error {
				return serve(cmd.Context(), cmd, viper.GetString(serverAddressKey))
			})
		},
	}

	cmd.Flags().StringVarP(&serveAddressFlag, addressFlagName, "a", viper.GetString(serverAddressKey), "listen address")
	bindFlagToConfig(cmd.Flags().Lookup(addressFlagName), serverAddressKey)

	cmd.Flags().Int64Var(&serveShutdownTimeoutFlag, shutdownTimeoutFlagName, viper.GetInt64(serverShutdownTimeout), "seconds to wait for in-flight requests on shutdown")
	bindFlagToConfig(cmd.Flags().Lookup(shutdownTimeoutFlagName), serverShutdownTimeout)

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cmd *cobra.Command, address string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	routes := api.NewServer(store, comparator, recorder,
		api.WithMaxBodyBytes(viper.GetInt64(serverMaxBodyBytesKey))).Routes()
	server := api.NewHTTPServer(address, routes)

	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("Serving API", "address", address)
	cmd.Printf("Serving on http://%s\n", address)

	select {
	case err, ok := <-errCh:
		if ok {
			slog.Error("Server failed", "address", address, "error", err)
			return fmt.Errorf("failed to serve on %s: %w", address, err)
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout())
	defer cancel()

	slog.Info("Shutting down API", "timeout", shutdownTimeout())

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
