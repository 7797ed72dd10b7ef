package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"dress-diary/app"
	"dress-diary/config"
	"dress-diary/db"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		envPath := ".env"
		if err := godotenv.Overload(envPath); err != nil {
			log.Warnf("⚠️  .env file not found at %s, using system environment variables", envPath)
		} else {
			log.Infof("✓ Loaded environment variables from %s (overriding system variables)", envPath)
		}
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dress-diary",
		Short:         "Wardrobe backend: closet, outfit composition and lookbooks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			RunE:  runMigrate,
		},
		newImportDriveCmd(),
	)
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Errorf("❌ %v", err)
		return nil, err
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("⚠️  Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}
	log.SetReportTimestamp(true)
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Open(ctx, cfg); err != nil {
		log.Errorf("❌ %v", err)
		return err
	}
	application, err := app.Initialize(ctx, cfg)
	if err != nil {
		log.Errorf("❌ %v", err)
		db.CloseDB()
		return err
	}
	defer application.Close()

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           application.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("🚀 Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Errorf("❌ Server failed to start: %v", err)
			return err
		}
	case <-ctx.Done():
		log.Infof("🔄 Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	log.Infof("✓ Server stopped")
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := app.Open(cmd.Context(), cfg); err != nil {
		log.Errorf("❌ %v", err)
		return err
	}
	return db.CloseDB()
}

func newImportDriveCmd() *cobra.Command {
	var user, folder string

	cmd := &cobra.Command{
		Use:   "import-drive",
		Short: "Import clothing photos from a Google Drive folder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := app.Open(cmd.Context(), cfg); err != nil {
				log.Errorf("❌ %v", err)
				return err
			}
			application, err := app.Initialize(cmd.Context(), cfg)
			if err != nil {
				log.Errorf("❌ %v", err)
				db.CloseDB()
				return err
			}
			defer application.Close()

			result, err := application.Imports.ImportFolder(cmd.Context(), user, folder)
			if err != nil {
				log.Errorf("❌ Import failed: %v", err)
				return err
			}
			for _, msg := range result.Errors {
				log.Warnf("⚠️  %s", msg)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total=%d imported=%d skipped=%d failed=%d\n",
				result.Total, result.Imported, result.Skipped, result.Total-result.Imported-result.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "username that owns the imported items")
	cmd.Flags().StringVar(&folder, "folder", "", "Google Drive folder id")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("folder")
	return cmd
}
