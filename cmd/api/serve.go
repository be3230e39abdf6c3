package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/config"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/logger"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Opens the store, ensures the schema, seeds default content on first start and serves the API until SIGINT or SIGTERM.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	announceGeneratedToken(rt.log, rt.cfg)

	svc := rt.service()
	if _, err := svc.SeedDefaults(ctx); err != nil {
		rt.log.Error("seeding failed", "error", err)
		return fmt.Errorf("seed: %w", err)
	}

	bootstrap.SetGinMode(rt.cfg.App.Environment)
	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Version:     rt.cfg.App.Version,
		Production:  rt.cfg.App.IsProduction(),
		AdminToken:  rt.cfg.Auth.AdminToken,
		CORSOrigins: rt.cfg.Server.CORSOrigins,
		RateRPS:     rt.cfg.RateLimit.RPS,
		RateBurst:   rt.cfg.RateLimit.Burst,
		Service:     svc,
		Log:         rt.log,
	})
	if err != nil {
		return err
	}

	port := rt.cfg.Server.Port
	if servePort != "" {
		port = servePort
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		rt.log.Info("listening", "addr", srv.Addr, "environment", rt.cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	rt.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// announceGeneratedToken warns when the admin token was generated at startup.
// Only development logs carry the token itself; production logs get a
// fingerprint.
func announceGeneratedToken(log *logger.Logger, cfg *config.Config) {
	if !cfg.Auth.Generated {
		return
	}
	if !cfg.App.IsProduction() {
		log.Warn("ADMIN_TOKEN not set, generated a token for this process",
			"admin_token", cfg.Auth.AdminToken)
		return
	}
	log.Warn("ADMIN_TOKEN not set, generated a token that is not logged in production",
		"admin_token_sha256", tokenFingerprint(cfg.Auth.AdminToken),
		"hint", "run `portfolio-api token` and set ADMIN_TOKEN",
	)
}

func tokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:4])
}
