package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sentinel-snapshot/internal/adapters/copernicus"
	"sentinel-snapshot/internal/adapters/storage"
	"sentinel-snapshot/internal/config"
	"sentinel-snapshot/internal/platform/logging"
	"sentinel-snapshot/internal/services"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// run wires config, the Copernicus adapters and local storage, then either
// prints a token or downloads one image.
//
// Every failure is terminal: nothing is retried.
func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) error {
	// A .env file is optional; real environment variables still apply.
	envErr := godotenv.Load()

	cfg, err := config.Load(args[0], args[1:], stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger := slog.New(logging.NewTerminalHandler(stderr, logging.ParseLevel(cfg.LogLevel)))
	if envErr != nil {
		logger.Debug("no .env file found (using environment variables)")
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			fmt.Fprintln(stdout, config.CredentialsHelp)
		}
		return err
	}

	session := copernicus.NewHTTPClient(cfg.Timeout)
	auth, err := copernicus.NewAuthenticator(cfg.ClientID, cfg.ClientSecret, cfg.TokenURL, session, logger)
	if err != nil {
		return err
	}

	if cfg.ShowToken {
		tok, err := services.FetchToken(ctx, auth)
		if err != nil {
			return err
		}
		for _, f := range tok.Fields() {
			fmt.Fprintf(stdout, "%s: %s\n", f.Key, f.Value)
		}
		return nil
	}

	req, err := cfg.ImageRequest(logger)
	if err != nil {
		return err
	}

	provider, err := copernicus.NewClient(cfg.ProcessURL, session, logger)
	if err != nil {
		return err
	}
	store := storage.NewLocalFileStore("")

	res, err := services.Snapshot(ctx, req, auth, provider, store, logger)
	if err != nil {
		var apiErr *copernicus.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(stdout, "An error occurred!\nHTTP code: %d\n%s\n", apiErr.StatusCode, apiErr.Body)
		}
		return err
	}

	fmt.Fprintf(stdout, "Saved image %s (%s, %d bytes)\n", res.Path, res.Dimensions, res.Bytes)
	return nil
}
