package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fastertools/ftl-sdk-go/ftl"
	"github.com/fastertools/ftl-sdk-go/internal"
	"github.com/fastertools/ftl-sdk-go/internal/config"
	"github.com/fastertools/ftl-sdk-go/openapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve [spec-path-or-url]",
	Short: "Serve tools over the FTL dispatch protocol",
	Long: `serve hosts a tool registry over HTTP.

When an OpenAPI specification path or URL is given, each operation is
registered as a tool and invocations are proxied to the upstream API.
The spec argument may also be set in the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		if !verbose {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}

		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.Spec = args[0]
		}
		if listen != "" {
			cfg.Listen = listen
		}
		if auth != "" {
			cfg.Auth = auth
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Timeout = timeout
		}
		if cmd.Flags().Changed("retries") {
			cfg.Retries = retries
		}
		if cfg.Spec == "" {
			return fmt.Errorf("no OpenAPI spec given; pass a path or URL, or set spec in the config file")
		}

		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = cfg.Retries
		retryClient.RetryWaitMin = 1 * time.Second
		retryClient.RetryWaitMax = 30 * time.Second
		retryClient.HTTPClient.Timeout = cfg.Timeout
		retryClient.Logger = logger

		if rps > 0 {
			retryClient.Backoff = func(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
				// Ensure we wait at least 1/rps between requests
				minWait := time.Second / time.Duration(rps)
				if min < minWait {
					min = minWait
				}
				return retryablehttp.DefaultBackoff(min, max, attemptNum, resp)
			}
		}

		client := retryClient.StandardClient()

		if cfg.Auth != "" {
			resolved, wasSecret, err := internal.ResolveSecretReference(ctx, cfg.Auth)
			if err != nil {
				return err
			}
			if wasSecret {
				logger.Info("resolved auth from secret reference")
			}
			client.Transport = &internal.HeaderTransport{
				Base:    client.Transport,
				Headers: http.Header{"Authorization": []string{resolved}},
			}
		}

		specData, baseURL, err := loadSpec(ctx, cfg.Spec, client, logger)
		if err != nil {
			return err
		}
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}

		registry := ftl.NewRegistry()
		if err := openapi.Register(registry, specData, baseURL, client,
			openapi.WithDisabled(cfg.DisabledTools...)); err != nil {
			return err
		}
		logger.Info("registered tools", "count", registry.Len())

		server := ftl.NewServer(registry, ftl.WithLogger(logger))

		router := chi.NewRouter()
		router.Use(middleware.RequestID)
		router.Use(middleware.RealIP)
		router.Use(middleware.Recoverer)
		router.Handle("/", server)
		router.Handle("/*", server)

		httpServer := &http.Server{
			Addr:    cfg.Listen,
			Handler: router,
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("serving tools", "addr", cfg.Listen)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			return httpServer.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

// loadSpec reads the OpenAPI document from a URL or local file. For URLs the
// upstream base is the spec URL with its final path segment removed.
func loadSpec(ctx context.Context, spec string, client *http.Client, logger *slog.Logger) ([]byte, string, error) {
	if strings.HasPrefix(spec, "http://") || strings.HasPrefix(spec, "https://") {
		logger.Info("reading spec from URL", "url", spec)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, spec, nil)
		if err != nil {
			return nil, "", fmt.Errorf("error creating request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, "", fmt.Errorf("error downloading spec: %w", err)
		}
		defer resp.Body.Close()

		specData, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, "", fmt.Errorf("error reading spec from %s: %w", spec, err)
		}

		baseURL := spec
		if idx := strings.LastIndex(baseURL, "/"); idx > len("https://") {
			baseURL = baseURL[:idx]
		}
		return specData, baseURL, nil
	}

	logger.Info("reading spec from file", "file", spec)

	cleanPath := filepath.Clean(spec)
	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("spec file does not exist: %s", cleanPath)
		}
		return nil, "", fmt.Errorf("error accessing spec file %s: %w", cleanPath, err)
	}
	if info.IsDir() {
		return nil, "", fmt.Errorf("specified path is a directory, not a file: %s", cleanPath)
	}

	specData, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, "", fmt.Errorf("error reading spec file %s: %w", cleanPath, err)
	}
	return specData, "", nil
}

var (
	configPath string
	listen     string
	auth       string
	verbose    bool
	retries    int
	timeout    time.Duration
	rps        int
)

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	serveCmd.Flags().StringVarP(&listen, "listen", "l", "", "Address to listen on (default :3000)")
	serveCmd.Flags().StringVar(&auth, "auth", "", "Authorization header value for proxied calls (e.g. 'Bearer token123' or 'op://vault/item/field')")
	serveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	serveCmd.Flags().IntVar(&retries, "retries", 3, "Maximum number of retries for failed proxied requests")
	serveCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "Proxied request timeout")
	serveCmd.Flags().IntVarP(&rps, "rps", "r", 0, "Maximum proxied requests per second (0 for no limit)")

	rootCmd.AddCommand(serveCmd)
}
