// Command server exposes the Reykunyu dictionary and the Na'vi conjugators
// as a JSON REST API.
//
// Endpoints:
//
//	GET /api/lookup?q=<query>[&dialect=FN|combined|RN]
//	GET /api/complete?q=<prefix>[&dialect=]
//	GET /api/table?word=<word>[&dialect=]
//	GET /api/conjugate/noun?root=<noun>&affixes=<7 comma-separated slots>[&dialect=][&loan=true]
//	GET /api/conjugate/verb?template=<t.ar.on>&infixes=<3 comma-separated slots>
//	GET /api/conjugate/adjective?root=<adj>&form=<predicative|prenoun|postnoun>[&le=true][&dialect=]
//	GET /api/parse/{noun|verb|adjective}?word=<word>[&dialect=][&loan=true]
//	GET /api/number?n=<int> or ?word=<number word>[&dialect=]
//	GET /healthz
//	GET /metrics
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

	"github.com/spf13/cobra"

	reykunyu "github.com/Willem3141/navi-reykunyu-sub001"
	"github.com/Willem3141/navi-reykunyu-sub001/internal/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	addr       string
	dictionary string
	logLevel   string
	watch      bool
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          "reykunyu-server",
		Short:        "Serve the Reykunyu dictionary over HTTP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&f.addr, "addr", "", "Listen address (overrides server.addr)")
	cmd.Flags().StringVar(&f.dictionary, "dictionary", "", "Dictionary file (overrides dictionary.path)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&f.watch, "watch", true, "Reload the dictionary when the file changes")

	return cmd
}

// loadConfig reads the config file, if any, and applies the flags that were
// set on the command line.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(f.configPath); err != nil {
			return nil, err
		}
	}
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}
	if f.dictionary != "" {
		cfg.Dictionary.Path = f.dictionary
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("watch") {
		cfg.Dictionary.Watch = f.watch
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := cfg.Log.Logger()

	logger.Info().Str("path", cfg.Dictionary.Path).Msg("loading dictionary")
	r, err := reykunyu.Open(cfg.Dictionary.Path,
		reykunyu.WithLogger(logger),
		reykunyu.WithMaxCorrection(cfg.Lookup.MaxCorrectionDistance))
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	m := newMetrics(r)
	if cfg.Dictionary.Watch {
		w := &watcher{
			r:        r,
			path:     cfg.Dictionary.Path,
			debounce: cfg.Dictionary.ReloadDebounce,
			logger:   logger,
			metrics:  m,
		}
		if err := w.start(ctx); err != nil {
			return err
		}
	}

	s := &server{
		r:              r,
		logger:         logger,
		metrics:        m,
		defaultDialect: cfg.Lookup.DefaultDialect,
	}
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.routes(cfg.Server.CORSOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
