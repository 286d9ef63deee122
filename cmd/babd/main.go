package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"babd/internal/backend"
	"babd/internal/config"
	"babd/internal/download"
	"babd/internal/httpapi"
	"babd/internal/manager"
	"babd/internal/registry"
	"babd/internal/store"
	"babd/internal/verify"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "babd",
		Short:         "Local translation backend daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(buildServeCmd())
	root.AddCommand(buildClientCmds()...)
	return root
}

// envOr returns the environment value for key, or def when unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func buildServeCmd() *cobra.Command {
	var (
		cfgPath            string
		addr               string
		cacheDir           string
		defaultBackend     string
		registryFile       string
		workerBin          string
		hubBase            string
		logLevel           string
		maxQueueDepth      int
		maxWaitSec         int
		downloadTimeoutSec int
		translateTimeout   int
		corsEnabled        bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{}
			if cfgPath != "" {
				var err error
				cfg, err = config.Load(cfgPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			// Flags override file values when set explicitly.
			if cmd.Flags().Changed("addr") || cfg.Addr == "" {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("cache-dir") || cfg.CacheDir == "" {
				cfg.CacheDir = cacheDir
			}
			if cmd.Flags().Changed("default-backend") || cfg.DefaultBackend == "" {
				cfg.DefaultBackend = defaultBackend
			}
			if cmd.Flags().Changed("registry-file") {
				cfg.RegistryFile = registryFile
			}
			if cmd.Flags().Changed("worker-bin") || cfg.WorkerBin == "" {
				cfg.WorkerBin = workerBin
			}
			if cmd.Flags().Changed("max-queue-depth") || cfg.MaxQueueDepth == 0 {
				cfg.MaxQueueDepth = maxQueueDepth
			}
			if cmd.Flags().Changed("max-wait-sec") || cfg.MaxWaitSec == 0 {
				cfg.MaxWaitSec = maxWaitSec
			}
			if cmd.Flags().Changed("download-timeout-sec") || cfg.DownloadTimeoutSec == 0 {
				cfg.DownloadTimeoutSec = downloadTimeoutSec
			}
			return runServe(cfg, hubBase, logLevel, translateTimeout, corsEnabled)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", envOr("BABD_CONFIG", ""), "Config file (.yaml/.json/.toml)")
	f.StringVar(&addr, "addr", envOr("BABD_ADDR", ":8080"), "HTTP listen address, e.g. :8080")
	f.StringVar(&cacheDir, "cache-dir", envOr("BABD_CACHE_DIR", "~/.cache/babd"), "Directory holding downloaded model artifacts")
	f.StringVar(&defaultBackend, "default-backend", envOr("BABD_DEFAULT_BACKEND", registry.DefaultBackendID), "Backend id used when a request omits one")
	f.StringVar(&registryFile, "registry-file", "", "Backend catalog override (.yaml/.json/.toml); builtin catalog if empty")
	f.StringVar(&workerBin, "worker-bin", envOr("BABD_WORKER_BIN", "babd-worker"), "Inference worker binary hosting the model runtimes")
	f.StringVar(&hubBase, "hub-base", envOr("BABD_HUB_BASE", download.DefaultHubBase), "Artifact hub base URL")
	f.StringVar(&logLevel, "log-level", envOr("BABD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	f.IntVar(&maxQueueDepth, "max-queue-depth", 32, "Per-backend translation queue depth")
	f.IntVar(&maxWaitSec, "max-wait-sec", 30, "Max seconds a translation may wait for a slot")
	f.IntVar(&downloadTimeoutSec, "download-timeout-sec", 0, "Download bound in seconds (0 = caller context only)")
	f.IntVar(&translateTimeout, "translate-timeout-sec", 0, "Per-request translate timeout in seconds (0 disables)")
	f.BoolVar(&corsEnabled, "cors", true, "Enable permissive CORS for the local UI")
	return cmd
}

func runServe(cfg config.Config, hubBase, logLevel string, translateTimeout int, corsEnabled bool) error {
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()

	reg := registry.Builtin()
	if cfg.RegistryFile != "" {
		reg, err = registry.LoadFile(cfg.RegistryFile)
		if err != nil {
			return fmt.Errorf("load registry: %w", err)
		}
	}

	st, err := store.New(cfg.CacheDir)
	if err != nil {
		return fmt.Errorf("open cache dir: %w", err)
	}

	fetcher := download.NewHubFetcher(hubBase, log)
	coord := download.NewCoordinator(st, fetcher, time.Duration(cfg.DownloadTimeoutSec)*time.Second)
	opener := backend.NewWorkerOpener(backend.WorkerConfig{Bin: cfg.WorkerBin}, log)

	mgr := manager.New(manager.Config{
		Registry:       reg,
		Store:          st,
		Downloads:      coord,
		Verifier:       verify.New(st),
		Factory:        backend.NewFactory(opener),
		Publisher:      manager.NewZerologPublisher(log),
		DefaultBackend: cfg.DefaultBackend,
		MaxQueueDepth:  cfg.MaxQueueDepth,
		MaxWait:        time.Duration(cfg.MaxWaitSec) * time.Second,
	})
	defer mgr.Close()

	baseCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpapi.SetLogger(log)
	httpapi.SetBaseContext(baseCtx)
	httpapi.SetTranslateTimeoutSeconds(int64(translateTimeout))
	if !corsEnabled {
		httpapi.SetCORSOptions(false, nil, nil, nil)
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(mgr)}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("cache_dir", st.Root()).Str("default_backend", mgr.DefaultBackend()).Msg("babd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-baseCtx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}
