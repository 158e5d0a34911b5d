package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/slayer3098/tts-translator/internal/api"
	"github.com/slayer3098/tts-translator/pkg/config"
	"github.com/slayer3098/tts-translator/pkg/db"
	"github.com/slayer3098/tts-translator/pkg/logging"
	"github.com/slayer3098/tts-translator/pkg/probe"
	"github.com/slayer3098/tts-translator/pkg/request"
	"github.com/slayer3098/tts-translator/pkg/speech"
	"github.com/slayer3098/tts-translator/pkg/speech/espeak"
	"github.com/slayer3098/tts-translator/pkg/speech/festival"
	"github.com/slayer3098/tts-translator/pkg/speech/googletts"
	"github.com/slayer3098/tts-translator/pkg/store"
	"github.com/slayer3098/tts-translator/pkg/tracker"
	"github.com/slayer3098/tts-translator/pkg/translate"
	"github.com/slayer3098/tts-translator/pkg/translate/guru"
	"github.com/slayer3098/tts-translator/pkg/translate/libretranslate"
	"github.com/slayer3098/tts-translator/pkg/translate/mymemory"
	"github.com/slayer3098/tts-translator/pkg/translator"
	"github.com/slayer3098/tts-translator/pkg/version"
)

const defaultConfigPath = "configs/ttstranslator.yaml"

var initConfig = flag.Bool("init-config", false, "Generate default config file and exit")

func main() {
	flag.Parse()

	// Handle --init-config flag
	if *initConfig {
		if err := config.GenerateDefault(defaultConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated: " + defaultConfigPath)
		return
	}

	if err := run(context.Background(), defaultConfigPath); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Optional .env for ADMIN_EMAIL and friends; absence is fine.
	_ = godotenv.Load()

	appCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&appCfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("TTS Translator Started", "version", version.Version)

	dbConn, err := db.Init(appCfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbConn.Close()
	st := store.NewSQLiteStore(dbConn)

	tr := tracker.New()
	reqClient := request.New(request.Options{
		Timeout:        time.Duration(appCfg.Request.Timeout),
		ConnectTimeout: time.Duration(appCfg.Request.ConnectTimeout),
		MaxRedirects:   appCfg.Request.MaxRedirects,
	})

	translateProviders := []translate.Provider{
		mymemory.New(reqClient, appCfg.Translate.MyMemory.BaseURL, appCfg.Translate.MyMemory.Email),
		libretranslate.New(reqClient, appCfg.Translate.LibreTranslate.Endpoints),
		guru.New(),
	}
	speechProviders := []speech.Provider{
		googletts.New(reqClient, appCfg.TTS.Google.BaseURL),
		espeak.New("espeak"),
		festival.New("festival"),
	}

	svc := translator.New(
		translate.NewResolver(translateProviders, tr),
		speech.NewResolver(speechProviders, tr),
		st,
	)

	// Startup Probes. The subprocess engines are optional fallbacks, so a
	// missing binary is worth a warning but never blocks startup.
	probes := []probe.Probe{
		{
			Name:     "Database",
			Check:    func(ctx context.Context) error { return dbConn.PingContext(ctx) },
			Critical: true,
		},
		{
			Name:     "espeak binary",
			Check:    binaryProbe("espeak"),
			Critical: false,
		},
		{
			Name:     "festival binary",
			Check:    binaryProbe("festival"),
			Critical: false,
		},
	}
	if err := probe.AnalyzeResults(probe.Run(ctx, probes)); err != nil {
		return fmt.Errorf("startup checks failed: %w", err)
	}

	return runServer(ctx, appCfg, svc, tr, translateProviders, speechProviders)
}

func binaryProbe(name string) probe.CheckFunc {
	return func(context.Context) error {
		_, err := exec.LookPath(name)
		return err
	}
}

func runServer(ctx context.Context, cfg *config.Config, svc *translator.Service, tr *tracker.Tracker, tp []translate.Provider, sp []speech.Provider) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	shutdownFunc := func() { quit <- syscall.SIGTERM }

	statsH := api.NewStatsHandler(tr, providerNames(tp), speechProviderNames(sp))

	var testH *api.TestHandler
	if cfg.Debug {
		testH = api.NewTestHandler(tp)
	}

	srv := api.NewServer(cfg.Server.Address,
		api.NewTranslationHandler(svc),
		statsH,
		testH,
		shutdownFunc,
	)

	srv.Handler = loggingMiddleware(srv.Handler)
	return runServerLifecycle(ctx, srv, quit)
}

func providerNames(providers []translate.Provider) []string {
	names := make([]string, 0, len(providers)+1)
	for _, p := range providers {
		names = append(names, p.Name())
	}
	// The deterministic local fallback closes the chain.
	return append(names, "local")
}

func speechProviderNames(providers []speech.Provider) []string {
	names := make([]string, 0, len(providers)+1)
	for _, p := range providers {
		names = append(names, p.Name())
	}
	return append(names, "silence")
}

func runServerLifecycle(ctx context.Context, srv *http.Server, quit chan os.Signal) error {
	slog.Info("Starting server", "addr", srv.Addr)
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()
	select {
	case <-quit:
		slog.Info("Shutting down server...")
	case <-ctx.Done():
		slog.Info("Context cancelled, shutting down...")
	case err := <-serverErrors:
		return fmt.Errorf("server failed: %w", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("Request Processed", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
