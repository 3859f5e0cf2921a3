package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/config"
	http_controllers "github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/library"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the wired components of the serve command.
type App struct {
	Router    *gin.Engine
	Library   *services.LibraryService
	Processor *scheduler.RequestProcessor
}

// Build wires the library, journal, request processor and router from cfg.
// The processor is created but not started.
func Build(cfg *config.Config, version string) (*App, error) {
	if cfg.Requests.ProcessEnabled {
		if err := scheduler.ValidateCronSchedule(cfg.Requests.ProcessSchedule); err != nil {
			return nil, fmt.Errorf("invalid request processing schedule '%s': %w", cfg.Requests.ProcessSchedule, err)
		}
	}

	system := library.NewSystem(os.Stdout)
	if cfg.Library.SeedDemoData {
		library.Seed(system)
		log.Printf("Seeded %d demo books and %d demo users", len(library.DemoBooks), len(library.DemoUsers))
	}

	auditor := audit.NewAuditor(cfg.Audit.Dir)
	if auditor.Enabled() {
		log.Printf("Audit journal enabled at %s", cfg.Audit.Dir)
	}

	svc := services.NewLibraryService(system, auditor)
	processor := scheduler.NewRequestProcessor(svc, cfg.Requests.ProcessSchedule)

	if cfg.Library.ReadOnly {
		log.Printf("Read-only mode enabled - write operations will be blocked")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Library:   svc,
		Processor: processor,
		ReadOnly:  cfg.Library.ReadOnly,
		Version:   version,
	})

	return &App{
		Router:    router,
		Library:   svc,
		Processor: processor,
	}, nil
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Library v%s", version)

	app, err := Build(cfg, version)
	if err != nil {
		log.Fatalf("Failed to initialize library: %v", err)
	}

	var processorCancel context.CancelFunc
	if cfg.Requests.ProcessEnabled {
		var processorCtx context.Context
		processorCtx, processorCancel = context.WithCancel(context.Background())
		if err := app.Processor.Start(processorCtx); err != nil {
			log.Fatalf("Failed to start request processor: %v", err)
		}
	} else {
		log.Printf("Request processor: disabled, use POST /api/requests/process to drain the queue")
	}

	onShutdown := func(ctx context.Context) {
		if processorCancel != nil {
			app.Processor.Stop()
			processorCancel()
		}
	}

	Serve(app.Router, cfg, onShutdown)
}
