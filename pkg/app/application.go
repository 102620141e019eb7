package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"

	"stlucia/pkg/config"
	"stlucia/pkg/contracts"
	apperrors "stlucia/pkg/errors"
	httputil "stlucia/pkg/http"
	"stlucia/pkg/middleware"
)

// Probe paths are served with the minimal middleware stack.
var probePaths = []string{"/health", "/ready"}

type Application struct {
	cfg            *config.Config
	server         *http.Server
	probeHandler   http.Handler
	appHttpHandler http.Handler
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp mounts the probe handler and the application handlers and builds the
// HTTP server.
func (a *Application) SetApp(probes contracts.Handler, appHandlers ...contracts.Handler) {
	a.setProbeHandler(probes)
	a.setAppHandler(appHandlers...)
	a.setAppServer()
}

func (a *Application) setProbeHandler(probes contracts.Handler) {
	probeRouter := httprouter.New()
	probes.RegisterRoutes(probeRouter)

	var probeHTTPHandler http.Handler = probeRouter
	probeHTTPHandler = middleware.RequestLogging(a.cfg.Log)(probeHTTPHandler)
	probeHTTPHandler = middleware.Recovery(a.cfg.Log)(probeHTTPHandler)
	a.probeHandler = probeHTTPHandler
	a.cfg.Log.Info("Probe endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAppHandler(appHandlers ...contracts.Handler) {
	appRouter := httprouter.New()
	for _, h := range appHandlers {
		h.RegisterRoutes(appRouter)
	}
	appRouter.NotFound = http.HandlerFunc(a.notFound)
	appRouter.MethodNotAllowed = http.HandlerFunc(a.methodNotAllowed)

	// Recovery → Logging → CORS → MaxSize → ContentType → Router
	var appHttpHandler http.Handler = appRouter
	appHttpHandler = middleware.ContentTypeValidation(a.cfg.Log)(appHttpHandler)
	appHttpHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(appHttpHandler)
	appHttpHandler = middleware.CORS()(appHttpHandler)
	appHttpHandler = middleware.RequestLogging(a.cfg.Log)(appHttpHandler)
	appHttpHandler = middleware.Recovery(a.cfg.Log)(appHttpHandler)
	a.appHttpHandler = appHttpHandler
	a.cfg.Log.Info("Application endpoints configured", "handlers", len(appHandlers))
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	for _, path := range probePaths {
		mux.Handle(path, a.probeHandler)
	}
	mux.Handle("/", a.appHttpHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

// Handler exposes the assembled handler tree.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			a.cfg.GracefulShutdown()
			a.cfg.Log.Fatal("HTTP server failed", "error", err)
		}

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Error("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Closing store and broker connections...")
	a.cfg.GracefulShutdown()

	a.cfg.Log.Info("Server stopped gracefully")
}

func (a *Application) notFound(w http.ResponseWriter, r *http.Request) {
	if err := httputil.WriteError(w, apperrors.NotFound("Resource")); err != nil {
		a.cfg.Log.Error("failed to write error response", "handler", "NotFound", "operation", "WriteError", "error", err)
	}
}

func (a *Application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if err := httputil.WriteError(w, apperrors.MethodNotAllowed()); err != nil {
		a.cfg.Log.Error("failed to write error response", "handler", "MethodNotAllowed", "operation", "WriteError", "error", err)
	}
}
