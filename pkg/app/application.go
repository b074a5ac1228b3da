package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ijuruhub/pkg/config"
	"ijuruhub/pkg/contracts"
	httputil "ijuruhub/pkg/http"
	"ijuruhub/pkg/middleware"
	"ijuruhub/pkg/notify"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Application owns the HTTP server lifecycle: route registration, the
// middleware chain, startup and signal-driven graceful shutdown.
type Application struct {
	cfg        *config.Config
	server     *http.Server
	dispatcher *notify.Dispatcher
}

func NewApplication() *Application {
	return &Application{}
}

func (a *Application) SetApp(cfg *config.Config, dispatcher *notify.Dispatcher, handlers ...contracts.Handler) {
	a.cfg = cfg
	a.dispatcher = dispatcher

	router := mux.NewRouter()
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}
	router.HandleFunc("/api/health", a.health).Methods(http.MethodGet)
	router.HandleFunc("/api/health/ready", a.ready).Methods(http.MethodGet)

	var httpHandler http.Handler = router
	httpHandler = middleware.RequestTimeout(cfg.RequestTimeout)(httpHandler)
	httpHandler = middleware.ContentTypeValidation(cfg.Log)(httpHandler)
	httpHandler = middleware.MaxRequestSize(int64(cfg.MaxRequestSize))(httpHandler)
	httpHandler = middleware.RequestLogging(cfg.Log)(httpHandler)
	httpHandler = middleware.Recovery(cfg.Log)(httpHandler)
	httpHandler = gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		gorillahandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(httpHandler)

	a.server = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	cfg.Log.Info("HTTP server configured", "port", cfg.Port)
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
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

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
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	if a.dispatcher != nil {
		a.cfg.Log.Info("Draining pending notifications...")
		a.dispatcher.Wait()
	}

	a.cfg.Log.Info("Server stopped gracefully")
}

type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

func (a *Application) health(w http.ResponseWriter, r *http.Request) {
	if err := httputil.WriteJSON(w, http.StatusOK, healthResponse{Success: true, Status: "ok"}); err != nil {
		a.cfg.Log.Error("failed to write health response", "error", err)
	}
}

// ready reports whether the datastore answers a ping within a short deadline.
func (a *Application) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := a.cfg.Client.Mongo.Ping(ctx, nil); err != nil {
		a.cfg.Log.Warn("Readiness check failed", "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Success: false, Status: "unavailable"}); writeErr != nil {
			a.cfg.Log.Error("failed to write readiness response", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, healthResponse{Success: true, Status: "ready"}); err != nil {
		a.cfg.Log.Error("failed to write readiness response", "error", err)
	}
}
