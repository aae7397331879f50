package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-clinic-portal/config"
	deliveryHttp "smart-clinic-portal/internal/delivery/http"
	"smart-clinic-portal/internal/delivery/http/handler"
	"smart-clinic-portal/internal/delivery/http/middleware"
	"smart-clinic-portal/internal/infrastructure/memstore"
	"smart-clinic-portal/internal/service"
	"smart-clinic-portal/pkg/jwt"
	"smart-clinic-portal/pkg/validator"

	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// App is the sandbox clinic API process
type App struct {
	Config *config.Config
	Log    *logrus.Logger
	Server *http.Server
}

// New creates the sandbox App with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App.LogLevel, &logrus.JSONFormatter{}, os.Stdout)
	app.Log.Info("Configuration loaded successfully")

	server, err := initializeServer(cfg, app.Log)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus standard logger
func setupLogger(level string, formatter logrus.Formatter, out io.Writer) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(formatter)
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.Warnf("Unknown LOG_LEVEL %q, using info", level)
		return log
	}
	log.SetLevel(lvl)
	return log
}

// initializeServer creates the seeded store and the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger) (*http.Server, error) {
	httpHandler, err := NewSandboxHandler(context.Background(), cfg, log, time.Now())
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Sandbox.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// NewSandboxHandler wires the sandbox API on a freshly seeded store.
// Seeded appointments fall on the day of now.
func NewSandboxHandler(ctx context.Context, cfg *config.Config, log *logrus.Logger, now time.Time) (http.Handler, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize store
	store := memstore.NewClinicStore()
	if err := service.Seed(ctx, store, cfg.Sandbox, now, log); err != nil {
		return nil, fmt.Errorf("failed to seed sandbox: %w", err)
	}

	// Initialize services
	clinicService := service.NewClinicService(store, jwtService, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(clinicService, customValidator)
	doctorHandler := handler.NewDoctorHandler(clinicService, customValidator)
	patientHandler := handler.NewPatientHandler(clinicService, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(clinicService, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware("*")

	// Initialize router
	router := deliveryHttp.NewRouter(log, authHandler, doctorHandler, patientHandler, appointmentHandler, authMiddleware, corsMiddleware)
	return router.Setup(), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Sandbox clinic API starting on port %s", app.Config.Sandbox.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal
	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal is received or the server fails
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	app.Log.Info("Server shutdown complete")
	return nil
}
