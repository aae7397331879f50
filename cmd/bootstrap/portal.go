package bootstrap

import (
	"fmt"
	"io"
	"os"

	"smart-clinic-portal/config"
	"smart-clinic-portal/internal/client"
	"smart-clinic-portal/internal/delivery/console"
	"smart-clinic-portal/internal/domain/entity"
	domainRepo "smart-clinic-portal/internal/domain/repository"
	"smart-clinic-portal/internal/infrastructure/cache"
	"smart-clinic-portal/internal/render"
	"smart-clinic-portal/internal/repository"
	"smart-clinic-portal/internal/usecase"
	"smart-clinic-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Portal holds the dependencies of the dashboard commands
type Portal struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	Sessions    domainRepo.SessionRepository
	API         *client.Client
	Validator   *validator.CustomValidator
	Notifier    usecase.Notifier
	Modals      usecase.ModalOpener
	in          io.Reader
	out         io.Writer
}

// NewPortal wires the API client, session store and terminal collaborators.
// Alerts go to out, logs to stderr.
func NewPortal(in io.Reader, out io.Writer) (*Portal, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App.LogLevel, &logrus.TextFormatter{FullTimestamp: true}, os.Stderr)

	p := &Portal{
		Config:    cfg,
		Log:       log,
		Validator: validator.NewValidator(),
		Notifier:  console.NewNotifier(out),
		Modals:    console.NewModalOpener(log),
		in:        in,
		out:       out,
	}

	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		p.RedisClient = redisClient
		p.Sessions = repository.NewRedisSessionRepository(redisClient, cfg.Session.Namespace, log)
	default:
		p.Sessions = repository.NewMemorySessionRepository(entity.Session{
			Token: cfg.Session.Token,
			Role:  entity.Role(cfg.Session.Role),
		})
	}

	api, err := client.New(cfg.API, log)
	if err != nil {
		p.Close()
		return nil, err
	}
	p.API = api

	return p, nil
}

func (p *Portal) AdminDashboard(region render.Container, autoYes bool) usecase.AdminDashboardUsecase {
	return usecase.NewAdminDashboardUsecase(p.API, p.Sessions, p.Validator, region, p.Notifier, console.NewConfirmer(p.in, p.out, autoYes), p.Modals, p.Log)
}

func (p *Portal) DoctorDashboard(region render.Container) usecase.DoctorDashboardUsecase {
	return usecase.NewDoctorDashboardUsecase(p.API, p.Sessions, region, p.Log)
}

func (p *Portal) PatientDashboard(region render.Container) usecase.PatientDashboardUsecase {
	return usecase.NewPatientDashboardUsecase(p.API, p.API, p.Sessions, p.Validator, region, p.Notifier, p.Modals, p.Log)
}

func (p *Portal) Login() usecase.LoginUsecase {
	return usecase.NewLoginUsecase(p.API, p.Sessions, p.Notifier, p.Modals, p.Log)
}

// Close releases the redis connection, if any
func (p *Portal) Close() {
	if p.RedisClient != nil {
		_ = p.RedisClient.Close()
	}
}
