package usecase

import (
	"context"
	"strings"

	"smart-clinic-portal/internal/client"
	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/domain/repository"
	"smart-clinic-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

const (
	messageAdminCredentials  = "Please enter both username and password for Admin."
	messageDoctorCredentials = "Please enter both email and password for Doctor."
	messageSessionNotStored  = "Login succeeded but the session could not be stored. Please try again."
)

// LoginUsecase drives the landing page role logins
type LoginUsecase interface {
	OpenAdminLogin()
	OpenDoctorLogin()
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) response.Result
	DoctorLogin(ctx context.Context, req *dto.LoginRequest) response.Result
}

type loginUsecase struct {
	api      AuthAPI
	sessions repository.SessionRepository
	notifier Notifier
	modals   ModalOpener
	log      *logrus.Logger
}

func NewLoginUsecase(
	api AuthAPI,
	sessions repository.SessionRepository,
	notifier Notifier,
	modals ModalOpener,
	log *logrus.Logger,
) LoginUsecase {
	return &loginUsecase{
		api:      api,
		sessions: sessions,
		notifier: notifier,
		modals:   modals,
		log:      log,
	}
}

func (u *loginUsecase) OpenAdminLogin() {
	u.modals.Open(ModalAdminLogin)
}

func (u *loginUsecase) OpenDoctorLogin() {
	u.modals.Open(ModalDoctorLogin)
}

func (u *loginUsecase) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) response.Result {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		u.notifier.Alert(messageAdminCredentials)
		return response.Failed(messageAdminCredentials)
	}

	return authenticate(ctx, u.sessions, u.notifier, u.log, entity.RoleAdmin, func() response.Result {
		return u.api.AdminLogin(ctx, req)
	})
}

func (u *loginUsecase) DoctorLogin(ctx context.Context, req *dto.LoginRequest) response.Result {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		u.notifier.Alert(messageDoctorCredentials)
		return response.Failed(messageDoctorCredentials)
	}

	return authenticate(ctx, u.sessions, u.notifier, u.log, entity.RoleDoctor, func() response.Result {
		return u.api.DoctorLogin(ctx, req)
	})
}

// authenticate runs a login call and, on success, stores the token with
// the role that obtained it. The outcome is always alerted.
func authenticate(
	ctx context.Context,
	sessions repository.SessionRepository,
	notifier Notifier,
	log *logrus.Logger,
	role entity.Role,
	login func() response.Result,
) response.Result {
	res := login()
	if !res.Success {
		notifier.Alert(res.Message)
		return res
	}

	if err := sessions.Save(ctx, entity.Session{Token: client.TokenFrom(res), Role: role}); err != nil {
		log.WithField("role", role).WithError(err).Error("failed to store session")
		notifier.Alert(messageSessionNotStored)
		return response.Failed(messageSessionNotStored)
	}

	log.WithField("role", role).Info("logged in")
	notifier.Alert(res.Message)
	return res
}
