package usecase

import (
	"context"
	"errors"
	"strings"

	"smart-clinic-portal/internal/converter"
	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/domain/repository"
	"smart-clinic-portal/internal/render"
	"smart-clinic-portal/pkg/response"
	"smart-clinic-portal/pkg/validator"

	"github.com/sirupsen/logrus"
)

const messagePatientCredentials = "Please enter both email and password."

// PatientDashboardUsecase drives the patient page: the doctor directory with
// booking cards plus patient signup and login.
type PatientDashboardUsecase interface {
	Activate(ctx context.Context) error
	Deactivate()
	SetSearchText(ctx context.Context, text string) error
	SetTimeFilter(ctx context.Context, value string) error
	SetSpecialtyFilter(ctx context.Context, value string) error
	Criteria() entity.DoctorFilter
	OpenSignup()
	OpenLogin()
	Signup(ctx context.Context, req *dto.PatientSignupRequest) response.Result
	Login(ctx context.Context, req *dto.LoginRequest) response.Result
}

type patientDashboardUsecase struct {
	api       AuthAPI
	sessions  repository.SessionRepository
	validator *validator.CustomValidator
	notifier  Notifier
	modals    ModalOpener
	log       *logrus.Logger
	directory *doctorDirectory
}

func NewPatientDashboardUsecase(
	doctors DoctorDirectoryAPI,
	auth AuthAPI,
	sessions repository.SessionRepository,
	v *validator.CustomValidator,
	region render.Container,
	notifier Notifier,
	modals ModalOpener,
	log *logrus.Logger,
) PatientDashboardUsecase {
	return &patientDashboardUsecase{
		api:       auth,
		sessions:  sessions,
		validator: v,
		notifier:  notifier,
		modals:    modals,
		log:       log,
		directory: newDoctorDirectory("patient", doctors, region, render.DoctorCard(render.CardActionBook), log),
	}
}

func (u *patientDashboardUsecase) Activate(ctx context.Context) error {
	return u.directory.activate(ctx)
}

func (u *patientDashboardUsecase) Deactivate() {
	u.directory.deactivate()
}

func (u *patientDashboardUsecase) SetSearchText(ctx context.Context, text string) error {
	return u.directory.update(ctx, func(f *entity.DoctorFilter) { f.Name = strings.TrimSpace(text) })
}

func (u *patientDashboardUsecase) SetTimeFilter(ctx context.Context, value string) error {
	return u.directory.update(ctx, func(f *entity.DoctorFilter) { f.Time = value })
}

func (u *patientDashboardUsecase) SetSpecialtyFilter(ctx context.Context, value string) error {
	return u.directory.update(ctx, func(f *entity.DoctorFilter) { f.Specialty = value })
}

func (u *patientDashboardUsecase) Criteria() entity.DoctorFilter {
	return u.directory.criteria()
}

func (u *patientDashboardUsecase) OpenSignup() {
	u.modals.Open(ModalPatientSignup)
}

func (u *patientDashboardUsecase) OpenLogin() {
	u.modals.Open(ModalPatientLogin)
}

func (u *patientDashboardUsecase) Signup(ctx context.Context, req *dto.PatientSignupRequest) response.Result {
	if err := u.validator.Validate(req); err != nil {
		msg := u.validator.AlertMessage(err)
		u.notifier.Alert(msg)
		return response.Failed(msg)
	}

	res := u.api.PatientSignup(ctx, converter.SignupRequestToPatient(req))
	u.notifier.Alert(res.Message)
	if res.Success {
		if err := u.directory.reload(ctx); err != nil && !errors.Is(err, ErrNotActive) {
			u.log.WithError(err).Warn("reload after signup failed")
		}
	}
	return res
}

func (u *patientDashboardUsecase) Login(ctx context.Context, req *dto.LoginRequest) response.Result {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		u.notifier.Alert(messagePatientCredentials)
		return response.Failed(messagePatientCredentials)
	}

	return authenticate(ctx, u.sessions, u.notifier, u.log, entity.RolePatient, func() response.Result {
		return u.api.PatientLogin(ctx, req)
	})
}
