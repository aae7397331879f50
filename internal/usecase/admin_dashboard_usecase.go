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

const (
	messageAdminTokenMissing = "Authentication token missing. Please log in as Admin."
	messageConfirmDelete     = "Are you sure you want to delete this doctor?"
	messageDeleteCancelled   = "Deletion cancelled."
)

// AdminDashboardUsecase drives the admin page: the doctor directory plus
// doctor creation and deletion.
type AdminDashboardUsecase interface {
	Activate(ctx context.Context) error
	Deactivate()
	SetSearchText(ctx context.Context, text string) error
	SetTimeFilter(ctx context.Context, value string) error
	SetSpecialtyFilter(ctx context.Context, value string) error
	Criteria() entity.DoctorFilter
	OpenAddDoctor()
	AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) response.Result
	DeleteDoctor(ctx context.Context, id int64) response.Result
}

type adminDashboardUsecase struct {
	api       DoctorAdminAPI
	sessions  repository.SessionRepository
	validator *validator.CustomValidator
	notifier  Notifier
	confirmer Confirmer
	modals    ModalOpener
	log       *logrus.Logger
	directory *doctorDirectory
}

func NewAdminDashboardUsecase(
	api DoctorAdminAPI,
	sessions repository.SessionRepository,
	v *validator.CustomValidator,
	region render.Container,
	notifier Notifier,
	confirmer Confirmer,
	modals ModalOpener,
	log *logrus.Logger,
) AdminDashboardUsecase {
	return &adminDashboardUsecase{
		api:       api,
		sessions:  sessions,
		validator: v,
		notifier:  notifier,
		confirmer: confirmer,
		modals:    modals,
		log:       log,
		directory: newDoctorDirectory("admin", api, region, render.DoctorCard(render.CardActionDelete), log),
	}
}

func (u *adminDashboardUsecase) Activate(ctx context.Context) error {
	return u.directory.activate(ctx)
}

func (u *adminDashboardUsecase) Deactivate() {
	u.directory.deactivate()
}

func (u *adminDashboardUsecase) SetSearchText(ctx context.Context, text string) error {
	return u.directory.update(ctx, func(f *entity.DoctorFilter) { f.Name = strings.TrimSpace(text) })
}

func (u *adminDashboardUsecase) SetTimeFilter(ctx context.Context, value string) error {
	return u.directory.update(ctx, func(f *entity.DoctorFilter) { f.Time = value })
}

func (u *adminDashboardUsecase) SetSpecialtyFilter(ctx context.Context, value string) error {
	return u.directory.update(ctx, func(f *entity.DoctorFilter) { f.Specialty = value })
}

func (u *adminDashboardUsecase) Criteria() entity.DoctorFilter {
	return u.directory.criteria()
}

func (u *adminDashboardUsecase) OpenAddDoctor() {
	u.modals.Open(ModalAddDoctor)
}

func (u *adminDashboardUsecase) AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) response.Result {
	if err := u.validator.Validate(req); err != nil {
		msg := u.validator.AlertMessage(err)
		u.notifier.Alert(msg)
		return response.Failed(msg)
	}

	token, ok := u.token(ctx)
	if !ok {
		return response.Failed(messageAdminTokenMissing)
	}

	res := u.api.SaveDoctor(ctx, converter.CreateRequestToDoctor(req), token)
	return u.finish(ctx, "add doctor", res)
}

func (u *adminDashboardUsecase) DeleteDoctor(ctx context.Context, id int64) response.Result {
	if !u.confirmer.Confirm(messageConfirmDelete) {
		return response.Failed(messageDeleteCancelled)
	}

	token, ok := u.token(ctx)
	if !ok {
		return response.Failed(messageAdminTokenMissing)
	}

	res := u.api.DeleteDoctor(ctx, id, token)
	return u.finish(ctx, "delete doctor", res)
}

// token reads the stored token and alerts when there is none
func (u *adminDashboardUsecase) token(ctx context.Context) (string, bool) {
	token := sessionToken(ctx, u.sessions, u.log)
	if token == "" {
		u.notifier.Alert(messageAdminTokenMissing)
		return "", false
	}
	return token, true
}

// finish alerts the outcome and reloads the whole list after a successful write
func (u *adminDashboardUsecase) finish(ctx context.Context, op string, res response.Result) response.Result {
	u.notifier.Alert(res.Message)
	if !res.Success {
		return res
	}

	if err := u.directory.reload(ctx); err != nil && !errors.Is(err, ErrNotActive) {
		u.log.WithField("operation", op).WithError(err).Warn("reload after write failed")
	}
	return res
}

// sessionToken returns the stored bearer token, or "" when none is stored
// or the store cannot be read.
func sessionToken(ctx context.Context, sessions repository.SessionRepository, log *logrus.Logger) string {
	session, err := sessions.Get(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to read session")
		return ""
	}
	return session.Token
}
