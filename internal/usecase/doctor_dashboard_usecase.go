package usecase

import (
	"context"
	"errors"
	"html/template"
	"sync"
	"time"

	"smart-clinic-portal/internal/client"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/domain/repository"
	"smart-clinic-portal/internal/render"

	"github.com/sirupsen/logrus"
)

const (
	messageLoadingAppointments = "Loading appointments..."
	messageDoctorTokenMissing  = "Authentication token missing. Please log in."
	messageAppointmentsFailed  = "Failed to load appointments. Please try again."
)

// DoctorDashboardUsecase drives the doctor's appointment table for one
// selected date and an optional patient-name filter.
type DoctorDashboardUsecase interface {
	Activate(ctx context.Context) error
	Deactivate()
	SelectToday(ctx context.Context) error
	SelectDate(ctx context.Context, date string) error
	SetPatientName(ctx context.Context, raw string) error
	Criteria() entity.AppointmentFilter
}

// appointmentState is created on Activate; the selected date starts at today
type appointmentState struct {
	date        string
	patientName *string
}

type doctorDashboardUsecase struct {
	api      AppointmentAPI
	sessions repository.SessionRepository
	region   render.Container
	log      *logrus.Logger
	now      func() time.Time

	seq   sequence
	mu    sync.Mutex
	state *appointmentState
}

// DoctorDashboardOption customises the doctor dashboard
type DoctorDashboardOption func(*doctorDashboardUsecase)

// WithClock replaces the wall clock used to resolve "today"
func WithClock(now func() time.Time) DoctorDashboardOption {
	return func(u *doctorDashboardUsecase) {
		if now != nil {
			u.now = now
		}
	}
}

func NewDoctorDashboardUsecase(
	api AppointmentAPI,
	sessions repository.SessionRepository,
	region render.Container,
	log *logrus.Logger,
	opts ...DoctorDashboardOption,
) DoctorDashboardUsecase {
	u := &doctorDashboardUsecase{
		api:      api,
		sessions: sessions,
		region:   region,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *doctorDashboardUsecase) today() string {
	return u.now().Format(entity.DateLayout)
}

func (u *doctorDashboardUsecase) Activate(ctx context.Context) error {
	u.mu.Lock()
	u.state = &appointmentState{date: u.today()}
	f := u.filterLocked()
	u.mu.Unlock()

	return u.load(ctx, f)
}

func (u *doctorDashboardUsecase) Deactivate() {
	u.mu.Lock()
	u.state = nil
	u.mu.Unlock()

	u.seq.invalidate()
}

func (u *doctorDashboardUsecase) SelectToday(ctx context.Context) error {
	today := u.today()
	return u.update(ctx, func(s *appointmentState) { s.date = today })
}

func (u *doctorDashboardUsecase) SelectDate(ctx context.Context, date string) error {
	return u.update(ctx, func(s *appointmentState) { s.date = date })
}

func (u *doctorDashboardUsecase) SetPatientName(ctx context.Context, raw string) error {
	return u.update(ctx, func(s *appointmentState) { s.patientName = entity.NormalizePatientName(raw) })
}

func (u *doctorDashboardUsecase) Criteria() entity.AppointmentFilter {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state == nil {
		return entity.AppointmentFilter{}
	}
	return u.filterLocked()
}

func (u *doctorDashboardUsecase) update(ctx context.Context, change func(s *appointmentState)) error {
	u.mu.Lock()
	if u.state == nil {
		u.mu.Unlock()
		return ErrNotActive
	}
	change(u.state)
	f := u.filterLocked()
	u.mu.Unlock()

	return u.load(ctx, f)
}

func (u *doctorDashboardUsecase) filterLocked() entity.AppointmentFilter {
	f := entity.AppointmentFilter{Date: u.state.date}
	if u.state.patientName != nil {
		name := *u.state.patientName
		f.PatientName = &name
	}
	return f
}

func (u *doctorDashboardUsecase) load(ctx context.Context, f entity.AppointmentFilter) error {
	id := u.seq.next()

	u.seq.commit(id, func() {
		u.region.Replace(render.MessageRow(messageLoadingAppointments, false))
	})

	token := sessionToken(ctx, u.sessions, u.log)
	if token == "" {
		u.seq.commit(id, func() {
			u.region.Replace(render.MessageRow(messageDoctorTokenMissing, true))
		})
		return nil
	}

	appointments, err := u.api.GetAppointments(ctx, f, token)

	var fragments []template.HTML
	switch {
	case errors.Is(err, client.ErrTokenMissing):
		fragments = []template.HTML{render.MessageRow(messageDoctorTokenMissing, true)}
		err = nil
	case err != nil:
		u.log.WithField("date", f.Date).WithError(err).Warn("appointment load failed")
		fragments = []template.HTML{render.MessageRow(messageAppointmentsFailed, true)}
	default:
		fragments = render.Fragments(appointments, render.PatientRow, render.MessageRow(noAppointmentsMessage(f), false))
	}

	if !u.seq.commit(id, func() { u.region.Replace(fragments...) }) {
		u.log.WithFields(logrus.Fields{"date": f.Date, "request": id}).Debug("discarding stale appointment response")
		return nil
	}
	return err
}

func noAppointmentsMessage(f entity.AppointmentFilter) string {
	msg := "No appointments found for " + f.Date
	if f.PatientName != nil {
		msg += ` for patient "` + *f.PatientName + `"`
	}
	return msg
}
