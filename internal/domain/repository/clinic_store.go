package repository

import (
	"context"
	"errors"

	"smart-clinic-portal/internal/domain/entity"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// ClinicStore is the persistence behind the sandbox clinic API
type ClinicStore interface {
	CreateAdmin(ctx context.Context, admin *entity.Admin) error
	FindAdminByUsername(ctx context.Context, username string) (*entity.Admin, error)

	ListDoctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error)
	FindDoctorByEmail(ctx context.Context, email string) (*entity.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *entity.Doctor) error
	DeleteDoctor(ctx context.Context, id int64) error

	FindPatientByEmail(ctx context.Context, email string) (*entity.Patient, error)
	CreatePatient(ctx context.Context, patient *entity.Patient) error

	CreateAppointment(ctx context.Context, appointment *entity.Appointment) error
	// ListAppointments returns a doctor's appointments on filter.Date,
	// ordered by appointment time
	ListAppointments(ctx context.Context, doctorID int64, filter entity.AppointmentFilter) ([]entity.Appointment, error)
}
