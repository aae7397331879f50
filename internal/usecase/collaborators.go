package usecase

import (
	"context"
	"errors"

	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/pkg/response"
)

var ErrNotActive = errors.New("dashboard is not active")

// Modal names understood by ModalOpener
const (
	ModalAddDoctor     = "addDoctor"
	ModalAdminLogin    = "adminLogin"
	ModalDoctorLogin   = "doctorLogin"
	ModalPatientLogin  = "patientLogin"
	ModalPatientSignup = "patientSignup"
)

// Notifier shows a blocking message to the user
type Notifier interface {
	Alert(message string)
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(message string) bool
}

// ModalOpener opens a named dialog
type ModalOpener interface {
	Open(name string)
}

// DoctorDirectoryAPI is the read side of the doctor resource
type DoctorDirectoryAPI interface {
	FilterDoctors(ctx context.Context, f entity.DoctorFilter) ([]entity.Doctor, error)
}

// DoctorAdminAPI adds the authenticated doctor writes
type DoctorAdminAPI interface {
	DoctorDirectoryAPI
	SaveDoctor(ctx context.Context, doctor *entity.Doctor, token string) response.Result
	DeleteDoctor(ctx context.Context, id int64, token string) response.Result
}

type AppointmentAPI interface {
	GetAppointments(ctx context.Context, f entity.AppointmentFilter, token string) ([]entity.Appointment, error)
}

type AuthAPI interface {
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) response.Result
	DoctorLogin(ctx context.Context, req *dto.LoginRequest) response.Result
	PatientLogin(ctx context.Context, req *dto.LoginRequest) response.Result
	PatientSignup(ctx context.Context, patient *entity.Patient) response.Result
}
