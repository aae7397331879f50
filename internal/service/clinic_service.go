package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"smart-clinic-portal/config"
	"smart-clinic-portal/internal/converter"
	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/domain/repository"
	"smart-clinic-portal/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrInvalidDate        = errors.New("invalid date format, use YYYY-MM-DD")
)

// ClinicService is the business layer of the sandbox clinic API
type ClinicService interface {
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error)
	DoctorLogin(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	PatientLogin(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	PatientSignup(ctx context.Context, req *dto.PatientSignupRequest) (*dto.PatientResponse, error)

	ListDoctors(ctx context.Context, filter entity.DoctorFilter) ([]dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id int64) error

	ListAppointments(ctx context.Context, doctorID int64, filter entity.AppointmentFilter) ([]dto.AppointmentResponse, error)

	// Authenticate validates a bearer token and returns its claims
	Authenticate(token string) (*jwt.Claims, error)
}

type clinicService struct {
	store      repository.ClinicStore
	jwtService *jwt.JWTService
	log        *logrus.Logger
}

func NewClinicService(store repository.ClinicStore, jwtService *jwt.JWTService, log *logrus.Logger) ClinicService {
	return &clinicService{
		store:      store,
		jwtService: jwtService,
		log:        log,
	}
}

func (s *clinicService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.store.FindAdminByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(admin.Username, entity.RoleAdmin)
}

func (s *clinicService) DoctorLogin(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	doctor, err := s.store.FindDoctorByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(strconv.FormatInt(doctor.ID, 10), entity.RoleDoctor)
}

func (s *clinicService) PatientLogin(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	patient, err := s.store.FindPatientByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(strconv.FormatInt(patient.ID, 10), entity.RolePatient)
}

func (s *clinicService) issue(subject string, role entity.Role) (*dto.TokenResponse, error) {
	token, tokenID, err := s.jwtService.GenerateAccessToken(subject, role)
	if err != nil {
		s.log.Warnf("Failed to sign token: %+v", err)
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"role": role, "token_id": tokenID}).Info("token issued")
	return &dto.TokenResponse{Token: token, Message: "Login successful."}, nil
}

func (s *clinicService) PatientSignup(ctx context.Context, req *dto.PatientSignupRequest) (*dto.PatientResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	patient := converter.SignupRequestToPatient(req)
	patient.Password = string(hashedPassword)

	if err := s.store.CreatePatient(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (s *clinicService) ListDoctors(ctx context.Context, filter entity.DoctorFilter) ([]dto.DoctorResponse, error) {
	doctors, err := s.store.ListDoctors(ctx, filter)
	if err != nil {
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (s *clinicService) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	doctor := converter.CreateRequestToDoctor(req)
	doctor.Password = string(hashedPassword)

	if err := s.store.CreateDoctor(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	s.log.WithField("doctor_id", doctor.ID).Info("doctor created")
	return converter.DoctorToResponse(doctor), nil
}

func (s *clinicService) DeleteDoctor(ctx context.Context, id int64) error {
	if err := s.store.DeleteDoctor(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDoctorNotFound
		}
		return err
	}

	s.log.WithField("doctor_id", id).Info("doctor deleted")
	return nil
}

func (s *clinicService) ListAppointments(ctx context.Context, doctorID int64, filter entity.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	if _, err := time.Parse(entity.DateLayout, filter.Date); err != nil {
		return nil, ErrInvalidDate
	}

	appointments, err := s.store.ListAppointments(ctx, doctorID, filter)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (s *clinicService) Authenticate(token string) (*jwt.Claims, error) {
	return s.jwtService.ValidateToken(token)
}

// DoctorIDFromClaims reads the doctor id carried in a doctor token subject
func DoctorIDFromClaims(claims *jwt.Claims) (int64, error) {
	if claims == nil || claims.Role != entity.RoleDoctor {
		return 0, ErrInvalidCredentials
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("doctor subject %q: %w", claims.Subject, ErrInvalidCredentials)
	}
	return id, nil
}

// =============================================================================
// Demo data
// =============================================================================

// demoPassword is shared by every seeded doctor and patient
const demoPassword = "password123"

// Seed loads the admin account and a small demo clinic. Appointments are
// placed on the day of now so the doctor dashboard shows them by default.
func Seed(ctx context.Context, store repository.ClinicStore, cfg config.SandboxConfig, now time.Time, log *logrus.Logger) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := store.CreateAdmin(ctx, &entity.Admin{Username: cfg.AdminUsername, Password: string(adminHash)}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	doctors := []entity.Doctor{
		{Name: "Emily Adams", Specialty: "Cardiology", Email: "emily.adams@clinic.test", MobileNo: "5550100001", Availability: []string{"Monday 09:00-12:00", "Wednesday 14:00-17:00"}},
		{Name: "Mark Johnson", Specialty: "Neurology", Email: "mark.johnson@clinic.test", MobileNo: "5550100002", Availability: []string{"Tuesday 10:00-13:00"}},
		{Name: "Sara Lee", Specialty: "Dermatology", Email: "sara.lee@clinic.test", MobileNo: "5550100003", Availability: []string{"Thursday 15:00-18:00"}},
		{Name: "Omar Haddad", Specialty: "Pediatrics", Email: "omar.haddad@clinic.test", MobileNo: "5550100004", Availability: []string{"Friday 08:00-11:00", "Saturday 13:00-16:00"}},
	}
	for i := range doctors {
		doctors[i].Password = string(hash)
		if err := store.CreateDoctor(ctx, &doctors[i]); err != nil {
			return fmt.Errorf("seed doctor %s: %w", doctors[i].Email, err)
		}
	}

	patients := []entity.Patient{
		{Name: "John Smith", Email: "john.smith@mail.test", Phone: "5550200001", Address: "12 Elm Street"},
		{Name: "Maria Garcia", Email: "maria.garcia@mail.test", Phone: "5550200002", Address: "48 Oak Avenue"},
		{Name: "Li Wei", Email: "li.wei@mail.test", Phone: "5550200003", Address: "7 Pine Road"},
	}
	for i := range patients {
		patients[i].Password = string(hash)
		if err := store.CreatePatient(ctx, &patients[i]); err != nil {
			return fmt.Errorf("seed patient %s: %w", patients[i].Email, err)
		}
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	slots := []struct {
		doctor, patient int
		hour            int
	}{
		{0, 0, 9}, {0, 1, 10}, {0, 2, 15}, {1, 1, 11}, {2, 0, 16},
	}
	for _, slot := range slots {
		appointment := entity.Appointment{
			AppointmentTime: day.Add(time.Duration(slot.hour) * time.Hour),
			Status:          entity.AppointmentStatusScheduled,
			Doctor:          doctors[slot.doctor],
			Patient:         patients[slot.patient],
		}
		if err := store.CreateAppointment(ctx, &appointment); err != nil {
			return fmt.Errorf("seed appointment: %w", err)
		}
	}

	log.WithFields(logrus.Fields{
		"admin":    cfg.AdminUsername,
		"doctors":  len(doctors),
		"patients": len(patients),
	}).Info("sandbox seeded")
	return nil
}
