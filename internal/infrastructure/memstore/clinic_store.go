// Package memstore is an in-process ClinicStore for the sandbox API
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/domain/repository"
)

type appointmentRecord struct {
	id        int64
	doctorID  int64
	patientID int64
	entity    entity.Appointment
}

type clinicStore struct {
	mu sync.RWMutex

	nextID int64

	admins       map[string]entity.Admin
	doctors      []entity.Doctor
	patients     []entity.Patient
	appointments []appointmentRecord
}

func NewClinicStore() repository.ClinicStore {
	return &clinicStore{admins: make(map[string]entity.Admin)}
}

func (s *clinicStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *clinicStore) CreateAdmin(ctx context.Context, admin *entity.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[admin.Username]; ok {
		return fmt.Errorf("admin %q: %w", admin.Username, repository.ErrDuplicateEmail)
	}
	admin.ID = s.id()
	s.admins[admin.Username] = *admin
	return nil
}

func (s *clinicStore) FindAdminByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin, ok := s.admins[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &admin, nil
}

func (s *clinicStore) ListDoctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		if matchesDoctor(d, filter) {
			out = append(out, cloneDoctor(d))
		}
	}
	return out, nil
}

func (s *clinicStore) FindDoctorByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.doctors {
		if strings.EqualFold(d.Email, email) {
			doctor := cloneDoctor(d)
			return &doctor, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *clinicStore) CreateDoctor(ctx context.Context, doctor *entity.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.doctors {
		if strings.EqualFold(d.Email, doctor.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	doctor.ID = s.id()
	s.doctors = append(s.doctors, cloneDoctor(*doctor))
	return nil
}

// DeleteDoctor removes the doctor together with their appointments
func (s *clinicStore) DeleteDoctor(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, d := range s.doctors {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return repository.ErrNotFound
	}
	s.doctors = append(s.doctors[:idx], s.doctors[idx+1:]...)

	kept := s.appointments[:0]
	for _, a := range s.appointments {
		if a.doctorID != id {
			kept = append(kept, a)
		}
	}
	s.appointments = kept
	return nil
}

func (s *clinicStore) FindPatientByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.patients {
		if strings.EqualFold(p.Email, email) {
			patient := p
			return &patient, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *clinicStore) CreatePatient(ctx context.Context, patient *entity.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.patients {
		if strings.EqualFold(p.Email, patient.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	patient.ID = s.id()
	s.patients = append(s.patients, *patient)
	return nil
}

// CreateAppointment links existing records by Doctor.ID and Patient.ID
func (s *clinicStore) CreateAppointment(ctx context.Context, appointment *entity.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doctorByID(appointment.Doctor.ID); !ok {
		return fmt.Errorf("doctor %d: %w", appointment.Doctor.ID, repository.ErrNotFound)
	}
	if _, ok := s.patientByID(appointment.Patient.ID); !ok {
		return fmt.Errorf("patient %d: %w", appointment.Patient.ID, repository.ErrNotFound)
	}

	appointment.ID = s.id()
	s.appointments = append(s.appointments, appointmentRecord{
		id:        appointment.ID,
		doctorID:  appointment.Doctor.ID,
		patientID: appointment.Patient.ID,
		entity:    *appointment,
	})
	return nil
}

func (s *clinicStore) ListAppointments(ctx context.Context, doctorID int64, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var name string
	if filter.PatientName != nil {
		name = strings.ToLower(*filter.PatientName)
	}

	out := []entity.Appointment{}
	for _, rec := range s.appointments {
		if rec.doctorID != doctorID {
			continue
		}
		a := rec.entity
		if a.Date() != filter.Date {
			continue
		}
		patient, ok := s.patientByID(rec.patientID)
		if !ok {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(patient.Name), name) {
			continue
		}
		doctor, _ := s.doctorByID(rec.doctorID)

		patient.Password = ""
		doctor.Password = ""
		a.Patient = patient
		a.Doctor = cloneDoctor(doctor)
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentTime.Before(out[j].AppointmentTime)
	})
	return out, nil
}

func (s *clinicStore) doctorByID(id int64) (entity.Doctor, bool) {
	for _, d := range s.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return entity.Doctor{}, false
}

func (s *clinicStore) patientByID(id int64) (entity.Patient, bool) {
	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Patient{}, false
}

func cloneDoctor(d entity.Doctor) entity.Doctor {
	if d.Availability != nil {
		d.Availability = append([]string(nil), d.Availability...)
	}
	return d
}
