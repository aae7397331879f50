package entity

import "time"

// AppointmentStatus mirrors the numeric status stored by the backend
type AppointmentStatus int

const (
	AppointmentStatusScheduled AppointmentStatus = 0
	AppointmentStatusCompleted AppointmentStatus = 1
)

// AppointmentDuration is the fixed length of a consultation
const AppointmentDuration = time.Hour

// DateLayout is the wire format of appointment dates (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Appointment links a patient to a doctor at a point in time
type Appointment struct {
	ID              int64
	AppointmentTime time.Time
	Status          AppointmentStatus
	Patient         Patient
	Doctor          Doctor
}

// Date returns the appointment day in DateLayout
func (a *Appointment) Date() string {
	if a.AppointmentTime.IsZero() {
		return ""
	}
	return a.AppointmentTime.Format(DateLayout)
}

// EndTime returns the end of the consultation slot
func (a *Appointment) EndTime() time.Time {
	if a.AppointmentTime.IsZero() {
		return time.Time{}
	}
	return a.AppointmentTime.Add(AppointmentDuration)
}

func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

func (s AppointmentStatus) String() string {
	switch s {
	case AppointmentStatusScheduled:
		return "Scheduled"
	case AppointmentStatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
