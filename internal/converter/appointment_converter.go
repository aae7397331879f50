package converter

import (
	"time"

	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
)

// LocalDateTimeLayout is the zone-less timestamp format used on the wire
const LocalDateTimeLayout = "2006-01-02T15:04:05"

var appointmentTimeLayouts = []string{
	LocalDateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseAppointmentTime accepts the layouts the backend is known to emit.
// An unparseable value yields the zero time.
func ParseAppointmentTime(value string) time.Time {
	for _, layout := range appointmentTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		AppointmentTime: appointment.AppointmentTime.Format(LocalDateTimeLayout),
		Status:          int(appointment.Status),
		Patient:         PatientToResponse(&appointment.Patient),
		Doctor:          DoctorToResponse(&appointment.Doctor),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// ResponsesToAppointments keeps the order of the server response
func ResponsesToAppointments(responses []dto.AppointmentResponse) []entity.Appointment {
	appointments := make([]entity.Appointment, len(responses))
	for i, resp := range responses {
		appointments[i] = entity.Appointment{
			ID:              resp.ID,
			AppointmentTime: ParseAppointmentTime(resp.AppointmentTime),
			Status:          entity.AppointmentStatus(resp.Status),
			Patient:         ResponseToPatient(resp.Patient),
		}
		if doctor := ResponseToDoctor(resp.Doctor); doctor != nil {
			appointments[i].Doctor = *doctor
		}
	}
	return appointments
}
