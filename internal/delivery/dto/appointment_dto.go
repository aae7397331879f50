package dto

// AppointmentResponse is one element of the appointment listing.
// AppointmentTime is a zone-less local date-time ("2006-01-02T15:04:05").
type AppointmentResponse struct {
	ID              int64            `json:"id"`
	AppointmentTime string           `json:"appointmentTime"`
	Status          int              `json:"status"`
	Patient         *PatientResponse `json:"patient,omitempty"`
	Doctor          *DoctorResponse  `json:"doctor,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}
