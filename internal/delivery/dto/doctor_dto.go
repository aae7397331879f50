package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	Specialty    string   `json:"specialty" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=8"`
	MobileNo     string   `json:"mobileNo" validate:"omitempty,min=10,max=20"`
	Availability []string `json:"availability" validate:"omitempty,dive,required"`
}

// Response DTOs

type DoctorResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Email        string   `json:"email"`
	MobileNo     string   `json:"mobileNo,omitempty"`
	Availability []string `json:"availability,omitempty"`
}

// DoctorListResponse is the wrapped list shape some backends return
// instead of a bare array.
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// SaveDoctorResponse is the body of a successful POST /doctor
type SaveDoctorResponse struct {
	Message string          `json:"message,omitempty"`
	Doctor  *DoctorResponse `json:"doctor,omitempty"`
}
