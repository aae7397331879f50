package converter

import (
	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO.
// The password never leaves through a response.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Specialty:    doctor.Specialty,
		Email:        doctor.Email,
		MobileNo:     doctor.MobileNo,
		Availability: doctor.Availability,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// ResponseToDoctor converts a DoctorResponse DTO back to a Doctor entity
func ResponseToDoctor(resp *dto.DoctorResponse) *entity.Doctor {
	if resp == nil {
		return nil
	}

	return &entity.Doctor{
		ID:           resp.ID,
		Name:         resp.Name,
		Specialty:    resp.Specialty,
		Email:        resp.Email,
		MobileNo:     resp.MobileNo,
		Availability: resp.Availability,
	}
}

// ResponsesToDoctors keeps the order of the server response
func ResponsesToDoctors(responses []dto.DoctorResponse) []entity.Doctor {
	doctors := make([]entity.Doctor, len(responses))
	for i := range responses {
		doctors[i] = *ResponseToDoctor(&responses[i])
	}
	return doctors
}

// DoctorToCreateRequest builds the POST /doctor body from an admin form
func DoctorToCreateRequest(doctor *entity.Doctor) *dto.CreateDoctorRequest {
	availability := doctor.Availability
	if availability == nil {
		availability = []string{}
	}

	return &dto.CreateDoctorRequest{
		Name:         doctor.Name,
		Specialty:    doctor.Specialty,
		Email:        doctor.Email,
		Password:     doctor.Password,
		MobileNo:     doctor.MobileNo,
		Availability: availability,
	}
}

// CreateRequestToDoctor is used by the sandbox when storing a new doctor
func CreateRequestToDoctor(req *dto.CreateDoctorRequest) *entity.Doctor {
	return &entity.Doctor{
		Name:         req.Name,
		Specialty:    req.Specialty,
		Email:        req.Email,
		Password:     req.Password,
		MobileNo:     req.MobileNo,
		Availability: req.Availability,
	}
}
