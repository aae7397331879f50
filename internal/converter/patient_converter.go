package converter

import (
	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:      patient.ID,
		Name:    patient.Name,
		Email:   patient.Email,
		Phone:   patient.Phone,
		Address: patient.Address,
	}
}

func ResponseToPatient(resp *dto.PatientResponse) entity.Patient {
	if resp == nil {
		return entity.Patient{}
	}

	return entity.Patient{
		ID:      resp.ID,
		Name:    resp.Name,
		Email:   resp.Email,
		Phone:   resp.Phone,
		Address: resp.Address,
	}
}

func PatientToSignupRequest(patient *entity.Patient) *dto.PatientSignupRequest {
	return &dto.PatientSignupRequest{
		Name:     patient.Name,
		Email:    patient.Email,
		Password: patient.Password,
		Phone:    patient.Phone,
		Address:  patient.Address,
	}
}

func SignupRequestToPatient(req *dto.PatientSignupRequest) *entity.Patient {
	return &entity.Patient{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	}
}
