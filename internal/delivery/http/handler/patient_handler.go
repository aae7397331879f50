package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/service"
	"smart-clinic-portal/pkg/response"
	"smart-clinic-portal/pkg/validator"
)

type PatientHandler struct {
	clinicService service.ClinicService
	validator     *validator.CustomValidator
}

func NewPatientHandler(clinicService service.ClinicService, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		clinicService: clinicService,
		validator:     validator,
	}
}

// Signup registers a patient
// @Summary Patient signup
// @Tags Patient
// @Accept json
// @Produce json
// @Param request body dto.PatientSignupRequest true "Signup Request"
// @Success 201 {object} dto.MessageResponse
// @Failure 409 {object} response.Response
// @Router /patient [post]
func (h *PatientHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.clinicService.PatientSignup(r.Context(), &req); err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			response.Error(w, http.StatusConflict, "Patient with this email already exists", nil)
			return
		}
		response.InternalServerError(w, "Failed to sign up")
		return
	}

	response.Message(w, http.StatusCreated, "Signup successful.")
}

// Login handles patient login
// @Summary Login as patient
// @Tags Patient
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} response.Response
// @Router /patient/login [post]
func (h *PatientHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.clinicService.PatientLogin(r.Context(), &req)
	writeLogin(w, token, err)
}
