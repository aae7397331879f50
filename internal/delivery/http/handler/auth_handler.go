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

type AuthHandler struct {
	clinicService service.ClinicService
	validator     *validator.CustomValidator
}

func NewAuthHandler(clinicService service.ClinicService, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		clinicService: clinicService,
		validator:     validator,
	}
}

// AdminLogin handles admin login
// @Summary Login as admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} response.Response
// @Router /admin [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.clinicService.AdminLogin(r.Context(), &req)
	writeLogin(w, token, err)
}

// DoctorLogin handles doctor login
// @Summary Login as doctor
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} response.Response
// @Router /doctor/login [post]
func (h *AuthHandler) DoctorLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.clinicService.DoctorLogin(r.Context(), &req)
	writeLogin(w, token, err)
}

func writeLogin(w http.ResponseWriter, token *dto.TokenResponse, err error) {
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid credentials!")
			return
		}
		response.InternalServerError(w, "Failed to login")
		return
	}

	response.JSON(w, http.StatusOK, token)
}
