package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/service"
	"smart-clinic-portal/pkg/response"
	"smart-clinic-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	clinicService service.ClinicService
	validator     *validator.CustomValidator
}

func NewDoctorHandler(clinicService service.ClinicService, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		clinicService: clinicService,
		validator:     validator,
	}
}

// ListDoctors returns a bare JSON array. Empty query parameters are ignored.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.DoctorFilter{
		Name:      q.Get("name"),
		Time:      q.Get("time"),
		Specialty: q.Get("specialty"),
	}

	doctors, err := h.clinicService.ListDoctors(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.JSON(w, http.StatusOK, doctors)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.clinicService.CreateDoctor(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyExists):
			response.Error(w, http.StatusConflict, "Doctor with this email already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.SaveDoctorResponse{
		Message: "Doctor added successfully.",
		Doctor:  doctor,
	})
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	if err := h.clinicService.DeleteDoctor(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found with id "+strconv.FormatInt(id, 10))
			return
		}
		response.InternalServerError(w, "Failed to delete doctor")
		return
	}

	response.Message(w, http.StatusOK, "Doctor deleted successfully.")
}
