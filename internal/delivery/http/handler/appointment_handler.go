package handler

import (
	"context"
	"errors"
	"net/http"

	"smart-clinic-portal/internal/delivery/http/middleware"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/service"
	"smart-clinic-portal/pkg/jwt"
	"smart-clinic-portal/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// nullPatientName is the path segment that means "no patient filter"
const nullPatientName = "null"

type AppointmentHandler struct {
	clinicService service.ClinicService
	log           *logrus.Logger
}

func NewAppointmentHandler(clinicService service.ClinicService, log *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		clinicService: clinicService,
		log:           log,
	}
}

// ListByQuery serves GET /appointments?date=&patientName= behind the auth
// middleware.
func (h *AppointmentHandler) ListByQuery(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	q := r.URL.Query()
	h.list(r.Context(), w, claims, entity.AppointmentFilter{
		Date:        q.Get("date"),
		PatientName: entity.NormalizePatientName(q.Get("patientName")),
	})
}

// ListByPath serves GET /appointments/{date}/{patientName}/{token}. The token
// travels in the path, so it is validated here.
func (h *AppointmentHandler) ListByPath(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	claims, err := h.clinicService.Authenticate(vars["token"])
	if err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	filter := entity.AppointmentFilter{Date: vars["date"]}
	if name := vars["patientName"]; name != nullPatientName {
		filter.PatientName = entity.NormalizePatientName(name)
	}

	h.list(r.Context(), w, claims, filter)
}

func (h *AppointmentHandler) list(ctx context.Context, w http.ResponseWriter, claims *jwt.Claims, filter entity.AppointmentFilter) {
	if claims.Role != entity.RoleDoctor {
		response.Forbidden(w, "Only doctors can list appointments")
		return
	}

	doctorID, err := service.DoctorIDFromClaims(claims)
	if err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	appointments, err := h.clinicService.ListAppointments(ctx, doctorID, filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.log.WithError(err).Error("failed to list appointments")
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}
