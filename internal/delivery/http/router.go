package http

import (
	"net/http"

	"smart-clinic-portal/internal/delivery/http/handler"
	"smart-clinic-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router             *mux.Router
	log                *logrus.Logger
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	log *logrus.Logger,
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		log:                log,
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Preflight requests only need the CORS headers. Registered first so the
	// method-restricted subrouters below never answer them with 405.
	r.router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Logins and signup (public)
	r.router.HandleFunc("/admin", r.authHandler.AdminLogin).Methods(http.MethodPost)
	r.router.HandleFunc("/doctor/login", r.authHandler.DoctorLogin).Methods(http.MethodPost)
	r.router.HandleFunc("/patient", r.patientHandler.Signup).Methods(http.MethodPost)
	r.router.HandleFunc("/patient/login", r.patientHandler.Login).Methods(http.MethodPost)

	// Doctor directory (public)
	r.router.HandleFunc("/doctor", r.doctorHandler.ListDoctors).Methods(http.MethodGet)

	// Doctor management (admin only)
	admin := r.router.PathPrefix("/doctor").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/{id:[0-9]+}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Appointment listing, token in the path
	r.router.HandleFunc("/appointments/{date}/{patientName}/{token}", r.appointmentHandler.ListByPath).Methods(http.MethodGet)

	// Appointment listing, bearer token (doctor only)
	appointments := r.router.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Use(middleware.RequireDoctor)
	appointments.HandleFunc("", r.appointmentHandler.ListByQuery).Methods(http.MethodGet)

	r.router.Use(middleware.RequestLogger(r.log))
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
