package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smart-clinic-portal/config"
	"smart-clinic-portal/internal/client"
	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/delivery/http/handler"
	"smart-clinic-portal/internal/delivery/http/middleware"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/infrastructure/memstore"
	"smart-clinic-portal/internal/service"
	"smart-clinic-portal/pkg/jwt"
	"smart-clinic-portal/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedDay = time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC)

func newSandbox(t *testing.T) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memstore.NewClinicStore()
	require.NoError(t, service.Seed(context.Background(), store, config.SandboxConfig{AdminUsername: "admin", AdminPassword: "admin123"}, seedDay, log))

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})
	clinicService := service.NewClinicService(store, jwtService, log)
	v := validator.NewValidator()

	router := NewRouter(
		log,
		handler.NewAuthHandler(clinicService, v),
		handler.NewDoctorHandler(clinicService, v),
		handler.NewPatientHandler(clinicService, v),
		handler.NewAppointmentHandler(clinicService, log),
		middleware.NewAuthMiddleware(jwtService),
		middleware.NewCORSMiddleware(""),
	)

	ts := httptest.NewServer(router.Setup())
	t.Cleanup(ts.Close)
	return ts
}

func newClient(t *testing.T, baseURL, style string) *client.Client {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	c, err := client.New(config.APIConfig{BaseURL: baseURL, Timeout: 5 * time.Second, AppointmentsStyle: style}, log)
	require.NoError(t, err)
	return c
}

func TestSandbox_DoctorDirectory(t *testing.T) {
	ts := newSandbox(t)
	c := newClient(t, ts.URL, "query")
	ctx := context.Background()

	doctors, err := c.GetDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 4)
	assert.Equal(t, "Emily Adams", doctors[0].Name)
	assert.Empty(t, doctors[0].Password)

	doctors, err = c.FilterDoctors(ctx, entity.DoctorFilter{Specialty: "neurology"})
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Mark Johnson", doctors[0].Name)

	doctors, err = c.FilterDoctors(ctx, entity.DoctorFilter{Time: "PM"})
	require.NoError(t, err)
	assert.Len(t, doctors, 3)
}

func TestSandbox_AdminWrites(t *testing.T) {
	ts := newSandbox(t)
	c := newClient(t, ts.URL, "query")
	ctx := context.Background()

	login := c.AdminLogin(ctx, &dto.AdminLoginRequest{Username: "admin", Password: "admin123"})
	require.True(t, login.Success, login.Message)
	token := client.TokenFrom(login)

	res := c.SaveDoctor(ctx, &entity.Doctor{
		Name: "Nina Park", Specialty: "Oncology", Email: "nina@clinic.test", Password: "password123",
		Availability: []string{"Monday 08:00-10:00"},
	}, token)
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Doctor added successfully.", res.Message)
	created, ok := res.Data.(*entity.Doctor)
	require.True(t, ok)
	assert.Positive(t, created.ID)

	dup := c.SaveDoctor(ctx, &entity.Doctor{Name: "Nina Park", Specialty: "Oncology", Email: "nina@clinic.test", Password: "password123"}, token)
	assert.False(t, dup.Success)
	assert.Equal(t, "Doctor with this email already exists", dup.Message)

	del := c.DeleteDoctor(ctx, created.ID, token)
	require.True(t, del.Success, del.Message)
	assert.Equal(t, "Doctor deleted successfully.", del.Message)

	missing := c.DeleteDoctor(ctx, created.ID, token)
	assert.False(t, missing.Success)
	assert.Contains(t, missing.Message, "Doctor not found")
}

func TestSandbox_WritesNeedAdmin(t *testing.T) {
	ts := newSandbox(t)
	c := newClient(t, ts.URL, "query")
	ctx := context.Background()

	login := c.DoctorLogin(ctx, &dto.LoginRequest{Email: "emily.adams@clinic.test", Password: "password123"})
	require.True(t, login.Success, login.Message)

	res := c.DeleteDoctor(ctx, 1, client.TokenFrom(login))
	assert.False(t, res.Success)
	assert.Equal(t, "You don't have permission to access this resource", res.Message)

	res = c.DeleteDoctor(ctx, 1, "forged")
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid or expired token", res.Message)
}

func TestSandbox_Logins(t *testing.T) {
	ts := newSandbox(t)
	c := newClient(t, ts.URL, "query")
	ctx := context.Background()

	bad := c.AdminLogin(ctx, &dto.AdminLoginRequest{Username: "admin", Password: "wrong"})
	assert.False(t, bad.Success)
	assert.Equal(t, "Invalid credentials!", bad.Message)

	signup := c.PatientSignup(ctx, &entity.Patient{Name: "New Patient", Email: "new@mail.test", Password: "secret1", Phone: "5550300000", Address: "1 Road"})
	require.True(t, signup.Success, signup.Message)

	login := c.PatientLogin(ctx, &dto.LoginRequest{Email: "new@mail.test", Password: "secret1"})
	require.True(t, login.Success, login.Message)
	assert.NotEmpty(t, client.TokenFrom(login))
}

func TestSandbox_Appointments(t *testing.T) {
	ts := newSandbox(t)
	ctx := context.Background()

	for _, style := range []string{"query", "path"} {
		t.Run(style, func(t *testing.T) {
			c := newClient(t, ts.URL, style)

			login := c.DoctorLogin(ctx, &dto.LoginRequest{Email: "emily.adams@clinic.test", Password: "password123"})
			require.True(t, login.Success, login.Message)
			token := client.TokenFrom(login)

			list, err := c.GetAppointments(ctx, entity.AppointmentFilter{Date: "2024-01-01"}, token)
			require.NoError(t, err)
			require.Len(t, list, 3)
			assert.Equal(t, "John Smith", list[0].Patient.Name)
			assert.Equal(t, 9, list[0].AppointmentTime.Hour())

			list, err = c.GetAppointments(ctx, entity.AppointmentFilter{Date: "2024-01-01", PatientName: entity.NormalizePatientName("Li Wei")}, token)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, "li.wei@mail.test", list[0].Patient.Email)

			list, err = c.GetAppointments(ctx, entity.AppointmentFilter{Date: "2024-01-02"}, token)
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestSandbox_AppointmentsNeedDoctor(t *testing.T) {
	ts := newSandbox(t)
	c := newClient(t, ts.URL, "query")
	ctx := context.Background()

	login := c.AdminLogin(ctx, &dto.AdminLoginRequest{Username: "admin", Password: "admin123"})
	require.True(t, login.Success)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/appointments?date=2024-01-01", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+client.TokenFrom(login))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp2, err := http.Get(ts.URL + "/appointments/2024-01-01/null/" + client.TokenFrom(login))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}

func TestSandbox_CORSPreflight(t *testing.T) {
	ts := newSandbox(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/doctor/3", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(resp.Header.Get("Access-Control-Allow-Methods"), "DELETE"))
}

func TestSandbox_Health(t *testing.T) {
	ts := newSandbox(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}
