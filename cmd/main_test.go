package main

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"smart-clinic-portal/cmd/bootstrap"
	"smart-clinic-portal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startSandbox(t *testing.T) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		Sandbox: config.SandboxConfig{AdminUsername: "admin", AdminPassword: "admin123"},
		JWT:     config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour},
	}
	h, err := bootstrap.NewSandboxHandler(context.Background(), cfg, log, time.Now())
	require.NoError(t, err)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	chdir(t, t.TempDir())
	t.Setenv("API_BASE_URL", ts.URL)
	t.Setenv("SESSION_STORE", config.SessionStoreMemory)
	t.Setenv("SESSION_TOKEN", "")
	t.Setenv("SESSION_ROLE", "")
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(""))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPatientDoctors_FiltersBySpecialty(t *testing.T) {
	startSandbox(t)

	out, err := run(t, "patient", "doctors", "--specialty", "Cardiology")
	require.NoError(t, err)

	assert.Contains(t, out, "Emily Adams")
	assert.NotContains(t, out, "Mark Johnson")
}

var sessionLine = regexp.MustCompile(`SESSION_TOKEN=(\S+) SESSION_ROLE=(\S+)`)

func TestLoginAdmin_ThenDeleteMissingDoctor(t *testing.T) {
	startSandbox(t)

	out, err := run(t, "login", "admin", "--username", "admin", "--password", "admin123")
	require.NoError(t, err)

	m := sessionLine.FindStringSubmatch(out)
	require.Len(t, m, 3, out)
	assert.Equal(t, "admin", m[2])

	t.Setenv("SESSION_TOKEN", m[1])
	t.Setenv("SESSION_ROLE", m[2])

	_, err = run(t, "admin", "delete-doctor", "999", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Doctor not found")
}

func TestLoginAdmin_WrongPassword(t *testing.T) {
	startSandbox(t)

	_, err := run(t, "login", "admin", "--username", "admin", "--password", "nope")
	assert.Error(t, err)
}

func TestAdminDeleteDoctor_RejectsBadID(t *testing.T) {
	_, err := run(t, "admin", "delete-doctor", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid doctor id")
}

func TestDoctorAppointments_WithoutSession(t *testing.T) {
	startSandbox(t)

	out, err := run(t, "doctor", "appointments")
	require.NoError(t, err)
	assert.Contains(t, out, "Authentication token missing. Please log in.")
}
