package client

import (
	"context"
	"encoding/json"
	"net/http"

	"smart-clinic-portal/internal/converter"
	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/filter"
	"smart-clinic-portal/pkg/response"
)

// Login and signup resources
const (
	AdminLoginPath   = "/admin"
	DoctorLoginPath  = "/doctor/login"
	PatientPath      = "/patient"
	PatientLoginPath = "/patient/login"
)

const messageInvalidCredentials = "Invalid credentials!"

// AdminLogin posts admin credentials. On success Data holds the token string.
func (c *Client) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) response.Result {
	return c.login(ctx, "admin login", AdminLoginPath, req)
}

// DoctorLogin posts doctor credentials. On success Data holds the token string.
func (c *Client) DoctorLogin(ctx context.Context, req *dto.LoginRequest) response.Result {
	return c.login(ctx, "doctor login", DoctorLoginPath, req)
}

// PatientLogin posts patient credentials. On success Data holds the token string.
func (c *Client) PatientLogin(ctx context.Context, req *dto.LoginRequest) response.Result {
	return c.login(ctx, "patient login", PatientLoginPath, req)
}

func (c *Client) login(ctx context.Context, op, path string, body interface{}) response.Result {
	status, payload, err := c.do(ctx, http.MethodPost, filter.Request{Path: path}, body)
	if err != nil {
		c.logFailure(op, http.MethodPost, status, err, nil)
		return response.Failed("An unexpected error occurred during login. Please try again.")
	}
	if !isSuccess(status) {
		c.logFailure(op, http.MethodPost, status, nil, payload)
		return response.Failed(response.MessageOr(payload, messageInvalidCredentials))
	}

	var token dto.TokenResponse
	if err := json.Unmarshal(payload, &token); err != nil || token.Token == "" {
		c.logFailure(op, http.MethodPost, status, err, payload)
		return response.Failed("Login response did not include a token.")
	}

	return response.Succeeded(response.MessageOr(payload, "Login successful."), token.Token)
}

// PatientSignup registers a new patient
func (c *Client) PatientSignup(ctx context.Context, patient *entity.Patient) response.Result {
	const op = "patient signup"

	status, payload, err := c.do(ctx, http.MethodPost, filter.Request{Path: PatientPath}, converter.PatientToSignupRequest(patient))
	if err != nil {
		c.logFailure(op, http.MethodPost, status, err, nil)
		return response.Failed("An unexpected error occurred during signup. Please try again.")
	}
	if !isSuccess(status) {
		c.logFailure(op, http.MethodPost, status, nil, payload)
		return response.Failed(response.MessageOr(payload, "Signup failed."))
	}

	return response.Succeeded(response.MessageOr(payload, "Signup successful."), nil)
}

// TokenFrom extracts the token carried by a successful login result
func TokenFrom(res response.Result) string {
	if !res.Success {
		return ""
	}
	token, _ := res.Data.(string)
	return token
}
