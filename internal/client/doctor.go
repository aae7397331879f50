package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"smart-clinic-portal/internal/converter"
	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/filter"
	"smart-clinic-portal/pkg/response"
)

// GetDoctors fetches the unfiltered doctor list
func (c *Client) GetDoctors(ctx context.Context) ([]entity.Doctor, error) {
	return c.FilterDoctors(ctx, entity.DoctorFilter{})
}

// FilterDoctors fetches doctors matching f. Any failure yields an empty list;
// the only error returned is the caller's own context error.
func (c *Client) FilterDoctors(ctx context.Context, f entity.DoctorFilter) ([]entity.Doctor, error) {
	const op = "filter doctors"

	status, body, err := c.do(ctx, http.MethodGet, filter.Doctors(f), nil)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logFailure(op, http.MethodGet, status, err, nil)
		return []entity.Doctor{}, nil
	}
	if !isSuccess(status) {
		c.logFailure(op, http.MethodGet, status, nil, body)
		return []entity.Doctor{}, nil
	}

	doctors, err := decodeList[dto.DoctorResponse](body, "doctors")
	if err != nil {
		c.logFailure(op, http.MethodGet, status, err, body)
		return []entity.Doctor{}, nil
	}

	return converter.ResponsesToDoctors(doctors), nil
}

// SaveDoctor creates a doctor. On success Data holds the created *entity.Doctor
// when the server echoes it back.
func (c *Client) SaveDoctor(ctx context.Context, doctor *entity.Doctor, token string) response.Result {
	const op = "save doctor"

	if token == "" {
		c.log.WithField("operation", op).Warn("authentication token missing, request not sent")
		return response.Failed(MessageTokenMissing)
	}

	req := filter.Doctors(entity.DoctorFilter{})
	req.BearerToken = token

	status, body, err := c.do(ctx, http.MethodPost, req, converter.DoctorToCreateRequest(doctor))
	if err != nil {
		c.logFailure(op, http.MethodPost, status, err, nil)
		return response.Failed("An unexpected error occurred during saving.")
	}
	if !isSuccess(status) {
		c.logFailure(op, http.MethodPost, status, nil, body)
		return response.Failed(response.MessageOr(body, "Failed to add doctor."))
	}

	var data interface{}
	var saved dto.SaveDoctorResponse
	if json.Unmarshal(body, &saved) == nil && saved.Doctor != nil {
		data = converter.ResponseToDoctor(saved.Doctor)
	}

	return response.Succeeded(response.MessageOr(body, "Doctor added successfully."), data)
}

// DeleteDoctor removes a doctor by id
func (c *Client) DeleteDoctor(ctx context.Context, id int64, token string) response.Result {
	const op = "delete doctor"

	if token == "" {
		c.log.WithField("operation", op).Warn("authentication token missing, request not sent")
		return response.Failed(MessageTokenMissing)
	}

	req := filter.Doctor(strconv.FormatInt(id, 10))
	req.BearerToken = token

	status, body, err := c.do(ctx, http.MethodDelete, req, nil)
	if err != nil {
		c.logFailure(op, http.MethodDelete, status, err, nil)
		return response.Failed("An unexpected error occurred during deletion.")
	}
	if !isSuccess(status) {
		c.logFailure(op, http.MethodDelete, status, nil, body)
		return response.Failed(response.MessageOr(body, "Failed to delete doctor."))
	}

	return response.Succeeded(response.MessageOr(body, "Doctor deleted successfully."), nil)
}
