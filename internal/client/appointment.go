package client

import (
	"context"
	"net/http"

	"smart-clinic-portal/internal/converter"
	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
)

// GetAppointments lists appointments for f. A missing token returns
// ErrTokenMissing without any request; other failures yield an empty list.
func (c *Client) GetAppointments(ctx context.Context, f entity.AppointmentFilter, token string) ([]entity.Appointment, error) {
	const op = "get appointments"

	if token == "" {
		c.log.WithField("operation", op).Warn("authentication token missing, request not sent")
		return nil, ErrTokenMissing
	}

	status, body, err := c.do(ctx, http.MethodGet, c.appointments.Build(f, token), nil)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logFailure(op, http.MethodGet, status, err, nil)
		return []entity.Appointment{}, nil
	}
	if !isSuccess(status) {
		c.logFailure(op, http.MethodGet, status, nil, body)
		return []entity.Appointment{}, nil
	}

	appointments, err := decodeList[dto.AppointmentResponse](body, "appointments")
	if err != nil {
		c.logFailure(op, http.MethodGet, status, err, body)
		return []entity.Appointment{}, nil
	}

	return converter.ResponsesToAppointments(appointments), nil
}
