package filter

import (
	"fmt"
	"net/url"

	"smart-clinic-portal/config"
	"smart-clinic-portal/internal/domain/entity"
)

// AppointmentsPath is the appointment listing resource
const AppointmentsPath = "/appointments"

// nullSegment stands for an absent patient name in path-style requests
const nullSegment = "null"

// AppointmentBuilder turns an appointment filter and token into a request.
// The listing endpoint's shape is negotiated with the backend, so it is
// pluggable.
type AppointmentBuilder interface {
	Build(f entity.AppointmentFilter, token string) Request
}

// QueryStyle issues GET /appointments?date=..&patientName=.. with a bearer header
type QueryStyle struct{}

func (QueryStyle) Build(f entity.AppointmentFilter, token string) Request {
	q := url.Values{}
	set(q, "date", f.Date)
	if f.PatientName != nil {
		set(q, "patientName", *f.PatientName)
	}

	return Request{Path: AppointmentsPath, Query: q, BearerToken: token}
}

// PathStyle issues GET /appointments/{date}/{patientName|null}/{token}
type PathStyle struct{}

func (PathStyle) Build(f entity.AppointmentFilter, token string) Request {
	name := nullSegment
	if f.PatientName != nil && *f.PatientName != "" {
		name = *f.PatientName
	}

	path := fmt.Sprintf("%s/%s/%s/%s",
		AppointmentsPath,
		url.PathEscape(f.Date),
		url.PathEscape(name),
		url.PathEscape(token),
	)
	return Request{Path: path}
}

// NewAppointmentBuilder picks the builder for a configured style
func NewAppointmentBuilder(style string) (AppointmentBuilder, error) {
	switch style {
	case config.AppointmentsStyleQuery, "":
		return QueryStyle{}, nil
	case config.AppointmentsStylePath:
		return PathStyle{}, nil
	default:
		return nil, fmt.Errorf("unknown appointments style %q", style)
	}
}
