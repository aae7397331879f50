package filter

import (
	"net/url"

	"smart-clinic-portal/internal/domain/entity"
)

// DoctorsPath is the doctor collection resource
const DoctorsPath = "/doctor"

// Doctors builds the doctor search request. Empty criteria are omitted and an
// empty filter requests the whole collection.
func Doctors(f entity.DoctorFilter) Request {
	q := url.Values{}
	set(q, "name", f.Name)
	set(q, "time", f.Time)
	set(q, "specialty", f.Specialty)

	return Request{Path: DoctorsPath, Query: q}
}

// Doctor addresses a single doctor by id
func Doctor(id string) Request {
	return Request{Path: DoctorsPath + "/" + url.PathEscape(id)}
}
