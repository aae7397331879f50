package entity

import "strings"

// DoctorFilter holds the optional doctor search criteria.
// Empty fields mean "no filter"; values are passed through unvalidated.
type DoctorFilter struct {
	Name      string
	Time      string // e.g. "AM" or "PM"
	Specialty string
}

// IsEmpty reports whether no criterion is set
func (f DoctorFilter) IsEmpty() bool {
	return f.Name == "" && f.Time == "" && f.Specialty == ""
}

// AppointmentFilter is the date-scoped appointment search.
// PatientName is nil when no patient filter applies.
type AppointmentFilter struct {
	Date        string // Format: YYYY-MM-DD
	PatientName *string
}

// NormalizePatientName trims the raw search text and coerces an empty result
// to nil, so "" never becomes a filter for the empty string.
func NormalizePatientName(raw string) *string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return nil
	}
	return &name
}
