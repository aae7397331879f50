package entity

// Doctor represents a clinic doctor as exposed by the clinic API
type Doctor struct {
	ID        int64
	Name      string
	Specialty string
	Email     string
	// Password is write-only: sent on creation, never returned by the API
	Password     string
	MobileNo     string
	Availability []string // e.g. "Monday 09:00-17:00"
}

// DisplayName returns the name as shown on doctor cards
func (d *Doctor) DisplayName() string {
	return "Dr. " + d.Name
}
