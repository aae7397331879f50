package entity

// Patient represents a registered clinic patient
type Patient struct {
	ID       int64
	Name     string
	Email    string
	Password string // write-only, set at signup
	Phone    string
	Address  string
}
