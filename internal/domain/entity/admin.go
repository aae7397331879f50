package entity

// Admin is the sandbox administrator account. Password holds a bcrypt hash.
type Admin struct {
	ID       int64
	Username string
	Password string
}
