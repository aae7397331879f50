package entity

// Session is the persisted login state: an opaque bearer token and the role
// that obtained it. There is no expiry handling.
type Session struct {
	Token string
	Role  Role
}

func (s Session) HasToken() bool {
	return s.Token != ""
}
