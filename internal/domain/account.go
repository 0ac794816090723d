package domain

// User is the authenticated identity the wizard reads. It is provided by the
// session layer and never mutated by the wizard itself.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the auth context handed to the wizard controller. A zero
// Session means an anonymous visitor.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// IsAuthenticated reports whether a logged-in user is attached
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}
