package models

// User is a read-only mirror of a backend user record. The portal never
// owns its lifecycle; create and delete happen behind the backend API.
type User struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Country       string `json:"country"`
	Role          string `json:"role"` // "admin" or "user", assigned by the backend
	Active        bool   `json:"active"`
	EmailVerified bool   `json:"emailVerified"`
}

// DisplayCountry renders the country for tables, defaulting the missing
// field the same way every view does.
func (u User) DisplayCountry() string {
	if u.Country == "" {
		return "-"
	}
	return u.Country
}
