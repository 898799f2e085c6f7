package models

// DummyLogin carries the credentials forwarded to the backend login endpoint.
type DummyLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DummyRegister carries a registration request forwarded to the backend.
type DummyRegister struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Country  string `json:"country,omitempty"`
}

// Session is the backend's answer to a successful login or registration.
// The role travels here; the portal never derives it from an email list.
type Session struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
