package member

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

type Credentials struct {
	email    string
	password string
}

func NewCredentials(email, password string) (Credentials, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return Credentials{}, ErrInvalidEmail
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() string    { return c.email }
func (c Credentials) Password() string { return c.password }
