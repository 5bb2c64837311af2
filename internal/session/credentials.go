package session

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Credentials struct {
	email string
	hash  []byte
}

// NewCredentials uses hash when given, otherwise hashes plain once at boot.
func NewCredentials(email, hash, plain string) (*Credentials, error) {
	c := &Credentials{email: strings.ToLower(strings.TrimSpace(email))}

	if hash != "" {
		c.hash = []byte(hash)
		return c, nil
	}

	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	c.hash = h
	return c, nil
}

func (c *Credentials) Check(email, password string) error {
	if strings.ToLower(strings.TrimSpace(email)) != c.email {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
