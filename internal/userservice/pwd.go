package userservice

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

func (p *Password) set(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcryptCost)
	if err != nil {
		return err
	}

	p.Plain = pwd
	p.hash = hash

	return nil
}

// matches reports whether pwd is the password behind the stored hash.
func (p *Password) matches(pwd string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.hash, []byte(pwd))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}
