package userservice

import (
	"regexp"

	"github.com/sushihentaime/bloglist/internal/common"
)

var UsernameRX = regexp.MustCompile("^[a-zA-Z0-9]+$")

func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "username missing")
	v.Check(v.CheckStringLength(username, 3, 25), "username", "username must be between 3 and 25 characters long")
	v.Check(UsernameRX.MatchString(username), "username", "username must only contain letters and numbers")
}

func validateName(v *common.Validator, name string) {
	v.Check(len(name) <= 100, "name", "name too long")
}

// validatePassword enforces the minimum length. bcrypt ignores anything past 72 bytes.
func validatePassword(v *common.Validator, password string) {
	v.Check(len(password) >= 3, "password", "password too short")
	v.Check(len(password) <= 72, "password", "password too long")
}

func validateToken(v *common.Validator, token string) {
	v.Check(len(token) == 26, "token", "token invalid")
}
