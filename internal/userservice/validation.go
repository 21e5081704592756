package userservice

import (
	"regexp"

	"github.com/jadewing/inkstream/internal/common"
)

var (
	EmailRX    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	UsernameRX = regexp.MustCompile("^[a-zA-Z0-9]+$")
)

func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(v.CheckStringLength(username, 3, 25), "username", "must be between 3 and 25 characters long")
	v.Check(UsernameRX.MatchString(username), "username", "must only contain letters and numbers")
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(EmailRX.MatchString(email), "email", "must be a valid email address")
}

func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(v.CheckStringLength(password, 8, 72), "password", "must be between 8 and 72 characters long")
}

func validateID(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
