package blogservice

import (
	"github.com/jadewing/inkstream/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 1, 200), "title", "must not be longer than 200 characters")
}

func validateContent(v *common.Validator, content string) {
	v.Check(content != "", "content", "must be provided")
}

func validateComment(v *common.Validator, comment string) {
	v.Check(comment != "", "comment", "must be provided")
}

func validateID(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
