package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	roomNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	identityRegex = regexp.MustCompile(`^[A-Za-z0-9._:@-]{1,128}$`)
)

func init() {
	MustRegisterGin("roomname", ValidateRoomName)
	MustRegisterGin("identity", ValidateIdentity)
}

// ValidateRoomName validates room names: 1-64 characters, alphanumeric with hyphens and underscores
func ValidateRoomName(fl validator.FieldLevel) bool {
	return roomNameRegex.MatchString(fl.Field().String())
}

// ValidateIdentity validates participant identities, which clients often
// derive from user IDs or emails.
func ValidateIdentity(fl validator.FieldLevel) bool {
	return identityRegex.MatchString(fl.Field().String())
}
