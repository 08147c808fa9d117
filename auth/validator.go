package auth

import (
	"chat-vault/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateClaims rejects tokens that do not describe a usable actor.
func ValidateClaims(claims CustomClaims) error {
	if err := validate.Struct(claims); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrAuthRequired, err)
	}
	return nil
}
