package services

import (
	"chat-vault/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct checks the struct tags of a command.
// Field details stay in the wrapped error and never reach the caller.
func validateStruct(cmd any) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return nil
}
