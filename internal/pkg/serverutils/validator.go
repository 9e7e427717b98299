// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and returns the first
// violation as a client-friendly error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("field '%s' failed on '%s' rule", first.Field(), first.Tag())
	}
	return err
}

// UserIdFromLocals reads the authenticated user id set by JwtMiddleware.
func UserIdFromLocals(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing user id in token")
	}
	return uuid.Parse(raw)
}
