package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin/API envelopes. Public homepage endpoints use the flatter
// {success, ..., pagination} shape from the home feature DTOs instead.

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// ErrorWithDetail surfaces the upstream error string next to the message,
// the shape API clients branch on for 500s.
func ErrorWithDetail(c *fiber.Ctx, code int, message string, err error) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

// FromError maps common storage errors onto HTTP codes.
func FromError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Error(c, fiber.StatusNotFound, notFoundMsg)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}
	return ErrorWithDetail(c, fiber.StatusInternalServerError, "internal error", err)
}

// ValidationError flattens validator.v10 errors to one message line.
func ValidationError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return Error(c, fiber.StatusBadRequest, "invalid field: "+f.Field()+" ("+f.Tag()+")")
	}
	return Error(c, fiber.StatusBadRequest, "invalid request body")
}
