package serverutils

import (
	"errors"

	"medicine-chatbot-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// Reply writes the chat envelope with the given status.
func Reply(ctx *fiber.Ctx, status int, reply string) error {
	return ctx.Status(status).JSON(dto.ChatResponse{Reply: reply})
}

// ErrorHandlerMiddleware renders any error returned by a later handler as a
// chat envelope so clients only ever parse one shape.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		return Reply(ctx, code, message)
	}
}
