package controller

import (
	"medicine-chatbot-be/internal/constant"
	"medicine-chatbot-be/internal/dto"
	"medicine-chatbot-be/internal/pkg/serverutils"
	"medicine-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserIDHeader identifies whose history a question belongs to.
const UserIDHeader = "X-User-ID"

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)

	h := r.Group("/chat")
	h.Get("", c.Chat)
	h.Post("", c.Chat)
	h.Post("/reset", c.Reset)
}

// Chat answers GET /chat?question=... and POST /chat {"question": ...}.
func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if ctx.Method() == fiber.MethodPost {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, constant.MissingQuestionMessage)
		}
	} else if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constant.MissingQuestionMessage)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constant.MissingQuestionMessage)
	}

	reply, status := c.service.Handle(ctx.UserContext(), req.Question, ctx.Get(UserIDHeader))
	return serverutils.Reply(ctx, status, reply)
}

func (c *chatbotController) Reset(ctx *fiber.Ctx) error {
	reply, status := c.service.Reset(ctx.UserContext(), ctx.Get(UserIDHeader))
	return serverutils.Reply(ctx, status, reply)
}

func (c *chatbotController) Health(ctx *fiber.Ctx) error {
	res := c.service.Health(ctx.UserContext())
	if !res.ChatAvailable {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(res)
	}
	return ctx.JSON(res)
}
