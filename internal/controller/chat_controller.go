// FILE: internal/controller/chat_controller.go
package controller

import (
	"dreamlife-be/internal/dto"
	"dreamlife-be/internal/pkg/serverutils"
	"dreamlife-be/internal/service"
	"dreamlife-be/pkg/chat"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	KnowledgeStats(ctx *fiber.Ctx) error
	SubmitKnowledge(ctx *fiber.Ctx) error
}

type chatController struct {
	engine           *chat.Engine
	knowledgeService service.IKnowledgeService
	publisherService service.IPublisherService
}

func NewChatController(engine *chat.Engine, knowledgeService service.IKnowledgeService, publisherService service.IPublisherService) IChatController {
	return &chatController{
		engine:           engine,
		knowledgeService: knowledgeService,
		publisherService: publisherService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Get("/stats", c.Stats)
	h.Get("/knowledge/stats", c.KnowledgeStats)
	h.Post("/knowledge", serverutils.JwtMiddleware, c.SubmitKnowledge)
}

func (c *chatController) Stats(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Chat stats fetched",
		"data":    c.engine.Stats(),
	})
}

// SubmitKnowledge queues a question/answer pair for embedding. The
// consumer picks it up asynchronously.
func (c *chatController) SubmitKnowledge(ctx *fiber.Ctx) error {
	var req dto.SubmitKnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	if err := c.publisherService.PublishKnowledgeEntry(req.Question, req.Answer); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}

	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
		"code":    202,
		"message": "Knowledge entry queued for embedding",
		"data":    nil,
	})
}

func (c *chatController) KnowledgeStats(ctx *fiber.Ctx) error {
	res, err := c.knowledgeService.Stats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Knowledge stats fetched",
		"data":    res,
	})
}
