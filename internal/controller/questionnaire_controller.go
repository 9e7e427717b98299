// FILE: internal/controller/questionnaire_controller.go
package controller

import (
	"dreamlife-be/internal/dto"
	"dreamlife-be/internal/pkg/serverutils"
	"dreamlife-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionnaireController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
	UpdateAnswer(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
}

type questionnaireController struct {
	service service.IQuestionnaireService
}

func NewQuestionnaireController(service service.IQuestionnaireService) IQuestionnaireController {
	return &questionnaireController{service: service}
}

func (c *questionnaireController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/questionnaire", serverutils.JwtMiddleware)
	h.Post("/", c.Save)
	h.Patch("/answer", c.UpdateAnswer)
	h.Get("/", c.Get)
}

func (c *questionnaireController) Save(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Invalid token",
		})
	}

	var req dto.SaveQuestionnaireRequest
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

	res, err := c.service.Save(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Questionnaire saved",
		"data":    res,
	})
}

func (c *questionnaireController) UpdateAnswer(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Invalid token",
		})
	}

	var req dto.UpdateAnswerRequest
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

	res, err := c.service.UpdateAnswer(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Answer updated",
		"data":    res,
	})
}

func (c *questionnaireController) Get(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Invalid token",
		})
	}

	res, err := c.service.Get(ctx.Context(), userId)
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
		"message": "Questionnaire fetched",
		"data":    res,
	})
}
