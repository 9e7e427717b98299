// FILE: internal/controller/subscription_controller.go
package controller

import (
	"dreamlife-be/internal/dto"
	"dreamlife-be/internal/pkg/serverutils"
	"dreamlife-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	CreateOrder(ctx *fiber.Ctx) error
	CaptureOrder(ctx *fiber.Ctx) error
	GetOrder(ctx *fiber.Ctx) error
	GetSubscription(ctx *fiber.Ctx) error
	CancelSubscription(ctx *fiber.Ctx) error
	ListTransactions(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service service.ISubscriptionService
}

func NewSubscriptionController(service service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{service: service}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/paypal", serverutils.JwtMiddleware)
	h.Post("/orders", c.CreateOrder)
	h.Post("/orders/:orderId/capture", c.CaptureOrder)
	h.Get("/orders/:orderId", c.GetOrder)

	s := r.Group("/subscription", serverutils.JwtMiddleware)
	s.Get("/", c.GetSubscription)
	s.Post("/cancel", c.CancelSubscription)
	s.Get("/transactions", c.ListTransactions)
}

func (c *subscriptionController) CreateOrder(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Invalid token",
		})
	}

	var req dto.CreatePaypalOrderRequest
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

	res, err := c.service.CreateOrder(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
			"message": err.Error(),
		})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Order created",
		"data":    res,
	})
}

func (c *subscriptionController) CaptureOrder(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Invalid token",
		})
	}

	orderId := ctx.Params("orderId")
	if orderId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "Missing order id",
		})
	}

	res, err := c.service.CaptureOrder(ctx.Context(), userId, orderId)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Payment captured",
		"data":    res,
	})
}

func (c *subscriptionController) GetOrder(ctx *fiber.Ctx) error {
	orderId := ctx.Params("orderId")
	if orderId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "Missing order id",
		})
	}

	res, err := c.service.GetOrder(ctx.Context(), orderId)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Order fetched",
		"data":    res,
	})
}

func (c *subscriptionController) GetSubscription(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Invalid token",
		})
	}

	res, err := c.service.GetActiveSubscription(ctx.Context(), userId)
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
		"message": "Subscription fetched",
		"data":    res,
	})
}

func (c *subscriptionController) CancelSubscription(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Invalid token",
		})
	}

	res, err := c.service.CancelSubscription(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    404,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Subscription cancelled",
		"data":    res,
	})
}

func (c *subscriptionController) ListTransactions(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Invalid token",
		})
	}

	res, err := c.service.ListTransactions(ctx.Context(), userId)
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
		"message": "Transactions fetched",
		"data":    res,
	})
}
