package router

import (
	"park_manager/handler"
	"park_manager/middleware"
	"park_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	ticket := v1.Group("/ticket", logger.New())
	ticket.Post("/purchase", middleware.Protected(), validate.PurchaseTicket(), handler.PurchaseTicket)
	ticket.Get("/", middleware.Protected(), handler.GetTickets)
	ticket.Get("/park/:slug", middleware.Protected(), handler.GetTicketsByPark)

	merch := v1.Group("/merch", logger.New())
	merch.Post("/purchase", middleware.Protected(), validate.PurchaseMerch(), handler.PurchaseMerch)
	merch.Get("/", middleware.Protected(), handler.GetMerchandise)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetMyOrders)
	order.Get("/all", middleware.Protected(), middleware.AdminOnly(), handler.GetAllOrders)
	order.Post("/cancel", middleware.Protected(), validate.CancelOrder(), handler.CancelOrder)
	order.Get("/:orderId", middleware.Protected(), handler.GetOrderDetail)

	review := v1.Group("/review", logger.New())
	review.Post("/", middleware.Protected(), validate.SubmitReview(), handler.SubmitReview)
	review.Get("/", handler.GetReviews)
	review.Patch("/:reviewId/moderate", middleware.Protected(), middleware.AdminOnly(), handler.ModerateReview)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetAdminStats)
	statistic.Get("/live", websocket.New(handler.StatsWebsocket))

	media := v1.Group("/media", logger.New())
	media.Post("/signature", middleware.Protected(), middleware.AdminOnly(), handler.GenerateSignature)
	media.Post("/merch-photo", middleware.Protected(), middleware.AdminOnly(), handler.UploadMerchPhoto)
}
