package routes

import (
	"github.com/anjiri1684/tutor_marketplace/handlers"
	"github.com/anjiri1684/tutor_marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/subjects", handlers.CreateSubject)
	admin.Put("/subjects/:subjectId", handlers.UpdateSubject)
	admin.Put("/profiles/:userId", handlers.AdminUpdateProfile)
	admin.Post("/payments/record", handlers.RecordPayment)
}
