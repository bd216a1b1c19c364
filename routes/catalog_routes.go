package routes

import (
	"github.com/anjiri1684/tutor_marketplace/handlers"
	"github.com/anjiri1684/tutor_marketplace/middleware"
	"github.com/gofiber/fiber/v2"
)

func CatalogRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/subjects", handlers.ListSubjects)
	api.Get("/lessons", handlers.ListActiveLessons)
	api.Get("/teachers/:teacherId/reviews", handlers.ListTeacherReviews)
	api.Get("/lessons/:lessonId/materials", middleware.Protected(), handlers.ListLessonMaterials)

	teacher := api.Group("/teacher", middleware.Protected(), middleware.TeacherRequired())
	teacher.Post("/lessons", handlers.CreateLesson)
	teacher.Get("/lessons/me", handlers.GetMyLessons)
	teacher.Put("/lessons/:lessonId", handlers.UpdateLesson)
	teacher.Delete("/lessons/:lessonId", handlers.DeactivateLesson)
	teacher.Post("/lessons/:lessonId/materials", handlers.AddLessonMaterial)
	teacher.Get("/uploads/signature", handlers.GenerateUploadSignature)
}
