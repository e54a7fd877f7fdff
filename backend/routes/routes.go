package routes

import (
	"agroskills/backend/config"
	"agroskills/backend/controllers"
	"agroskills/backend/middleware"
	"agroskills/backend/state"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, st *state.Manager, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(st, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	app.Post("/api/auth/logout", authMiddleware, authController.Logout)

	// User routes
	userController := controllers.NewUserController(st, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Get("/api/state", authMiddleware, userController.GetState)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(st, cfg)
	app.Get("/api/dashboard", authMiddleware, dashboardController.GetDashboard)

	// Progress routes
	progressController := controllers.NewProgressController(st, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Get("/api/progress/overview", authMiddleware, progressController.GetProgressOverview)

	// Courses routes
	coursesController := controllers.NewCoursesController(st, cfg)
	app.Get("/api/categories", authMiddleware, coursesController.GetCategories)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Post("/:id/start", progressController.StartCourse)
	courses.Get("/:id/progress", progressController.GetCourseProgress)
	courses.Post("/:id/progress", progressController.UpdateProgress)
	courses.Post("/:id/modules/:moduleId/complete", progressController.MarkModuleComplete)
}
