package controllers

import (
	"agroskills/backend/config"
	"agroskills/backend/models"
	"agroskills/backend/state"
	"agroskills/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	State *state.Manager
	Cfg   *config.Config
}

func NewDashboardController(st *state.Manager, cfg *config.Config) *DashboardController {
	return &DashboardController{State: st, Cfg: cfg}
}

// GetDashboard godoc
// @Summary Get the home screen rails
// @Description Featured, continue-watching and recommended courses plus the overall percentage
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, dc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	overallProgress := 0
	if user := dc.State.CurrentUser(); user != nil {
		overallProgress = dc.State.OverallProgress(user.ID)
	}

	courses := dc.State.Catalog().Courses
	featured := courses
	if len(featured) > 3 {
		featured = featured[:3]
	}

	return c.JSON(fiber.Map{
		"overallProgress":  overallProgress,
		"featured":         courseRail(featured),
		"continueWatching": courseRail(dc.State.InProgressCourses()),
		"recommended":      courseRail(dc.State.RecommendedCourses()),
	})
}

// courseRail trims a course list down to what the horizontal cards render.
func courseRail(courses []models.Course) []fiber.Map {
	rail := []fiber.Map{}
	for _, course := range courses {
		rail = append(rail, fiber.Map{
			"id":         course.ID,
			"title":      course.Title,
			"category":   course.Category,
			"level":      course.Level,
			"duration":   course.Duration,
			"rating":     course.Rating,
			"thumbnail":  course.Thumbnail,
			"instructor": course.Instructor,
		})
	}
	return rail
}
