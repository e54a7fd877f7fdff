package controllers

import (
	"strings"

	"agroskills/backend/config"
	"agroskills/backend/state"
	"agroskills/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	State *state.Manager
	Cfg   *config.Config
}

func NewCoursesController(st *state.Manager, cfg *config.Config) *CoursesController {
	return &CoursesController{State: st, Cfg: cfg}
}

// GetCourses godoc
// @Summary List catalog courses
// @Description Returns the course library, optionally filtered by category and search text
// @Tags courses
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, cc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	category := c.Query("category")
	search := strings.ToLower(c.Query("search"))

	result := []fiber.Map{}
	for _, course := range cc.State.Catalog().Courses {
		// "All" behaves as no filter, matching the library screen's chips.
		if category != "" && category != "All" && course.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(course.Title), search) {
			continue
		}

		entry := fiber.Map{
			"id":            course.ID,
			"title":         course.Title,
			"description":   course.Description,
			"category":      course.Category,
			"level":         course.Level,
			"duration":      course.Duration,
			"rating":        course.Rating,
			"studentsCount": course.StudentsCount,
			"instructor":    course.Instructor,
			"thumbnail":     course.Thumbnail,
			"tags":          course.Tags,
			"modules":       len(course.Modules),
		}
		if progress, ok := cc.State.CourseProgress(course.ID); ok {
			entry["progress"] = progress.Progress
		}
		result = append(result, entry)
	}

	return c.JSON(result)
}

// GetCourseDetails godoc
// @Summary Get course details
// @Description Returns one course with its modules flagged completed for the active user
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, cc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	course := cc.State.Catalog().CourseByID(c.Params("id"))
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	progress, hasProgress := cc.State.CourseProgress(course.ID)
	completed := map[string]bool{}
	if hasProgress {
		for _, id := range progress.CompletedModules {
			completed[id] = true
		}
	}

	modules := []fiber.Map{}
	for _, module := range course.Modules {
		modules = append(modules, fiber.Map{
			"id":          module.ID,
			"title":       module.Title,
			"description": module.Description,
			"duration":    module.Duration,
			"order":       module.Order,
			"completed":   completed[module.ID],
		})
	}

	response := fiber.Map{
		"course": fiber.Map{
			"id":            course.ID,
			"title":         course.Title,
			"description":   course.Description,
			"category":      course.Category,
			"level":         course.Level,
			"duration":      course.Duration,
			"rating":        course.Rating,
			"reviewsCount":  course.ReviewsCount,
			"studentsCount": course.StudentsCount,
			"instructor":    course.Instructor,
			"price":         course.Price,
			"tags":          course.Tags,
			"thumbnail":     course.Thumbnail,
			"modules":       modules,
		},
	}
	if hasProgress {
		response["progress"] = progress
	}

	return c.JSON(response)
}

// GetCategories godoc
// @Summary List categories
// @Tags courses
// @Produce json
// @Success 200 {array} models.Category
// @Security ApiKeyAuth
// @Router /categories [get]
func (cc *CoursesController) GetCategories(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, cc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	return c.JSON(cc.State.Catalog().Categories)
}
