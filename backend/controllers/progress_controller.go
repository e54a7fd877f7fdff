package controllers

import (
	"agroskills/backend/config"
	"agroskills/backend/state"
	"agroskills/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	State *state.Manager
	Cfg   *config.Config
}

func NewProgressController(st *state.Manager, cfg *config.Config) *ProgressController {
	return &ProgressController{State: st, Cfg: cfg}
}

// GetProgress godoc
// @Summary List the active user's progress records
// @Tags progress
// @Produce json
// @Success 200 {array} models.UserProgress
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, pc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	return c.JSON(fiber.Map{
		"progress": pc.State.UserProgressList(),
	})
}

// GetProgressOverview godoc
// @Summary Get progress overview
// @Description Returns the overall percentage and course counters for the active user
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressOverview
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/overview [get]
func (pc *ProgressController) GetProgressOverview(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, pc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	return c.JSON(pc.State.Overview())
}

// GetCourseProgress godoc
// @Summary Get the active user's record for one course
// @Tags progress
// @Produce json
// @Success 200 {object} models.UserProgress
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/progress [get]
func (pc *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, pc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	progress, ok := pc.State.CourseProgress(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "No progress for this course")
	}
	return c.JSON(progress)
}

// StartCourse godoc
// @Summary Start a course
// @Description Creates the zero-progress record on first engagement; idempotent
// @Tags progress
// @Produce json
// @Success 200 {object} models.UserProgress
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/start [post]
func (pc *ProgressController) StartCourse(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, pc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	progress, ok := pc.State.StartCourse(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found or no active session")
	}
	return c.JSON(fiber.Map{
		"message":  "Course started",
		"progress": progress,
	})
}

// UpdateProgress godoc
// @Summary Set the progress percentage directly
// @Description Overwrites the percentage on an existing record; does not touch completed modules
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/progress [post]
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, pc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type ProgressInput struct {
		Progress int `json:"progress"`
	}

	var input ProgressInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Progress < 0 || input.Progress > 100 {
		return utils.BadRequest(c, "Progress must be between 0 and 100")
	}

	courseID := c.Params("id")
	if !pc.State.UpdateUserProgress(courseID, input.Progress) {
		return utils.NotFound(c, "No progress record for this course")
	}

	progress, _ := pc.State.CourseProgress(courseID)
	return c.JSON(fiber.Map{
		"message":  "Progress updated",
		"progress": progress,
	})
}

// MarkModuleComplete godoc
// @Summary Mark a module as watched
// @Description Adds the module to the completed set and recomputes the percentage
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/modules/{moduleId}/complete [post]
func (pc *ProgressController) MarkModuleComplete(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, pc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID := c.Params("id")
	if !pc.State.MarkModuleComplete(courseID, c.Params("moduleId")) {
		return utils.NotFound(c, "No progress record for this course")
	}

	progress, _ := pc.State.CourseProgress(courseID)
	return c.JSON(fiber.Map{
		"message":  "Module completed",
		"progress": progress,
	})
}
