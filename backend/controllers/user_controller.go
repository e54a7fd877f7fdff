package controllers

import (
	"agroskills/backend/config"
	"agroskills/backend/state"
	"agroskills/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	State *state.Manager
	Cfg   *config.Config
}

func NewUserController(st *state.Manager, cfg *config.Config) *UserController {
	return &UserController{State: st, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get the active user's profile
// @Description Returns the profile with competencies, achievements and progress numbers
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, uc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	user := uc.State.CurrentUser()
	if user == nil {
		return utils.NotFound(c, "No active session")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":             user.ID,
		"name":           user.Name,
		"email":          user.Email,
		"avatar":         user.Avatar,
		"profession":     user.Profession,
		"specialization": user.Specialization,
		"experience":     user.Experience,
		"joinDate":       user.JoinDate,
		"competencies":   user.Competencies,
		"achievements":   user.Achievements,
		"overview":       uc.State.Overview(),
	})
}

// GetState godoc
// @Summary Get the full application state snapshot
// @Tags users
// @Produce json
// @Success 200 {object} models.AppState
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /state [get]
func (uc *UserController) GetState(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, uc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	return c.JSON(uc.State.Snapshot())
}
