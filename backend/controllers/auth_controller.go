package controllers

import (
	"time"

	"agroskills/backend/config"
	"agroskills/backend/models"
	"agroskills/backend/state"
	"agroskills/backend/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthController struct {
	State *state.Manager
	Cfg   *config.Config

	validate *validator.Validate
}

func NewAuthController(st *state.Manager, cfg *config.Config) *AuthController {
	return &AuthController{State: st, Cfg: cfg, validate: validator.New()}
}

// simulateLatency mimics the network round-trip of a real auth provider so
// the screens can show their loading state. Disabled when the delay is 0.
func (ac *AuthController) simulateLatency() {
	if ac.Cfg.LoginDelay > 0 {
		time.Sleep(ac.Cfg.LoginDelay)
	}
}

// Login godoc
// @Summary User login
// @Description Simulated login: always succeeds and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email" validate:"omitempty,email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := ac.validate.Struct(input); err != nil {
		return utils.ValidationError(c, map[string]string{
			"email": "must be a valid email address",
		})
	}

	ac.simulateLatency()

	// There is no credential check: a known email logs in as that profile,
	// anything else logs in as the demo profile carrying the typed email.
	var user models.User
	if seeded := ac.State.Catalog().UserByEmail(input.Email); seeded != nil {
		user = *seeded
	} else {
		user = *ac.State.Catalog().UserByID("1")
		if input.Email != "" {
			user.Email = input.Email
		}
	}

	ac.State.SetCurrentUser(&user)

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Register godoc
// @Summary Register a new user
// @Description Creates a fresh user profile and starts a session
// @Tags auth
// @Accept json
// @Produce json
// @Param user body map[string]interface{} true "User registration data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Name       string `json:"name" validate:"required,min=2"`
		Email      string `json:"email" validate:"required,email"`
		Profession string `json:"profession" validate:"required"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := ac.validate.Struct(input); err != nil {
		details := map[string]string{}
		for _, fieldErr := range err.(validator.ValidationErrors) {
			details[fieldErr.Field()] = "failed on " + fieldErr.Tag()
		}
		return utils.ValidationError(c, details)
	}

	ac.simulateLatency()

	user := models.User{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Email:          input.Email,
		Profession:     input.Profession,
		Specialization: "New member",
		Experience:     "Starting the AgroSkills journey",
		JoinDate:       time.Now().UTC().Format(time.RFC3339),
		Competencies:   []models.Competency{},
		Achievements:   []models.Achievement{},
	}

	ac.State.SetCurrentUser(&user)

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Logout godoc
// @Summary End the session
// @Description Clears the active user; progress records are kept
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.State.Logout()
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}
