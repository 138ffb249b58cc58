package handlers

import (
	"bytes"
	"log/slog"

	"signup/internal/models"
	"signup/internal/services"
	"signup/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const registerPath = "/register"

// RegistrationHandler handles HTTP requests for account registration.
type RegistrationHandler struct {
	service  *services.RegistrationService
	loginURL string
	logger   *slog.Logger
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(service *services.RegistrationService, loginURL string, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		service:  service,
		loginURL: loginURL,
		logger:   logger,
	}
}

// RegisterRoutes registers the HTML registration page with the Fiber router.
func (h *RegistrationHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(registerPath, fiber.StatusSeeOther)
	})
	router.Get(registerPath, h.HandleRegisterPage)
	router.Post(registerPath, h.HandleRegisterSubmit)
}

// RegisterAPIRoutes registers the JSON registration endpoint with the Fiber router.
func (h *RegistrationHandler) RegisterAPIRoutes(router fiber.Router) {
	router.Post("/accounts", h.HandleRegisterAPI)
}

// HandleRegisterPage renders the empty registration form.
func (h *RegistrationHandler) HandleRegisterPage(c *fiber.Ctx) error {
	return h.render(c, models.OutcomeNone)
}

// HandleRegisterSubmit processes a submitted registration form and renders
// the form again with exactly one status banner.
func (h *RegistrationHandler) HandleRegisterSubmit(c *fiber.Ctx) error {
	if !submitted(c) {
		return h.render(c, models.OutcomeNone)
	}

	// Form values alias the request buffer, which fasthttp reuses.
	form := models.RegistrationForm{
		Email:    utils.CopyString(c.FormValue("email")),
		Username: utils.CopyString(c.FormValue("username")),
		Password: utils.CopyString(c.FormValue("password")),
	}

	_, err := h.service.Register(c.UserContext(), form)
	return h.render(c, models.OutcomeOf(err))
}

// HandleRegisterAPI registers an account from a JSON body.
func (h *RegistrationHandler) HandleRegisterAPI(c *fiber.Ctx) error {
	var form models.RegistrationForm
	if err := c.BodyParser(&form); err != nil {
		h.logger.Warn("error parsing register request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	account, err := h.service.Register(c.UserContext(), form)
	outcome := models.OutcomeOf(err)

	resp := fiber.Map{
		"outcome": outcome.String(),
		"message": outcome.Message(),
	}
	if account != nil {
		resp["account"] = account
	}
	return c.Status(outcome.StatusCode()).JSON(resp)
}

func (h *RegistrationHandler) render(c *fiber.Ctx, outcome models.Outcome) error {
	var buf bytes.Buffer
	err := views.RenderRegister(&buf, views.RegisterPage{
		Action:   registerPath,
		LoginURL: h.loginURL,
		Outcome:  outcome,
	})
	if err != nil {
		h.logger.Error("error rendering register page", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not render page")
	}

	c.Type("html", "utf-8")
	return c.Status(outcome.StatusCode()).Send(buf.Bytes())
}

// submitted reports whether the request carries the submit field, in either
// url-encoded or multipart form encoding.
func submitted(c *fiber.Ctx) bool {
	if c.Request().PostArgs().Has("submit") {
		return true
	}
	form, err := c.MultipartForm()
	if err != nil {
		return false
	}
	_, ok := form.Value["submit"]
	return ok
}
