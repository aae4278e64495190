package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).Render("register", fiber.Map{"Err": "Enter a valid name", "CSRFToken": c.Cookies("csrf_")})
	}
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return c.Status(400).Render("register", fiber.Map{"Err": "Enter a valid email address", "CSRFToken": c.Cookies("csrf_")})
	}
	pass := c.FormValue("password")
	if !validate.Password(pass) {
		return c.Status(400).Render("register", fiber.Map{
			"Err":       "Password must be 8-64 chars with upper, lower, digit and symbol",
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	_, err := h.Auth.Register(sid, name, email, pass)
	if err == services.ErrEmailTaken {
		log.Security(c, "auth.register.fail", map[string]any{"email": email, "reason": "taken"})
		return c.Status(409).Render("register", fiber.Map{"Err": "An account with this email already exists", "CSRFToken": c.Cookies("csrf_")})
	}
	if err != nil {
		log.Error(c, "auth.register.fail", err, map[string]any{"email": email})
		return c.Status(500).Render("register", fiber.Map{"Err": userMessage(err), "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/login")
}
