package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"stockroom/internal/config"
	"stockroom/internal/http/handlers"
	"stockroom/internal/kv"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

// newTestApp wires the app the way main does, minus CSRF and rate limits,
// over an in-memory store.
func newTestApp(t *testing.T) (*fiber.App, kv.Store) {
	t.Helper()
	store := kv.NewMemStore()

	userRepo := repos.NewUserRepo(store)
	authSvc := services.NewAuthService(userRepo)
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(store, config.Config{}, authSvc)
	requireUser := handlers.RequireUser(authSvc)

	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Get("/register", authH.RegisterForm)
	app.Post("/register", authH.Register)
	app.Post("/logout", authH.Logout)

	app.Get("/", requireUser, deps.DashboardHandler.Home)
	app.Get("/items", requireUser, deps.ItemHandler.List)
	app.Get("/history", requireUser, deps.StockHandler.History)
	app.Post("/history", requireUser, deps.StockHandler.Record)

	api := app.Group("/api/v1")
	api.Get("/items", deps.APIHandler.Items)
	api.Get("/summary", deps.APIHandler.Summary)

	return app, store
}

func postForm(path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	return req
}

func sidCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == "sid" && ck.Value != "" {
			return ck
		}
	}
	return nil
}
