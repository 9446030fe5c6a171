package app

import (
	"fmt"
	"strings"

	"talentgate/internal/config"
	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/delivery/http/routes"
	"talentgate/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, the fiber app, and the route tree. The
// returned cleanup closes the container.
func Bootstrap(cfg config.Config, c *Container) (*App, func() error, error) {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	routes.NewRegistry(routes.Deps{
		DB:    c.DB,
		Cache: c.Cache,
		JWT:   c.JWT,

		Generator: c.Generator,
		Chat:      c.Chat,
		WSHandler: ws.NewHandler(c.Hub, c.Logger),

		Auth:         c.Auth,
		Careers:      c.Careers,
		Applications: c.Applications,
		Screening:    c.Screening,
		Settings:     c.Settings,
	}).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
