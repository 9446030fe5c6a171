package routes

import (
	"talentgate/internal/ai/chat"
	"talentgate/internal/database"
	"talentgate/internal/delivery/http/handler"
	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/infrastructure/cache"
	"talentgate/internal/pkg/jwt"
	"talentgate/internal/usecase"
	"talentgate/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps is everything route registration needs; the app container assembles
// it once at startup.
type Deps struct {
	DB    database.DB
	Cache *cache.Redis
	JWT   jwt.Service

	Generator usecase.ContentGenerator
	Chat      *chat.Service
	WSHandler *ws.Handler

	Auth         usecase.AuthUsecase
	Careers      usecase.CareerUsecase
	Applications usecase.ApplicationUsecase
	Screening    usecase.ScreeningUsecase
	Settings     usecase.SettingsUsecase
}

type Registry struct {
	deps Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.deps.DB, r.deps.Cache).RegisterRoutes(app)

	if r.deps.WSHandler != nil {
		app.Get("/ws/screenings", r.deps.WSHandler.HandleScreeningWS)
	}

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	if v1 == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(r.deps.JWT)

	careerHandler := handler.NewCareerHandler(r.deps.Careers)

	handler.NewAuthHandler(r.deps.Auth).RegisterRoutes(v1.Group("/auth"))
	careerHandler.RegisterPublicRoutes(v1.Group("/careers"))
	handler.NewApplicationHandler(r.deps.Applications).RegisterRoutes(v1.Group("/applications"))

	protected := v1.Group("", authMw.Middleware())
	careerHandler.RegisterProtectedRoutes(protected.Group("/careers"))
	handler.NewScreeningHandler(r.deps.Screening).RegisterRoutes(protected.Group("/screenings"))
	handler.NewSettingsHandler(r.deps.Settings).RegisterRoutes(protected.Group("/settings"))
	handler.NewLLMHandler(r.deps.Generator, r.deps.Chat).RegisterRoutes(protected.Group("/llm"))
}
