package app

import (
	"context"
	"fmt"
	"time"

	"talentgate/internal/ai/chat"
	"talentgate/internal/ai/gemini"
	"talentgate/internal/config"
	"talentgate/internal/database"
	"talentgate/internal/database/migration"
	dbpostgres "talentgate/internal/database/postgres"
	"talentgate/internal/infrastructure/cache"
	"talentgate/internal/pkg/jwt"
	"talentgate/internal/repository"
	"talentgate/internal/usecase"
	"talentgate/internal/ws"

	"go.uber.org/zap"
)

// Container wires configuration, infrastructure, and usecases together once
// at startup. Everything downstream receives its dependencies from here.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	JWT       jwt.Service
	Generator *gemini.Generator
	Chat      *chat.Service

	Auth         usecase.AuthUsecase
	Careers      usecase.CareerUsecase
	Applications usecase.ApplicationUsecase
	Screening    usecase.ScreeningUsecase
	Settings     usecase.SettingsUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := migration.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	generator, err := gemini.NewGenerator(ctx, cfg.GenAI.APIKey, cfg.GenAI.Model)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init genai client: %w", err)
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	careerRepo := repository.NewPostgresCareerRepository(db)
	orgRepo := repository.NewPostgresOrganizationRepository(db)
	interviewRepo := repository.NewPostgresInterviewRepository(db)
	cvRepo := repository.NewPostgresCVRepository(db)
	settingsRepo := repository.NewPostgresSettingsRepository(db)
	historyRepo := repository.NewPostgresHistoryRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	chatSvc := chat.NewService(generator, chat.NewRedisHistory(redisCache), logger)

	c := &Container{
		Config: cfg,
		Logger: logger,

		DB:    db,
		Cache: redisCache,
		Hub:   hub,

		JWT:       jwtSvc,
		Generator: generator,
		Chat:      chatSvc,

		Auth:         usecase.NewAuthUsecase(userRepo, jwtSvc, logger),
		Careers:      usecase.NewCareerUsecase(careerRepo, orgRepo, redisCache, logger),
		Applications: usecase.NewApplicationUsecase(interviewRepo, careerRepo, historyRepo, logger),
		Screening: usecase.NewScreeningUsecase(
			interviewRepo, cvRepo, settingsRepo,
			generator, redisCache, ws.NewNotifier(hub), logger,
		),
		Settings: usecase.NewSettingsUsecase(settingsRepo, logger),
	}
	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
