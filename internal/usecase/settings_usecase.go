package usecase

import (
	"context"
	"fmt"
	"strings"

	"talentgate/internal/repository"

	"go.uber.org/zap"
)

const maxScreeningPromptLen = 20000

type SettingsUsecase interface {
	GetScreeningPrompt(ctx context.Context) (string, error)
	SetScreeningPrompt(ctx context.Context, prompt string) error
}

type Settings struct {
	settings repository.SettingsRepository
	logger   *zap.Logger
}

func NewSettingsUsecase(settings repository.SettingsRepository, logger *zap.Logger) *Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Settings{settings: settings, logger: logger}
}

func (u *Settings) GetScreeningPrompt(ctx context.Context) (string, error) {
	prompt, err := u.settings.GetScreeningPrompt(ctx)
	if err != nil {
		u.logger.Error("load global settings", zap.Error(err))
		return "", ErrInternal
	}
	return prompt, nil
}

func (u *Settings) SetScreeningPrompt(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if len(prompt) > maxScreeningPromptLen {
		return fmt.Errorf("%w: prompt exceeds %d characters", ErrInvalidInput, maxScreeningPromptLen)
	}
	if err := u.settings.SetScreeningPrompt(ctx, prompt); err != nil {
		u.logger.Error("save global settings", zap.Error(err))
		return ErrInternal
	}
	return nil
}
