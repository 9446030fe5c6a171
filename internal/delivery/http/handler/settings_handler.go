package handler

import (
	"errors"

	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/pkg/response"
	"talentgate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SettingsHandler struct {
	uc usecase.SettingsUsecase
}

type screeningPromptRequest struct {
	Prompt string `json:"prompt"`
}

func NewSettingsHandler(uc usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func (h *SettingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/screening-prompt", h.GetScreeningPrompt)
	r.Put("/screening-prompt", h.SetScreeningPrompt)
}

func (h *SettingsHandler) GetScreeningPrompt(c fiber.Ctx) error {
	prompt, err := h.uc.GetScreeningPrompt(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"prompt": prompt})
}

func (h *SettingsHandler) SetScreeningPrompt(c fiber.Ctx) error {
	var req screeningPromptRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetScreeningPrompt(c.Context(), req.Prompt); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
