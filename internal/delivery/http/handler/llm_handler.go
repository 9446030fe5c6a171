package handler

import (
	"errors"

	"talentgate/internal/ai/chat"
	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/pkg/response"
	"talentgate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// LLMHandler exposes the raw generation and multi-turn chat utility
// endpoints backed by the same model as screening.
type LLMHandler struct {
	generator usecase.ContentGenerator
	chat      *chat.Service
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type chatRequest struct {
	SessionID string `json:"sessionID"`
	Text      string `json:"text"`
}

func NewLLMHandler(generator usecase.ContentGenerator, chatSvc *chat.Service) *LLMHandler {
	return &LLMHandler{generator: generator, chat: chatSvc}
}

func (h *LLMHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/generate", h.Generate)
	r.Post("/chat", h.Chat)
}

func (h *LLMHandler) Generate(c fiber.Ctx) error {
	var req generateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Prompt == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "prompt is required", nil, nil)
	}

	text, err := h.generator.GenerateContent(c.Context(), req.Prompt)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadGateway, "LLM generation failed: "+err.Error(), nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"text": text})
}

func (h *LLMHandler) Chat(c fiber.Ctx) error {
	var req chatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	reply, err := h.chat.Complete(c.Context(), req.SessionID, req.Text)
	if err != nil {
		if errors.Is(err, chat.ErrEmptySession) || errors.Is(err, chat.ErrEmptyText) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		}
		return middleware.NewAppError(fiber.StatusBadGateway, "Chat completion failed: "+err.Error(), nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"sessionID": req.SessionID,
		"reply":     reply,
	})
}
