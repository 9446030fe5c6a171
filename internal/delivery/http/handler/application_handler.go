package handler

import (
	"errors"

	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/pkg/response"
	"talentgate/internal/sanitize"
	"talentgate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type manageApplicationRequest struct {
	InterviewID string                    `json:"interviewID"`
	Email       string                    `json:"email"`
	Update      *applicationUpdateRequest `json:"update"`
	Transaction map[string]any            `json:"transaction"`
}

type applicationUpdateRequest struct {
	ForDeletion      bool           `json:"forDeletion"`
	PreScreenAnswers map[string]any `json:"preScreenAnswers"`
	CurrentStep      *string        `json:"currentStep"`
	Status           *string        `json:"status"`
	Name             *string        `json:"name"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/manage", h.Manage)
}

func (h *ApplicationHandler) Manage(c fiber.Ctx) error {
	var req manageApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.ManageInput{
		InterviewID: req.InterviewID,
		Email:       req.Email,
		Transaction: req.Transaction,
	}
	if req.Update != nil {
		in.Update = &usecase.ApplicationUpdate{
			ForDeletion:      req.Update.ForDeletion,
			PreScreenAnswers: req.Update.PreScreenAnswers,
			HasAnswers:       req.Update.PreScreenAnswers != nil,
			CurrentStep:      req.Update.CurrentStep,
			Status:           req.Update.Status,
			Name:             req.Update.Name,
		}
	}

	if err := h.uc.Manage(c.Context(), in); err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapApplicationError(err error) error {
	var valErr *sanitize.ValidationError
	switch {
	case errors.As(err, &valErr):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid payload", map[string]any{"fields": valErr.Fields}, err)
	case errors.Is(err, usecase.ErrDeletionNotImplemented):
		return middleware.NewAppError(fiber.StatusNotImplemented, "Application deletion is not implemented", nil, err)
	case errors.Is(err, usecase.ErrInterviewNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Interview not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
