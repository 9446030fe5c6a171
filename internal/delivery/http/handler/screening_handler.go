package handler

import (
	"errors"
	"strings"

	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/domain/interview"
	"talentgate/internal/pkg/response"
	"talentgate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ScreeningHandler struct {
	uc usecase.ScreeningUsecase
}

// screenCVRequest carries either a live interview id or, in test mode, the
// full fixtures so a verdict can be produced without touching storage.
type screenCVRequest struct {
	InterviewID string `json:"interviewID"`
	TestMode    bool   `json:"testMode"`

	TestInterview *interview.Interview `json:"testInterview,omitempty"`
	TestCV        *interview.CV        `json:"testCV,omitempty"`
}

func NewScreeningHandler(uc usecase.ScreeningUsecase) *ScreeningHandler {
	return &ScreeningHandler{uc: uc}
}

func (h *ScreeningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/cv", h.ScreenCV)
}

func (h *ScreeningHandler) ScreenCV(c fiber.Ctx) error {
	var req screenCVRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if !req.TestMode && req.InterviewID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "interviewID is required", nil, nil)
	}

	out, err := h.uc.ScreenCV(c.Context(), usecase.ScreeningParams{
		InterviewID:   req.InterviewID,
		TestMode:      req.TestMode,
		TestInterview: req.TestInterview,
		TestCV:        req.TestCV,
	})
	if err != nil {
		return mapScreeningError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapScreeningError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInterviewNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Interview not found", nil, err)
	case errors.Is(err, usecase.ErrScreeningInProgress):
		return middleware.NewAppError(fiber.StatusConflict, "CV screening already in progress", nil, err)
	case errors.Is(err, usecase.ErrInvalidCVData):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid CV data", nil, err)
	case errors.Is(err, usecase.ErrScreeningFailed):
		return middleware.NewAppError(fiber.StatusBadGateway, upstreamFailureMessage("CV Screening Failed", err, usecase.ErrScreeningFailed), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// upstreamFailureMessage surfaces the cause of a failed upstream model call.
// Internal faults stay opaque; upstream failures carry their detail to the
// caller so a model outage is distinguishable from a server fault.
func upstreamFailureMessage(label string, err, sentinel error) string {
	detail := strings.TrimPrefix(err.Error(), sentinel.Error())
	detail = strings.TrimPrefix(detail, ": ")
	if detail == "" {
		return label
	}
	return label + ": " + detail
}
