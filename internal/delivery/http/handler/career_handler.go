package handler

import (
	"errors"

	"talentgate/internal/delivery/http/dto"
	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/pkg/response"
	"talentgate/internal/sanitize"
	"talentgate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc usecase.CareerUsecase
}

func NewCareerHandler(uc usecase.CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

// RegisterPublicRoutes exposes read access; applicants view postings without
// credentials.
func (h *CareerHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id", h.Get)
}

// RegisterProtectedRoutes exposes the recruiter-only mutations.
func (h *CareerHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Patch("/:id", h.Update)
}

func (h *CareerHandler) Create(c fiber.Ctx) error {
	var raw map[string]any
	if err := c.Bind().Body(&raw); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), raw)
	if err != nil {
		return mapCareerError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromCareer(created))
}

func (h *CareerHandler) Get(c fiber.Ctx) error {
	found, err := h.uc.Get(c.Context(), c.Params("id"), c.Query("orgID"))
	if err != nil {
		return mapCareerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCareer(found))
}

func (h *CareerHandler) Update(c fiber.Ctx) error {
	var raw map[string]any
	if err := c.Bind().Body(&raw); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), c.Params("id"), raw)
	if err != nil {
		return mapCareerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCareer(updated))
}

func mapCareerError(err error) error {
	var valErr *sanitize.ValidationError
	switch {
	case errors.As(err, &valErr):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid payload", map[string]any{"fields": valErr.Fields}, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrQuotaExceeded):
		return middleware.NewAppError(fiber.StatusConflict, "Maximum number of jobs for your plan reached", nil, err)
	case errors.Is(err, usecase.ErrOrganizationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Organization not found", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
