package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/domain/screening"
	"talentgate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type stubScreeningUsecase struct {
	out screening.Outcome
	err error
}

func (s *stubScreeningUsecase) ScreenCV(context.Context, usecase.ScreeningParams) (screening.Outcome, error) {
	return s.out, s.err
}

func newScreeningTestApp(uc usecase.ScreeningUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewScreeningHandler(uc).RegisterRoutes(app.Group("/screenings"))
	return app
}

func postScreenCV(t *testing.T, app *fiber.App, body string) semanticResponse {
	t.Helper()

	req := httptest.NewRequest("POST", "/screenings/cv", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var out semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.StatusCode != out.Status {
		t.Fatalf("http status %d != envelope status %d", resp.StatusCode, out.Status)
	}
	return out
}

func TestScreenCV_UpstreamFailureSurfacesDetail(t *testing.T) {
	uc := &stubScreeningUsecase{err: fmt.Errorf("%w: upstream exploded", usecase.ErrScreeningFailed)}

	out := postScreenCV(t, newScreeningTestApp(uc), `{"interviewID":"64f1c2d3e4a5b6c7d8e9f0a1"}`)
	if out.Status != fiber.StatusBadGateway {
		t.Fatalf("status = %d, want %d", out.Status, fiber.StatusBadGateway)
	}
	if out.Message != "CV Screening Failed: upstream exploded" {
		t.Fatalf("message = %q, the model failure cause must reach the caller", out.Message)
	}
}

func TestScreenCV_InternalErrorStaysOpaque(t *testing.T) {
	uc := &stubScreeningUsecase{err: usecase.ErrInternal}

	out := postScreenCV(t, newScreeningTestApp(uc), `{"interviewID":"64f1c2d3e4a5b6c7d8e9f0a1"}`)
	if out.Status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", out.Status, fiber.StatusInternalServerError)
	}
	if strings.Contains(out.Message, "internal error") {
		t.Fatalf("message %q leaks the server-side cause", out.Message)
	}
}

func TestScreenCV_ConflictWhileInProgress(t *testing.T) {
	uc := &stubScreeningUsecase{err: usecase.ErrScreeningInProgress}

	out := postScreenCV(t, newScreeningTestApp(uc), `{"interviewID":"64f1c2d3e4a5b6c7d8e9f0a1"}`)
	if out.Status != fiber.StatusConflict {
		t.Fatalf("status = %d, want %d", out.Status, fiber.StatusConflict)
	}
}

func TestScreenCV_MissingInterviewID(t *testing.T) {
	out := postScreenCV(t, newScreeningTestApp(&stubScreeningUsecase{}), `{}`)
	if out.Status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", out.Status, fiber.StatusBadRequest)
	}
}
