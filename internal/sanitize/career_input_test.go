package sanitize

import (
	"errors"
	"strings"
	"testing"
)

func TestCareer_StripsMarkupFromPlainTextFields(t *testing.T) {
	in, err := Career(map[string]any{
		"jobTitle": "<script>alert(1)</script>Backend Engineer",
		"location": "<b>Manila</b>",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := *in.JobTitle; got != "Backend Engineer" {
		t.Fatalf("jobTitle = %q", got)
	}
	if got := *in.Location; got != "Manila" {
		t.Fatalf("location = %q", got)
	}
}

func TestCareer_DescriptionKeepsFormattingDropsScripts(t *testing.T) {
	in, err := Career(map[string]any{
		"description": "<p>We build <strong>things</strong>.</p><script>evil()</script>",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	desc := *in.Description
	if !strings.Contains(desc, "<strong>things</strong>") {
		t.Fatalf("formatting lost: %q", desc)
	}
	if strings.Contains(desc, "script") || strings.Contains(desc, "evil") {
		t.Fatalf("script survived: %q", desc)
	}
}

func TestCareer_DescriptionNeutralizesJavascriptHref(t *testing.T) {
	in, err := Career(map[string]any{
		"description": `<p>Apply <a href="javascript:alert(1)">here</a></p>`,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.Contains(*in.Description, "javascript:") {
		t.Fatalf("javascript href survived: %q", *in.Description)
	}
}

func TestCareer_RejectsUnknownFields(t *testing.T) {
	_, err := Career(map[string]any{
		"jobTitle": "x",
		"isAdmin":  true,
	})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(valErr.Fields) != 1 || !strings.Contains(valErr.Fields[0], "isAdmin") {
		t.Fatalf("fields = %v", valErr.Fields)
	}
}

func TestCareer_RejectsWrongPrimitiveTypes(t *testing.T) {
	_, err := Career(map[string]any{
		"jobTitle":      123.0,
		"minimumSalary": "lots",
	})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(valErr.Fields) != 2 {
		t.Fatalf("expected both fields flagged, got %v", valErr.Fields)
	}
}

func TestCareer_LooseBoolCoercion(t *testing.T) {
	in, err := Career(map[string]any{
		"requireVideo":     "true",
		"salaryNegotiable": 0.0,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !*in.RequireVideo {
		t.Fatalf("requireVideo: string \"true\" should coerce to true")
	}
	if *in.SalaryNegotiable {
		t.Fatalf("salaryNegotiable: 0 should coerce to false")
	}
}

func TestCareer_QuestionGroupsAndIndexedErrors(t *testing.T) {
	in, err := Career(map[string]any{
		"questions": []any{
			map[string]any{
				"category": "Technical",
				"askCount": 2.0,
				"questions": []any{
					map[string]any{"question": "<i>Tell</i> me about Go"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !in.HasQuestions || len(in.Questions) != 1 {
		t.Fatalf("questions not decoded: %+v", in)
	}
	g := in.Questions[0]
	if g.Category != "Technical" || g.AskCount == nil || *g.AskCount != 2 {
		t.Fatalf("group = %+v", g)
	}
	if g.Questions[0].Question != "Tell me about Go" {
		t.Fatalf("question markup not stripped: %q", g.Questions[0].Question)
	}

	_, err = Career(map[string]any{
		"questions": []any{
			map[string]any{"questions": []any{map[string]any{"question": 7.0}}},
		},
	})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(valErr.Fields[0], "questions[0].questions[0].question") {
		t.Fatalf("expected indexed path, got %v", valErr.Fields)
	}
}

func TestCareer_PreScreenRangeBoundCoercion(t *testing.T) {
	in, err := Career(map[string]any{
		"preScreeningQuestions": []any{
			map[string]any{
				"id":       "q1",
				"type":     "range",
				"question": "Expected salary?",
				"rangeMin": "40000",
				"rangeMax": 90000.0,
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	q := in.PreScreeningQuestions[0]
	if q.RangeMin != 40000 || q.RangeMax != 90000 {
		t.Fatalf("bounds = %v..%v", q.RangeMin, q.RangeMax)
	}
}

func TestCareer_Idempotent(t *testing.T) {
	first, err := Career(map[string]any{
		"jobTitle":    "<b>Engineer</b> & Co",
		"description": "<p>Build <em>stuff</em></p>",
		"location":    "  Cebu  ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	second, err := Career(map[string]any{
		"jobTitle":    *first.JobTitle,
		"description": *first.Description,
		"location":    *first.Location,
	})
	if err != nil {
		t.Fatalf("second pass err: %v", err)
	}
	if *second.JobTitle != *first.JobTitle {
		t.Fatalf("jobTitle not idempotent: %q vs %q", *first.JobTitle, *second.JobTitle)
	}
	if *second.Description != *first.Description {
		t.Fatalf("description not idempotent: %q vs %q", *first.Description, *second.Description)
	}
	if *second.Location != *first.Location {
		t.Fatalf("location not idempotent: %q vs %q", *first.Location, *second.Location)
	}
}

func TestCareerPartial_AbsentFieldsStayNil(t *testing.T) {
	in, err := CareerPartial(map[string]any{"status": "inactive"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if in.JobTitle != nil || in.Description != nil || in.HasQuestions {
		t.Fatalf("absent fields should be nil: %+v", in)
	}
	if *in.Status != "inactive" {
		t.Fatalf("status = %q", *in.Status)
	}
}
